package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/state"
)

// AgentAPIVersion is the client protocol version served to agents.
const AgentAPIVersion = 1

// AgentService manages the agent fleet: pre-registration, token
// exchange, heartbeats, error reports and lifecycle. Bearer tokens are
// minted here and never logged.
type AgentService struct {
	client *ent.Client
	engine *state.Engine
	pub    Broadcaster
	logger *slog.Logger
}

// NewAgentService creates a new AgentService. pub may be nil.
func NewAgentService(client *ent.Client, engine *state.Engine, pub Broadcaster) *AgentService {
	return &AgentService{
		client: client,
		engine: engine,
		pub:    pub,
		logger: slog.With("component", "agent_service"),
	}
}

// PreRegisterRequest is the operator payload creating an agent slot.
type PreRegisterRequest struct {
	Label      string `json:"label,omitempty"`
	ProjectIDs []int  `json:"project_ids,omitempty"`
}

// PreRegisterResponse carries the one-time registration token. It is
// shown once; the stored copy is cleared when the agent redeems it.
type PreRegisterResponse struct {
	AgentID           int64  `json:"agent_id"`
	RegistrationToken string `json:"registration_token"`
}

// PreRegister creates an agent slot and mints its one-time registration
// token. Host identity fields stay placeholders until the agent redeems
// the token.
func (s *AgentService) PreRegister(httpCtx context.Context, req PreRegisterRequest) (*PreRegisterResponse, error) {
	regToken, err := NewRegistrationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to mint registration token: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	placeholder := uuid.NewString()
	hostName := req.Label
	if hostName == "" {
		hostName = "unregistered-" + placeholder[:8]
	}
	builder := s.client.Agent.Create().
		SetLabel(req.Label).
		SetHostName(hostName).
		SetClientSignature("unregistered/" + placeholder).
		SetRegistrationToken(regToken).
		SetState(agent.StatePending).
		SetAdvancedConfig(models.DefaultAgentConfig())
	if len(req.ProjectIDs) > 0 {
		builder.AddProjectIDs(req.ProjectIDs...)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return &PreRegisterResponse{
		AgentID:           int64(a.ID),
		RegistrationToken: regToken,
	}, nil
}

// RegisterRequest is the agent's token-exchange payload.
type RegisterRequest struct {
	Token           string   `json:"token"`
	HostName        string   `json:"host_name"`
	ClientSignature string   `json:"client_signature"`
	OperatingSystem string   `json:"operating_system,omitempty"`
	Devices         []string `json:"devices,omitempty"`
}

// Register redeems a one-time registration token for the agent's bearer
// token, filling in host identity. The registration token is consumed;
// a second redemption fails with ErrNotFound.
func (s *AgentService) Register(httpCtx context.Context, req RegisterRequest) (*models.RegistrationResponse, error) {
	if req.Token == "" {
		return nil, NewValidationError("token", "required")
	}
	if req.HostName == "" {
		return nil, NewValidationError("host_name", "required")
	}
	if req.ClientSignature == "" {
		return nil, NewValidationError("client_signature", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	a, err := tx.Agent.Query().
		Where(agent.RegistrationTokenEQ(req.Token)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up registration token: %w", err)
	}

	bearer, err := NewAgentToken(a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mint agent token: %w", err)
	}

	upd := tx.Agent.UpdateOneID(a.ID).
		SetHostName(req.HostName).
		SetClientSignature(req.ClientSignature).
		SetToken(bearer).
		ClearRegistrationToken().
		SetState(agent.StatePending)
	if req.OperatingSystem != "" {
		upd.SetOperatingSystem(req.OperatingSystem)
	}
	if req.Devices != nil {
		upd.SetDevices(req.Devices)
	}
	a, err = upd.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Same (host_name, client_signature) already registered.
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}

	projects, err := a.QueryProjects().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent projects: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	s.logger.Info("agent registered", "agent_id", a.ID, "host_name", a.HostName)
	s.publishAgentStatus(ctx, a)

	return &models.RegistrationResponse{
		AgentID:  int64(a.ID),
		Token:    bearer,
		Projects: projectRefs(projects),
	}, nil
}

// Authenticate resolves a bearer token to its agent. The comparison is
// constant-time; the token value is never logged.
func (s *AgentService) Authenticate(ctx context.Context, token string) (*ent.Agent, error) {
	agentID, ok := ParseAgentToken(token)
	if !ok {
		return nil, ErrNotFound
	}
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a.Token == nil || !TokenEqual(token, *a.Token) {
		return nil, ErrNotFound
	}
	return a, nil
}

// TouchSeen stamps the agent's last check-in time and source address.
func (s *AgentService) TouchSeen(ctx context.Context, agentID int, ipAddress string) error {
	err := s.client.Agent.UpdateOneID(agentID).
		SetLastSeenAt(time.Now()).
		SetLastIpaddress(ipAddress).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to stamp agent %d: %w", agentID, err)
	}
	return nil
}

// GetAgent retrieves an agent by ID
func (s *AgentService) GetAgent(ctx context.Context, id int) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// ListAgents returns the fleet, newest first.
func (s *AgentService) ListAgents(ctx context.Context) ([]*ent.Agent, error) {
	agents, err := s.client.Agent.Query().
		Order(ent.Desc(agent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// InProject reports whether the agent is assigned to the project.
// Handlers use it to decide visibility of campaign-scoped resources.
func (s *AgentService) InProject(ctx context.Context, agentID, projectID int) (bool, error) {
	ok, err := s.client.Agent.Query().
		Where(agent.IDEQ(agentID)).
		QueryProjects().
		Where(project.IDEQ(projectID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check project assignment: %w", err)
	}
	return ok, nil
}

// AgentDTO assembles the wire view of an agent, projects included.
func (s *AgentService) AgentDTO(ctx context.Context, a *ent.Agent) (*models.AgentResponse, error) {
	projects, err := a.QueryProjects().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent projects: %w", err)
	}
	cfg := a.AdvancedConfig
	if cfg.AgentUpdateInterval == 0 {
		cfg = models.DefaultAgentConfig()
	}
	devices := a.Devices
	if devices == nil {
		devices = []string{}
	}
	return &models.AgentResponse{
		ID:              int64(a.ID),
		HostName:        a.HostName,
		ClientSignature: a.ClientSignature,
		OperatingSystem: a.OperatingSystem,
		State:           string(a.State),
		Devices:         devices,
		AdvancedConfig:  cfg,
		Projects:        projectRefs(projects),
	}, nil
}

// Configuration returns the agent's advanced config for startup.
func (s *AgentService) Configuration(ctx context.Context, agentID int) (*models.AgentConfigurationResponse, error) {
	a, err := s.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	cfg := a.AdvancedConfig
	if cfg.AgentUpdateInterval == 0 {
		cfg = models.DefaultAgentConfig()
	}
	return &models.AgentConfigurationResponse{
		Config:     cfg,
		APIVersion: AgentAPIVersion,
	}, nil
}

// Heartbeat records the agent's check-in and derives the command it
// should follow until the next one. A pending agent's first heartbeat
// activates it; a reported error state is recorded as-is.
func (s *AgentService) Heartbeat(httpCtx context.Context, agentID int, reportedState string) (*models.HeartbeatResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := s.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	if a.State == agent.StateStopped {
		// Only an operator enable brings a stopped agent back.
		return &models.HeartbeatResponse{Command: models.CommandStop}, nil
	}

	next := a.State
	switch {
	case reportedState == "error":
		next = agent.StateError
	case a.State == agent.StatePending || a.State == agent.StateError:
		next = agent.StateActive
	}
	if next != a.State {
		a, err = s.client.Agent.UpdateOneID(agentID).SetState(next).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update agent state: %w", err)
		}
		s.publishAgentStatus(ctx, a)
	}

	// Each heartbeat renews the lease on whatever the agent holds.
	_, err = s.client.Task.Update().
		Where(task.AgentID(agentID), task.StateEQ(task.StateRunning)).
		SetActivityTimestamp(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to renew task leases: %w", err)
	}

	signals, err := s.client.Task.Query().
		Where(task.AgentID(agentID),
			task.StateIn(task.StateRunning, task.StatePaused),
			task.AgentSignalNEQ(task.AgentSignalNone)).
		Select(task.FieldAgentSignal).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query task signals: %w", err)
	}

	command := models.CommandContinue
	for _, sig := range signals {
		if sig == string(task.AgentSignalStop) {
			command = models.CommandStop
			break
		}
		command = models.CommandPause
	}
	return &models.HeartbeatResponse{Command: command}, nil
}

// Shutdown handles a voluntary agent exit: held work goes back to the
// pool and the agent is marked stopped.
func (s *AgentService) Shutdown(httpCtx context.Context, agentID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.releaseHeldTasks(ctx, agentID); err != nil {
		return err
	}

	a, err := s.client.Agent.UpdateOneID(agentID).
		SetState(agent.StateStopped).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to stop agent: %w", err)
	}
	s.publishAgentStatus(ctx, a)
	return nil
}

// Enable returns a stopped, pending or errored agent to active duty.
func (s *AgentService) Enable(httpCtx context.Context, agentID int) (*ent.Agent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Agent.Update().
		Where(agent.IDEQ(agentID), agent.StateNEQ(agent.StateActive)).
		SetState(agent.StateActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enable agent: %w", err)
	}
	a, err := s.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		s.publishAgentStatus(ctx, a)
	}
	return a, nil
}

// Disable stops an agent by operator action. Held tasks are abandoned so
// other agents can pick them up.
func (s *AgentService) Disable(httpCtx context.Context, agentID int) (*ent.Agent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.GetAgent(ctx, agentID); err != nil {
		return nil, err
	}
	if err := s.releaseHeldTasks(ctx, agentID); err != nil {
		return nil, err
	}

	a, err := s.client.Agent.UpdateOneID(agentID).
		SetState(agent.StateStopped).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to disable agent: %w", err)
	}
	s.publishAgentStatus(ctx, a)
	return a, nil
}

// DeleteAgent removes an agent. Its tasks survive with the agent
// reference cleared; its benchmarks and error reports cascade away.
func (s *AgentService) DeleteAgent(httpCtx context.Context, agentID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.releaseHeldTasks(ctx, agentID); err != nil {
		return err
	}
	if err := s.client.Agent.DeleteOneID(agentID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// ReportError records an agent failure report. A fatal report tied to a
// task fails that task, which cascades to its attack.
func (s *AgentService) ReportError(httpCtx context.Context, agentID int, taskID *int, sub models.ErrorSubmission) error {
	sev := agenterror.Severity(sub.Severity)
	if err := agenterror.SeverityValidator(sev); err != nil {
		return NewValidationError("severity", "must be info, warning, minor, major, critical or fatal")
	}
	if sub.Message == "" {
		return NewValidationError("message", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.AgentError.Create().
		SetAgentID(agentID).
		SetSeverity(sev).
		SetMessage(sub.Message)
	if taskID != nil {
		builder.SetTaskID(*taskID)
	}
	if sub.Context != nil {
		builder.SetContext(sub.Context)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record agent error: %w", err)
	}

	if sev == agenterror.SeverityFatal && taskID != nil {
		if _, err := s.engine.ApplyTaskEvent(ctx, *taskID, state.TaskEventError); err != nil {
			// The task may already be terminal; the report still stands.
			s.logger.Warn("fatal error report could not fail task",
				"agent_id", agentID, "task_id", *taskID, "error", err)
		}
	}
	return nil
}

// PurgeOldErrors deletes agent error reports older than cutoff.
func (s *AgentService) PurgeOldErrors(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.AgentError.Delete().
		Where(agenterror.RecordedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge agent errors: %w", err)
	}
	return n, nil
}

// releaseHeldTasks hands the agent's work back: running tasks are
// abandoned through the engine, paused ones just drop the lease.
func (s *AgentService) releaseHeldTasks(ctx context.Context, agentID int) error {
	running, err := s.client.Task.Query().
		Where(task.AgentID(agentID), task.StateEQ(task.StateRunning)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to query held tasks: %w", err)
	}
	for _, id := range running {
		if _, err := s.engine.ApplyTaskEvent(ctx, id, state.TaskEventAbandon); err != nil {
			return fmt.Errorf("failed to abandon task %d: %w", id, err)
		}
	}

	_, err = s.client.Task.Update().
		Where(task.AgentID(agentID), task.StateEQ(task.StatePaused)).
		ClearAgentID().
		SetStale(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release paused tasks: %w", err)
	}
	return nil
}

func (s *AgentService) publishAgentStatus(ctx context.Context, a *ent.Agent) {
	if s.pub == nil {
		return
	}
	payload := events.AgentStatusPayload{
		Type:      events.EventTypeAgentStatus,
		AgentID:   a.ID,
		HostName:  a.HostName,
		State:     a.State,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.pub.PublishAgentStatus(ctx, payload); err != nil {
		s.logger.Warn("agent status publish failed", "agent_id", a.ID, "error", err)
	}
}

func projectRefs(projects []*ent.Project) []models.ProjectRef {
	refs := make([]models.ProjectRef, 0, len(projects))
	for _, p := range projects {
		refs = append(refs, models.ProjectRef{ID: int64(p.ID), Name: p.Name})
	}
	return refs
}
