package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/state"
)

// CampaignService manages campaign CRUD and delegates lifecycle
// transitions to the state engine.
type CampaignService struct {
	client *ent.Client
	engine *state.Engine
	logger *slog.Logger
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(client *ent.Client, engine *state.Engine) *CampaignService {
	return &CampaignService{
		client: client,
		engine: engine,
		logger: slog.With("component", "campaign_service"),
	}
}

// CreateCampaignRequest carries campaign creation parameters.
type CreateCampaignRequest struct {
	ProjectID   int
	HashListID  int
	Name        string
	Description string
	Priority    models.Priority
}

// CreateCampaign creates a campaign in draft state. The hash list must
// belong to the campaign's project.
func (s *CampaignService) CreateCampaign(httpCtx context.Context, req CreateCampaignRequest) (*ent.Campaign, error) {
	if req.ProjectID <= 0 {
		return nil, NewValidationError("project_id", "required")
	}
	if req.HashListID <= 0 {
		return nil, NewValidationError("hash_list_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if !req.Priority.Valid() {
		return nil, NewValidationError("priority", "unknown priority level")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hl, err := s.client.HashList.Get(ctx, req.HashListID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: hash list %d", ErrNotFound, req.HashListID)
		}
		return nil, fmt.Errorf("failed to load hash list: %w", err)
	}
	if hl.ProjectID != req.ProjectID {
		return nil, NewValidationError("hash_list_id", "hash list belongs to another project")
	}

	c, err := s.client.Campaign.Create().
		SetProjectID(req.ProjectID).
		SetHashListID(req.HashListID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetPriority(req.Priority).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project %d", ErrNotFound, req.ProjectID)
		}
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	s.logger.Info("campaign created",
		"campaign_id", c.ID, "project_id", c.ProjectID, "priority", c.Priority.String())
	return c, nil
}

// GetCampaign returns a campaign by ID.
func (s *CampaignService) GetCampaign(ctx context.Context, id int) (*ent.Campaign, error) {
	c, err := s.client.Campaign.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: campaign %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

// ListCampaigns returns a project's campaigns in dispatch order:
// priority descending, then oldest first. Archived campaigns are
// excluded unless includeArchived is set.
func (s *CampaignService) ListCampaigns(ctx context.Context, projectID int, includeArchived bool) ([]*ent.Campaign, error) {
	q := s.client.Campaign.Query().
		Where(campaign.ProjectIDEQ(projectID))
	if !includeArchived {
		q = q.Where(campaign.StateNEQ(campaign.StateArchived))
	}
	campaigns, err := q.
		Order(ent.Desc(campaign.FieldPriority), ent.Asc(campaign.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// UpdateCampaignRequest carries the mutable campaign fields. Nil
// pointers leave the field unchanged.
type UpdateCampaignRequest struct {
	Name        *string
	Description *string
	Priority    *models.Priority
}

// UpdateCampaign edits name, description, and priority. Archived
// campaigns are immutable.
func (s *CampaignService) UpdateCampaign(httpCtx context.Context, id int, req UpdateCampaignRequest) (*ent.Campaign, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, NewValidationError("priority", "unknown priority level")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := s.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.State == campaign.StateArchived {
		return nil, fmt.Errorf("%w: campaign %d is archived", ErrGuardRejected, id)
	}

	upd := s.client.Campaign.UpdateOneID(id)
	if req.Name != nil {
		upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd.SetDescription(*req.Description)
	}
	if req.Priority != nil {
		upd.SetPriority(*req.Priority)
	}
	c, err = upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: campaign %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return c, nil
}

// DeleteCampaign removes a campaign and, via cascade, its attacks and
// tasks. Active campaigns must be stopped first.
func (s *CampaignService) DeleteCampaign(httpCtx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := s.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if c.State == campaign.StateActive {
		return fmt.Errorf("%w: campaign %d is active, stop it first", ErrGuardRejected, id)
	}

	if err := s.client.Campaign.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: campaign %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	s.logger.Info("campaign deleted", "campaign_id", id)
	return nil
}

// StartCampaign makes a draft campaign visible to the matcher.
func (s *CampaignService) StartCampaign(ctx context.Context, id int) (*ent.Campaign, error) {
	return s.engine.StartCampaign(ctx, id)
}

// PauseCampaign parks all live attacks of the campaign.
func (s *CampaignService) PauseCampaign(ctx context.Context, id int) (*ent.Campaign, error) {
	if err := s.engine.PauseCampaign(ctx, id); err != nil {
		return nil, err
	}
	return s.GetCampaign(ctx, id)
}

// ResumeCampaign requeues all paused attacks of the campaign.
func (s *CampaignService) ResumeCampaign(ctx context.Context, id int) (*ent.Campaign, error) {
	if err := s.engine.ResumeCampaign(ctx, id); err != nil {
		return nil, err
	}
	return s.GetCampaign(ctx, id)
}

// StopCampaign cancels all live attacks and re-derives completion.
func (s *CampaignService) StopCampaign(ctx context.Context, id int) (*ent.Campaign, error) {
	return s.engine.StopCampaign(ctx, id)
}

// ArchiveCampaign hides the campaign from list views.
func (s *CampaignService) ArchiveCampaign(ctx context.Context, id int) (*ent.Campaign, error) {
	return s.engine.ArchiveCampaign(ctx, id)
}

// CampaignProgress aggregates dispatch and crack progress for operator
// views.
type CampaignProgress struct {
	CampaignID     int     `json:"campaign_id"`
	State          string  `json:"state"`
	AttackCount    int     `json:"attack_count"`
	ItemCount      int64   `json:"item_count"`
	UncrackedCount int64   `json:"uncracked_count"`
	CrackedCount   int64   `json:"cracked_count"`
	PercentCracked float64 `json:"percent_cracked"`
}

// Progress summarizes a campaign for operator dashboards.
func (s *CampaignService) Progress(ctx context.Context, id int) (*CampaignProgress, error) {
	c, err := s.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	hl, err := s.client.HashList.Get(ctx, c.HashListID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hash list: %w", err)
	}
	attackCount, err := c.QueryAttacks().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count attacks: %w", err)
	}

	p := &CampaignProgress{
		CampaignID:     c.ID,
		State:          string(c.State),
		AttackCount:    attackCount,
		ItemCount:      hl.ItemCount,
		UncrackedCount: hl.UncrackedCount,
		CrackedCount:   hl.ItemCount - hl.UncrackedCount,
	}
	if hl.ItemCount > 0 {
		p.PercentCracked = float64(p.CrackedCount) / float64(hl.ItemCount) * 100
	}
	return p, nil
}
