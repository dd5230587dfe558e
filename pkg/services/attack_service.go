package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/keyspace"
	"github.com/cipherswarm/cipherswarm/pkg/state"
)

// AttackService manages attack CRUD inside campaigns and delegates
// lifecycle transitions to the state engine.
type AttackService struct {
	client *ent.Client
	engine *state.Engine
	logger *slog.Logger
}

// NewAttackService creates a new AttackService.
func NewAttackService(client *ent.Client, engine *state.Engine) *AttackService {
	return &AttackService{
		client: client,
		engine: engine,
		logger: slog.With("component", "attack_service"),
	}
}

// AttackParams carries the hashcat configuration of an attack. The same
// shape serves create and update.
type AttackParams struct {
	Name                    string
	AttackMode              attack.AttackMode
	Mask                    string
	IncrementMode           bool
	IncrementMinimum        int
	IncrementMaximum        int
	Optimized               bool
	SlowCandidateGenerators bool
	WorkloadProfile         int
	DisableMarkov           bool
	ClassicMarkov           bool
	MarkovThreshold         int
	LeftRule                string
	RightRule               string
	CustomCharset1          string
	CustomCharset2          string
	CustomCharset3          string
	CustomCharset4          string
	WordListID              *int
	RuleListID              *int
	MaskListID              *int
}

func (p AttackParams) charsets() keyspace.Charsets {
	return keyspace.Charsets{p.CustomCharset1, p.CustomCharset2, p.CustomCharset3, p.CustomCharset4}
}

// CreateAttack appends an attack to a campaign in pending state. The
// campaign must be draft or active; position is assigned at the end of
// the dispatch order.
func (s *AttackService) CreateAttack(httpCtx context.Context, campaignID int, params AttackParams) (*ent.Attack, error) {
	if params.WorkloadProfile == 0 {
		params.WorkloadProfile = 3
	}
	if err := s.validateParams(httpCtx, params); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the campaign row so concurrent appends see distinct positions.
	c, err := tx.Campaign.Query().
		Where(campaign.IDEQ(campaignID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: campaign %d", ErrNotFound, campaignID)
		}
		return nil, fmt.Errorf("failed to lock campaign: %w", err)
	}
	if c.State != campaign.StateDraft && c.State != campaign.StateActive {
		return nil, fmt.Errorf("%w: campaign %d is %s", ErrGuardRejected, campaignID, c.State)
	}

	position := 0
	last, err := tx.Attack.Query().
		Where(attack.CampaignIDEQ(campaignID)).
		Order(ent.Desc(attack.FieldPosition)).
		First(ctx)
	switch {
	case err == nil:
		position = last.Position + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to find last attack position: %w", err)
	}

	atk, err := s.applyParams(tx.Attack.Create(), params).
		SetCampaignID(campaignID).
		SetPosition(position).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: attack references a missing resource", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create attack: %w", err)
	}

	// Child mutations bump the campaign's updated_at.
	if err := tx.Campaign.UpdateOneID(campaignID).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to touch campaign: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attack: %w", err)
	}

	s.logger.Info("attack created",
		"attack_id", atk.ID, "campaign_id", campaignID,
		"attack_mode", atk.AttackMode, "position", atk.Position)
	return atk, nil
}

// GetAttack returns an attack by ID.
func (s *AttackService) GetAttack(ctx context.Context, id int) (*ent.Attack, error) {
	atk, err := s.client.Attack.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: attack %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get attack: %w", err)
	}
	return atk, nil
}

// ListAttacks returns a campaign's attacks in dispatch order.
func (s *AttackService) ListAttacks(ctx context.Context, campaignID int) ([]*ent.Attack, error) {
	attacks, err := s.client.Attack.Query().
		Where(attack.CampaignIDEQ(campaignID)).
		Order(ent.Asc(attack.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attacks: %w", err)
	}
	return attacks, nil
}

// AttackBundle is an attack with every row the wire DTO needs.
type AttackBundle struct {
	Attack   *ent.Attack
	Campaign *ent.Campaign
	HashList *ent.HashList
	WordList *ent.Resource
	RuleList *ent.Resource
	MaskList *ent.Resource
}

// GetAttackBundle loads an attack together with its campaign, hash list
// and referenced resources.
func (s *AttackService) GetAttackBundle(ctx context.Context, id int) (*AttackBundle, error) {
	atk, err := s.client.Attack.Query().
		Where(attack.IDEQ(id)).
		WithWordList().
		WithRuleList().
		WithMaskList().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: attack %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get attack: %w", err)
	}
	c, err := s.client.Campaign.Get(ctx, atk.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	hl, err := s.client.HashList.Get(ctx, c.HashListID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hash list: %w", err)
	}
	return &AttackBundle{
		Attack:   atk,
		Campaign: c,
		HashList: hl,
		WordList: atk.Edges.WordList,
		RuleList: atk.Edges.RuleList,
		MaskList: atk.Edges.MaskList,
	}, nil
}

// UpdateAttack replaces the hashcat parameters of a pending or paused
// attack. The keyspace geometry changes with the parameters, so existing
// tasks are destroyed and the attack is re-planned on next dispatch.
func (s *AttackService) UpdateAttack(httpCtx context.Context, id int, params AttackParams) (*ent.Attack, error) {
	if params.WorkloadProfile == 0 {
		params.WorkloadProfile = 3
	}
	if err := s.validateParams(httpCtx, params); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	atk, err := tx.Attack.Query().
		Where(attack.IDEQ(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: attack %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to lock attack: %w", err)
	}
	if atk.State != attack.StatePending && atk.State != attack.StatePaused {
		return nil, fmt.Errorf("%w: attack %d is %s on edit", ErrGuardRejected, id, atk.State)
	}

	if _, err := tx.Task.Delete().Where(task.AttackIDEQ(id)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to destroy tasks: %w", err)
	}

	upd := s.applyParamsUpdate(tx.Attack.UpdateOneID(id), params).
		ClearTotalKeyspace().
		SetDispatchedKeyspace(0)
	atk, err = upd.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: attack references a missing resource", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update attack: %w", err)
	}

	if err := tx.Campaign.UpdateOneID(atk.CampaignID).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to touch campaign: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attack update: %w", err)
	}
	return atk, nil
}

// DeleteAttack removes a non-running attack and re-derives campaign
// completion, since the deleted attack may have been the last live one.
func (s *AttackService) DeleteAttack(httpCtx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	atk, err := s.GetAttack(ctx, id)
	if err != nil {
		return err
	}
	if atk.State == attack.StateRunning {
		return fmt.Errorf("%w: attack %d is running, abandon it first", ErrGuardRejected, id)
	}

	if err := s.client.Attack.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: attack %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete attack: %w", err)
	}

	if _, err := s.engine.DeriveCampaign(ctx, atk.CampaignID); err != nil {
		return fmt.Errorf("failed to re-derive campaign %d: %w", atk.CampaignID, err)
	}
	s.logger.Info("attack deleted", "attack_id", id, "campaign_id", atk.CampaignID)
	return nil
}

// ResetAttack destroys all tasks and rewinds the attack to pending with
// an unplanned keyspace.
func (s *AttackService) ResetAttack(ctx context.Context, id int) (*ent.Attack, error) {
	return s.engine.ApplyAttackEvent(ctx, id, state.AttackEventReset)
}

// AbandonAttack destroys all tasks and requeues the attack. Unlike reset
// it is an operator response to a wedged attack, but the mutation is the
// same rewind.
func (s *AttackService) AbandonAttack(ctx context.Context, id int) (*ent.Attack, error) {
	return s.engine.ApplyAttackEvent(ctx, id, state.AttackEventAbandon)
}

// MoveAttack swaps the attack with its neighbor in dispatch order.
// direction is "up" (earlier) or "down" (later); moves past either end
// are no-ops.
func (s *AttackService) MoveAttack(httpCtx context.Context, id int, direction string) (*ent.Attack, error) {
	if direction != "up" && direction != "down" {
		return nil, NewValidationError("direction", "must be up or down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	atk, err := tx.Attack.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: attack %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get attack: %w", err)
	}

	// Serialize reorders per campaign.
	c, err := tx.Campaign.Query().
		Where(campaign.IDEQ(atk.CampaignID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock campaign: %w", err)
	}
	if c.State == campaign.StateArchived {
		return nil, fmt.Errorf("%w: campaign %d is archived", ErrGuardRejected, c.ID)
	}

	q := tx.Attack.Query().Where(attack.CampaignIDEQ(atk.CampaignID))
	if direction == "up" {
		q = q.Where(attack.PositionLT(atk.Position)).
			Order(ent.Desc(attack.FieldPosition))
	} else {
		q = q.Where(attack.PositionGT(atk.Position)).
			Order(ent.Asc(attack.FieldPosition))
	}
	neighbor, err := q.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			if err := tx.Commit(); err != nil {
				return nil, fmt.Errorf("failed to commit attack move: %w", err)
			}
			return atk, nil
		}
		return nil, fmt.Errorf("failed to find neighbor: %w", err)
	}

	if err := tx.Attack.UpdateOneID(neighbor.ID).SetPosition(atk.Position).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to move neighbor: %w", err)
	}
	atk, err = tx.Attack.UpdateOneID(atk.ID).SetPosition(neighbor.Position).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to move attack: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attack move: %w", err)
	}
	return atk, nil
}

// validateParams checks mode/resource pairing, resource types, and that
// the planner can actually size the configuration. Masks and increments
// are validated with unit line counts so syntax errors surface at create
// time instead of first dispatch.
func (s *AttackService) validateParams(ctx context.Context, p AttackParams) error {
	if err := attack.AttackModeValidator(p.AttackMode); err != nil {
		return NewValidationError("attack_mode", "unknown attack mode")
	}
	if p.WorkloadProfile < 1 || p.WorkloadProfile > 4 {
		return NewValidationError("workload_profile", "must be between 1 and 4")
	}
	if p.IncrementMinimum < 0 || p.IncrementMinimum > 62 {
		return NewValidationError("increment_minimum", "must be between 0 and 62")
	}
	if p.IncrementMaximum < 0 || p.IncrementMaximum > 62 {
		return NewValidationError("increment_maximum", "must be between 0 and 62")
	}

	switch p.AttackMode {
	case attack.AttackModeDictionary:
		if p.WordListID == nil {
			return NewValidationError("word_list_id", "required for dictionary attacks")
		}
		if p.MaskListID != nil {
			return NewValidationError("mask_list_id", "only valid for mask attacks")
		}
		if p.Mask != "" {
			return NewValidationError("mask", "only valid for mask attacks")
		}
		if p.IncrementMode {
			return NewValidationError("increment_mode", "only valid for mask attacks")
		}
	case attack.AttackModeMask:
		if p.Mask == "" && p.MaskListID == nil {
			return NewValidationError("mask", "mask or mask_list_id required for mask attacks")
		}
		if p.WordListID != nil || p.RuleListID != nil {
			return NewValidationError("word_list_id", "only valid for dictionary and hybrid attacks")
		}
		if p.IncrementMode && p.MaskListID != nil {
			return NewValidationError("increment_mode", "not valid with a mask list")
		}
	case attack.AttackModeHybridDictionary, attack.AttackModeHybridMask:
		if p.WordListID == nil {
			return NewValidationError("word_list_id", "required for hybrid attacks")
		}
		if p.Mask == "" {
			return NewValidationError("mask", "required for hybrid attacks")
		}
		if p.MaskListID != nil {
			return NewValidationError("mask_list_id", "only valid for mask attacks")
		}
		if p.IncrementMode {
			return NewValidationError("increment_mode", "only valid for mask attacks")
		}
	}

	if err := s.checkResourceType(ctx, p.WordListID, resource.ResourceTypeWordList, "word_list_id"); err != nil {
		return err
	}
	if err := s.checkResourceType(ctx, p.RuleListID, resource.ResourceTypeRuleList, "rule_list_id"); err != nil {
		return err
	}
	if err := s.checkResourceType(ctx, p.MaskListID, resource.ResourceTypeMaskList, "mask_list_id"); err != nil {
		return err
	}

	one := int64(1)
	probe := keyspace.Params{
		Mode:           string(p.AttackMode),
		Mask:           p.Mask,
		CustomCharsets: p.charsets(),
		IncrementMode:  p.IncrementMode,
		IncrementMin:   p.IncrementMinimum,
		IncrementMax:   p.IncrementMaximum,
	}
	if p.WordListID != nil {
		probe.WordListCount = &one
	}
	if p.RuleListID != nil {
		probe.RuleListCount = &one
	}
	if p.MaskListID != nil {
		probe.MaskListCount = &one
	}
	if _, err := keyspace.PhasesFor(probe); err != nil {
		return NewValidationError("mask", err.Error())
	}
	return nil
}

func (s *AttackService) checkResourceType(ctx context.Context, id *int, want resource.ResourceType, field string) error {
	if id == nil {
		return nil
	}
	res, err := s.client.Resource.Get(ctx, *id)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: resource %d", ErrNotFound, *id)
		}
		return fmt.Errorf("failed to load resource: %w", err)
	}
	if res.ResourceType != want {
		return NewValidationError(field, fmt.Sprintf("resource %d is a %s, not a %s", *id, res.ResourceType, want))
	}
	return nil
}

func (s *AttackService) applyParams(c *ent.AttackCreate, p AttackParams) *ent.AttackCreate {
	c.SetName(p.Name).
		SetAttackMode(p.AttackMode).
		SetMask(p.Mask).
		SetIncrementMode(p.IncrementMode).
		SetIncrementMinimum(p.IncrementMinimum).
		SetIncrementMaximum(p.IncrementMaximum).
		SetOptimized(p.Optimized).
		SetSlowCandidateGenerators(p.SlowCandidateGenerators).
		SetWorkloadProfile(p.WorkloadProfile).
		SetDisableMarkov(p.DisableMarkov).
		SetClassicMarkov(p.ClassicMarkov).
		SetMarkovThreshold(p.MarkovThreshold).
		SetLeftRule(p.LeftRule).
		SetRightRule(p.RightRule).
		SetCustomCharset1(p.CustomCharset1).
		SetCustomCharset2(p.CustomCharset2).
		SetCustomCharset3(p.CustomCharset3).
		SetCustomCharset4(p.CustomCharset4).
		SetNillableWordListID(p.WordListID).
		SetNillableRuleListID(p.RuleListID).
		SetNillableMaskListID(p.MaskListID)
	return c
}

func (s *AttackService) applyParamsUpdate(u *ent.AttackUpdateOne, p AttackParams) *ent.AttackUpdateOne {
	u.SetName(p.Name).
		SetAttackMode(p.AttackMode).
		SetMask(p.Mask).
		SetIncrementMode(p.IncrementMode).
		SetIncrementMinimum(p.IncrementMinimum).
		SetIncrementMaximum(p.IncrementMaximum).
		SetOptimized(p.Optimized).
		SetSlowCandidateGenerators(p.SlowCandidateGenerators).
		SetWorkloadProfile(p.WorkloadProfile).
		SetDisableMarkov(p.DisableMarkov).
		SetClassicMarkov(p.ClassicMarkov).
		SetMarkovThreshold(p.MarkovThreshold).
		SetLeftRule(p.LeftRule).
		SetRightRule(p.RightRule).
		SetCustomCharset1(p.CustomCharset1).
		SetCustomCharset2(p.CustomCharset2).
		SetCustomCharset3(p.CustomCharset3).
		SetCustomCharset4(p.CustomCharset4)
	u.ClearWordListID().ClearRuleListID().ClearMaskListID()
	if p.WordListID != nil {
		u.SetWordListID(*p.WordListID)
	}
	if p.RuleListID != nil {
		u.SetRuleListID(*p.RuleListID)
	}
	if p.MaskListID != nil {
		u.SetMaskListID(*p.MaskListID)
	}
	return u
}
