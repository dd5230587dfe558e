package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
)

// StartCampaign moves a draft campaign to active, making it visible to
// the matcher.
func (e *Engine) StartCampaign(ctx context.Context, campaignID int) (*ent.Campaign, error) {
	n, err := e.client.Campaign.Update().
		Where(campaign.IDEQ(campaignID), campaign.StateEQ(campaign.StateDraft)).
		SetState(campaign.StateActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start campaign %d: %w", campaignID, err)
	}
	c, getErr := e.client.Campaign.Get(ctx, campaignID)
	if getErr != nil {
		return nil, getErr
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: campaign %s on start", ErrGuardRejected, c.State)
	}
	e.RunEffects(ctx, appendEffect(nil, e.campaignStatusEffect(c)))
	return c, nil
}

// PauseCampaign parks every live attack. Each attack is its own
// transaction, so a crashed pause is restartable and an already-paused
// attack is skipped — the operation is idempotent.
func (e *Engine) PauseCampaign(ctx context.Context, campaignID int) error {
	return e.fanoutAttackEvent(ctx, campaignID, AttackEventPause,
		[]attack.State{attack.StatePending, attack.StateRunning})
}

// ResumeCampaign requeues every paused attack. Idempotent and
// restartable, same as PauseCampaign.
func (e *Engine) ResumeCampaign(ctx context.Context, campaignID int) error {
	return e.fanoutAttackEvent(ctx, campaignID, AttackEventResume,
		[]attack.State{attack.StatePaused})
}

// StopCampaign cancels every live attack and re-runs the completion
// derivation. The campaign stays active unless derivation completes it;
// archiving is a separate operator step.
func (e *Engine) StopCampaign(ctx context.Context, campaignID int) (*ent.Campaign, error) {
	err := e.fanoutAttackEvent(ctx, campaignID, AttackEventCancel,
		[]attack.State{attack.StatePending, attack.StateRunning, attack.StatePaused})
	if err != nil {
		return nil, err
	}
	return e.DeriveCampaign(ctx, campaignID)
}

// DeriveCampaign re-evaluates the campaign completion rule in its own
// transaction and returns the fresh row. Callers use it after mutations
// the task/attack paths cannot see, attack deletion for one.
func (e *Engine) DeriveCampaign(ctx context.Context, campaignID int) (*ent.Campaign, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := tx.Campaign.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	hl, err := tx.HashList.Get(ctx, c.HashListID)
	if err != nil {
		return nil, err
	}
	effects, err := e.deriveCampaignTx(ctx, tx, campaignID, hl)
	if err != nil {
		return nil, err
	}
	c, err = tx.Campaign.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit campaign derivation: %w", err)
	}
	e.RunEffects(ctx, effects)
	return c, nil
}

// ArchiveCampaign hides the campaign from operator list views. Work is
// not cancelled here; stop the campaign first.
func (e *Engine) ArchiveCampaign(ctx context.Context, campaignID int) (*ent.Campaign, error) {
	n, err := e.client.Campaign.Update().
		Where(campaign.IDEQ(campaignID), campaign.StateNEQ(campaign.StateArchived)).
		SetState(campaign.StateArchived).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to archive campaign %d: %w", campaignID, err)
	}
	c, getErr := e.client.Campaign.Get(ctx, campaignID)
	if getErr != nil {
		return nil, getErr
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: campaign %s on archive", ErrGuardRejected, c.State)
	}
	e.RunEffects(ctx, appendEffect(nil, e.campaignStatusEffect(c)))
	return c, nil
}

// fanoutAttackEvent applies ev to each attack currently in one of the
// from states. Guard rejections (racing transitions) are logged and
// skipped; hard failures abort so the caller can retry the remainder.
func (e *Engine) fanoutAttackEvent(ctx context.Context, campaignID int, ev AttackEvent, from []attack.State) error {
	ids, err := e.client.Attack.Query().
		Where(attack.CampaignIDEQ(campaignID), attack.StateIn(from...)).
		Order(ent.Asc(attack.FieldPosition)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list attacks of campaign %d: %w", campaignID, err)
	}
	for _, id := range ids {
		if _, err := e.ApplyAttackEvent(ctx, id, ev); err != nil {
			if errors.Is(err, ErrGuardRejected) {
				e.logger.Debug("fanout skipped attack",
					"attack_id", id, "event", ev, "error", err)
				continue
			}
			return err
		}
	}
	return nil
}
