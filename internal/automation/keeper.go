package automation

import (
	"context"
	"log/slog"
	"time"

	"fundvault/internal/core/port"
)

// Keeper is the in-process periodic automation caller. It polls open
// campaigns whose deadline has passed, probes CheckReady and invokes
// Trigger for each. Readiness is re-validated inside the engine, so a
// campaign finalized concurrently simply rejects the trigger.
type Keeper struct {
	repo     port.CampaignRepository
	trigger  port.AutomationTrigger
	interval time.Duration
	logger   *slog.Logger

	now func() time.Time
}

// NewKeeper creates a keeper polling at the given interval.
func NewKeeper(repo port.CampaignRepository, trigger port.AutomationTrigger, interval time.Duration, logger *slog.Logger) *Keeper {
	return &Keeper{
		repo:     repo,
		trigger:  trigger,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run polls until the context is cancelled.
func (k *Keeper) Run(ctx context.Context) {
	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.tick(ctx)
		}
	}
}

func (k *Keeper) tick(ctx context.Context) {
	due, err := k.repo.ListOpenPastDeadline(ctx, k.now())
	if err != nil {
		k.logger.Error("keeper scan failed", slog.Any("error", err))
		return
	}
	for _, c := range due {
		ready, _, err := k.trigger.CheckReady(ctx, c.ID, nil)
		if err != nil {
			k.logger.Error("keeper readiness probe failed",
				slog.String("campaign_id", c.ID), slog.Any("error", err))
			continue
		}
		if !ready {
			continue
		}
		if err = k.trigger.Trigger(ctx, c.ID, nil); err != nil {
			// another caller may have finalized it first
			k.logger.Warn("keeper trigger rejected",
				slog.String("campaign_id", c.ID), slog.Any("error", err))
			continue
		}
		k.logger.Info("keeper finalized campaign", slog.String("campaign_id", c.ID))
	}
}
