package automation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port/mocks"
)

// TestKeeperTick: due campaigns get probed and triggered; a rejected trigger
// does not stop the scan.
func TestKeeperTick(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	trigger := mocks.NewMockAutomationTrigger(t)

	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	due := []domain.Campaign{
		{ID: "a", State: domain.StateOpen},
		{ID: "b", State: domain.StateOpen},
		{ID: "c", State: domain.StateOpen},
	}

	repo.EXPECT().ListOpenPastDeadline(mock.Anything, now).Return(due, nil)

	trigger.EXPECT().CheckReady(mock.Anything, "a", mock.Anything).Return(true, nil, nil)
	trigger.EXPECT().Trigger(mock.Anything, "a", mock.Anything).Return(nil)

	// b was finalized by someone else between the scan and the probe
	trigger.EXPECT().CheckReady(mock.Anything, "b", mock.Anything).Return(false, nil, nil)

	// c rejects the trigger itself; the keeper moves on
	trigger.EXPECT().CheckReady(mock.Anything, "c", mock.Anything).Return(true, nil, nil)
	trigger.EXPECT().Trigger(mock.Anything, "c", mock.Anything).Return(errors.New("already finalized"))

	k := NewKeeper(repo, trigger, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	k.now = func() time.Time { return now }

	k.tick(context.Background())
}

func TestKeeperTickScanFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	trigger := mocks.NewMockAutomationTrigger(t)

	repo.EXPECT().
		ListOpenPastDeadline(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("db down"))

	k := NewKeeper(repo, trigger, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	k.tick(context.Background())
}
