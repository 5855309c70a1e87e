package retention

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockRepo "fleettrack/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestSweeper(repo *mockRepo.MockDeviceRepository, maxAge time.Duration) *Sweeper {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSweeper(logger, repo, time.Minute, maxAge)
}

func TestSweeper_SweepOnce_UsesCutoff(t *testing.T) {
	t.Parallel()

	repo := mockRepo.NewMockDeviceRepository(t)
	sweeper := newTestSweeper(repo, 24*time.Hour)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expectedCutoff := now.Add(-24 * time.Hour)

	repo.EXPECT().
		DeleteStale(mock.Anything, expectedCutoff).
		Return(int64(3), nil).
		Once()

	sweeper.SweepOnce(context.Background(), now)
}

func TestSweeper_SweepOnce_ToleratesStorageError(t *testing.T) {
	t.Parallel()

	repo := mockRepo.NewMockDeviceRepository(t)
	sweeper := newTestSweeper(repo, time.Hour)

	repo.EXPECT().
		DeleteStale(mock.Anything, mock.Anything).
		Return(int64(0), errors.New("db down")).
		Once()

	// Must log and return, not panic.
	sweeper.SweepOnce(context.Background(), time.Now())
}

func TestSweeper_DefaultsApplied(t *testing.T) {
	t.Parallel()

	repo := mockRepo.NewMockDeviceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sweeper := NewSweeper(logger, repo, 0, 0)

	assert.Equal(t, DefaultInterval, sweeper.interval)
	assert.Equal(t, DefaultMaxAge, sweeper.maxAge)
}

func TestSweeper_StartStop(t *testing.T) {
	t.Parallel()

	repo := mockRepo.NewMockDeviceRepository(t)
	sweeper := newTestSweeper(repo, time.Hour)

	sweeper.Start()
	sweeper.Stop()
}
