package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fleettrack/internal/domain/entity"
	domainerrors "fleettrack/internal/domain/errors"
	"fleettrack/internal/domain/repository"
	"fleettrack/internal/domain/service"
	mockRepo "fleettrack/internal/mocks/repository"
	mockSvc "fleettrack/internal/mocks/service"
	"fleettrack/internal/presence"
	"fleettrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncRunner executes tasks inline so side effects are observable in tests.
type syncRunner struct{}

func (syncRunner) Run(_ string, task func(ctx context.Context)) {
	task(context.Background())
}

// trackerFixtures holds all test dependencies for tracker service tests.
type trackerFixtures struct {
	service   usecase.TrackerUsecase
	repo      *mockRepo.MockDeviceRepository
	notifier  *mockSvc.MockNotificationService
	broadcast *mockSvc.MockBroadcaster
	publisher *mockSvc.MockEventPublisher
	clock     *presence.ActivityClock
	watches   *presence.WatchRegistry
	now       time.Time
}

func createTestTrackerService(t *testing.T) trackerFixtures {
	t.Helper()

	repo := mockRepo.NewMockDeviceRepository(t)
	notifier := mockSvc.NewMockNotificationService(t)
	broadcast := mockSvc.NewMockBroadcaster(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	clock := presence.NewActivityClock()
	watches := presence.NewWatchRegistry(0)
	engine := presence.NewEngine(clock, watches, presence.DefaultActivityWindow, presence.DefaultStalenessWindow)

	svc := NewTrackerService(logger, repo, engine, clock, watches, notifier, broadcast, publisher, syncRunner{})
	now := time.Now()
	svc.(*trackerService).now = func() time.Time { return now }

	return trackerFixtures{
		service:   svc,
		repo:      repo,
		notifier:  notifier,
		broadcast: broadcast,
		publisher: publisher,
		clock:     clock,
		watches:   watches,
		now:       now,
	}
}

func TestTrackerService_UpsertLocation_NewDevice(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, "abc").Return(nil, repository.ErrDeviceNotFound)

	var stored *entity.Device
	fx.repo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) { stored = device }).
		Return(nil)
	fx.broadcast.EXPECT().BroadcastState(mock.AnythingOfType("*entity.DeviceState")).Return()
	fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.AnythingOfType("*service.LocationEvent")).Return(nil)

	// Mixed-case ids are canonicalized before any lookup or write.
	state, err := fx.service.UpsertLocation(ctx, &usecase.LocationUpdateInput{
		DeviceID:  "ABC",
		Latitude:  10,
		Longitude: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", stored.DeviceID)
	assert.True(t, stored.RequestedAwake)
	assert.False(t, stored.AlarmActive)
	assert.Equal(t, entity.StatusOnline, state.Status)
	assert.False(t, state.IsWatched)
}

func TestTrackerService_UpsertLocation_PreservesProtectedFlags(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	existing := &entity.Device{
		DeviceID:       "abc",
		Latitude:       1,
		Longitude:      2,
		RequestedAwake: false,
		AlarmActive:    true,
		LastUpdateAt:   fx.now.Add(-time.Hour),
		CreatedAt:      fx.now.Add(-24 * time.Hour),
	}
	fx.repo.EXPECT().FindByID(ctx, "abc").Return(existing, nil)

	var stored *entity.Device
	fx.repo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) { stored = device }).
		Return(nil)
	fx.broadcast.EXPECT().BroadcastState(mock.Anything).Return()
	fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(nil)

	battery := 55.0
	_, err := fx.service.UpsertLocation(ctx, &usecase.LocationUpdateInput{
		DeviceID:  "abc",
		Latitude:  10,
		Longitude: 20,
		Battery:   &battery,
	})
	require.NoError(t, err)

	// Location updates never touch the two protected flags.
	assert.False(t, stored.RequestedAwake)
	assert.True(t, stored.AlarmActive)
	assert.Equal(t, existing.CreatedAt, stored.CreatedAt)
	// Everything else is a full replace; the old display name is gone.
	assert.Nil(t, stored.DisplayName)
	require.NotNil(t, stored.Battery)
	assert.Equal(t, battery, *stored.Battery)
}

func TestTrackerService_UpsertLocation_MissingDeviceID(t *testing.T) {
	fx := createTestTrackerService(t)

	_, err := fx.service.UpsertLocation(context.Background(), &usecase.LocationUpdateInput{
		DeviceID:  "   ",
		Latitude:  10,
		Longitude: 20,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestTrackerService_UpsertLocation_GeofenceFanOut(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, "abc").Return(nil, repository.ErrDeviceNotFound)
	fx.repo.EXPECT().UpsertLocation(ctx, mock.Anything).Return(nil)
	fx.broadcast.EXPECT().BroadcastState(mock.Anything).Return()
	fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(nil)

	tokens := []string{"tok-1", "tok-2"}
	fx.repo.EXPECT().ListPushTokensExcept(mock.Anything, "abc").Return(tokens, nil)

	var sent *service.PushMessage
	fx.notifier.EXPECT().
		SendMulticast(mock.Anything, tokens, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, _ []string, msg *service.PushMessage) { sent = msg }).
		Return(2, 0, nil, nil)

	_, err := fx.service.UpsertLocation(ctx, &usecase.LocationUpdateInput{
		DeviceID:  "abc",
		Latitude:  10,
		Longitude: 20,
		Geofence:  &entity.GeofenceEvent{Name: "home", Transition: "exit", Message: "abc left home"},
	})
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, service.PushTypeGeofenceAlert, sent.Type)
	assert.Equal(t, "GPS Geofence Alarm", sent.Title)
	assert.Equal(t, "abc left home", sent.Body)
	assert.False(t, sent.Silent)
}

func TestTrackerService_UpsertLocation_ImpliedSpeed(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	// Previous fix 100 seconds old, roughly 111 meters south of the new one.
	existing := &entity.Device{
		DeviceID:       "abc",
		Latitude:       10.000,
		Longitude:      20.000,
		RequestedAwake: true,
		LastUpdateAt:   fx.now.Add(-100 * time.Second),
	}
	fx.repo.EXPECT().FindByID(ctx, "abc").Return(existing, nil)

	var stored *entity.Device
	fx.repo.EXPECT().
		UpsertLocation(ctx, mock.Anything).
		Run(func(_ context.Context, device *entity.Device) { stored = device }).
		Return(nil)
	fx.broadcast.EXPECT().BroadcastState(mock.Anything).Return()
	fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.UpsertLocation(ctx, &usecase.LocationUpdateInput{
		DeviceID:  "abc",
		Latitude:  10.001,
		Longitude: 20.000,
	})
	require.NoError(t, err)

	require.NotNil(t, stored.Speed)
	assert.InDelta(t, 1.11, *stored.Speed, 0.05) // ~111m over 100s
}

func TestTrackerService_UpsertLocation_PayloadSpeedWins(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	existing := &entity.Device{DeviceID: "abc", RequestedAwake: true, LastUpdateAt: fx.now.Add(-time.Minute)}
	fx.repo.EXPECT().FindByID(ctx, "abc").Return(existing, nil)

	var stored *entity.Device
	fx.repo.EXPECT().
		UpsertLocation(ctx, mock.Anything).
		Run(func(_ context.Context, device *entity.Device) { stored = device }).
		Return(nil)
	fx.broadcast.EXPECT().BroadcastState(mock.Anything).Return()
	fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(nil)

	speed := 7.5
	_, err := fx.service.UpsertLocation(ctx, &usecase.LocationUpdateInput{
		DeviceID:  "abc",
		Latitude:  10,
		Longitude: 20,
		Speed:     &speed,
	})
	require.NoError(t, err)

	require.NotNil(t, stored.Speed)
	assert.Equal(t, speed, *stored.Speed)
}

func TestTrackerService_GetDevice_NotFound(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrDeviceNotFound)

	_, err := fx.service.GetDevice(ctx, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestTrackerService_GetDevice_StaleFixIsOffline(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	device := &entity.Device{DeviceID: "abc", RequestedAwake: true, LastUpdateAt: fx.now.Add(-10 * time.Minute)}
	fx.repo.EXPECT().FindByID(ctx, "abc").Return(device, nil)

	state, err := fx.service.GetDevice(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOffline, state.Status)
}

func TestTrackerService_ListDevices_TouchesActivityClock(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	devices := []*entity.Device{
		{DeviceID: "abc", RequestedAwake: true, LastUpdateAt: fx.now},
	}
	fx.repo.EXPECT().FindAll(ctx).Return(devices, nil)

	require.True(t, fx.clock.Last().IsZero())

	states, err := fx.service.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, states, 1)

	// The list read itself is the activity signal, so the device is
	// effectively awake in the same response.
	assert.Equal(t, fx.now, fx.clock.Last())
	assert.True(t, states[0].EffectiveAwake)
}

func TestTrackerService_WatchOverridesSleep(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.Watch(ctx, "ABC", "v1"))

	device := &entity.Device{DeviceID: "abc", RequestedAwake: false, LastUpdateAt: fx.now.Add(-time.Hour)}
	fx.repo.EXPECT().FindByID(ctx, "abc").Return(device, nil)

	state, err := fx.service.GetDevice(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, state.IsWatched)
	assert.True(t, state.EffectiveAwake)

	require.NoError(t, fx.service.Unwatch(ctx, "abc", "v1"))
	assert.False(t, fx.watches.IsWatched("abc"))
}

func TestTrackerService_Watch_RequiresWatcherID(t *testing.T) {
	fx := createTestTrackerService(t)

	assert.ErrorIs(t, fx.service.Watch(context.Background(), "abc", ""), domainerrors.ErrInvalidInput)
	assert.ErrorIs(t, fx.service.Unwatch(context.Background(), "abc", ""), domainerrors.ErrInvalidInput)
}

func TestTrackerService_WakeAll(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	fx.repo.EXPECT().SetAllRequestedAwake(ctx, true).Return(nil)

	require.NoError(t, fx.service.WakeAll(ctx))
	assert.Equal(t, fx.now, fx.clock.Last())
}

func TestTrackerService_Sleep_NotFound(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	fx.repo.EXPECT().SetRequestedAwake(ctx, "ghost", false).Return(repository.ErrDeviceNotFound)

	assert.ErrorIs(t, fx.service.Sleep(ctx, "ghost"), domainerrors.ErrDeviceNotFound)
}

func TestTrackerService_Ring_SendsSilentPush(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	token := "tok-abc"
	device := &entity.Device{DeviceID: "abc", PushToken: &token, LastUpdateAt: fx.now}
	fx.repo.EXPECT().FindByID(ctx, "abc").Return(device, nil).Twice()
	fx.repo.EXPECT().SetAlarmActive(ctx, "abc", true).Return(nil).Twice()

	var sent *service.PushMessage
	fx.notifier.EXPECT().
		Send(mock.Anything, token, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, _ string, msg *service.PushMessage) { sent = msg }).
		Return(nil).
		Twice()

	require.NoError(t, fx.service.Ring(ctx, "abc"))

	require.NotNil(t, sent)
	assert.Equal(t, service.PushTypeAlarm, sent.Type)
	assert.True(t, sent.Silent)
	assert.Empty(t, sent.Title)
	assert.Empty(t, sent.Body)

	// Ringing an already-ringing device re-sends the push.
	require.NoError(t, fx.service.Ring(ctx, "abc"))
}

func TestTrackerService_Ring_NoTokenSuppressesPush(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	device := &entity.Device{DeviceID: "abc", LastUpdateAt: fx.now}
	fx.repo.EXPECT().FindByID(ctx, "abc").Return(device, nil)
	fx.repo.EXPECT().SetAlarmActive(ctx, "abc", true).Return(nil)

	require.NoError(t, fx.service.Ring(ctx, "abc"))
	fx.notifier.AssertNotCalled(t, "Send")
}

func TestTrackerService_ResetAlarm(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	token := "tok-abc"
	device := &entity.Device{DeviceID: "abc", PushToken: &token, LastUpdateAt: fx.now}
	fx.repo.EXPECT().FindByID(ctx, "abc").Return(device, nil)
	fx.repo.EXPECT().SetAlarmActive(ctx, "abc", false).Return(nil)

	var sent *service.PushMessage
	fx.notifier.EXPECT().
		Send(mock.Anything, token, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, _ string, msg *service.PushMessage) { sent = msg }).
		Return(nil)

	require.NoError(t, fx.service.ResetAlarm(ctx, "abc"))

	require.NotNil(t, sent)
	assert.Equal(t, service.PushTypeStopAlarm, sent.Type)
	assert.True(t, sent.Silent)
}

func TestTrackerService_PushFailureNeverSurfaces(t *testing.T) {
	fx := createTestTrackerService(t)
	ctx := context.Background()

	token := "tok-abc"
	device := &entity.Device{DeviceID: "abc", PushToken: &token, LastUpdateAt: fx.now}
	fx.repo.EXPECT().FindByID(ctx, "abc").Return(device, nil)
	fx.repo.EXPECT().SetAlarmActive(ctx, "abc", true).Return(nil)
	fx.notifier.EXPECT().
		Send(mock.Anything, token, mock.Anything).
		Return(errors.New("gateway down"))

	// Delivery failures are logged and dropped, never returned.
	assert.NoError(t, fx.service.Ring(ctx, "abc"))
}
