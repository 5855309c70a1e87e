// Package impl contains the concrete usecase services.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fleettrack/internal/domain/entity"
	domainerrors "fleettrack/internal/domain/errors"
	"fleettrack/internal/domain/repository"
	"fleettrack/internal/domain/service"
	"fleettrack/internal/errors"
	"fleettrack/internal/presence"
	"fleettrack/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// geofencePushTitle matches the notification title the mobile clients
	// already display for boundary crossings.
	geofencePushTitle = "GPS Geofence Alarm"

	// maxImpliedSpeedGap bounds how old the previous fix may be before a
	// derived speed estimate is considered meaningless.
	maxImpliedSpeedGap = 5 * time.Minute
)

type trackerService struct {
	logger    *slog.Logger
	repo      repository.DeviceRepository
	engine    *presence.Engine
	clock     *presence.ActivityClock
	watches   *presence.WatchRegistry
	notifier  service.NotificationService
	broadcast service.Broadcaster
	publisher service.EventPublisher
	runner    service.TaskRunner
	now       func() time.Time
}

// NewTrackerService creates the device registry service.
func NewTrackerService(
	logger *slog.Logger,
	repo repository.DeviceRepository,
	engine *presence.Engine,
	clock *presence.ActivityClock,
	watches *presence.WatchRegistry,
	notifier service.NotificationService,
	broadcast service.Broadcaster,
	publisher service.EventPublisher,
	runner service.TaskRunner,
) usecase.TrackerUsecase {
	return &trackerService{
		logger:    logger,
		repo:      repo,
		engine:    engine,
		clock:     clock,
		watches:   watches,
		notifier:  notifier,
		broadcast: broadcast,
		publisher: publisher,
		runner:    runner,
		now:       time.Now,
	}
}

// UpsertLocation accepts a location fix. The stored row is replaced wholesale
// except for requestedAwake and alarmActive, which only the explicit wake,
// sleep, ring and reset operations may write.
func (s *trackerService) UpsertLocation(ctx context.Context, input *usecase.LocationUpdateInput) (*entity.DeviceState, error) {
	deviceID := entity.CanonicalDeviceID(input.DeviceID)
	if deviceID == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	prev, err := s.repo.FindByID(ctx, deviceID)
	if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, fmt.Errorf("failed to read existing device: %w", err)
	}

	now := s.now()
	device := &entity.Device{
		DeviceID:     deviceID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Speed:        input.Speed,
		Accuracy:     input.Accuracy,
		Battery:      input.Battery,
		DisplayName:  input.DisplayName,
		PushToken:    input.PushToken,
		LastUpdateAt: now,
		CreatedAt:    now,
		// Defaults for a first contact; an existing row keeps its stored
		// flags through the conflict clause of the upsert.
		RequestedAwake: true,
		AlarmActive:    false,
	}
	if prev != nil {
		device.RequestedAwake = prev.RequestedAwake
		device.AlarmActive = prev.AlarmActive
		device.CreatedAt = prev.CreatedAt
		if input.Speed == nil {
			device.Speed = impliedSpeed(prev, device, now)
		}
	}

	if err := s.repo.UpsertLocation(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to upsert location: %w", err)
	}

	state := s.engine.Derive(device)

	// Fan-out. The hub send is non-blocking by construction; push and
	// downstream publish run off the request path and never fail the caller.
	s.broadcast.BroadcastState(state)
	s.publishLocationEvent(state, input.Geofence)
	if input.Geofence != nil {
		s.pushGeofenceAlert(deviceID, input.Geofence)
	}

	return state, nil
}

// GetDevice returns one device joined with derived presence state.
func (s *trackerService) GetDevice(ctx context.Context, deviceID string) (*entity.DeviceState, error) {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	return s.engine.Derive(device), nil
}

// ListDevices returns the whole fleet joined with derived state. The read
// itself is the activity signal: every fleet-list request marks the map as
// being looked at.
func (s *trackerService) ListDevices(ctx context.Context) ([]*entity.DeviceState, error) {
	s.clock.Touch(s.now())

	devices, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return s.engine.DeriveAll(devices), nil
}

// WakeAll sets requestedAwake for every record and refreshes the activity
// clock; the call doubles as the app-foreground signal.
func (s *trackerService) WakeAll(ctx context.Context) error {
	if err := s.repo.SetAllRequestedAwake(ctx, true); err != nil {
		return fmt.Errorf("failed to wake fleet: %w", err)
	}
	s.clock.Touch(s.now())

	return nil
}

// Sleep clears requestedAwake for one device.
func (s *trackerService) Sleep(ctx context.Context, deviceID string) error {
	deviceID = entity.CanonicalDeviceID(deviceID)
	if err := s.repo.SetRequestedAwake(ctx, deviceID, false); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return fmt.Errorf("failed to set requested awake: %w", err)
	}

	return nil
}

// Watch registers a viewer on a device. The edge may race ahead of the
// device's first fix, so an unknown id is not an error.
func (s *trackerService) Watch(_ context.Context, deviceID, watcherID string) error {
	if watcherID == "" {
		return domainerrors.ErrInvalidInput
	}
	s.watches.Watch(entity.CanonicalDeviceID(deviceID), watcherID)

	return nil
}

// Unwatch removes a viewer's observation. Idempotent.
func (s *trackerService) Unwatch(_ context.Context, deviceID, watcherID string) error {
	if watcherID == "" {
		return domainerrors.ErrInvalidInput
	}
	s.watches.Unwatch(entity.CanonicalDeviceID(deviceID), watcherID)

	return nil
}

// Ring moves the device's alarm to ringing and pushes a silent alarm message
// to it. Ringing an already-ringing device re-sends the push.
func (s *trackerService) Ring(ctx context.Context, deviceID string) error {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return err
	}
	if err := s.repo.SetAlarmActive(ctx, device.DeviceID, true); err != nil {
		return fmt.Errorf("failed to set alarm flag: %w", err)
	}

	s.pushToDevice(device, &service.PushMessage{Type: service.PushTypeAlarm, Silent: true})

	return nil
}

// ResetAlarm moves the alarm back to silent and pushes a silent stop message
// so a sounding device stops without waiting for its next poll.
func (s *trackerService) ResetAlarm(ctx context.Context, deviceID string) error {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return err
	}
	if err := s.repo.SetAlarmActive(ctx, device.DeviceID, false); err != nil {
		return fmt.Errorf("failed to clear alarm flag: %w", err)
	}

	s.pushToDevice(device, &service.PushMessage{Type: service.PushTypeStopAlarm, Silent: true})

	return nil
}

func (s *trackerService) findDevice(ctx context.Context, deviceID string) (*entity.Device, error) {
	device, err := s.repo.FindByID(ctx, entity.CanonicalDeviceID(deviceID))
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find device: %w", err)
	}

	return device, nil
}

// pushToDevice fires a best-effort push to the device's stored token. A
// missing token silently suppresses delivery.
func (s *trackerService) pushToDevice(device *entity.Device, msg *service.PushMessage) {
	if s.notifier == nil {
		return
	}
	if device.PushToken == nil || *device.PushToken == "" {
		return
	}
	token := *device.PushToken
	deviceID := device.DeviceID

	s.runner.Run("push:"+msg.Type, func(ctx context.Context) {
		if err := s.notifier.Send(ctx, token, msg); err != nil {
			s.logger.Warn("push delivery failed",
				slog.String("deviceId", deviceID),
				slog.String("type", msg.Type),
				slog.Any("error", err),
			)
		}
	})
}

// pushGeofenceAlert notifies every other registered device about a boundary
// crossing reported by the sender.
func (s *trackerService) pushGeofenceAlert(senderID string, event *entity.GeofenceEvent) {
	if s.notifier == nil {
		return
	}
	body := event.Message
	if body == "" {
		body = fmt.Sprintf("%s: %s", event.Name, event.Transition)
	}
	msg := &service.PushMessage{
		Type:  service.PushTypeGeofenceAlert,
		Title: geofencePushTitle,
		Body:  body,
	}

	s.runner.Run("push:geofence", func(ctx context.Context) {
		tokens, err := s.repo.ListPushTokensExcept(ctx, senderID)
		if err != nil {
			s.logger.Warn("geofence fan-out token lookup failed",
				slog.String("sender", senderID),
				slog.Any("error", err),
			)

			return
		}
		if len(tokens) == 0 {
			return
		}

		_, failed, invalid, err := s.notifier.SendMulticast(ctx, tokens, msg)
		if err != nil {
			s.logger.Warn("geofence fan-out failed",
				slog.String("sender", senderID),
				slog.Any("error", err),
			)

			return
		}
		if failed > 0 {
			s.logger.Warn("geofence fan-out partially failed",
				slog.String("sender", senderID),
				slog.Int("failed", failed),
				slog.Int("invalidTokens", len(invalid)),
			)
		}
	})
}

// publishLocationEvent feeds the accepted update to the optional downstream
// publisher.
func (s *trackerService) publishLocationEvent(state *entity.DeviceState, geofence *entity.GeofenceEvent) {
	event := &service.LocationEvent{
		DeviceID:   state.DeviceID,
		Latitude:   state.Latitude,
		Longitude:  state.Longitude,
		Speed:      state.Speed,
		Battery:    state.Battery,
		Status:     state.Status,
		ReceivedAt: state.LastUpdateAt,
	}
	if geofence != nil {
		event.GeofenceName = geofence.Name
	}

	s.runner.Run("publish:location", func(ctx context.Context) {
		if err := s.publisher.PublishLocationEvent(ctx, event); err != nil {
			s.logger.Warn("location event publish failed",
				slog.String("deviceId", event.DeviceID),
				slog.Any("error", err),
			)
		}
	})
}

// impliedSpeed estimates speed from the distance to the previous fix when the
// incoming payload carries none. A payload-supplied speed always wins.
func impliedSpeed(prev, next *entity.Device, now time.Time) *float64 {
	elapsed := now.Sub(prev.LastUpdateAt)
	if elapsed <= 0 || elapsed > maxImpliedSpeedGap {
		return nil
	}

	meters := geo.DistanceHaversine(
		orb.Point{prev.Longitude, prev.Latitude},
		orb.Point{next.Longitude, next.Latitude},
	)
	speed := meters / elapsed.Seconds()

	return &speed
}
