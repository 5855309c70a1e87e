// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"fleettrack/internal/domain/entity"
	"fleettrack/internal/domain/repository"
	"fleettrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertLocation creates or replaces a device row in a single statement.
// The conflict clause deliberately excludes requested_awake and alarm_active:
// two racing updates may clobber each other's position, but neither can undo
// a completed sleep/wake or ring/reset write.
func (repo *deviceRepository) UpsertLocation(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"latitude", "longitude", "speed", "accuracy", "battery",
				"display_name", "push_token", "last_update_at",
			}),
		}).
		Create(deviceM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert device location")
	}

	return nil
}

// FindByID retrieves a device by its canonical id.
func (repo *deviceRepository) FindByID(ctx context.Context, deviceID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by id")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindAll retrieves every known device, most recently updated first.
func (repo *deviceRepository) FindAll(ctx context.Context) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Order("last_update_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// SetRequestedAwake writes the persisted awake flag for one device.
func (repo *deviceRepository) SetRequestedAwake(ctx context.Context, deviceID string, awake bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Update("requested_awake", awake)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update requested_awake")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// SetAllRequestedAwake writes the persisted awake flag for every device.
// An empty fleet is a success no-op.
func (repo *deviceRepository) SetAllRequestedAwake(ctx context.Context, awake bool) error {
	err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("requested_awake <> ?", awake).
		Update("requested_awake", awake).Error
	if err != nil {
		return errors.Wrap(err, "failed to update requested_awake for fleet")
	}

	return nil
}

// SetAlarmActive writes the alarm flag for one device.
func (repo *deviceRepository) SetAlarmActive(ctx context.Context, deviceID string, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Update("alarm_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update alarm_active")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// ListPushTokensExcept returns every stored push token except the given
// device's own.
func (repo *deviceRepository) ListPushTokensExcept(ctx context.Context, deviceID string) ([]string, error) {
	var tokens []string

	err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id <> ? AND push_token IS NOT NULL AND push_token <> ''", deviceID).
		Pluck("push_token", &tokens).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list push tokens")
	}

	return tokens, nil
}

// DeleteStale removes every device whose last update is older than the cutoff.
func (repo *deviceRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("last_update_at < ?", cutoff).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete stale devices")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		DeviceID:       data.DeviceID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Speed:          data.Speed,
		Accuracy:       data.Accuracy,
		Battery:        data.Battery,
		DisplayName:    data.DisplayName,
		PushToken:      data.PushToken,
		RequestedAwake: data.RequestedAwake,
		AlarmActive:    data.AlarmActive,
		LastUpdateAt:   data.LastUpdateAt,
		CreatedAt:      data.CreatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		DeviceID:       data.DeviceID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Speed:          data.Speed,
		Accuracy:       data.Accuracy,
		Battery:        data.Battery,
		DisplayName:    data.DisplayName,
		PushToken:      data.PushToken,
		RequestedAwake: data.RequestedAwake,
		AlarmActive:    data.AlarmActive,
		LastUpdateAt:   data.LastUpdateAt,
		CreatedAt:      data.CreatedAt,
	}
}
