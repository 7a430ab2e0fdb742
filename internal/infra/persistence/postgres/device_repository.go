package postgres

import (
	"context"

	"github.com/ogarmar/Compa/internal/domain/entity"
	domainerrors "github.com/ogarmar/Compa/internal/domain/errors"
	"github.com/ogarmar/Compa/internal/domain/repository"
	"github.com/ogarmar/Compa/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
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

// UpsertDevice creates the device on first contact or refreshes its code,
// FCM token and last-connected timestamp on reconnect.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	var existing model.DeviceModel
	err := repo.db.WithContext(ctx).
		Where("device_id = ?", device.DeviceID).
		First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if createErr := repo.db.WithContext(ctx).Create(deviceM).Error; createErr != nil {
			if isUniqueConstraintViolation(createErr) {
				// Either a concurrent first contact on the same device_id or
				// a code collision; the caller re-issues the code and retries.
				return repository.ErrDeviceCodeTaken
			}
			if isNotNullConstraintViolation(createErr) {
				return domainerrors.NewDatabaseExecuteError(createErr, "missing required device information")
			}

			return domainerrors.NewDatabaseExecuteError(createErr, "failed to create device")
		}
	case err != nil:
		return errors.Wrap(err, "failed to find device for upsert")
	default:
		updates := map[string]any{
			"device_code":       deviceM.DeviceCode,
			"last_connected_at": deviceM.LastConnectedAt,
		}
		if deviceM.FCMToken != "" {
			updates["fcm_token"] = deviceM.FCMToken
		}
		if updateErr := repo.db.WithContext(ctx).
			Model(&model.DeviceModel{}).
			Where("device_id = ?", device.DeviceID).
			Updates(updates).Error; updateErr != nil {
			if isUniqueConstraintViolation(updateErr) {
				return repository.ErrDeviceCodeTaken
			}

			return errors.Wrap(updateErr, "failed to update device")
		}
		deviceM.CreatedAt = existing.CreatedAt
		if deviceM.FCMToken == "" {
			deviceM.FCMToken = existing.FCMToken
		}
	}

	// Update the entity with persisted values
	device.FCMToken = deviceM.FCMToken
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its stable identifier.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, deviceID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	err := withReadRetry(func() error {
		return repo.db.WithContext(ctx).
			Where("device_id = ?", deviceID).
			First(&deviceM).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDeviceByCode retrieves a device by its short pairing code.
func (repo *deviceRepository) FindDeviceByCode(ctx context.Context, deviceCode string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	err := withReadRetry(func() error {
		return repo.db.WithContext(ctx).
			Where("device_code = ?", deviceCode).
			First(&deviceM).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by code")
	}

	return toDeviceDomain(&deviceM), nil
}

// ListDeviceCodes returns every code currently issued, for collision checks.
func (repo *deviceRepository) ListDeviceCodes(ctx context.Context) ([]string, error) {
	var codes []string

	err := withReadRetry(func() error {
		return repo.db.WithContext(ctx).
			Model(&model.DeviceModel{}).
			Pluck("device_code", &codes).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device codes")
	}

	return codes, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		DeviceID:        data.DeviceID,
		DeviceCode:      data.DeviceCode,
		FCMToken:        data.FCMToken,
		LastConnectedAt: data.LastConnectedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		DeviceID:        data.DeviceID,
		DeviceCode:      data.DeviceCode,
		FCMToken:        data.FCMToken,
		LastConnectedAt: data.LastConnectedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
