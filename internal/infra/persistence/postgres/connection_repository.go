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

// connectionRepository implements the repository.ConnectionRepository interface.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// CreateConnection persists a newly approved pairing. Connections are created
// without an alias, so the only constraint that can fire here is the
// (account, device) pair; the database is the arbiter of concurrent approvals.
func (repo *connectionRepository) CreateConnection(ctx context.Context, connection *entity.Connection) error {
	connectionM := fromConnectionDomain(connection)

	if err := repo.db.WithContext(ctx).Create(connectionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateConnection
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid device reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required connection information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create connection")
	}

	connection.CreatedAt = connectionM.CreatedAt

	return nil
}

// FindConnection retrieves the pairing for an (account, device) pair.
func (repo *connectionRepository) FindConnection(ctx context.Context, accountID int64, deviceID string) (*entity.Connection, error) {
	var connectionM model.ConnectionModel

	err := withReadRetry(func() error {
		return repo.db.WithContext(ctx).
			Where("account_id = ? AND device_id = ?", accountID, deviceID).
			First(&connectionM).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection")
	}

	return toConnectionDomain(&connectionM), nil
}

// ResolveAlias retrieves the pairing an account has labeled with alias.
func (repo *connectionRepository) ResolveAlias(ctx context.Context, accountID int64, alias string) (*entity.Connection, error) {
	var connectionM model.ConnectionModel

	err := withReadRetry(func() error {
		return repo.db.WithContext(ctx).
			Where("account_id = ? AND alias = ?", accountID, alias).
			First(&connectionM).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve alias")
	}

	return toConnectionDomain(&connectionM), nil
}

// UpdateAlias sets or renames the alias of an existing pairing. The
// (account, alias) unique index rejects reuse across devices.
func (repo *connectionRepository) UpdateAlias(ctx context.Context, accountID int64, deviceID string, alias string) (*entity.Connection, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Where("account_id = ? AND device_id = ?", accountID, deviceID).
		Update("alias", alias)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrAliasInUse
		}

		return nil, errors.Wrap(result.Error, "failed to update alias")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrConnectionNotFound
	}

	return repo.FindConnection(ctx, accountID, deviceID)
}

// DeleteConnectionByAlias removes the pairing an account addresses by alias.
func (repo *connectionRepository) DeleteConnectionByAlias(ctx context.Context, accountID int64, alias string) error {
	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND alias = ?", accountID, alias).
		Delete(&model.ConnectionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete connection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// FindConnectionsByDevice retrieves every account paired with a device.
func (repo *connectionRepository) FindConnectionsByDevice(ctx context.Context, deviceID string) ([]*entity.Connection, error) {
	var connectionModels []*model.ConnectionModel

	err := withReadRetry(func() error {
		return repo.db.WithContext(ctx).
			Where("device_id = ?", deviceID).
			Order("created_at ASC").
			Find(&connectionModels).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find connections by device")
	}

	connections := make([]*entity.Connection, 0, len(connectionModels))
	for _, connectionM := range connectionModels {
		connections = append(connections, toConnectionDomain(connectionM))
	}

	return connections, nil
}

// --- Mapper Functions ---

// toConnectionDomain converts a GORM ConnectionModel to a domain Connection entity.
func toConnectionDomain(data *model.ConnectionModel) *entity.Connection {
	if data == nil {
		return nil
	}

	alias := ""
	if data.Alias != nil {
		alias = *data.Alias
	}

	return &entity.Connection{
		ID:        data.ID,
		AccountID: data.AccountID,
		DeviceID:  data.DeviceID,
		Alias:     alias,
		CreatedAt: data.CreatedAt,
	}
}

// fromConnectionDomain converts a domain Connection entity to a GORM ConnectionModel.
func fromConnectionDomain(data *entity.Connection) *model.ConnectionModel {
	if data == nil {
		return nil
	}

	var alias *string
	if data.Alias != "" {
		alias = &data.Alias
	}

	return &model.ConnectionModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		DeviceID:  data.DeviceID,
		Alias:     alias,
		CreatedAt: data.CreatedAt,
	}
}
