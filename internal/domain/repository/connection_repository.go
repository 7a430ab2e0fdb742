package repository

import (
	"context"

	"github.com/ogarmar/Compa/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for connection persistence.
var (
	// ErrConnectionNotFound is returned when no pairing row matches.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrDuplicateConnection is returned when the (account, device) pair is already connected.
	ErrDuplicateConnection = errors.New("connection already exists")
	// ErrAliasInUse is returned when the account already uses the alias for another device.
	ErrAliasInUse = errors.New("alias already in use")
)

// ConnectionRepository defines the interface for pairing-related database operations.
type ConnectionRepository interface {
	// CreateConnection persists a newly approved pairing.
	// Returns ErrDuplicateConnection when the pair already exists.
	CreateConnection(ctx context.Context, connection *entity.Connection) error

	// FindConnection retrieves the pairing for an (account, device) pair.
	FindConnection(ctx context.Context, accountID int64, deviceID string) (*entity.Connection, error)

	// ResolveAlias retrieves the pairing an account has labeled with alias.
	ResolveAlias(ctx context.Context, accountID int64, alias string) (*entity.Connection, error)

	// UpdateAlias sets or renames the alias of an existing pairing.
	// Returns ErrConnectionNotFound when the pair is not connected and
	// ErrAliasInUse when the account already uses the alias elsewhere.
	UpdateAlias(ctx context.Context, accountID int64, deviceID string, alias string) (*entity.Connection, error)

	// DeleteConnectionByAlias removes the pairing an account addresses by alias.
	// Returns ErrConnectionNotFound when nothing matched.
	DeleteConnectionByAlias(ctx context.Context, accountID int64, alias string) error

	// FindConnectionsByDevice retrieves every account paired with a device.
	FindConnectionsByDevice(ctx context.Context, deviceID string) ([]*entity.Connection, error)
}
