package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionModel is the GORM-specific struct for the 'connections' table,
// the many-to-many join between chat accounts and devices.
//
// Two composite unique indexes arbitrate concurrent pairing attempts: an
// account pairs with a device at most once, and an account's alias points at
// most one device. Alias is nullable; Postgres unique indexes admit any
// number of NULL rows, so unnamed pairings never collide.
type ConnectionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID int64     `gorm:"not null;uniqueIndex:uniq_connections_account_device;uniqueIndex:uniq_connections_account_alias"`
	DeviceID  string    `gorm:"type:varchar(100);not null;uniqueIndex:uniq_connections_account_device"`
	Alias     *string   `gorm:"type:varchar(64);uniqueIndex:uniq_connections_account_alias"`
	CreatedAt time.Time

	Device DeviceModel `gorm:"foreignKey:DeviceID;references:DeviceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ConnectionModel) TableName() string {
	return "connections"
}
