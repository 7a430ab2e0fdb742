package model

import (
	"time"

	"github.com/google/uuid"
)

// FamilyMessageModel is the GORM-specific struct for the 'family_messages'
// table, the store-and-forward log of relayed messages.
type FamilyMessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	DeviceID   string    `gorm:"type:varchar(100);not null;index:idx_family_messages_device_read"`
	AccountID  int64     `gorm:"not null"`
	SenderName string    `gorm:"type:varchar(255);not null"`
	Body       string    `gorm:"type:text;not null"`
	SentAt     time.Time `gorm:"not null"`
	Read       bool      `gorm:"not null;default:false;index:idx_family_messages_device_read"`

	Device DeviceModel `gorm:"foreignKey:DeviceID;references:DeviceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FamilyMessageModel) TableName() string {
	return "family_messages"
}
