package model

import (
	"time"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents one companion client installation.
type DeviceModel struct {
	DeviceID        string `gorm:"type:varchar(100);primary_key"`
	DeviceCode      string `gorm:"type:varchar(16);not null;uniqueIndex"`
	FCMToken        string `gorm:"type:varchar(255)"`
	LastConnectedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
