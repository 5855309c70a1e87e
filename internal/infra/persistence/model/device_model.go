package model

import (
	"time"
)

// DeviceModel is the GORM-specific struct for the 'devices' table. One row
// per device id; the id is stored in canonical lowercase form and is the
// primary key.
type DeviceModel struct {
	DeviceID       string    `gorm:"type:varchar(255);primary_key"`
	Latitude       float64   `gorm:"not null"`
	Longitude      float64   `gorm:"not null"`
	Speed          *float64  `gorm:"type:double precision"`
	Accuracy       *float64  `gorm:"type:double precision"`
	Battery        *float64  `gorm:"type:double precision"`
	DisplayName    *string   `gorm:"type:varchar(255)"`
	PushToken      *string   `gorm:"type:varchar(512)"`
	RequestedAwake bool      `gorm:"not null;default:true"`
	AlarmActive    bool      `gorm:"not null;default:false"`
	LastUpdateAt   time.Time `gorm:"not null;index"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
