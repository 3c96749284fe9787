package models

import (
	"time"
)

// DeviceToken stores an FCM registration token used for push notifications.
type DeviceToken struct {
	DeviceTokenID uint      `gorm:"primaryKey" json:"device_token_id"`
	Token         string    `gorm:"type:varchar(255);not null;index" json:"token"`
	RegisteredAt  time.Time `gorm:"not null" json:"registered_at"`
}
