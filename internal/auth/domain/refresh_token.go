package domain

import "time"

// RefreshToken is a per-device session record. The opaque token value
// is the primary key; at most one live record exists per
// (user_id, device_key) pair since rotation replaces in place.
type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	DeviceKey string    `json:"device_key" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}
