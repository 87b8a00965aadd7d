package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type DevicePlatform string

const (
	PlatformWeb3    DevicePlatform = "web3"
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
)

type DeviceStatus string

const (
	DeviceActive  DeviceStatus = "active"
	DeviceRevoked DeviceStatus = "revoked"
)

type Device struct {
	ID           uuid.UUID      `db:"id"            json:"id"`
	DeviceID     string         `db:"device_id"     json:"deviceId"`
	UserID       uuid.UUID      `db:"user_id"       json:"userId"`
	Platform     DevicePlatform `db:"platform"      json:"platform"`
	PublicKey    string         `db:"public_key"    json:"publicKey"`
	KeyAlgorithm string         `db:"key_algorithm" json:"keyAlgorithm"`
	Status       DeviceStatus   `db:"status"        json:"status"`
	RegisteredAt time.Time      `db:"registered_at" json:"registeredAt"`
	LastUsedAt   sql.NullTime   `db:"last_used_at"  json:"lastUsedAt"`
}
