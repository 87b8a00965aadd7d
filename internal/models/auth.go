package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID        string    `db:"id"         json:"id"`
	UserID    uuid.UUID `db:"user_id"    json:"userId"`
	IP        string    `db:"ip_address" json:"ipAddress"`
	UA        string    `db:"user_agent" json:"userAgent"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type RefreshToken struct {
	ID         uuid.UUID    `db:"id"           json:"id"`
	UserID     uuid.UUID    `db:"user_id"      json:"userId"`
	TokenHash  string       `db:"token_hash"   json:"-"`
	ExpiresAt  time.Time    `db:"expires_at"   json:"expiresAt"`
	LastUsedAt sql.NullTime `db:"last_used_at" json:"lastUsedAt"`
	Revoked    bool         `db:"revoked"      json:"revoked"`
	CreatedAt  time.Time    `db:"created_at"   json:"createdAt"`
}

type TokenPurpose string

const (
	PurposeMagicLink     TokenPurpose = "magic_link"
	PurposePasswordReset TokenPurpose = "password_reset"
	PurposeVerifyEmail   TokenPurpose = "email_verification"
)

// LinkToken is a single-use, time-boxed token. Its presence in storage is
// the "unused" predicate: consumption deletes the row.
type LinkToken struct {
	Token     string         `db:"token"      json:"-"`
	Purpose   TokenPurpose   `db:"purpose"    json:"purpose"`
	UserID    uuid.UUID      `db:"user_id"    json:"userId"`
	Email     string         `db:"email"      json:"email"`
	ReturnTo  sql.NullString `db:"return_to"  json:"returnTo"`
	ExpiresAt time.Time      `db:"expires_at" json:"expiresAt"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

type OAuthAccount struct {
	Provider   string    `db:"provider"    json:"provider"`
	ExternalID string    `db:"external_id" json:"externalId"`
	UserID     uuid.UUID `db:"user_id"     json:"userId"`
	CreatedAt  time.Time `db:"created_at"  json:"createdAt"`
}
