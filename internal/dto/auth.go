package dto

import md "github.com/JMURv/authcore/internal/models"

type EmailRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	ReturnTo string `json:"returnTo"`
}

// RequestLinkResponse is intentionally identical for existing and
// non-existing accounts.
type RequestLinkResponse struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
}

type ResetPasswordRequest struct {
	Token string `json:"token"`
	// Password takes precedence over NewPassword when both are present.
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

type ConsumeLinkResult struct {
	User      *md.PublicUser `json:"user"`
	SessionID string         `json:"sessionId"`
	ReturnTo  string         `json:"returnTo"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type CleanupResponse struct {
	Sessions      int64 `json:"sessions"`
	RefreshTokens int64 `json:"refreshTokens"`
	LinkTokens    int64 `json:"linkTokens"`
}
