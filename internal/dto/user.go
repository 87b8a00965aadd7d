package dto

import (
	md "github.com/JMURv/authcore/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

type RegisterResponse struct {
	User      *md.PublicUser `json:"user"`
	SessionID string         `json:"sessionId"`
}

type EmailAndPasswordRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	SessionID string `json:"sessionId"`
}

type SessionResponse struct {
	User *md.PublicUser `json:"user"`
}

type LogoutRequest struct {
	SessionID string `json:"sessionId"`
}
