package http

import (
	mid "github.com/JMURv/authcore/internal/hdl/http/middleware"
)

func (h *Handler) RegisterRoutes() {
	auth := mid.Auth(h.ctrl, h.cookies)

	h.router.With(mid.Device).Post("/auth/register", h.register)
	h.router.With(mid.Device).Post("/auth/login", h.login)
	h.router.Get("/auth/session", h.session)
	h.router.Post("/auth/logout", h.logout)

	h.router.Post("/auth/request-reset", h.requestReset)
	h.router.Post("/auth/request-magic-link", h.requestMagicLink)
	h.router.Post("/auth/reset-password", h.resetPassword)
	h.router.With(mid.Device).Get("/auth/magic-link/verify", h.verifyMagicLink)
	h.router.Get("/auth/verify-email", h.verifyEmail)

	h.router.Get("/auth/oauth/{provider}", h.oauthBegin)
	h.router.With(mid.Device).Get("/auth/callback/{provider}", h.oauthCallback)

	h.router.Post("/auth/token", h.tokenLogin)
	h.router.Post("/auth/token/refresh", h.tokenRefresh)

	h.router.With(mid.Device).Post("/auth/device/register", h.deviceRegister)
	h.router.With(mid.Device).Post("/auth/device/verify", h.deviceVerify)
	h.router.With(auth).Get("/auth/devices", h.listDevices)
	h.router.With(auth).Delete("/auth/devices/{id}", h.revokeDevice)

	h.router.Post("/auth/maintenance/cleanup", h.cleanup)
}
