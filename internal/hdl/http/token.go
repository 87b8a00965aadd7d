package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/authcore/internal/auth"
	"github.com/JMURv/authcore/internal/ctrl"
	"github.com/JMURv/authcore/internal/dto"
	"github.com/JMURv/authcore/internal/hdl"
	"github.com/JMURv/authcore/internal/hdl/http/utils"
)

// tokenLogin godoc
//
//	@Summary		Exchange credentials for a token pair
//	@Description	Issues a signed access token and an opaque refresh token
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.EmailAndPasswordRequest	true	"Login credentials"
//	@Success		200		{object}	dto.TokenPair
//	@Failure		401		{object}	utils.ErrorResponse
//	@Router			/auth/token [post]
func (h *Handler) tokenLogin(w http.ResponseWriter, r *http.Request) {
	req := &dto.EmailAndPasswordRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.AuthenticateTokens(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, auth.ErrInvalidCredentials)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// tokenRefresh godoc
//
//	@Summary		Rotate a refresh token
//	@Description	Revokes the presented token and issues a successor pair
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RefreshRequest	true	"Current refresh token"
//	@Success		200		{object}	dto.TokenPair
//	@Failure		401		{object}	utils.ErrorResponse
//	@Router			/auth/token/refresh [post]
func (h *Handler) tokenRefresh(w http.ResponseWriter, r *http.Request) {
	req := &dto.RefreshRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.RotateRefresh(r.Context(), req.Refresh)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken),
			errors.Is(err, auth.ErrTokenRevoked),
			errors.Is(err, auth.ErrTokenExpired),
			errors.Is(err, ctrl.ErrInvalidInput):
			utils.ErrResponse(w, http.StatusUnauthorized, auth.ErrInvalidToken)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}

		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// cleanup godoc
//
//	@Summary		Sweep expired credentials
//	@Description	Deletes expired sessions, refresh tokens and link tokens
//	@Tags			Maintenance
//	@Produce		json
//	@Success		200	{object}	dto.CleanupResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/auth/maintenance/cleanup [post]
func (h *Handler) cleanup(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.Cleanup(r.Context())
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
