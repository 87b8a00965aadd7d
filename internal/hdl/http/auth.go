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

// register godoc
//
//	@Summary		Register with email & password
//	@Description	Create an account and open a session
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RegisterRequest	true	"Registration payload"
//	@Success		201		{object}	dto.RegisterResponse
//	@Failure		400		{object}	utils.ErrorResponse	"duplicate email or weak password"
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/auth/register [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, ErrNoDeviceInfo)
		return
	}

	req := &dto.RegisterRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Register(r.Context(), &d, req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) || errors.Is(err, auth.ErrWeakPassword) {
			utils.ErrResponse(w, http.StatusBadRequest, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	h.cookies.SetSession(w, res.SessionID, sessionCookieMaxAge)
	utils.SuccessResponse(w, http.StatusCreated, res)
}

// login godoc
//
//	@Summary		Authenticate using email & password
//	@Description	Verify credentials and open a session
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.EmailAndPasswordRequest	true	"Login credentials"
//	@Success		200		{object}	dto.LoginResponse
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		401		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, ErrNoDeviceInfo)
		return
	}

	req := &dto.EmailAndPasswordRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Authenticate(r.Context(), &d, req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, auth.ErrInvalidCredentials)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	h.cookies.SetSession(w, res.SessionID, sessionCookieMaxAge)
	utils.SuccessResponse(w, http.StatusOK, res)
}

// session godoc
//
//	@Summary		Resolve the current session
//	@Description	Absence of a session is a valid state, never an error
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponse
//	@Router			/auth/session [get]
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	res := h.ctrl.ValidateSession(r.Context(), h.cookies.ReadSession(r))
	utils.SuccessResponse(w, http.StatusOK, res)
}

// logout godoc
//
//	@Summary		Close the current session
//	@Description	Revoke the session and expire its cookie
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Success		200	"Session revoked, cookie cleared"
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	req := &dto.LogoutRequest{}
	_ = utils.ParseBody(r, req)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = h.cookies.ReadSession(r)
	}

	if sessionID != "" {
		if err := h.ctrl.Logout(r.Context(), sessionID); err != nil && !errors.Is(err, ctrl.ErrInvalidInput) {
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
			return
		}
	}

	h.cookies.ClearSession(w)
	utils.StatusResponse(w, http.StatusOK)
}
