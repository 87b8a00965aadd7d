package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/JMURv/authcore/internal/auth"
	"github.com/JMURv/authcore/internal/ctrl"
	"github.com/JMURv/authcore/internal/dto"
	"github.com/JMURv/authcore/internal/hdl"
	"github.com/JMURv/authcore/internal/hdl/http/utils"
	"github.com/JMURv/authcore/internal/hdl/validation"
	"github.com/JMURv/authcore/internal/ratelimit"
)

// throttle applies the recovery-endpoint rate limit keyed by client IP.
// It writes the 429 itself and reports whether the caller may proceed.
func (h *Handler) throttle(w http.ResponseWriter, r *http.Request, bucket string) bool {
	err := h.limiter.Allow(r.Context(), bucket+":"+r.RemoteAddr)
	if err == nil {
		return true
	}

	var rlErr *ratelimit.Error
	if errors.As(err, &rlErr) {
		w.Header().Set("Retry-After", rlErr.RetryAfter.Round(time.Second).String())
	}

	utils.ErrResponse(w, http.StatusTooManyRequests, err)
	return false
}

// requestLink backs both recovery endpoints; op selects the token purpose
// behind an identical request/response shape.
func (h *Handler) requestLink(
	w http.ResponseWriter,
	r *http.Request,
	bucket string,
	issue func(*dto.EmailRequest) (*dto.RequestLinkResponse, error),
) {
	if !h.throttle(w, r, bucket) {
		return
	}

	req := &dto.EmailRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := issue(req)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// requestMagicLink godoc
//
//	@Summary		Request a sign-in link
//	@Description	Responds with success whether or not the account exists
//	@Tags			MagicLink
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.EmailRequest	true	"Target email"
//	@Success		200		{object}	dto.RequestLinkResponse
//	@Failure		429		{object}	utils.ErrorResponse
//	@Router			/auth/request-magic-link [post]
func (h *Handler) requestMagicLink(w http.ResponseWriter, r *http.Request) {
	h.requestLink(
		w, r, "magic-link", func(req *dto.EmailRequest) (*dto.RequestLinkResponse, error) {
			return h.ctrl.RequestMagicLink(r.Context(), req)
		},
	)
}

// requestReset godoc
//
//	@Summary		Request a password-reset token
//	@Description	Responds with success whether or not the account exists
//	@Tags			MagicLink
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.EmailRequest	true	"Target email"
//	@Success		200		{object}	dto.RequestLinkResponse
//	@Failure		429		{object}	utils.ErrorResponse
//	@Router			/auth/request-reset [post]
func (h *Handler) requestReset(w http.ResponseWriter, r *http.Request) {
	h.requestLink(
		w, r, "reset", func(req *dto.EmailRequest) (*dto.RequestLinkResponse, error) {
			return h.ctrl.RequestPasswordReset(r.Context(), req)
		},
	)
}

// resetPassword godoc
//
//	@Summary		Reset password with a one-time token
//	@Description	Accepts password or newPassword, password takes precedence
//	@Tags			MagicLink
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.ResetPasswordRequest	true	"Token and new password"
//	@Success		200		"Password replaced, all sessions revoked"
//	@Failure		400		{object}	utils.ErrorResponse	"MISSING_FIELDS | INVALID_TOKEN | TOKEN_EXPIRED"
//	@Router			/auth/reset-password [post]
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	req := &dto.ResetPasswordRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	password := req.Password
	if password == "" {
		password = req.NewPassword
	}

	if req.Token == "" || password == "" {
		utils.ErrCodeResponse(w, http.StatusBadRequest, validation.CodeMissingFields, validation.ErrMissingFields)
		return
	}

	if err := h.ctrl.ResetPassword(r.Context(), req.Token, password); err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			utils.ErrCodeResponse(w, http.StatusBadRequest, validation.CodeTokenExpired, err)
		case errors.Is(err, ctrl.ErrInvalidOrExpired), errors.Is(err, ctrl.ErrNotFound), errors.Is(err, ctrl.ErrInvalidInput):
			utils.ErrCodeResponse(w, http.StatusBadRequest, validation.CodeInvalidToken, ctrl.ErrInvalidOrExpired)
		case errors.Is(err, auth.ErrWeakPassword):
			utils.ErrResponse(w, http.StatusBadRequest, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}

		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// verifyMagicLink godoc
//
//	@Summary		Consume a sign-in link
//	@Description	Single use: the token is gone after this call either way
//	@Tags			MagicLink
//	@Produce		json
//	@Param			token	query	string	true	"Link token"
//	@Success		302		"Redirect with session cookie set"
//	@Failure		400		{object}	utils.ErrorResponse
//	@Router			/auth/magic-link/verify [get]
func (h *Handler) verifyMagicLink(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, ErrNoDeviceInfo)
		return
	}

	token := r.URL.Query().Get("token")
	res, err := h.ctrl.ConsumeMagicLink(r.Context(), token, &d)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrInvalidInput):
			utils.ErrCodeResponse(w, http.StatusBadRequest, validation.CodeMissingFields, ErrMissingToken)
		case errors.Is(err, auth.ErrTokenExpired):
			utils.ErrCodeResponse(w, http.StatusBadRequest, validation.CodeTokenExpired, err)
		case errors.Is(err, ctrl.ErrInvalidOrExpired), errors.Is(err, ctrl.ErrNotFound):
			utils.ErrCodeResponse(w, http.StatusBadRequest, validation.CodeInvalidToken, ctrl.ErrInvalidOrExpired)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}

		return
	}

	h.cookies.SetSession(w, res.SessionID, sessionCookieMaxAge)

	target := res.ReturnTo
	if target == "" {
		target = h.appURL
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// verifyEmail godoc
//
//	@Summary		Consume an email-verification token
//	@Tags			MagicLink
//	@Param			token	query	string	true	"Verification token"
//	@Success		302		"Redirect to the application"
//	@Failure		400		{object}	utils.ErrorResponse
//	@Router			/auth/verify-email [get]
func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	returnTo, err := h.ctrl.VerifyEmail(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrInvalidInput):
			utils.ErrCodeResponse(w, http.StatusBadRequest, validation.CodeMissingFields, ErrMissingToken)
		case errors.Is(err, auth.ErrTokenExpired):
			utils.ErrCodeResponse(w, http.StatusBadRequest, validation.CodeTokenExpired, err)
		case errors.Is(err, ctrl.ErrInvalidOrExpired), errors.Is(err, ctrl.ErrNotFound):
			utils.ErrCodeResponse(w, http.StatusBadRequest, validation.CodeInvalidToken, ctrl.ErrInvalidOrExpired)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}

		return
	}

	if returnTo == "" {
		returnTo = h.appURL
	}

	http.Redirect(w, r, returnTo, http.StatusFound)
}
