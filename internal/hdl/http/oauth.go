package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/authcore/internal/dto"
	"github.com/JMURv/authcore/internal/hdl"
	"github.com/JMURv/authcore/internal/hdl/http/utils"
	"github.com/JMURv/authcore/internal/oauth"
	chi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// oauthBegin godoc
//
//	@Summary		Start an OAuth login
//	@Description	Sets the CSRF state (and PKCE) cookies and redirects to the provider
//	@Tags			OAuth
//	@Param			provider	path	string	true	"Provider name"
//	@Success		302			"Redirect to the provider"
//	@Failure		404			{object}	utils.ErrorResponse
//	@Router			/auth/oauth/{provider} [get]
func (h *Handler) oauthBegin(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.BeginOAuth(r.Context(), chi.URLParam(r, "provider"))
	if err != nil {
		if errors.Is(err, oauth.ErrUnknownProvider) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	h.cookies.SetOAuthState(w, res.State, res.Verifier)
	http.Redirect(w, r, res.URL, http.StatusFound)
}

// oauthCallback godoc
//
//	@Summary		Complete an OAuth login
//	@Description	Validates state, exchanges the code and opens a session
//	@Tags			OAuth
//	@Param			provider	path	string	true	"Provider name"
//	@Param			code		query	string	false	"Authorization code"
//	@Param			state		query	string	false	"CSRF state"
//	@Success		302			"Redirect to the application with session cookie"
//	@Failure		400			{object}	utils.ErrorResponse
//	@Router			/auth/callback/{provider} [get]
func (h *Handler) oauthCallback(w http.ResponseWriter, r *http.Request) {
	const op = "oauth.callback.hdl"

	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, ErrNoDeviceInfo)
		return
	}

	q := r.URL.Query()
	req := &dto.OAuthCallbackRequest{
		Provider:      chi.URLParam(r, "provider"),
		Code:          q.Get("code"),
		State:         q.Get("state"),
		ProviderError: q.Get("error"),
	}
	req.CookieState, req.Verifier = h.cookies.ReadOAuthState(r)

	// The one-shot state cookies are gone after this request no matter
	// how it ends.
	h.cookies.ClearOAuthState(w)

	res, err := h.ctrl.CompleteOAuth(r.Context(), &d, req)
	if err != nil {
		if errors.Is(err, oauth.ErrUnknownProvider) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		zap.L().Info("oauth callback rejected", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	h.cookies.SetSession(w, res.SessionID, sessionCookieMaxAge)
	http.Redirect(w, r, h.appURL, http.StatusFound)
}
