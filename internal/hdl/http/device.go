package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/authcore/internal/config"
	"github.com/JMURv/authcore/internal/ctrl"
	"github.com/JMURv/authcore/internal/deviceauth"
	"github.com/JMURv/authcore/internal/dto"
	"github.com/JMURv/authcore/internal/hdl"
	"github.com/JMURv/authcore/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// deviceProofStatus maps proof verification failures onto HTTP codes.
// Everything the verifiers can reject is a 401, malformed input a 400.
func deviceProofStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, deviceauth.ErrSignatureRecovery),
		errors.Is(err, deviceauth.ErrSignatureMismatch),
		errors.Is(err, deviceauth.ErrMalformedAttestation),
		errors.Is(err, deviceauth.ErrUnknownKeyID),
		errors.Is(err, deviceauth.ErrUnexpectedSignMethod),
		errors.Is(err, deviceauth.ErrMissingClaims),
		errors.Is(err, deviceauth.ErrUnknownVerdict),
		errors.Is(err, deviceauth.ErrInsufficientIntegrity):
		return http.StatusUnauthorized, true
	case errors.Is(err, ctrl.ErrInvalidInput):
		return http.StatusBadRequest, true
	default:
		return 0, false
	}
}

// deviceRegister godoc
//
//	@Summary		Register a device with a fresh proof
//	@Description	Verifies the wallet signature or platform attestation, then binds the device and opens a session
//	@Tags			Devices
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RegisterDeviceRequest	true	"Device identity and proof"
//	@Success		201		{object}	dto.DeviceAuthResponse
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		401		{object}	utils.ErrorResponse
//	@Failure		403		{object}	utils.ErrorResponse	"device was revoked"
//	@Failure		409		{object}	utils.ErrorResponse	"account exists, bind while authenticated"
//	@Router			/auth/device/register [post]
func (h *Handler) deviceRegister(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, ErrNoDeviceInfo)
		return
	}

	req := &dto.RegisterDeviceRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	// An existing session turns this into an authenticated binding: the
	// device is attached to the caller's account instead of the claimed
	// email.
	if token := h.cookies.ReadSession(r); token != "" {
		if s := h.ctrl.ValidateSession(r.Context(), token); s != nil && s.User != nil {
			req.AuthUserID = s.User.ID
		}
	}

	res, err := h.ctrl.RegisterDevice(r.Context(), &d, req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrAlreadyExists):
			utils.ErrResponse(w, http.StatusConflict, err)
		case errors.Is(err, ctrl.ErrDeviceRevoked):
			utils.ErrResponse(w, http.StatusForbidden, err)
		default:
			if code, handled := deviceProofStatus(err); handled {
				utils.ErrResponse(w, code, err)
				return
			}

			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}

		return
	}

	h.cookies.SetSession(w, res.SessionID, sessionCookieMaxAge)
	utils.SuccessResponse(w, http.StatusCreated, res)
}

// deviceVerify godoc
//
//	@Summary		Authenticate a registered device
//	@Description	A revoked device is rejected before its proof is examined
//	@Tags			Devices
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.VerifyDeviceRequest	true	"Device identity and proof"
//	@Success		200		{object}	dto.DeviceAuthResponse
//	@Failure		401		{object}	utils.ErrorResponse
//	@Failure		403		{object}	utils.ErrorResponse
//	@Failure		404		{object}	utils.ErrorResponse
//	@Router			/auth/device/verify [post]
func (h *Handler) deviceVerify(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, ErrNoDeviceInfo)
		return
	}

	req := &dto.VerifyDeviceRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.VerifyDevice(r.Context(), &d, req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		case errors.Is(err, ctrl.ErrDeviceRevoked):
			utils.ErrResponse(w, http.StatusForbidden, err)
		default:
			if code, handled := deviceProofStatus(err); handled {
				utils.ErrResponse(w, code, err)
				return
			}

			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}

		return
	}

	h.cookies.SetSession(w, res.SessionID, sessionCookieMaxAge)
	utils.SuccessResponse(w, http.StatusOK, res)
}

// listDevices godoc
//
//	@Summary		List the caller's devices
//	@Description	Most recently used first, never-used devices last
//	@Tags			Devices
//	@Produce		json
//	@Success		200	{array}		models.Device
//	@Failure		401	{object}	utils.ErrorResponse
//	@Router			/auth/devices [get]
func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrFailedToGetUUID)
		return
	}

	res, err := h.ctrl.ListDevices(r.Context(), uid)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// revokeDevice godoc
//
//	@Summary		Revoke one of the caller's devices
//	@Description	One-way transition, the device can no longer authenticate
//	@Tags			Devices
//	@Param			id	path	string	true	"Device ID"
//	@Success		204	"Device revoked"
//	@Failure		404	{object}	utils.ErrorResponse
//	@Router			/auth/devices/{id} [delete]
func (h *Handler) revokeDevice(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrFailedToGetUUID)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	if err = h.ctrl.RevokeDevice(r.Context(), uid, id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}
