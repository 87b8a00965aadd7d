package utils

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/JMURv/authcore/internal/config"
	"github.com/JMURv/authcore/internal/dto"
	"github.com/JMURv/authcore/internal/hdl/validation"
	"github.com/goccy/go-json"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
		},
	)
}

func ErrCodeResponse(w http.ResponseWriter, statusCode int, code string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
			Code:  code,
		},
	)
}

// ParseAndValidate decodes the JSON body into dest and runs its validate
// tags, writing the machine-coded 400 itself when anything is off.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		if errors.Is(err, http.ErrBodyReadAfterClose) {
			ErrCodeResponse(w, http.StatusBadRequest, validation.CodeBodyConsumed, validation.ErrBodyConsumed)
			return false
		}

		ErrCodeResponse(w, http.StatusBadRequest, validation.CodeInvalidJSON, validation.ErrInvalidJSON)
		return false
	}

	if len(body) == 0 {
		ErrCodeResponse(w, http.StatusBadRequest, validation.CodeEmptyBody, validation.ErrEmptyBody)
		return false
	}

	if err = json.Unmarshal(body, dest); err != nil {
		ErrCodeResponse(w, http.StatusBadRequest, validation.CodeInvalidJSON, validation.ErrInvalidJSON)
		return false
	}

	if err = validation.Struct(dest); err != nil {
		ErrCodeResponse(w, http.StatusBadRequest, validation.CodeMissingFields, err)
		return false
	}

	return true
}

// ParseBody decodes the JSON body into dest without validation. Used
// where an empty or absent body is acceptable.
func ParseBody(r *http.Request, dest any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		return validation.ErrEmptyBody
	}

	return json.Unmarshal(body, dest)
}

// ParseDeviceByRequest reads the client info captured by the Device
// middleware out of the request context.
func ParseDeviceByRequest(ctx context.Context) (dto.DeviceRequest, bool) {
	ip, okIP := ctx.Value(config.IpKey).(string)
	ua, okUA := ctx.Value(config.UaKey).(string)
	if !okIP || !okUA {
		return dto.DeviceRequest{}, false
	}

	return dto.DeviceRequest{IP: ip, UA: ua}, true
}
