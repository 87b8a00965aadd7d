package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/authcore/internal/config"
	"github.com/JMURv/authcore/internal/ctrl"
	"github.com/JMURv/authcore/internal/deviceauth"
	"github.com/JMURv/authcore/internal/dto"
	md "github.com/JMURv/authcore/internal/models"
	"github.com/JMURv/authcore/tests/mocks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func withUID(r *http.Request, uid uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), config.UidKey, uid))
}

func TestHandler_DeviceRegister(t *testing.T) {
	const uri = "/auth/device/register"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	h := New(mctrl, testConf(), nil)

	payload := map[string]any{
		"deviceId":  "pixel-8",
		"platform":  "android",
		"publicKey": "base64-key",
		"assertion": "attestation-jws",
		"email":     "example@mail.com",
	}

	t.Run("NoDeviceInfo", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.deviceRegister(w, httptest.NewRequest(http.MethodPost, uri, jsonBody(t, payload)))
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("UnsupportedPlatform", func(t *testing.T) {
		bad := map[string]any{
			"deviceId":  "toaster",
			"platform":  "smart-fridge",
			"publicKey": "key",
			"email":     "example@mail.com",
		}

		w := httptest.NewRecorder()
		h.deviceRegister(w, withDevice(httptest.NewRequest(http.MethodPost, uri, jsonBody(t, bad))))
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("RejectedProof", func(t *testing.T) {
		mctrl.EXPECT().
			RegisterDevice(gomock.Any(), &testDeviceReq, gomock.Any()).
			Return(nil, deviceauth.ErrInsufficientIntegrity)

		w := httptest.NewRecorder()
		h.deviceRegister(w, withDevice(httptest.NewRequest(http.MethodPost, uri, jsonBody(t, payload))))

		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
		assert.Equal(t, deviceauth.ErrInsufficientIntegrity.Error(), decodeErr(t, w).Error)
	})

	t.Run("SignatureMismatch", func(t *testing.T) {
		mctrl.EXPECT().
			RegisterDevice(gomock.Any(), &testDeviceReq, gomock.Any()).
			Return(nil, deviceauth.ErrSignatureMismatch)

		w := httptest.NewRecorder()
		h.deviceRegister(w, withDevice(httptest.NewRequest(http.MethodPost, uri, jsonBody(t, payload))))

		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})

	t.Run("StorageDown", func(t *testing.T) {
		mctrl.EXPECT().
			RegisterDevice(gomock.Any(), &testDeviceReq, gomock.Any()).
			Return(nil, errors.New("testErr"))

		w := httptest.NewRecorder()
		h.deviceRegister(w, withDevice(httptest.NewRequest(http.MethodPost, uri, jsonBody(t, payload))))

		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})

	t.Run("ExistingAccountConflict", func(t *testing.T) {
		mctrl.EXPECT().
			RegisterDevice(gomock.Any(), &testDeviceReq, gomock.Any()).
			Return(nil, ctrl.ErrAlreadyExists)

		w := httptest.NewRecorder()
		h.deviceRegister(w, withDevice(httptest.NewRequest(http.MethodPost, uri, jsonBody(t, payload))))

		assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
		assert.Nil(t, sessionCookie(w))
	})

	t.Run("RevokedDevice", func(t *testing.T) {
		mctrl.EXPECT().
			RegisterDevice(gomock.Any(), &testDeviceReq, gomock.Any()).
			Return(nil, ctrl.ErrDeviceRevoked)

		w := httptest.NewRecorder()
		h.deviceRegister(w, withDevice(httptest.NewRequest(http.MethodPost, uri, jsonBody(t, payload))))

		assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
	})

	// With a session cookie the handler resolves the caller and the
	// controller binds the device to that account, not the body email.
	t.Run("AuthenticatedBinding", func(t *testing.T) {
		uid := uuid.New()
		mctrl.EXPECT().
			ValidateSession(gomock.Any(), "sid-1").
			Return(&dto.SessionResponse{User: &md.PublicUser{ID: uid}})
		mctrl.EXPECT().
			RegisterDevice(
				gomock.Any(), &testDeviceReq, &dto.RegisterDeviceRequest{
					DeviceID:   "pixel-8",
					Platform:   "android",
					PublicKey:  "base64-key",
					Assertion:  "attestation-jws",
					Email:      "example@mail.com",
					AuthUserID: uid,
				},
			).
			Return(
				&dto.DeviceAuthResponse{
					User:      &md.PublicUser{ID: uid},
					Device:    &md.Device{ID: uuid.New()},
					SessionID: "sid-2",
				}, nil,
			)

		req := httptest.NewRequest(http.MethodPost, uri, jsonBody(t, payload))
		req.AddCookie(&http.Cookie{Name: "session", Value: "sid-1"})

		w := httptest.NewRecorder()
		h.deviceRegister(w, withDevice(req))

		assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		deviceID := uuid.New()
		mctrl.EXPECT().
			RegisterDevice(
				gomock.Any(), &testDeviceReq, &dto.RegisterDeviceRequest{
					DeviceID:  "pixel-8",
					Platform:  "android",
					PublicKey: "base64-key",
					Assertion: "attestation-jws",
					Email:     "example@mail.com",
				},
			).
			Return(
				&dto.DeviceAuthResponse{
					User:      &md.PublicUser{ID: uuid.New()},
					Device:    &md.Device{ID: deviceID, Status: md.DeviceActive},
					SessionID: "sid-1",
				}, nil,
			)

		w := httptest.NewRecorder()
		h.deviceRegister(w, withDevice(httptest.NewRequest(http.MethodPost, uri, jsonBody(t, payload))))

		assert.Equal(t, http.StatusCreated, w.Result().StatusCode)

		c := sessionCookie(w)
		require.NotNil(t, c)
		assert.Equal(t, "sid-1", c.Value)

		res := &dto.DeviceAuthResponse{}
		require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
		assert.Equal(t, deviceID, res.Device.ID)
	})
}

func TestHandler_DeviceVerify(t *testing.T) {
	const uri = "/auth/device/verify"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	h := New(mctrl, testConf(), nil)

	payload := map[string]any{
		"deviceId":  "pixel-8",
		"platform":  "android",
		"assertion": "attestation-jws",
	}

	tests := []struct {
		name   string
		status int
		retErr error
	}{
		{name: "UnknownDevice", status: http.StatusNotFound, retErr: ctrl.ErrNotFound},
		{name: "Revoked", status: http.StatusForbidden, retErr: ctrl.ErrDeviceRevoked},
		{name: "BadProof", status: http.StatusUnauthorized, retErr: deviceauth.ErrMalformedAttestation},
		{name: "StorageDown", status: http.StatusInternalServerError, retErr: errors.New("testErr")},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				mctrl.EXPECT().
					VerifyDevice(gomock.Any(), &testDeviceReq, gomock.Any()).
					Return(nil, tt.retErr)

				w := httptest.NewRecorder()
				h.deviceVerify(w, withDevice(httptest.NewRequest(http.MethodPost, uri, jsonBody(t, payload))))
				assert.Equal(t, tt.status, w.Result().StatusCode)
			},
		)
	}

	t.Run("Success", func(t *testing.T) {
		mctrl.EXPECT().
			VerifyDevice(
				gomock.Any(), &testDeviceReq, &dto.VerifyDeviceRequest{
					DeviceID:  "pixel-8",
					Platform:  "android",
					Assertion: "attestation-jws",
				},
			).
			Return(
				&dto.DeviceAuthResponse{
					User:      &md.PublicUser{ID: uuid.New()},
					Device:    &md.Device{ID: uuid.New()},
					SessionID: "sid-2",
				}, nil,
			)

		w := httptest.NewRecorder()
		h.deviceVerify(w, withDevice(httptest.NewRequest(http.MethodPost, uri, jsonBody(t, payload))))

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)

		c := sessionCookie(w)
		require.NotNil(t, c)
		assert.Equal(t, "sid-2", c.Value)
	})
}

func TestHandler_ListDevices(t *testing.T) {
	const uri = "/auth/devices"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	h := New(mctrl, testConf(), nil)

	uid := uuid.New()

	t.Run("NoUID", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.listDevices(w, httptest.NewRequest(http.MethodGet, uri, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		mctrl.EXPECT().
			ListDevices(gomock.Any(), uid).
			Return(
				[]*md.Device{
					{ID: uuid.New(), DeviceID: "metamask", Platform: md.PlatformWeb3},
					{ID: uuid.New(), DeviceID: "pixel-8", Platform: md.PlatformAndroid},
				}, nil,
			)

		w := httptest.NewRecorder()
		h.listDevices(w, withUID(httptest.NewRequest(http.MethodGet, uri, nil), uid))

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)

		var res []*md.Device
		require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&res))
		require.Len(t, res, 2)
		assert.Equal(t, "metamask", res[0].DeviceID)
	})

	t.Run("StorageDown", func(t *testing.T) {
		mctrl.EXPECT().
			ListDevices(gomock.Any(), uid).
			Return(nil, errors.New("testErr"))

		w := httptest.NewRecorder()
		h.listDevices(w, withUID(httptest.NewRequest(http.MethodGet, uri, nil), uid))
		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}

func TestHandler_RevokeDevice(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	h := New(mctrl, testConf(), nil)

	uid := uuid.New()
	id := uuid.New()
	uri := "/auth/devices/" + id.String()

	t.Run("NoUID", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodDelete, uri, nil), "id", id.String())
		w := httptest.NewRecorder()
		h.revokeDevice(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})

	t.Run("BadID", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/auth/devices/not-a-uuid", nil), "id", "not-a-uuid")
		w := httptest.NewRecorder()
		h.revokeDevice(w, withUID(req, uid))
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("NotOwnedOrMissing", func(t *testing.T) {
		mctrl.EXPECT().
			RevokeDevice(gomock.Any(), uid, id).
			Return(ctrl.ErrNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, uri, nil), "id", id.String())
		w := httptest.NewRecorder()
		h.revokeDevice(w, withUID(req, uid))
		assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		mctrl.EXPECT().
			RevokeDevice(gomock.Any(), uid, id).
			Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, uri, nil), "id", id.String())
		w := httptest.NewRecorder()
		h.revokeDevice(w, withUID(req, uid))
		assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
	})
}
