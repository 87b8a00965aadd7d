package ctrl

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/JMURv/authcore/internal/deviceauth"
	"github.com/JMURv/authcore/internal/dto"
	md "github.com/JMURv/authcore/internal/models"
	"github.com/JMURv/authcore/internal/repo"
	"github.com/JMURv/authcore/tests/mocks"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_RegisterDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockAttest := mocks.NewMockAttestationVerifier(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, nil, nil, mockAttest, nil)

	testUserID := uuid.New()
	deviceID := uuid.New()
	testUser := &md.User{ID: testUserID, Email: "wallet@example.com"}

	t.Run("AndroidSuccess", func(t *testing.T) {
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformAndroid, "pixel-8").
			Return(nil, repo.ErrNotFound)
		mockAttest.EXPECT().
			Verify("attestation-jws").
			Return(&deviceauth.IntegrityClaims{}, nil)
		mockRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "wallet@example.com").
			Return(nil, repo.ErrNotFound)
		mockRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(testUserID, nil)
		mockRepo.EXPECT().
			UpsertDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(
				func(_ context.Context, d *md.Device) (uuid.UUID, error) {
					assert.Equal(t, md.PlatformAndroid, d.Platform)
					assert.Equal(t, "es256", d.KeyAlgorithm)
					assert.Equal(t, md.DeviceActive, d.Status)
					return deviceID, nil
				},
			)
		mockRepo.EXPECT().
			TouchDevice(gomock.Any(), deviceID, gomock.Any()).
			Return(nil)
		mockRepo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := ctrl.RegisterDevice(
			ctx, testDevice, &dto.RegisterDeviceRequest{
				DeviceID:  "pixel-8",
				Platform:  "android",
				PublicKey: "base64-key",
				Assertion: "attestation-jws",
				Email:     "wallet@example.com",
			},
		)
		require.NoError(t, err)
		assert.Equal(t, deviceID, res.Device.ID)
		assert.NotEmpty(t, res.SessionID)
	})

	t.Run("AndroidRejectedProof", func(t *testing.T) {
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformAndroid, "pixel-8").
			Return(nil, repo.ErrNotFound)
		mockAttest.EXPECT().
			Verify("bad-jws").
			Return(nil, deviceauth.ErrInsufficientIntegrity)

		_, err := ctrl.RegisterDevice(
			ctx, testDevice, &dto.RegisterDeviceRequest{
				DeviceID:  "pixel-8",
				Platform:  "android",
				PublicKey: "base64-key",
				Assertion: "bad-jws",
				Email:     "wallet@example.com",
			},
		)
		assert.ErrorIs(t, err, deviceauth.ErrInsufficientIntegrity)
	})

	t.Run("CreatesUserOnFirstContact", func(t *testing.T) {
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformIOS, "iphone-15").
			Return(nil, repo.ErrNotFound)
		mockAttest.EXPECT().
			Verify("attestation-jws").
			Return(&deviceauth.IntegrityClaims{}, nil)
		mockRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "fresh@example.com").
			Return(nil, repo.ErrNotFound)
		mockRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(
				func(_ context.Context, u *md.User) (uuid.UUID, error) {
					assert.Equal(t, "fresh@example.com", u.Email)
					assert.Empty(t, u.Password)
					return testUserID, nil
				},
			)
		mockRepo.EXPECT().
			UpsertDevice(gomock.Any(), gomock.Any()).
			Return(deviceID, nil)
		mockRepo.EXPECT().
			TouchDevice(gomock.Any(), deviceID, gomock.Any()).
			Return(nil)
		mockRepo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := ctrl.RegisterDevice(
			ctx, testDevice, &dto.RegisterDeviceRequest{
				DeviceID:  "iphone-15",
				Platform:  "ios",
				PublicKey: "base64-key",
				Assertion: "attestation-jws",
				Email:     "Fresh@Example.com",
			},
		)
		require.NoError(t, err)
		assert.Equal(t, testUserID, res.User.ID)
	})

	// A valid proof of the caller's own key must never bind a device to
	// somebody else's account: the email is claimed, not proven.
	t.Run("ExistingAccountNeedsSession", func(t *testing.T) {
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformAndroid, "pixel-8").
			Return(nil, repo.ErrNotFound)
		mockAttest.EXPECT().
			Verify("attestation-jws").
			Return(&deviceauth.IntegrityClaims{}, nil)
		mockRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "victim@example.com").
			Return(&md.User{ID: uuid.New(), Email: "victim@example.com"}, nil)

		_, err := ctrl.RegisterDevice(
			ctx, testDevice, &dto.RegisterDeviceRequest{
				DeviceID:  "pixel-8",
				Platform:  "android",
				PublicKey: "base64-key",
				Assertion: "attestation-jws",
				Email:     "Victim@Example.com",
			},
		)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("AuthenticatedBindsToCaller", func(t *testing.T) {
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformAndroid, "pixel-8").
			Return(nil, repo.ErrNotFound)
		mockAttest.EXPECT().
			Verify("attestation-jws").
			Return(&deviceauth.IntegrityClaims{}, nil)
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), testUserID).
			Return(testUser, nil)
		mockRepo.EXPECT().
			UpsertDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(
				func(_ context.Context, d *md.Device) (uuid.UUID, error) {
					assert.Equal(t, testUserID, d.UserID)
					return deviceID, nil
				},
			)
		mockRepo.EXPECT().
			TouchDevice(gomock.Any(), deviceID, gomock.Any()).
			Return(nil)
		mockRepo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := ctrl.RegisterDevice(
			ctx, testDevice, &dto.RegisterDeviceRequest{
				DeviceID:   "pixel-8",
				Platform:   "android",
				PublicKey:  "base64-key",
				Assertion:  "attestation-jws",
				Email:      "wallet@example.com",
				AuthUserID: testUserID,
			},
		)
		require.NoError(t, err)
		assert.Equal(t, testUserID, res.User.ID)
	})

	t.Run("RevokedDeviceStaysDead", func(t *testing.T) {
		// No attestation expectation: revocation wins before the proof.
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformAndroid, "pixel-8").
			Return(
				&md.Device{
					ID:       deviceID,
					DeviceID: "pixel-8",
					UserID:   testUserID,
					Platform: md.PlatformAndroid,
					Status:   md.DeviceRevoked,
				}, nil,
			)

		_, err := ctrl.RegisterDevice(
			ctx, testDevice, &dto.RegisterDeviceRequest{
				DeviceID:  "pixel-8",
				Platform:  "android",
				PublicKey: "attacker-key",
				Assertion: "attestation-jws",
				Email:     "wallet@example.com",
			},
		)
		assert.ErrorIs(t, err, ErrDeviceRevoked)
	})

	t.Run("UnknownPlatform", func(t *testing.T) {
		_, err := ctrl.RegisterDevice(
			ctx, testDevice, &dto.RegisterDeviceRequest{
				DeviceID:  "toaster",
				Platform:  "smart-fridge",
				PublicKey: "key",
				Email:     "wallet@example.com",
			},
		)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestController_VerifyDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockAttest := mocks.NewMockAttestationVerifier(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, nil, nil, mockAttest, nil)

	testUserID := uuid.New()
	deviceID := uuid.New()
	testUser := &md.User{ID: testUserID, Email: "wallet@example.com"}

	activeDevice := func() *md.Device {
		return &md.Device{
			ID:        deviceID,
			DeviceID:  "pixel-8",
			UserID:    testUserID,
			Platform:  md.PlatformAndroid,
			PublicKey: "base64-key",
			Status:    md.DeviceActive,
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformAndroid, "pixel-8").
			Return(activeDevice(), nil)
		mockAttest.EXPECT().
			Verify("attestation-jws").
			Return(&deviceauth.IntegrityClaims{}, nil)
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), testUserID).
			Return(testUser, nil)
		mockRepo.EXPECT().
			TouchDevice(gomock.Any(), deviceID, gomock.Any()).
			Return(nil)
		mockRepo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := ctrl.VerifyDevice(
			ctx, testDevice, &dto.VerifyDeviceRequest{
				DeviceID:  "pixel-8",
				Platform:  "android",
				Assertion: "attestation-jws",
			},
		)
		require.NoError(t, err)
		assert.NotEmpty(t, res.SessionID)
	})

	t.Run("UnknownDevice", func(t *testing.T) {
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformAndroid, "ghost").
			Return(nil, repo.ErrNotFound)

		_, err := ctrl.VerifyDevice(
			ctx, testDevice, &dto.VerifyDeviceRequest{DeviceID: "ghost", Platform: "android"},
		)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("RevokedBeforeProofExamined", func(t *testing.T) {
		revoked := activeDevice()
		revoked.Status = md.DeviceRevoked

		// No attestation expectation: the proof must never be looked at.
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformAndroid, "pixel-8").
			Return(revoked, nil)

		_, err := ctrl.VerifyDevice(
			ctx, testDevice, &dto.VerifyDeviceRequest{
				DeviceID:  "pixel-8",
				Platform:  "android",
				Assertion: "attestation-jws",
			},
		)
		assert.ErrorIs(t, err, ErrDeviceRevoked)
	})
}

func TestController_RevokeDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, nil, nil, nil, nil)

	uid := uuid.New()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			RevokeDevice(gomock.Any(), uid, id).
			Return(nil)

		assert.NoError(t, ctrl.RevokeDevice(ctx, uid, id))
	})

	t.Run("NotOwnedOrMissing", func(t *testing.T) {
		mockRepo.EXPECT().
			RevokeDevice(gomock.Any(), uid, id).
			Return(repo.ErrNotFound)

		assert.ErrorIs(t, ctrl.RevokeDevice(ctx, uid, id), ErrNotFound)
	})
}

func TestController_RegisterDeviceWallet(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, nil, nil, nil, nil)

	testUserID := uuid.New()
	deviceID := uuid.New()

	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	message := "register device " + time.Now().Format(time.RFC3339)
	compact := secpecdsa.SignCompact(priv, deviceauth.HashPersonalMessage([]byte(message)), false)
	sig := make([]byte, 65)
	copy(sig[:64], compact[1:])
	sig[64] = compact[0]
	signature := "0x" + hex.EncodeToString(sig)

	address, err := deviceauth.RecoverAddress([]byte(message), signature)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformWeb3, "metamask").
			Return(nil, repo.ErrNotFound)
		mockRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "wallet@example.com").
			Return(nil, repo.ErrNotFound)
		mockRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(testUserID, nil)
		mockRepo.EXPECT().
			UpsertDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(
				func(_ context.Context, d *md.Device) (uuid.UUID, error) {
					assert.Equal(t, md.PlatformWeb3, d.Platform)
					assert.Equal(t, "secp256k1", d.KeyAlgorithm)
					return deviceID, nil
				},
			)
		mockRepo.EXPECT().
			TouchDevice(gomock.Any(), deviceID, gomock.Any()).
			Return(nil)
		mockRepo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := ctrl.RegisterDevice(
			ctx, testDevice, &dto.RegisterDeviceRequest{
				DeviceID:  "metamask",
				Platform:  "web3",
				PublicKey: address,
				Message:   message,
				Signature: signature,
				Email:     "wallet@example.com",
			},
		)
		require.NoError(t, err)
		assert.NotEmpty(t, res.SessionID)
	})

	t.Run("SignatureMismatch", func(t *testing.T) {
		mockRepo.EXPECT().
			GetDevice(gomock.Any(), md.PlatformWeb3, "metamask").
			Return(nil, repo.ErrNotFound)

		_, err := ctrl.RegisterDevice(
			ctx, testDevice, &dto.RegisterDeviceRequest{
				DeviceID:  "metamask",
				Platform:  "web3",
				PublicKey: "0x0000000000000000000000000000000000000000",
				Message:   message,
				Signature: signature,
				Email:     "wallet@example.com",
			},
		)
		assert.ErrorIs(t, err, deviceauth.ErrSignatureMismatch)
	})
}
