package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JMURv/authcore/internal/auth"
	"github.com/JMURv/authcore/internal/dto"
	md "github.com/JMURv/authcore/internal/models"
	"github.com/JMURv/authcore/internal/repo"
	"github.com/JMURv/authcore/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestController_GenPair(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, nil, nil, nil, nil)

	testUserID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		var storedHash string
		mockAuth.EXPECT().
			NewAccess(gomock.Any(), testUserID, "test@example.com").
			Return("signed-access", nil)
		mockRepo.EXPECT().
			CreateRefreshToken(gomock.Any(), gomock.Any()).
			DoAndReturn(
				func(_ context.Context, rt *md.RefreshToken) error {
					storedHash = rt.TokenHash
					assert.Equal(t, testUserID, rt.UserID)
					assert.False(t, rt.Revoked)
					return nil
				},
			)

		pair, err := ctrl.GenPair(ctx, testUserID, "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, "signed-access", pair.Access)
		assert.NotEmpty(t, pair.Refresh)

		// Only the hash reaches storage, never the raw token.
		assert.NotEqual(t, pair.Refresh, storedHash)
		assert.Equal(t, auth.HashToken(pair.Refresh), storedHash)
	})

	t.Run("SignerDown", func(t *testing.T) {
		mockAuth.EXPECT().
			NewAccess(gomock.Any(), testUserID, "test@example.com").
			Return("", errors.New("bad key"))

		pair, err := ctrl.GenPair(ctx, testUserID, "test@example.com")
		assert.Error(t, err)
		assert.Nil(t, pair)
	})
}

func TestController_AuthenticateTokens(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, hasher, nil, nil, nil)

	testUserID := uuid.New()
	hash, err := hasher.HashPassword("validpassword123!")
	require.NoError(t, err)

	testUser := &md.User{ID: testUserID, Email: "test@example.com", Password: hash}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByEmail(gomock.Any(), testUser.Email).
			Return(testUser, nil)
		mockAuth.EXPECT().
			NewAccess(gomock.Any(), testUserID, testUser.Email).
			Return("signed-access", nil)
		mockRepo.EXPECT().
			CreateRefreshToken(gomock.Any(), gomock.Any()).
			Return(nil)

		pair, err := ctrl.AuthenticateTokens(
			ctx, &dto.EmailAndPasswordRequest{Email: testUser.Email, Password: "validpassword123!"},
		)
		require.NoError(t, err)
		assert.Equal(t, "signed-access", pair.Access)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByEmail(gomock.Any(), testUser.Email).
			Return(testUser, nil)

		pair, err := ctrl.AuthenticateTokens(
			ctx, &dto.EmailAndPasswordRequest{Email: testUser.Email, Password: "nope"},
		)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, pair)
	})
}

func TestController_RotateRefresh(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, nil, nil, nil, nil)

	testUserID := uuid.New()
	tokenID := uuid.New()
	testUser := &md.User{ID: testUserID, Email: "test@example.com"}

	liveToken := func() *md.RefreshToken {
		return &md.RefreshToken{
			ID:        tokenID,
			UserID:    testUserID,
			TokenHash: auth.HashToken("raw-refresh"),
			ExpiresAt: time.Now().Add(time.Hour),
		}
	}

	tests := []struct {
		name    string
		setup   func()
		input   string
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetRefreshTokenByHash(gomock.Any(), auth.HashToken("raw-refresh")).
					Return(liveToken(), nil)
				mockRepo.EXPECT().
					RevokeRefreshToken(gomock.Any(), tokenID).
					Return(true, nil)
				mockRepo.EXPECT().
					TouchRefreshToken(gomock.Any(), tokenID, gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testUserID).
					Return(testUser, nil)
				mockAuth.EXPECT().
					NewAccess(gomock.Any(), testUserID, testUser.Email).
					Return("next-access", nil)
				mockRepo.EXPECT().
					CreateRefreshToken(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			input: "raw-refresh",
		},
		{
			name:    "EmptyToken",
			setup:   func() {},
			input:   "",
			wantErr: true,
			err:     ErrInvalidInput,
		},
		{
			name: "UnknownToken",
			setup: func() {
				mockRepo.EXPECT().
					GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
					Return(nil, repo.ErrNotFound)
			},
			input:   "unknown",
			wantErr: true,
			err:     auth.ErrInvalidToken,
		},
		{
			name: "AlreadyRevoked",
			setup: func() {
				tok := liveToken()
				tok.Revoked = true
				mockRepo.EXPECT().
					GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
					Return(tok, nil)
			},
			input:   "raw-refresh",
			wantErr: true,
			err:     auth.ErrTokenRevoked,
		},
		{
			name: "Expired",
			setup: func() {
				tok := liveToken()
				tok.ExpiresAt = time.Now().Add(-time.Minute)
				mockRepo.EXPECT().
					GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
					Return(tok, nil)
			},
			input:   "raw-refresh",
			wantErr: true,
			err:     auth.ErrTokenExpired,
		},
		{
			name: "LostConcurrentRotation",
			setup: func() {
				mockRepo.EXPECT().
					GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
					Return(liveToken(), nil)
				mockRepo.EXPECT().
					RevokeRefreshToken(gomock.Any(), tokenID).
					Return(false, nil)
			},
			input:   "raw-refresh",
			wantErr: true,
			err:     auth.ErrTokenRevoked,
		},
		{
			name: "SuccessorInsertFails",
			setup: func() {
				mockRepo.EXPECT().
					GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
					Return(liveToken(), nil)
				mockRepo.EXPECT().
					RevokeRefreshToken(gomock.Any(), tokenID).
					Return(true, nil)
				mockRepo.EXPECT().
					TouchRefreshToken(gomock.Any(), tokenID, gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testUserID).
					Return(testUser, nil)
				mockAuth.EXPECT().
					NewAccess(gomock.Any(), testUserID, testUser.Email).
					Return("next-access", nil)
				mockRepo.EXPECT().
					CreateRefreshToken(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			input:   "raw-refresh",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				pair, err := ctrl.RotateRefresh(ctx, tt.input)
				if tt.wantErr {
					if tt.err != nil {
						assert.ErrorIs(t, err, tt.err)
					} else {
						assert.Error(t, err)
					}
					assert.Nil(t, pair)
					return
				}

				require.NoError(t, err)
				assert.Equal(t, "next-access", pair.Access)
				assert.NotEqual(t, "raw-refresh", pair.Refresh)
			},
		)
	}
}

func TestController_Cleanup(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, nil, nil, nil, nil)

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().DeleteExpiredSessions(gomock.Any()).Return(int64(3), nil)
		mockRepo.EXPECT().DeleteExpiredRefreshTokens(gomock.Any()).Return(int64(2), nil)
		mockRepo.EXPECT().DeleteExpiredLinkTokens(gomock.Any()).Return(int64(1), nil)

		res, err := ctrl.Cleanup(ctx)
		require.NoError(t, err)
		assert.Equal(t, &dto.CleanupResponse{Sessions: 3, RefreshTokens: 2, LinkTokens: 1}, res)
	})

	t.Run("SweepFails", func(t *testing.T) {
		mockRepo.EXPECT().DeleteExpiredSessions(gomock.Any()).Return(int64(0), errors.New("connection refused"))

		res, err := ctrl.Cleanup(ctx)
		assert.Error(t, err)
		assert.Nil(t, res)
	})
}
