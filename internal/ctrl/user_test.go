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
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testDevice = &dto.DeviceRequest{
	IP: "192.168.1.1",
	UA: "test-user-agent",
}

func TestController_Register(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, hasher, nil, nil, nil)

	testUserID := uuid.New()
	testRequest := &dto.RegisterRequest{
		Email:    "New.User@Example.com",
		Password: "validpassword123!",
		Name:     "New User",
	}

	tests := []struct {
		name    string
		setup   func()
		input   *dto.RegisterRequest
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(
						func(_ context.Context, u *md.User) (uuid.UUID, error) {
							assert.Equal(t, "new.user@example.com", u.Email)
							assert.NotEqual(t, testRequest.Password, u.Password)
							return testUserID, nil
						},
					)
				mockRepo.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			input: testRequest,
		},
		{
			name:    "WeakPassword",
			setup:   func() {},
			input:   &dto.RegisterRequest{Email: "a@b.c", Password: "short"},
			wantErr: true,
			err:     auth.ErrWeakPassword,
		},
		{
			name: "AlreadyExists",
			setup: func() {
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, repo.ErrAlreadyExists)
			},
			input:   testRequest,
			wantErr: true,
			err:     ErrAlreadyExists,
		},
		{
			name: "SessionStoreDown",
			setup: func() {
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(testUserID, nil)
				mockRepo.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			input:   testRequest,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				res, err := ctrl.Register(ctx, testDevice, tt.input)
				if tt.wantErr {
					if tt.err != nil {
						assert.ErrorIs(t, err, tt.err)
					} else {
						assert.Error(t, err)
					}
					assert.Nil(t, res)
					return
				}

				assert.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, testUserID, res.User.ID)
				assert.NotEmpty(t, res.SessionID)
			},
		)
	}
}

func TestController_Authenticate(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, hasher, nil, nil, nil)

	testUserID := uuid.New()
	hash, err := hasher.HashPassword("validpassword123!")
	require.NoError(t, err)

	testUser := &md.User{
		ID:       testUserID,
		Email:    "test@example.com",
		Password: hash,
	}
	testRequest := &dto.EmailAndPasswordRequest{
		Email:    "test@example.com",
		Password: "validpassword123!",
	}

	tests := []struct {
		name    string
		setup   func()
		input   *dto.EmailAndPasswordRequest
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail(gomock.Any(), testRequest.Email).
					Return(testUser, nil)
				mockRepo.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			input: testRequest,
		},
		{
			name: "UnknownAccount",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "nobody@example.com").
					Return(nil, repo.ErrNotFound)
			},
			input:   &dto.EmailAndPasswordRequest{Email: "nobody@example.com", Password: "whatever123!"},
			wantErr: true,
			err:     auth.ErrInvalidCredentials,
		},
		{
			name: "WrongPassword",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail(gomock.Any(), testRequest.Email).
					Return(testUser, nil)
			},
			input:   &dto.EmailAndPasswordRequest{Email: testRequest.Email, Password: "not-the-password"},
			wantErr: true,
			err:     auth.ErrInvalidCredentials,
		},
		{
			name: "PasswordlessAccount",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail(gomock.Any(), testRequest.Email).
					Return(&md.User{ID: testUserID, Email: testRequest.Email}, nil)
			},
			input:   testRequest,
			wantErr: true,
			err:     auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				res, err := ctrl.Authenticate(ctx, testDevice, tt.input)
				if tt.wantErr {
					assert.ErrorIs(t, err, tt.err)
					assert.Nil(t, res)
					return
				}

				assert.NoError(t, err)
				require.NotNil(t, res)
				assert.NotEmpty(t, res.SessionID)
			},
		)
	}
}

func TestController_ValidateSession(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, nil, nil, nil, nil)

	testUserID := uuid.New()
	testUser := &md.User{
		ID:       testUserID,
		Email:    "test@example.com",
		Password: "$2a$10$hash",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			GetSession(gomock.Any(), "live-token").
			Return(&md.Session{ID: "live-token", UserID: testUserID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), testUserID).
			Return(testUser, nil)

		res := ctrl.ValidateSession(ctx, "live-token")
		require.NotNil(t, res.User)
		assert.Equal(t, testUserID, res.User.ID)

		// The projection handed to callers must carry no password
		// material, serialized or otherwise.
		b, err := json.Marshal(res)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "$2a$")
		assert.NotContains(t, string(b), "password")
	})

	t.Run("EmptyToken", func(t *testing.T) {
		res := ctrl.ValidateSession(ctx, "")
		assert.Nil(t, res.User)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		mockRepo.EXPECT().
			GetSession(gomock.Any(), "missing").
			Return(nil, repo.ErrNotFound)

		res := ctrl.ValidateSession(ctx, "missing")
		assert.Nil(t, res.User)
	})

	t.Run("ExpiredSession", func(t *testing.T) {
		mockRepo.EXPECT().
			GetSession(gomock.Any(), "stale").
			Return(&md.Session{ID: "stale", UserID: testUserID, ExpiresAt: time.Now().Add(-time.Minute)}, nil)

		res := ctrl.ValidateSession(ctx, "stale")
		assert.Nil(t, res.User)
	})

	t.Run("StorageDown", func(t *testing.T) {
		mockRepo.EXPECT().
			GetSession(gomock.Any(), "any").
			Return(nil, errors.New("connection refused"))

		res := ctrl.ValidateSession(ctx, "any")
		assert.Nil(t, res.User)
	})
}

func TestController_Logout(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, nil, nil, nil, nil)

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			DeleteSession(gomock.Any(), "token").
			Return(nil)

		assert.NoError(t, ctrl.Logout(ctx, "token"))
	})

	t.Run("EmptyToken", func(t *testing.T) {
		assert.ErrorIs(t, ctrl.Logout(ctx, ""), ErrInvalidInput)
	})

	t.Run("UnknownTokenIsIdempotent", func(t *testing.T) {
		mockRepo.EXPECT().
			DeleteSession(gomock.Any(), "gone").
			Return(nil)

		assert.NoError(t, ctrl.Logout(ctx, "gone"))
	})
}
