package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/models"
	mock_service "github.com/DanRulev/ordkort.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newUserServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *UserS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}
	svc := NewUserService(repo, zap.NewNop())
	svc.cost = bcrypt.MinCost
	return svc
}

func TestUserS_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		creds    models.Credentials
		f        func(*mock_service.MockRepositoryI)
		wantCode apperr.Code
	}{
		{
			name:  "stores a bcrypt hash",
			creds: models.Credentials{Username: " anna ", Password: "hemmelig"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().CreateUser(gomock.Any(), "anna", gomock.Any()).
					DoAndReturn(func(_ context.Context, username, hash string) (models.User, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hemmelig")))
						return models.User{ID: 1, Username: username, PasswordHash: hash}, nil
					})
			},
		},
		{
			name:  "username taken",
			creds: models.Credentials{Username: "anna", Password: "hemmelig"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, apperr.ErrDuplicate)
			},
			wantCode: apperr.CodeConflict,
		},
		{
			name:     "missing password",
			creds:    models.Credentials{Username: "anna"},
			f:        func(mri *mock_service.MockRepositoryI) {},
			wantCode: apperr.CodeValidation,
		},
		{
			name:  "store error",
			creds: models.Credentials{Username: "anna", Password: "hemmelig"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("conn reset"))
			},
			wantCode: apperr.CodePersistence,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newUserServiceMock(t, ctrl, tt.f)

			user, err := svc.Register(context.Background(), tt.creds)
			if tt.wantCode != "" {
				assert.True(t, apperr.Is(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "anna", user.Username)
		})
	}
}

func TestUserS_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("hemmelig"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{ID: 1, Username: "anna", PasswordHash: string(hash)}

	tests := []struct {
		name     string
		creds    models.Credentials
		f        func(*mock_service.MockRepositoryI)
		wantCode apperr.Code
	}{
		{
			name:  "valid password",
			creds: models.Credentials{Username: "anna", Password: "hemmelig"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().UserByUsername(gomock.Any(), "anna").Return(stored, nil)
			},
		},
		{
			name:  "wrong password",
			creds: models.Credentials{Username: "anna", Password: "forkert"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().UserByUsername(gomock.Any(), "anna").Return(stored, nil)
			},
			wantCode: apperr.CodeUnauthorized,
		},
		{
			name:  "unknown user",
			creds: models.Credentials{Username: "bo", Password: "hemmelig"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().UserByUsername(gomock.Any(), "bo").Return(models.User{}, apperr.ErrRecordNotFound)
			},
			wantCode: apperr.CodeUnauthorized,
		},
		{
			name:  "telegram user without password",
			creds: models.Credentials{Username: "tg_42", Password: "anything"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().UserByUsername(gomock.Any(), "tg_42").
					Return(models.User{ID: 2, Username: "tg_42", TelegramID: sql.NullInt64{Int64: 42, Valid: true}}, nil)
			},
			wantCode: apperr.CodeUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newUserServiceMock(t, ctrl, tt.f)

			user, err := svc.Login(context.Background(), tt.creds)
			if tt.wantCode != "" {
				assert.True(t, apperr.Is(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), user.ID)
		})
	}
}

func TestUserS_EnsureTelegramUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newUserServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
		mri.EXPECT().EnsureTelegramUser(gomock.Any(), int64(42), "tg_42").Return(models.User{ID: 5, Username: "tg_42"}, nil)
		mri.EXPECT().EnsureTelegramUser(gomock.Any(), int64(43), "tg_43").Return(models.User{}, errors.New("locked"))
	})

	user, err := svc.EnsureTelegramUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)

	_, err = svc.EnsureTelegramUser(context.Background(), 43)
	assert.True(t, apperr.Is(err, apperr.CodePersistence))
}
