package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/pkg/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserRI interface {
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	UserByID(ctx context.Context, userID int64) (models.User, error)
	EnsureTelegramUser(ctx context.Context, telegramID int64, username string) (models.User, error)
}

type UserS struct {
	repo UserRI
	cost int
	log  *zap.Logger
}

func NewUserService(repo UserRI, log *zap.Logger) *UserS {
	return &UserS{repo: repo, cost: bcrypt.DefaultCost, log: log}
}

func (u *UserS) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	creds = trimCredentials(creds)
	if err := validator.ValidateStruct(creds); err != nil {
		return models.User{}, apperr.NewValidation("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), u.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.repo.CreateUser(ctx, creds.Username, string(hash))
	if err != nil {
		if errors.Is(err, apperr.ErrDuplicate) {
			return models.User{}, apperr.NewConflict("username already taken")
		}
		u.log.Error("failed to create user", zap.String("username", creds.Username), zap.Error(err))
		return models.User{}, apperr.NewPersistence(err)
	}

	u.log.Info("user registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Login checks the password and returns the user. Unknown users and wrong
// passwords give the same error.
func (u *UserS) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	creds = trimCredentials(creds)
	if creds.Username == "" || creds.Password == "" {
		return models.User{}, apperr.NewValidation("username and password are required")
	}

	user, err := u.repo.UserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			return models.User{}, apperr.NewUnauthorized("invalid credentials")
		}
		return models.User{}, apperr.NewPersistence(err)
	}

	if user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return models.User{}, apperr.NewUnauthorized("invalid credentials")
	}

	return user, nil
}

func (u *UserS) UserByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.repo.UserByID(ctx, userID)
	if err != nil {
		return models.User{}, storeErr(err, "user")
	}
	return user, nil
}

// EnsureTelegramUser maps a Telegram account to a local user.
func (u *UserS) EnsureTelegramUser(ctx context.Context, telegramID int64) (models.User, error) {
	user, err := u.repo.EnsureTelegramUser(ctx, telegramID, fmt.Sprintf("tg_%d", telegramID))
	if err != nil {
		u.log.Error("failed to map telegram user", zap.Int64("telegram_id", telegramID), zap.Error(err))
		return models.User{}, apperr.NewPersistence(err)
	}
	return user, nil
}

func trimCredentials(creds models.Credentials) models.Credentials {
	return models.Credentials{
		Username: strings.TrimSpace(creds.Username),
		Password: strings.TrimSpace(creds.Password),
	}
}
