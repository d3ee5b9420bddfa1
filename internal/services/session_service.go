package services

import (
	"context"

	"jobtrack/internal/auth"
	"jobtrack/internal/logger"
	"jobtrack/internal/models"
	"jobtrack/internal/services/dto"
	"jobtrack/internal/store"
	"jobtrack/pkg/apperrors"
)

type SessionService interface {
	Login(ctx context.Context, st *store.Client, req *dto.LoginRequest) (*models.UserAccount, error)
	Register(ctx context.Context, st *store.Client, req *dto.RegisterRequest) (*models.UserAccount, error)
}

type SessionServiceImpl struct{}

func NewSessionService() SessionService {
	return &SessionServiceImpl{}
}

// Login - аутентификация пользователя.
// Учетная запись читается по имени, пароль сравнивается локально
// с bcrypt-хешем. Эндпоинт хранилища с открытым паролем в query
// (GET /users?username&password) сознательно не используется.
func (s *SessionServiceImpl) Login(ctx context.Context, st *store.Client, req *dto.LoginRequest) (*models.UserAccount, error) {
	account, err := st.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, account.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.CtxInfo(ctx, "user logged in", "username", account.Username)
	return account, nil
}

// Register - регистрация нового пользователя.
// Сначала проверка занятости имени; при конфликте дальнейших
// обращений к хранилищу нет. Автологина после регистрации нет.
func (s *SessionServiceImpl) Register(ctx context.Context, st *store.Client, req *dto.RegisterRequest) (*models.UserAccount, error) {
	if len(req.Password) < 6 {
		return nil, apperrors.ErrWeakPassword
	}

	_, err := st.FindUserByUsername(ctx, req.Username)
	if err == nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if !apperrors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := st.CreateUser(ctx, &models.UserAccount{
		Username:     req.Username,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "user registered", "username", created.Username)
	return created, nil
}
