package service

import (
	"context"
	"errors"
	"fmt"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/repository"
	"lapakpedia/internal/app/marketplace/util"
)

// AuthService обрабатывает бизнес-логику аутентификации
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *util.JWTManager
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, jwtManager *util.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Login проверяет пару идентификатор+пароль и выдает подписанный токен.
// Идентификатором служит username, а при его отсутствии email.
// Неизвестный пользователь и неверный пароль различаются в ответе.
func (s *AuthService) Login(ctx context.Context, req *entity.LoginRequest) (string, error) {
	var (
		user *entity.User
		err  error
	)

	if req.Username != "" {
		user, err = s.userRepo.GetByUsername(ctx, req.Username)
	} else {
		user, err = s.userRepo.GetByEmail(ctx, req.Email)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	// Сравнение через bcrypt - устойчиво к timing-атакам
	if !util.CheckPassword(req.Password, user.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// GetCurrentUser возвращает запись владельца токена
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
