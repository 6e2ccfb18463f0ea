package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/repository"
	"lapakpedia/internal/app/marketplace/util"
	"lapakpedia/pkg/logger"
	"lapakpedia/pkg/metrics"
)

const userPhotoDir = "users"

// UserService обрабатывает бизнес-логику пользователей,
// включая жизненный цикл фотографии профиля
type UserService struct {
	userRepo repository.UserRepository
	photos   *util.PhotoStore
}

func NewUserService(userRepo repository.UserRepository, photos *util.PhotoStore) *UserService {
	return &UserService{
		userRepo: userRepo,
		photos:   photos,
	}
}

func (s *UserService) List(ctx context.Context, q entity.UserListQuery) ([]entity.User, error) {
	users, err := s.userRepo.List(ctx, q)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			return nil, ErrInvalidQuery
		}
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Create регистрирует пользователя. Пароль хэшируется, необязательное
// фото сохраняется под сгенерированным именем до записи документа.
func (s *UserService) Create(ctx context.Context, req *entity.CreateUserRequest, photo *multipart.FileHeader) (*entity.User, error) {
	passwordHash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: passwordHash,
		Role:     req.Role,
	}

	if photo != nil {
		filename, err := s.photos.Save(photo, userPhotoDir)
		if err != nil {
			return nil, fmt.Errorf("failed to save photo: %w", err)
		}
		user.Photo = filename
		metrics.PhotoUploads.WithLabelValues(userPhotoDir).Inc()
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrValidation
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.UsersCreated.Inc()

	return user, nil
}

// Update применяет частичное обновление. Новое фото записывается на диск
// до обновления документа; старое удаляется только после успеха, чтобы
// при сбое не остаться без валидного файла.
func (s *UserService) Update(ctx context.Context, id string, req *entity.UpdateUserRequest, photo *multipart.FileHeader) (*entity.User, error) {
	prior, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Password != nil {
		passwordHash, err := util.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fields["password"] = passwordHash
	}

	var newPhoto string
	if photo != nil {
		newPhoto, err = s.photos.Save(photo, userPhotoDir)
		if err != nil {
			return nil, fmt.Errorf("failed to save photo: %w", err)
		}
		fields["photo"] = newPhoto
		metrics.PhotoUploads.WithLabelValues(userPhotoDir).Inc()
	}

	user, err := s.userRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if newPhoto != "" && prior.Photo != "" && prior.Photo != newPhoto {
		if err := s.photos.Remove(userPhotoDir, prior.Photo); err != nil {
			logger.Warn().Err(err).Str("photo", prior.Photo).Msg("Failed to remove replaced user photo")
		}
	}

	return user, nil
}

// Delete удаляет документ и связанную фотографию. Отсутствие файла
// на диске не мешает удалению.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := s.photos.Remove(userPhotoDir, user.Photo); err != nil {
		logger.Warn().Err(err).Str("photo", user.Photo).Msg("Failed to remove user photo")
	}

	return nil
}
