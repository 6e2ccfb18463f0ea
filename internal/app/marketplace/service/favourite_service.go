package service

import (
	"context"
	"errors"
	"fmt"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/repository"
)

// FavouriteService обрабатывает избранное участников.
// Один участник может добавить один товар несколько раз.
type FavouriteService struct {
	favouriteRepo repository.FavouriteRepository
}

func NewFavouriteService(favouriteRepo repository.FavouriteRepository) *FavouriteService {
	return &FavouriteService{favouriteRepo: favouriteRepo}
}

func (s *FavouriteService) List(ctx context.Context, q entity.FavouriteListQuery) ([]entity.Favourite, error) {
	favourites, err := s.favouriteRepo.List(ctx, q)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			return nil, ErrInvalidQuery
		}
		return nil, fmt.Errorf("failed to list favourites: %w", err)
	}

	return favourites, nil
}

func (s *FavouriteService) Create(ctx context.Context, req *entity.CreateFavouriteRequest) (*entity.Favourite, error) {
	favourite := &entity.Favourite{
		Member:  req.Member,
		Product: req.Product,
	}

	if err := s.favouriteRepo.Create(ctx, favourite); err != nil {
		return nil, fmt.Errorf("failed to create favourite: %w", err)
	}

	return favourite, nil
}

func (s *FavouriteService) Delete(ctx context.Context, id string) error {
	if err := s.favouriteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFavouriteNotFound
		}
		return fmt.Errorf("failed to delete favourite: %w", err)
	}

	return nil
}
