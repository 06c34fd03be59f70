package services

import (
	"context"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
	"SweetOrderAPI/internal/repository"
)

type FavoriteService struct {
	Repo     *repository.FavoriteRepository
	Products *repository.ProductRepository
}

func NewFavoriteService(fr *repository.FavoriteRepository, pr *repository.ProductRepository) *FavoriteService {
	return &FavoriteService{Repo: fr, Products: pr}
}

// Add rejects duplicates with a conflict. The check-then-insert is not atomic,
// which is acceptable at this scale.
func (s *FavoriteService) Add(ctx context.Context, userID, productID int64) (*model.Favorite, error) {
	already, err := s.Repo.IsFavorite(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, apperr.New(apperr.Conflict, "Product already in favorites")
	}
	return s.Repo.Add(ctx, userID, productID)
}

// Remove delegates to the repository, which reports NotFound for a product
// that was never favorited.
func (s *FavoriteService) Remove(ctx context.Context, userID, productID int64) error {
	return s.Repo.Remove(ctx, userID, productID)
}

// ListProducts resolves each favorite to its product. A favorite pointing at a
// missing product is a hard invariant violation since products are never
// deleted in this system.
func (s *FavoriteService) ListProducts(ctx context.Context, userID int64) ([]model.Product, error) {
	favorites, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(favorites))
	for _, f := range favorites {
		p, err := s.Products.GetByID(ctx, f.ProductID)
		if err != nil {
			return nil, apperr.Newf(apperr.Internal, "product %d referenced by favorite %d does not exist", f.ProductID, f.ID)
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	return s.Repo.IsFavorite(ctx, userID, productID)
}
