package repository

import (
	"context"
	"sync"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
)

// FavoriteRepository keeps the per-user favorite lists. Uniqueness of
// (userId, productId) is checked by the service before insert.
type FavoriteRepository struct {
	mu        sync.RWMutex
	favorites map[int64][]model.Favorite // keyed by user id
	nextID    int64
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{favorites: make(map[int64][]model.Favorite), nextID: 1}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, productID int64) (*model.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fav := model.Favorite{ID: r.nextID, UserID: userID, ProductID: productID}
	r.nextID++
	r.favorites[userID] = append(r.favorites[userID], fav)
	return &fav, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.favorites[userID]
	kept := make([]model.Favorite, 0, len(list))
	removed := false
	for _, f := range list {
		if f.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return apperr.New(apperr.NotFound, "Favorite not found")
	}
	r.favorites[userID] = kept
	return nil
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.favorites[userID] {
		if f.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *FavoriteRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.favorites[userID]
	out := make([]model.Favorite, len(list))
	copy(out, list)
	return out, nil
}
