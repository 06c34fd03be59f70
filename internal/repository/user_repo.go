package repository

import (
	"context"
	"sync"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
)

// UserRepository owns the user map. Data lives for the process lifetime only.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]*model.User), nextID: 1}
}

// Create assigns the next id and stores the user. Username uniqueness is
// checked by the caller before insert.
func (r *UserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *u
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = &stored
	return &stored, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "User not found")
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "User not found")
}
