package repository

import (
	"context"
	"sort"
	"sync"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
)

// AddressRepository holds per-user delivery addresses. Nothing enforces a
// single default address per user; clients reconcile the isDefault flag.
type AddressRepository struct {
	mu        sync.RWMutex
	addresses map[int64]*model.Address
	nextID    int64
}

func NewAddressRepository() *AddressRepository {
	return &AddressRepository{addresses: make(map[int64]*model.Address), nextID: 1}
}

func (r *AddressRepository) Create(ctx context.Context, a *model.Address) (*model.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *a
	stored.ID = r.nextID
	r.nextID++
	r.addresses[stored.ID] = &stored
	return &stored, nil
}

func (r *AddressRepository) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.addresses[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Address not found")
	}
	// copy so callers never serialize a struct a concurrent Update mutates
	out := *a
	return &out, nil
}

func (r *AddressRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Address, 0)
	for _, a := range r.addresses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update merges the provided fields into the stored address (PATCH semantics).
func (r *AddressRepository) Update(ctx context.Context, id int64, upd *model.AddressUpdate) (*model.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.addresses[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Address not found")
	}
	if upd.Street != nil {
		a.Street = *upd.Street
	}
	if upd.Number != nil {
		a.Number = *upd.Number
	}
	if upd.Complement != nil {
		a.Complement = upd.Complement
	}
	if upd.Neighborhood != nil {
		a.Neighborhood = *upd.Neighborhood
	}
	if upd.City != nil {
		a.City = *upd.City
	}
	if upd.State != nil {
		a.State = *upd.State
	}
	if upd.Zipcode != nil {
		a.Zipcode = *upd.Zipcode
	}
	if upd.IsDefault != nil {
		a.IsDefault = *upd.IsDefault
	}
	updated := *a
	return &updated, nil
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.addresses[id]; !ok {
		return apperr.New(apperr.NotFound, "Address not found")
	}
	delete(r.addresses, id)
	return nil
}
