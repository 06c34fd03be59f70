package repository

import (
	"context"
	"sort"
	"sync"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
)

// ProductRepository holds the read-mostly product catalog, seeded at startup.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]*model.Product
	nextID   int64
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[int64]*model.Product), nextID: 1}
}

// Create is used by the seeder; there is no product write endpoint.
func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *p
	stored.ID = r.nextID
	r.nextID++
	if stored.SizeOptions == nil {
		stored.SizeOptions = []model.SizeOption{}
	}
	r.products[stored.ID] = &stored
	return &stored, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Product not found")
	}
	out := *p
	return &out, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	// ids are sequential, so id order is insertion order
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByCategory matches the category exactly, case-sensitive.
func (r *ProductRepository) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
