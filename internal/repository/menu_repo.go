package repository

import (
	"context"
	"sort"
	"sync"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
)

// MenuRepository holds menus and the menu-product association, seeded at startup.
type MenuRepository struct {
	mu           sync.RWMutex
	menus        map[int64]*model.Menu
	menuProducts map[int64][]model.MenuProduct // keyed by menu id
	nextID       int64
	nextLinkID   int64
}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{
		menus:        make(map[int64]*model.Menu),
		menuProducts: make(map[int64][]model.MenuProduct),
		nextID:       1,
		nextLinkID:   1,
	}
}

func (r *MenuRepository) Create(ctx context.Context, m *model.Menu) (*model.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *m
	stored.ID = r.nextID
	r.nextID++
	r.menus[stored.ID] = &stored
	return &stored, nil
}

func (r *MenuRepository) GetByID(ctx context.Context, id int64) (*model.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.menus[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Menu not found")
	}
	out := *m
	return &out, nil
}

func (r *MenuRepository) GetAll(ctx context.Context) ([]model.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Menu, 0, len(r.menus))
	for _, m := range r.menus {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MenuRepository) AddProduct(ctx context.Context, menuID, productID int64) (*model.MenuProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	link := model.MenuProduct{ID: r.nextLinkID, MenuID: menuID, ProductID: productID}
	r.nextLinkID++
	r.menuProducts[menuID] = append(r.menuProducts[menuID], link)
	return &link, nil
}

// GetLinks returns the association rows for a menu, in insertion order.
func (r *MenuRepository) GetLinks(ctx context.Context, menuID int64) ([]model.MenuProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	links := r.menuProducts[menuID]
	out := make([]model.MenuProduct, len(links))
	copy(out, links)
	return out, nil
}
