package services

import (
	"context"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
	"SweetOrderAPI/internal/repository"
)

// CatalogService serves the read paths over the seeded product and menu data.
type CatalogService struct {
	Products *repository.ProductRepository
	Menus    *repository.MenuRepository
}

func NewCatalogService(pr *repository.ProductRepository, mr *repository.MenuRepository) *CatalogService {
	return &CatalogService{Products: pr, Menus: mr}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.Products.GetAll(ctx)
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.Products.GetByCategory(ctx, category)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return s.Products.GetByID(ctx, id)
}

func (s *CatalogService) ListMenus(ctx context.Context) ([]model.Menu, error) {
	return s.Menus.GetAll(ctx)
}

func (s *CatalogService) GetMenu(ctx context.Context, id int64) (*model.Menu, error) {
	return s.Menus.GetByID(ctx, id)
}

// ProductsByMenu resolves the menu's association rows to products. A link to
// a missing product is an invariant violation, not a user-facing error:
// products are never deleted in this system.
func (s *CatalogService) ProductsByMenu(ctx context.Context, menuID int64) ([]model.Product, error) {
	if _, err := s.Menus.GetByID(ctx, menuID); err != nil {
		return nil, err
	}
	links, err := s.Menus.GetLinks(ctx, menuID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(links))
	for _, link := range links {
		p, err := s.Products.GetByID(ctx, link.ProductID)
		if err != nil {
			return nil, apperr.Newf(apperr.Internal, "product %d referenced by menu %d does not exist", link.ProductID, menuID)
		}
		out = append(out, *p)
	}
	return out, nil
}
