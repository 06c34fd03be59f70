package services

import (
	"context"

	"SweetOrderAPI/internal/model"
	"SweetOrderAPI/internal/repository"
)

type AddressService struct {
	Repo *repository.AddressRepository
}

func NewAddressService(r *repository.AddressRepository) *AddressService {
	return &AddressService{Repo: r}
}

func (s *AddressService) Create(ctx context.Context, a *model.Address) (*model.Address, error) {
	return s.Repo.Create(ctx, a)
}

func (s *AddressService) Get(ctx context.Context, id int64) (*model.Address, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *AddressService) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

func (s *AddressService) Update(ctx context.Context, id int64, upd *model.AddressUpdate) (*model.Address, error) {
	return s.Repo.Update(ctx, id, upd)
}

func (s *AddressService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
