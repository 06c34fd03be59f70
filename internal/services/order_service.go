package services

import (
	"context"

	"SweetOrderAPI/internal/model"
	"SweetOrderAPI/internal/repository"
)

type OrderService struct {
	Repo     *repository.OrderRepository
	Products *repository.ProductRepository
}

func NewOrderService(or *repository.OrderRepository, pr *repository.ProductRepository) *OrderService {
	return &OrderService{Repo: or, Products: pr}
}

// Create persists the order header, then one item per submitted line, in
// order. The sequence is not transactional: an item failure after the header
// insert leaves a shorter order behind.
func (s *OrderService) Create(ctx context.Context, sub *model.OrderSubmission) (*model.Order, error) {
	order, err := s.Repo.Create(ctx, &model.Order{
		UserID:       sub.UserID,
		TotalAmount:  sub.TotalAmount,
		DeliveryDate: sub.DeliveryDate,
		Notes:        sub.Notes,
		AddressID:    sub.AddressID,
	})
	if err != nil {
		return nil, err
	}
	for _, item := range sub.Items {
		_, err := s.Repo.AddItem(ctx, &model.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Price:     item.Price,
			Notes:     item.Notes,
		})
		if err != nil {
			return nil, err
		}
	}
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

// Details returns the order with its items and the referenced products
// enriched with each item's quantity, size and notes.
func (s *OrderService) Details(ctx context.Context, id int64) (*model.OrderDetails, error) {
	order, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetItemsByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	products := make([]model.OrderProduct, 0, len(items))
	for _, item := range items {
		p, err := s.Products.GetByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		products = append(products, model.OrderProduct{
			Product:  *p,
			Quantity: item.Quantity,
			Size:     item.Size,
			Notes:    item.Notes,
		})
	}
	return &model.OrderDetails{Order: order, Items: items, Products: products}, nil
}
