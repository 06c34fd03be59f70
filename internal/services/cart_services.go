package services

import (
	"context"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/cart"
	"SweetOrderAPI/internal/model"
	"SweetOrderAPI/internal/repository"
)

// CartService operates the session-scoped cart: each call loads the session's
// lines from the store, applies the aggregator, and saves them back.
type CartService struct {
	Store    cart.Store
	Orders   *OrderService
	Products *repository.ProductRepository
}

func NewCartService(store cart.Store, orders *OrderService, pr *repository.ProductRepository) *CartService {
	return &CartService{Store: store, Orders: orders, Products: pr}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	lines, err := s.Store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	c := cart.New(lines)
	return &model.CartResponse{Items: c.Lines(), Total: c.Total()}, nil
}

// Add resolves the product and, when a size name is given, its size option,
// then merges the line into the session cart.
func (s *CartService) Add(ctx context.Context, sessionID string, productID int64, quantity int, size, notes string) (*model.CartResponse, error) {
	if quantity < 1 {
		quantity = 1
	}
	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	line := model.CartLine{Product: *p, Quantity: quantity, Size: size, Notes: notes}
	if size != "" {
		found := false
		for i := range p.SizeOptions {
			if p.SizeOptions[i].Name == size {
				opt := p.SizeOptions[i]
				line.SelectedSizeOption = &opt
				found = true
				break
			}
		}
		if !found {
			return nil, apperr.Newf(apperr.InvalidInput, "Unknown size %q for %s", size, p.Name)
		}
	}

	lines, err := s.Store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	c := cart.New(lines)
	c.AddLine(line)
	if err := s.Store.Save(sessionID, c.Lines()); err != nil {
		return nil, err
	}
	return &model.CartResponse{Items: c.Lines(), Total: c.Total()}, nil
}

func (s *CartService) SetQuantity(ctx context.Context, sessionID string, index, quantity int) (*model.CartResponse, error) {
	return s.mutate(sessionID, index, func(c *cart.Cart) {
		c.SetQuantity(index, quantity)
	})
}

func (s *CartService) SetNotes(ctx context.Context, sessionID string, index int, notes string) (*model.CartResponse, error) {
	return s.mutate(sessionID, index, func(c *cart.Cart) {
		c.SetNotes(index, notes)
	})
}

func (s *CartService) Remove(ctx context.Context, sessionID string, index int) (*model.CartResponse, error) {
	return s.mutate(sessionID, index, func(c *cart.Cart) {
		c.RemoveLine(index)
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.Store.Clear(sessionID)
}

// Checkout flattens the session cart into an order submission, writes it to
// the order ledger, and clears the cart on success.
func (s *CartService) Checkout(ctx context.Context, sessionID string, userID int64, deliveryDate string, notes *string, addressID *int64) (*model.Order, error) {
	lines, err := s.Store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	sub, err := cart.New(lines).ToOrderSubmission(userID, deliveryDate, notes, addressID)
	if err != nil {
		return nil, err
	}
	order, err := s.Orders.Create(ctx, sub)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Clear(sessionID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *CartService) mutate(sessionID string, index int, fn func(c *cart.Cart)) (*model.CartResponse, error) {
	lines, err := s.Store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	c := cart.New(lines)
	if index < 0 || index >= c.Len() {
		return nil, apperr.New(apperr.InvalidInput, "Invalid cart line index")
	}
	fn(c)
	if err := s.Store.Save(sessionID, c.Lines()); err != nil {
		return nil, err
	}
	return &model.CartResponse{Items: c.Lines(), Total: c.Total()}, nil
}
