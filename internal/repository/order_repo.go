package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
)

// OrderRepository holds order headers and their line items. Order creation is
// a header insert followed by item inserts; the two steps are not atomic and
// there is no rollback if an item insert fails after the header succeeded.
type OrderRepository struct {
	mu         sync.RWMutex
	orders     map[int64]*model.Order
	orderItems map[int64][]model.OrderItem // keyed by order id
	nextID     int64
	nextItemID int64
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders:     make(map[int64]*model.Order),
		orderItems: make(map[int64][]model.OrderItem),
		nextID:     1,
		nextItemID: 1,
	}
}

// Create stores the order header. Status always starts at pending.
func (r *OrderRepository) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *o
	stored.ID = r.nextID
	r.nextID++
	stored.Status = model.OrderStatusPending
	stored.CreatedAt = time.Now()
	r.orders[stored.ID] = &stored
	return &stored, nil
}

func (r *OrderRepository) AddItem(ctx context.Context, item *model.OrderItem) (*model.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *item
	stored.ID = r.nextItemID
	r.nextItemID++
	r.orderItems[stored.OrderID] = append(r.orderItems[stored.OrderID], stored)
	return &stored, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Order not found")
	}
	out := *o
	return &out, nil
}

func (r *OrderRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *OrderRepository) GetItemsByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.orderItems[orderID]
	out := make([]model.OrderItem, len(items))
	copy(out, items)
	return out, nil
}
