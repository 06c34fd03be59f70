// Package cart implements the in-progress order before submission: duplicate
// lines merge on (product, size), the running total derives from per-line
// effective prices, and checkout flattens the lines into an order submission.
package cart

import (
	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
)

// MaxLineQuantity caps a single line to guard against fat-finger orders.
const MaxLineQuantity = 50

// Cart aggregates session-scoped lines. It is not safe for concurrent use;
// callers load it from a Store, mutate it, and save it back.
type Cart struct {
	lines []model.CartLine
}

func New(lines []model.CartLine) *Cart {
	c := &Cart{lines: make([]model.CartLine, len(lines))}
	copy(c.lines, lines)
	return c
}

func (c *Cart) Lines() []model.CartLine {
	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// AddLine merges into an existing line with the same product and size,
// summing quantities; otherwise it appends.
func (c *Cart) AddLine(line model.CartLine) {
	for i := range c.lines {
		if c.lines[i].Product.ID == line.Product.ID && c.lines[i].Size == line.Size {
			c.lines[i].Quantity += line.Quantity
			return
		}
	}
	c.lines = append(c.lines, line)
}

// RemoveLine deletes by position; out-of-range indexes are ignored.
func (c *Cart) RemoveLine(index int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
}

// SetQuantity silently ignores quantities below 1 or above MaxLineQuantity.
func (c *Cart) SetQuantity(index, quantity int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	if quantity < 1 || quantity > MaxLineQuantity {
		return
	}
	c.lines[index].Quantity = quantity
}

func (c *Cart) SetNotes(index int, notes string) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines[index].Notes = notes
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// EffectivePrice is the per-unit price of a line: the selected size variant's
// price when one is chosen, otherwise the product's base price. ok is false
// when the product requires a size but none is selected; the price still
// carries the base-price fallback so totals never drop the line.
func EffectivePrice(line model.CartLine) (price int64, ok bool) {
	if line.SelectedSizeOption != nil {
		return line.SelectedSizeOption.Price, true
	}
	return line.Product.Price, !line.Product.HasSizeOptions
}

// Total returns Σ(effectivePrice × quantity). It is pure: no mutation, so two
// calls on the same cart always agree. Lines still awaiting a size selection
// count at the base price; ToOrderSubmission rejects them at checkout.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		price, _ := EffectivePrice(line)
		total += price * int64(line.Quantity)
	}
	return total
}

// ToOrderSubmission flattens the cart into the wire payload for the order
// ledger, snapshotting each line's effective price.
func (c *Cart) ToOrderSubmission(userID int64, deliveryDate string, notes *string, addressID *int64) (*model.OrderSubmission, error) {
	if len(c.lines) == 0 {
		return nil, apperr.New(apperr.InvalidInput, "Cart is empty")
	}
	if deliveryDate == "" {
		return nil, apperr.New(apperr.InvalidInput, "Delivery date is required")
	}

	items := make([]model.SubmissionItem, 0, len(c.lines))
	for _, line := range c.lines {
		price, ok := EffectivePrice(line)
		if !ok {
			return nil, apperr.Newf(apperr.InvalidInput, "A size must be selected for %s", line.Product.Name)
		}
		item := model.SubmissionItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     price,
		}
		if line.Size != "" {
			size := line.Size
			item.Size = &size
		}
		if line.Notes != "" {
			notes := line.Notes
			item.Notes = &notes
		}
		items = append(items, item)
	}

	return &model.OrderSubmission{
		UserID:       userID,
		TotalAmount:  c.Total(),
		DeliveryDate: deliveryDate,
		Notes:        notes,
		AddressID:    addressID,
		Items:        items,
	}, nil
}
