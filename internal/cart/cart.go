package cart

import (
	"context"
	"log"

	"reeves-booking/internal/domain"
)

// Store mirrors the cart to durable storage. Save is invoked
// synchronously after every mutation; Load failures mean "no saved
// cart", never an error for the caller.
type Store interface {
	Save(ctx context.Context, key string, lines []domain.CartLine) error
	Load(ctx context.Context, key string) ([]domain.CartLine, error)
}

// Cart holds the selectable items for one browser session. Lines keep
// insertion order and there is at most one line per item ID; persistence
// is a side effect of every mutation. A flush failure degrades the cart
// to in-memory-only for the session.
type Cart struct {
	key   string
	store Store
	lines []domain.CartLine
}

func New(store Store, key string) *Cart {
	return &Cart{key: key, store: store}
}

// Load rehydrates a cart from storage. Missing or corrupt data yields
// an empty cart.
func Load(ctx context.Context, store Store, key string) *Cart {
	c := New(store, key)
	if store == nil {
		return c
	}
	lines, err := store.Load(ctx, key)
	if err != nil {
		log.Printf("[cart] load failed for %s, starting empty: %v", key, err)
		return c
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		c.lines = append(c.lines, line)
	}
	return c
}

func (c *Cart) flush(ctx context.Context) {
	if c.store == nil {
		return
	}
	if err := c.store.Save(ctx, c.key, c.lines); err != nil {
		log.Printf("[cart] persist failed for %s, continuing in memory: %v", c.key, err)
	}
}

// AddItem increments the existing line for the item or appends a new
// one with quantity 1. It never fails.
func (c *Cart) AddItem(ctx context.Context, item domain.MenuItem) {
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			c.flush(ctx)
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
	c.flush(ctx)
}

// SetQuantity sets the line's quantity; zero or below removes the line.
func (c *Cart) SetQuantity(ctx context.Context, itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(ctx, itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
			c.flush(ctx)
			return
		}
	}
}

func (c *Cart) RemoveItem(ctx context.Context, itemID string) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.flush(ctx)
			return
		}
	}
}

func (c *Cart) Clear(ctx context.Context) {
	c.lines = nil
	c.flush(ctx)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems recomputes the quantity sum on every call.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice recomputes the sum of quantity times unit price on every
// call.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity * line.Price
	}
	return total
}
