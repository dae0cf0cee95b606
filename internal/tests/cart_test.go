package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"reeves-booking/internal/cart"
	"reeves-booking/internal/domain"
)

// memStore is an in-memory cart.Store for round-trip tests.
type memStore struct {
	data map[string][]domain.CartLine
	fail bool
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]domain.CartLine{}}
}

func (s *memStore) Save(_ context.Context, key string, lines []domain.CartLine) error {
	if s.fail {
		return errors.New("storage unavailable")
	}
	saved := make([]domain.CartLine, len(lines))
	copy(saved, lines)
	s.data[key] = saved
	return nil
}

func (s *memStore) Load(_ context.Context, key string) ([]domain.CartLine, error) {
	if s.fail {
		return nil, errors.New("storage unavailable")
	}
	return s.data[key], nil
}

func menuItem(id string, price int) domain.MenuItem {
	return domain.MenuItem{
		ID:        id,
		Name:      "Item " + id,
		Price:     price,
		Category:  domain.CategoryMain,
		Available: true,
	}
}

func TestCart_AddItemMergesLines(t *testing.T) {
	ctx := context.Background()
	c := cart.New(newMemStore(), "s1")

	c.AddItem(ctx, menuItem("a", 200))
	c.AddItem(ctx, menuItem("a", 200))
	c.AddItem(ctx, menuItem("b", 100))

	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, 500, c.TotalPrice())
}

func TestCart_SetQuantityClampsToRemoval(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		quantity      int
		expectedItems int
	}{
		{name: "positive_quantity_updates", quantity: 5, expectedItems: 5},
		{name: "zero_removes_line", quantity: 0, expectedItems: 0},
		{name: "negative_removes_line", quantity: -3, expectedItems: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := cart.New(newMemStore(), "s1")
			c.AddItem(ctx, menuItem("a", 150))
			c.SetQuantity(ctx, "a", testCase.quantity)
			assert.Equal(t, testCase.expectedItems, c.TotalItems())
			for _, line := range c.Lines() {
				assert.Greater(t, line.Quantity, 0)
			}
		})
	}
}

func TestCart_TotalPriceMatchesSumAfterArbitraryOps(t *testing.T) {
	ctx := context.Background()
	c := cart.New(newMemStore(), "s1")

	c.AddItem(ctx, menuItem("a", 200))
	c.AddItem(ctx, menuItem("b", 100))
	c.AddItem(ctx, menuItem("a", 200))
	c.SetQuantity(ctx, "b", 4)
	c.AddItem(ctx, menuItem("c", 75))
	c.RemoveItem(ctx, "a")
	c.SetQuantity(ctx, "c", 0)
	c.SetQuantity(ctx, "missing", 3)

	expected := 0
	for _, line := range c.Lines() {
		expected += line.Quantity * line.Price
	}
	assert.Equal(t, expected, c.TotalPrice())
	assert.Equal(t, 400, c.TotalPrice())
}

func TestCart_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	c := cart.New(store, "s1")
	c.AddItem(ctx, menuItem("a", 200))
	c.AddItem(ctx, menuItem("a", 200))
	c.AddItem(ctx, menuItem("b", 100))

	reloaded := cart.Load(ctx, store, "s1")
	assert.Equal(t, c.Lines(), reloaded.Lines())
	assert.Equal(t, c.TotalItems(), reloaded.TotalItems())
	assert.Equal(t, c.TotalPrice(), reloaded.TotalPrice())
}

func TestCart_LoadFailsOpenToEmpty(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.fail = true

	c := cart.Load(ctx, store, "s1")
	assert.True(t, c.IsEmpty())

	// Mutations still work in memory when persistence is down.
	c.AddItem(ctx, menuItem("a", 200))
	assert.Equal(t, 1, c.TotalItems())
}

func TestCart_ClearEmptiesAllLines(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	c := cart.New(store, "s1")
	c.AddItem(ctx, menuItem("a", 200))
	c.AddItem(ctx, menuItem("b", 100))
	c.Clear(ctx)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalPrice())
	assert.Empty(t, store.data["s1"])
}
