package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"reeves-booking/internal/domain"
)

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrItemUnavailable = errors.New("menu item is not available")
)

// Catalog serves the menu and the admin edit operations over it.
// Customers only ever see available items; admins soft-disable via the
// availability flag instead of deleting.
type Catalog struct {
	gateway DocumentGateway
	newID   func() string
	now     func() time.Time
}

func NewCatalog(gateway DocumentGateway) *Catalog {
	return &Catalog{gateway: gateway, newID: NewOrderID, now: time.Now}
}

// List returns available items, optionally narrowed to one category.
// An empty category string means all categories.
func (s *Catalog) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	filter := map[string]string{}
	if category != "" {
		parsed, err := domain.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		filter["category"] = string(parsed)
	}

	docs, err := s.gateway.Query(ctx, CollectionMenuItems, filter, "", true)
	if err != nil {
		return nil, err
	}

	items := make([]domain.MenuItem, 0, len(docs))
	for _, doc := range docs {
		var item domain.MenuItem
		if err := json.Unmarshal(doc, &item); err != nil {
			log.Printf("[catalog] skipping malformed menu item: %v", err)
			continue
		}
		if !item.Available {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Catalog) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	found, err := s.gateway.Get(ctx, CollectionMenuItems, id, &item)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (s *Catalog) validate(item *domain.MenuItem) error {
	if item.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if item.Price <= 0 {
		return &ValidationError{Field: "price"}
	}
	if _, err := domain.ParseCategory(string(item.Category)); err != nil {
		return err
	}
	if item.Rating < 0 || item.Rating > 5 {
		return fmt.Errorf("rating %v out of range", item.Rating)
	}
	return nil
}

func (s *Catalog) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := s.validate(item); err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = s.newID()
	}
	item.Available = true
	item.CreatedAt = s.now()
	return s.gateway.Create(ctx, CollectionMenuItems, item.ID, item)
}

func (s *Catalog) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := s.validate(item); err != nil {
		return err
	}
	err := s.gateway.Update(ctx, CollectionMenuItems, item.ID, map[string]interface{}{
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
		"category":    item.Category,
		"vegetarian":  item.Vegetarian,
		"spicy":       item.Spicy,
		"rating":      item.Rating,
		"image_url":   item.ImageURL,
	})
	if err != nil {
		return fmt.Errorf("update menu item %s: %w", item.ID, err)
	}
	return nil
}

func (s *Catalog) SetAvailability(ctx context.Context, id string, available bool) error {
	return s.gateway.Update(ctx, CollectionMenuItems, id, map[string]interface{}{
		"available": available,
	})
}

var _ CatalogServiceInterface = (*Catalog)(nil)
