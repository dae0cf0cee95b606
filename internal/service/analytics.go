package service

import (
	"context"
	"encoding/json"
	"log"
	"sort"

	"reeves-booking/internal/domain"
)

// ItemPopularity is a menu item scored by ordered quantity.
type ItemPopularity struct {
	ItemID string  `json:"item_id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
}

// Analytics reads popularity counters maintained by the order consumer,
// falling back to counting order documents client-side when the
// counters are empty.
type Analytics struct {
	store   PopularityStore
	gateway DocumentGateway
}

func NewAnalytics(store PopularityStore, gateway DocumentGateway) *Analytics {
	return &Analytics{store: store, gateway: gateway}
}

func (s *Analytics) TopItems(ctx context.Context, limit int64) ([]ItemPopularity, error) {
	scores, err := s.store.TopItems(ctx, limit)
	if err != nil || len(scores) == 0 {
		return s.topItemsFromDocuments(ctx, limit)
	}

	top := make([]ItemPopularity, 0, len(scores))
	for _, score := range scores {
		top = append(top, ItemPopularity{
			ItemID: score.ItemID,
			Name:   s.itemName(ctx, score.ItemID),
			Score:  score.Score,
		})
	}
	return top, nil
}

func (s *Analytics) itemName(ctx context.Context, itemID string) string {
	var item domain.MenuItem
	found, err := s.gateway.Get(ctx, CollectionMenuItems, itemID, &item)
	if err != nil || !found {
		return itemID
	}
	return item.Name
}

// topItemsFromDocuments recomputes popularity from the stored orders.
func (s *Analytics) topItemsFromDocuments(ctx context.Context, limit int64) ([]ItemPopularity, error) {
	docs, err := s.gateway.Query(ctx, CollectionPreOrders, nil, "", true)
	if err != nil {
		return nil, err
	}

	totals := map[string]*ItemPopularity{}
	for _, doc := range docs {
		var order domain.Order
		if err := json.Unmarshal(doc, &order); err != nil {
			log.Printf("[analytics] skipping malformed order: %v", err)
			continue
		}
		for _, item := range order.Items {
			entry, ok := totals[item.ItemID]
			if !ok {
				entry = &ItemPopularity{ItemID: item.ItemID, Name: item.Name}
				totals[item.ItemID] = entry
			}
			entry.Score += float64(item.Quantity)
		}
	}

	top := make([]ItemPopularity, 0, len(totals))
	for _, entry := range totals {
		top = append(top, *entry)
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Score > top[j].Score })
	if int64(len(top)) > limit {
		top = top[:limit]
	}
	return top, nil
}

var _ AnalyticsInterface = (*Analytics)(nil)
