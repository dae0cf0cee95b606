package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"reeves-booking/internal/domain"
	"reeves-booking/internal/mocks"
	"reeves-booking/internal/service"
	"reeves-booking/internal/storage"
)

func TestAnalytics_TopItemsFromCounters(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewPopularityStore(t)
	gateway := mocks.NewDocumentGateway(t)
	analytics := service.NewAnalytics(store, gateway)

	store.On("TopItems", ctx, int64(3)).Return([]storage.ItemScore{
		{ItemID: "1", Score: 42},
		{ItemID: "2", Score: 17},
	}, nil).Once()
	gateway.On("Get", ctx, service.CollectionMenuItems, "1", mock.Anything).
		Run(fillFromMap(t, map[string]interface{}{"id": "1", "name": "Royal Biryani"})).
		Return(true, nil).Once()
	gateway.On("Get", ctx, service.CollectionMenuItems, "2", mock.Anything).
		Return(false, nil).Once()

	top, err := analytics.TopItems(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, []service.ItemPopularity{
		{ItemID: "1", Name: "Royal Biryani", Score: 42},
		{ItemID: "2", Name: "2", Score: 17},
	}, top)
}

func TestConsumer_ProcessOrderRecordsPopularity(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewPopularityStore(t)
	consumer := service.NewConsumer(nil, store)

	event := domain.OrderEvent{
		Type:    domain.EventOrderPlaced,
		OrderID: "RV1",
		Items:   []domain.OrderItem{{ItemID: "a", Name: "Samosa", Quantity: 2}},
		Total:   300,
	}
	store.On("RecordOrder", ctx, event).Return(nil).Once()

	consumer.ProcessOrder(ctx, event)
}

func TestAnalytics_FallsBackToOrderDocuments(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewPopularityStore(t)
	gateway := mocks.NewDocumentGateway(t)
	analytics := service.NewAnalytics(store, gateway)

	store.On("TopItems", ctx, int64(2)).Return(nil, errors.New("redis down")).Once()

	orders := []domain.Order{
		{OrderID: "RV1", Items: []domain.OrderItem{
			{ItemID: "a", Name: "Samosa", Quantity: 3},
			{ItemID: "b", Name: "Lassi", Quantity: 1},
		}},
		{OrderID: "RV2", Items: []domain.OrderItem{
			{ItemID: "b", Name: "Lassi", Quantity: 4},
			{ItemID: "c", Name: "Jalebi", Quantity: 1},
		}},
	}
	docs := make([]json.RawMessage, 0, len(orders))
	for _, order := range orders {
		payload, err := json.Marshal(order)
		assert.NoError(t, err)
		docs = append(docs, payload)
	}
	gateway.On("Query", ctx, service.CollectionPreOrders, map[string]string(nil), "", true).
		Return(docs, nil).Once()

	top, err := analytics.TopItems(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, []service.ItemPopularity{
		{ItemID: "b", Name: "Lassi", Score: 5},
		{ItemID: "a", Name: "Samosa", Score: 3},
	}, top)
}
