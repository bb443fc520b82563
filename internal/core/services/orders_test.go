package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/plugins/memstore"
)

func TestPlaceOrder(t *testing.T) {
	store := memstore.NewSeeded()
	hub := &fakeHub{}
	svc := NewOrderService(discardLogger(), store, hub)
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, domain.OrderRequest{
		VendorID:    "v1",
		Item:        "Masala Chai",
		CustomerLat: 28.60,
		CustomerLng: 77.20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), order.ID)
	assert.Equal(t, "Masala Chai", order.Item)
	assert.Equal(t, domain.StatusPending, order.Status)

	// The store gained exactly this order.
	v, err := store.GetVendor(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, v.Orders, 1)
	assert.Equal(t, order, v.Orders[0])

	// Exactly one new_order event carrying the same order id.
	msgs := hub.messages()
	require.Len(t, msgs, 1)
	var event domain.NewOrderEvent
	require.NoError(t, json.Unmarshal(msgs[0], &event))
	assert.Equal(t, domain.TypeNewOrder, event.Type)
	assert.Equal(t, "v1", event.VendorID)
	assert.Equal(t, order.ID, event.Order.ID)
	assert.Equal(t, domain.StatusPending, event.Order.Status)
}

func TestPlaceOrderIDsAreUniqueAndAscending(t *testing.T) {
	store := memstore.NewSeeded()
	svc := NewOrderService(discardLogger(), store, &fakeHub{})
	ctx := context.Background()

	seen := make(map[int64]bool)
	var last int64
	for i := 0; i < 50; i++ {
		order, err := svc.PlaceOrder(ctx, domain.OrderRequest{VendorID: "v2", Item: "Fries"})
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "order id %d repeated", order.ID)
		assert.Greater(t, order.ID, last)
		seen[order.ID] = true
		last = order.ID
	}
}

func TestPlaceOrderUnknownVendor(t *testing.T) {
	store := memstore.NewSeeded()
	hub := &fakeHub{}
	svc := NewOrderService(discardLogger(), store, hub)

	_, err := svc.PlaceOrder(context.Background(), domain.OrderRequest{VendorID: "v99", Item: "Nothing"})
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
	assert.Empty(t, hub.messages(), "no broadcast for a failed placement")
}
