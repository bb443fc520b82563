package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
)

func TestSeededStore(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	vendors, err := s.ListVendors(ctx)
	require.NoError(t, err)
	assert.Len(t, vendors, 5)

	v1, err := s.GetVendor(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Chai Point", v1.Name)
	assert.Equal(t, 28.6139, v1.Lat)
	assert.NotNil(t, v1.Orders)
	assert.Empty(t, v1.Orders)

	menu, err := s.GetMenu(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, domain.MenuItem{Item: "Masala Chai", Price: 20}, menu[0])
}

func TestGetVendorUnknown(t *testing.T) {
	s := NewSeeded()
	_, err := s.GetVendor(context.Background(), "v99")
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestGetMenuUnknownVendorIsEmpty(t *testing.T) {
	s := NewSeeded()
	menu, err := s.GetMenu(context.Background(), "v99")
	require.NoError(t, err)
	assert.Empty(t, menu)
}

func TestSetVendorLocation(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	require.NoError(t, s.SetVendorLocation(ctx, "v1", 28.62, 77.21))
	v, err := s.GetVendor(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 28.62, v.Lat)
	assert.Equal(t, 77.21, v.Lng)

	assert.ErrorIs(t, s.SetVendorLocation(ctx, "v99", 1, 2), domain.ErrVendorNotFound)
}

func TestAppendOrder(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	order := domain.Order{ID: 1000, Item: "Samosa", Status: domain.StatusPending}
	require.NoError(t, s.AppendOrder(ctx, "v3", order))

	v, err := s.GetVendor(ctx, "v3")
	require.NoError(t, err)
	require.Len(t, v.Orders, 1)
	assert.Equal(t, order, v.Orders[0])

	assert.ErrorIs(t, s.AppendOrder(ctx, "v99", order), domain.ErrVendorNotFound)
}

func TestReturnedVendorIsACopy(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()
	require.NoError(t, s.AppendOrder(ctx, "v1", domain.Order{ID: 1000, Item: "Bun Maska"}))

	v, err := s.GetVendor(ctx, "v1")
	require.NoError(t, err)
	v.Orders[0].Item = "tampered"
	v.Lat = 0

	again, err := s.GetVendor(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Bun Maska", again.Orders[0].Item)
	assert.Equal(t, 28.6139, again.Lat)
}

func TestConcurrentStoreAccess(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.SetVendorLocation(ctx, "v1", float64(n), float64(n))
			_ = s.AppendOrder(ctx, "v2", domain.Order{ID: int64(n), Item: "Fries", Status: domain.StatusPending})
			_, _ = s.ListVendors(ctx)
		}(i)
	}
	wg.Wait()

	v2, err := s.GetVendor(ctx, "v2")
	require.NoError(t, err)
	assert.Len(t, v2.Orders, 50)
}
