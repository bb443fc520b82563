package memstore

import (
	"context"
	"sync"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
)

// Store is the in-memory vendor table. It satisfies contracts.VendorStore
// and is the only storage the service has; nothing survives a restart.
type Store struct {
	mu      sync.RWMutex
	vendors map[string]*domain.Vendor
	menus   map[string][]domain.MenuItem
}

var _ contracts.VendorStore = (*Store)(nil)

func New() *Store {
	return &Store{
		vendors: make(map[string]*domain.Vendor),
		menus:   make(map[string][]domain.MenuItem),
	}
}

// AddVendor inserts or replaces a vendor and its menu.
func (s *Store) AddVendor(v domain.Vendor, menu []domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.Orders == nil {
		v.Orders = []domain.Order{}
	}
	s.vendors[v.ID] = &v
	s.menus[v.ID] = menu
}

func (s *Store) GetVendor(ctx context.Context, id string) (domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vendors[id]
	if !ok {
		return domain.Vendor{}, domain.ErrVendorNotFound
	}
	return copyVendor(v), nil
}

func (s *Store) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		out = append(out, copyVendor(v))
	}
	return out, nil
}

func (s *Store) SetVendorLocation(ctx context.Context, id string, lat, lng float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vendors[id]
	if !ok {
		return domain.ErrVendorNotFound
	}
	v.Lat = lat
	v.Lng = lng
	return nil
}

func (s *Store) AppendOrder(ctx context.Context, vendorID string, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vendors[vendorID]
	if !ok {
		return domain.ErrVendorNotFound
	}
	v.Orders = append(v.Orders, order)
	return nil
}

func (s *Store) GetMenu(ctx context.Context, vendorID string) ([]domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	menu, ok := s.menus[vendorID]
	if !ok {
		return []domain.MenuItem{}, nil
	}
	out := make([]domain.MenuItem, len(menu))
	copy(out, menu)
	return out, nil
}

// copyVendor returns a deep enough copy that callers can't mutate the
// stored order list. Caller holds at least the read lock.
func copyVendor(v *domain.Vendor) domain.Vendor {
	out := *v
	out.Orders = make([]domain.Order, len(v.Orders))
	copy(out.Orders, v.Orders)
	return out
}
