package services

import (
	"context"
	"log/slog"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
)

// CatalogService is the read side the presentation layer consumes:
// vendor listings, menus and the live-vendor set.
type CatalogService struct {
	log      *slog.Logger
	store    contracts.VendorStore
	presence contracts.VendorPresence
}

func NewCatalogService(log *slog.Logger, store contracts.VendorStore, presence contracts.VendorPresence) *CatalogService {
	return &CatalogService{log: log, store: store, presence: presence}
}

func (s *CatalogService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.store.ListVendors(ctx)
}

func (s *CatalogService) GetMenu(ctx context.Context, vendorID string) ([]domain.MenuItem, error) {
	return s.store.GetMenu(ctx, vendorID)
}

// OnlineVendors returns vendors seen inside the presence window. Presence
// failures degrade to an empty set rather than failing the request.
func (s *CatalogService) OnlineVendors(ctx context.Context) []string {
	ids, err := s.presence.OnlineVendors(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "catalog - online vendors - presence lookup failed", "err", err)
		return []string{}
	}
	if ids == nil {
		ids = []string{}
	}
	return ids
}
