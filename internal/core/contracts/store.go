package contracts

import (
	"context"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
)

// VendorStore is the data layer the realtime core mutates and the HTTP
// facade reads. The core never caches vendor state; every access goes
// through here. Lookups for an unknown id return domain.ErrVendorNotFound.
type VendorStore interface {
	// GetVendor returns a copy of the vendor.
	GetVendor(ctx context.Context, id string) (domain.Vendor, error)
	// ListVendors returns copies of every vendor.
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	// SetVendorLocation overwrites the vendor's stored coordinates.
	SetVendorLocation(ctx context.Context, id string, lat, lng float64) error
	// AppendOrder adds an order to the vendor's order list.
	AppendOrder(ctx context.Context, vendorID string, order domain.Order) error
	// GetMenu returns the vendor's menu. Unknown vendors yield an empty
	// menu, not an error.
	GetMenu(ctx context.Context, vendorID string) ([]domain.MenuItem, error)
}
