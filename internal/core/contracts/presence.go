package contracts

import (
	"context"
	"time"
)

// VendorPresence tracks which vendors are currently live. A vendor counts
// as live for a window after its last accepted location update; entries
// age out on their own. All calls are best effort.
type VendorPresence interface {
	// MarkOnline records vendor activity with the given inactivity window.
	MarkOnline(ctx context.Context, vendorID string, window time.Duration) error
	// OnlineVendors returns the ids of vendors still inside their window.
	OnlineVendors(ctx context.Context) ([]string, error)
	// Clear drops all presence state.
	Clear(ctx context.Context) error
}
