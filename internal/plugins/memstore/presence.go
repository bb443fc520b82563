package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
)

// Presence is the in-memory fallback for contracts.VendorPresence, used
// when no Redis is configured and in tests. Entries age out lazily on
// read.
type Presence struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

var _ contracts.VendorPresence = (*Presence)(nil)

func NewPresence() *Presence {
	return &Presence{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (p *Presence) MarkOnline(ctx context.Context, vendorID string, window time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expires[vendorID] = p.now().Add(window)
	return nil
}

func (p *Presence) OnlineVendors(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	out := make([]string, 0, len(p.expires))
	for id, exp := range p.expires {
		if exp.Before(now) {
			delete(p.expires, id)
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (p *Presence) Clear(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expires = make(map[string]time.Time)
	return nil
}
