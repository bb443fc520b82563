package registry

import (
	"context"
	"log/slog"
	"sync"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
)

// Registry is the live set of realtime clients plus the broadcast fan-out
// over it. Mutation and iteration are guarded by one RWMutex so a client
// is never delivered to after removal and never removed twice.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]contracts.Client // client id → client
	log     *slog.Logger
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		clients: make(map[string]contracts.Client),
		log:     log,
	}
}

func (h *Registry) Register(c contracts.Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID()] = c
}

// Unregister is idempotent; removing an absent client is a no-op.
func (h *Registry) Unregister(c contracts.Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c.ID())
}

// Snapshot returns the clients registered at the time of the call. The
// broadcast loop iterates this copy so concurrent register/unregister
// never invalidates a pass in flight.
func (h *Registry) Snapshot() []contracts.Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]contracts.Client, 0, len(h.clients))
	for _, c := range h.clients {
		out = append(out, c)
	}
	return out
}

// Broadcast pushes one already-serialized message to every registered
// client, including whoever sent it. Each delivery is independent: a
// client that fails its send is evicted and closed while the rest of the
// pass continues.
func (h *Registry) Broadcast(ctx context.Context, data []byte) {
	for _, c := range h.Snapshot() {
		if err := c.Send(ctx, data); err != nil {
			h.log.WarnContext(ctx, "registry - broadcast - evicting client", "client_id", c.ID(), "err", err)
			h.Unregister(c)
			c.Close()
		}
	}
}
