package contracts

import "context"

// Registry tracks every currently connected realtime client and fans
// messages out to them. One instance per process, shared by all
// connection handlers and the HTTP order path.
type Registry interface {
	// Register adds a client after a successful handshake. The caller
	// guarantees each client is added exactly once.
	Register(c Client)
	// Unregister removes a client. Safe to call for a client that was
	// already removed; disconnects are detected at more than one point.
	Unregister(c Client)
	// Snapshot returns the clients registered at the time of the call.
	Snapshot() []Client
	// Broadcast delivers an already-serialized message to every client in
	// the current snapshot, each independently. A failed delivery evicts
	// that client and does not stop the others. Best effort only: no
	// retries, and broadcasts racing from different goroutines may reach
	// clients in different relative orders.
	Broadcast(ctx context.Context, data []byte)
}

// Client is the minimal surface the Registry needs to talk to one
// WebSocket connection.
type Client interface {
	ID() string
	Send(ctx context.Context, data []byte) error
	Close()
}
