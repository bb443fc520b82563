package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/plugins/memstore"
)

// fakeHub records every broadcast payload.
type fakeHub struct {
	mu        sync.Mutex
	broadcast [][]byte
}

func (f *fakeHub) Register(c contracts.Client)   {}
func (f *fakeHub) Unregister(c contracts.Client) {}
func (f *fakeHub) Snapshot() []contracts.Client  { return nil }

func (f *fakeHub) Broadcast(ctx context.Context, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broadcast = append(f.broadcast, data)
}

func (f *fakeHub) messages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.broadcast))
	copy(out, f.broadcast)
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDispatchFixture() (*DispatchService, *memstore.Store, *memstore.Presence, *fakeHub) {
	store := memstore.NewSeeded()
	presence := memstore.NewPresence()
	hub := &fakeHub{}
	svc := NewDispatchService(discardLogger(), store, presence, hub, 45*time.Second)
	return svc, store, presence, hub
}

func TestLocationUpdateForKnownVendor(t *testing.T) {
	svc, store, presence, hub := newDispatchFixture()
	ctx := context.Background()

	raw := []byte(`{"type":"location_update","id":"v1","lat":28.62,"lng":77.21}`)
	require.NoError(t, svc.HandleFrame(ctx, "client-a", raw))

	v, err := store.GetVendor(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 28.62, v.Lat)
	assert.Equal(t, 77.21, v.Lng)

	msgs := hub.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, raw, msgs[0], "frame must be broadcast verbatim")

	online, err := presence.OnlineVendors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1"}, online)
}

func TestLocationUpdateForUnknownVendorStillBroadcasts(t *testing.T) {
	svc, store, presence, hub := newDispatchFixture()
	ctx := context.Background()

	raw := []byte(`{"type":"location_update","id":"v99","lat":1.0,"lng":2.0}`)
	require.NoError(t, svc.HandleFrame(ctx, "client-a", raw))

	msgs := hub.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, raw, msgs[0])

	// No vendor state changed and no presence recorded.
	v1, err := store.GetVendor(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 28.6139, v1.Lat)
	online, err := presence.OnlineVendors(ctx)
	require.NoError(t, err)
	assert.Empty(t, online)
}

func TestOrderUpdateIsForwardedVerbatim(t *testing.T) {
	svc, _, _, hub := newDispatchFixture()

	raw := []byte(`{"type":"order_update","order_id":1000,"status":"Accepted","note":"5 min"}`)
	require.NoError(t, svc.HandleFrame(context.Background(), "client-a", raw))

	msgs := hub.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, raw, msgs[0])
}

func TestMalformedFrameIsDroppedWithoutBroadcast(t *testing.T) {
	svc, _, _, hub := newDispatchFixture()
	ctx := context.Background()

	err := svc.HandleFrame(ctx, "client-a", []byte(`{"type":"warp"}`))
	assert.ErrorIs(t, err, domain.ErrUnknownMessageType)

	err = svc.HandleFrame(ctx, "client-a", []byte(`{"type":"location_update","id":"v1"}`))
	assert.ErrorIs(t, err, domain.ErrMalformedMessage)

	assert.Empty(t, hub.messages())
}
