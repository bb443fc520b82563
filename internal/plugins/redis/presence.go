package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
)

const presenceKey = "presence:vendors"

// VendorPresence keeps the live-vendor set in a Redis ZSet scored by the
// last-seen unix timestamp. Stale members are pruned on every read, and
// the key itself expires if the whole marketplace goes quiet.
type VendorPresence struct {
	rdb    *redis.Client
	window time.Duration
}

var _ contracts.VendorPresence = (*VendorPresence)(nil)

func NewVendorPresence(rdb *redis.Client, window time.Duration) *VendorPresence {
	return &VendorPresence{rdb: rdb, window: window}
}

func (p *VendorPresence) MarkOnline(ctx context.Context, vendorID string, window time.Duration) error {
	err := p.rdb.ZAdd(ctx, presenceKey, redis.Z{
		Score:  float64(time.Now().Unix()),
		Member: vendorID,
	}).Err()
	if err != nil {
		return err
	}
	// Expire the whole set so an idle marketplace doesn't leak the key.
	return p.rdb.Expire(ctx, presenceKey, window*2).Err()
}

func (p *VendorPresence) OnlineVendors(ctx context.Context) ([]string, error) {
	threshold := time.Now().Add(-p.window).Unix()

	// Prune anyone outside the window before reading.
	if err := p.rdb.ZRemRangeByScore(ctx, presenceKey, "-inf", strconv.FormatInt(threshold, 10)).Err(); err != nil {
		return nil, err
	}
	return p.rdb.ZRange(ctx, presenceKey, 0, -1).Result()
}

func (p *VendorPresence) Clear(ctx context.Context) error {
	return p.rdb.Del(ctx, presenceKey).Err()
}
