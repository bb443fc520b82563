package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
)

// firstOrderID keeps ids in the four-digit range clients already expect.
const firstOrderID = 1000

// OrderService places orders on behalf of the HTTP facade and announces
// them on the realtime channel. Ids come from a process-wide monotonic
// counter, so they are unique for the process lifetime.
type OrderService struct {
	log   *slog.Logger
	store contracts.VendorStore
	hub   contracts.Registry
	seq   atomic.Int64
}

func NewOrderService(log *slog.Logger, store contracts.VendorStore, hub contracts.Registry) *OrderService {
	s := &OrderService{
		log:   log,
		store: store,
		hub:   hub,
	}
	s.seq.Store(firstOrderID - 1)
	return s
}

// PlaceOrder appends a Pending order to the vendor's list and broadcasts
// one new_order event carrying it. An unknown vendor returns
// domain.ErrVendorNotFound and nothing is broadcast.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.PlaceOrder", trace.WithAttributes(
		attribute.String("vendor_id", req.VendorID),
		attribute.String("item", req.Item),
	))
	defer span.End()

	order := domain.Order{
		ID:     s.seq.Add(1),
		Item:   req.Item,
		Status: domain.StatusPending,
		Lat:    req.CustomerLat,
		Lng:    req.CustomerLng,
	}
	if err := s.store.AppendOrder(ctx, req.VendorID, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "append order failed")
		s.log.ErrorContext(ctx, "orders - place order - append failed", "vendor_id", req.VendorID, "err", err)
		return domain.Order{}, err
	}

	data, err := json.Marshal(domain.NewOrderEvent{
		Type:     domain.TypeNewOrder,
		VendorID: req.VendorID,
		Order:    order,
	})
	if err != nil {
		span.RecordError(err)
		return domain.Order{}, err
	}
	s.hub.Broadcast(ctx, data)

	span.SetAttributes(attribute.Int64("order_id", order.ID))
	s.log.InfoContext(ctx, "orders - place order - order placed", "vendor_id", req.VendorID, "order_id", order.ID, "item", order.Item)
	return order, nil
}
