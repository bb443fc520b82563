package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
)

var tracer = otel.Tracer("gullylink-services")

// DispatchService classifies inbound realtime frames, applies their state
// changes through the vendor store and fans them out through the registry.
// One instance serves every connection.
type DispatchService struct {
	log            *slog.Logger
	store          contracts.VendorStore
	presence       contracts.VendorPresence
	hub            contracts.Registry
	presenceWindow time.Duration
}

func NewDispatchService(
	log *slog.Logger,
	store contracts.VendorStore,
	presence contracts.VendorPresence,
	hub contracts.Registry,
	presenceWindow time.Duration,
) *DispatchService {
	return &DispatchService{
		log:            log,
		store:          store,
		presence:       presence,
		hub:            hub,
		presenceWindow: presenceWindow,
	}
}

// HandleFrame processes one raw frame from one connection.
//
// Frames that fail to parse are dropped and the connection stays open;
// location updates for unknown vendors skip the store write but are still
// broadcast, matching what clients of the original system observe. The
// broadcast always carries the frame verbatim, echoed to everyone
// including the sender.
func (s *DispatchService) HandleFrame(ctx context.Context, clientID string, raw []byte) error {
	ctx, span := tracer.Start(ctx, "DispatchService.HandleFrame", trace.WithAttributes(
		attribute.String("client_id", clientID),
		attribute.Int("frame_size", len(raw)),
	))
	defer span.End()

	msg, err := domain.ParseInbound(raw)
	if err != nil {
		span.RecordError(err)
		s.log.WarnContext(ctx, "dispatch - handle frame - dropping frame", "client_id", clientID, "err", err)
		return err
	}

	switch m := msg.(type) {
	case domain.LocationUpdate:
		span.SetAttributes(attribute.String("vendor_id", m.VendorID))
		if err := s.store.SetVendorLocation(ctx, m.VendorID, m.Lat, m.Lng); err != nil {
			if !errors.Is(err, domain.ErrVendorNotFound) {
				span.RecordError(err)
				span.SetStatus(codes.Error, "store update failed")
				s.log.ErrorContext(ctx, "dispatch - handle frame - set vendor location failed", "vendor_id", m.VendorID, "err", err)
				return err
			}
			s.log.InfoContext(ctx, "dispatch - handle frame - location update for unknown vendor", "vendor_id", m.VendorID)
		} else if err := s.presence.MarkOnline(ctx, m.VendorID, s.presenceWindow); err != nil {
			// presence is best effort
			span.RecordError(err)
			s.log.WarnContext(ctx, "dispatch - handle frame - mark online failed", "vendor_id", m.VendorID, "err", err)
		}
		s.hub.Broadcast(ctx, raw)
	case domain.OrderUpdate:
		s.hub.Broadcast(ctx, m.Raw)
	}
	return nil
}
