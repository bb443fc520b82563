package domain

import (
	"encoding/json"
	"fmt"
)

const (
	TypeLocationUpdate = "location_update"
	TypeOrderUpdate    = "order_update"
	TypeNewOrder       = "new_order"
)

// Inbound is a parsed realtime frame. Frames are validated into a typed
// variant before any handler touches their fields.
type Inbound interface{ inbound() }

// LocationUpdate is a vendor pushing its current position.
// Wire shape: {"type":"location_update","id":"v1","lat":28.62,"lng":77.21}
type LocationUpdate struct {
	VendorID string
	Lat      float64
	Lng      float64
}

func (LocationUpdate) inbound() {}

// OrderUpdate is a vendor-driven order status change. The core forwards it
// verbatim, so only the raw frame is retained.
type OrderUpdate struct {
	Raw []byte
}

func (OrderUpdate) inbound() {}

// NewOrderEvent is the server-originated broadcast sent when an order is
// placed through the HTTP facade.
type NewOrderEvent struct {
	Type     string `json:"type"` // always "new_order"
	VendorID string `json:"vendor_id"`
	Order    Order  `json:"order"`
}

// ParseInbound classifies a raw frame into its typed variant. Required
// fields are checked up front; a frame that fails here carries one of the
// protocol sentinel errors and must not reach a handler.
func ParseInbound(raw []byte) (Inbound, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	switch envelope.Type {
	case TypeLocationUpdate:
		var in struct {
			ID  *string  `json:"id"`
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		}
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		if in.ID == nil || *in.ID == "" || in.Lat == nil || in.Lng == nil {
			return nil, fmt.Errorf("%w: location_update needs id, lat and lng", ErrMalformedMessage)
		}
		return LocationUpdate{VendorID: *in.ID, Lat: *in.Lat, Lng: *in.Lng}, nil
	case TypeOrderUpdate:
		return OrderUpdate{Raw: raw}, nil
	case "":
		return nil, ErrMissingMessageType
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, envelope.Type)
	}
}
