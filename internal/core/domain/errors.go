package domain

import "errors"

var (
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrMissingMessageType = errors.New("message has no type field")
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrMalformedMessage   = errors.New("malformed message")
	ErrClientClosed       = errors.New("client closed")
	ErrSlowClient         = errors.New("client send buffer full")
)
