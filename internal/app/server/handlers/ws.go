package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/app/server/ws"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/services"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/platform/logger"
)

type WSHandler struct {
	hub      contracts.Registry
	dispatch *services.DispatchService
}

func NewWSHandler(hub contracts.Registry, dispatch *services.DispatchService) *WSHandler {
	return &WSHandler{
		hub:      hub,
		dispatch: dispatch,
	}
}

// Handler runs one realtime connection from upgrade to close. Membership
// in the registry lasts exactly as long as the read loop: registered once
// the upgrade succeeds, removed on every exit path. Frames are dispatched
// inline so a connection's messages are handled strictly in arrival order.
func (s *WSHandler) Handler(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	// The connection must outlive the upgrade request's context.
	sessionCtx := context.WithoutCancel(r.Context())
	ctx, cancel := context.WithCancel(sessionCtx)
	defer cancel()

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true // tighten later
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.ErrorContext(r.Context(), "ws handler - upgrade failed", "err", err)
		return
	}

	clientID := uuid.NewString()
	socket := ws.NewWebSocket(ctx, conn)
	client := ws.NewClient(ctx, socket, clientID)

	s.hub.Register(client)
	defer client.Close()
	defer s.hub.Unregister(client)
	log.InfoContext(r.Context(), "ws handler - connection established", "client_id", clientID)

	socket.ReadLoop(func(data []byte) {
		_ = s.dispatch.HandleFrame(ctx, clientID, data)
	})

	log.InfoContext(r.Context(), "ws handler - connection closed", "client_id", clientID)
}
