package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/services"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/platform/logger"
)

type APIHandler struct {
	catalog *services.CatalogService
	orders  *services.OrderService
}

func NewAPIHandler(catalog *services.CatalogService, orders *services.OrderService) *APIHandler {
	return &APIHandler{catalog: catalog, orders: orders}
}

// ListVendors serves the full vendor table keyed by vendor id.
func (h *APIHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	vendors, err := h.catalog.ListVendors(r.Context())
	if err != nil {
		log.ErrorContext(r.Context(), "api handler - list vendors failed", "err", err)
		http.Error(w, "failed to list vendors", http.StatusInternalServerError)
		return
	}
	out := make(map[string]domain.Vendor, len(vendors))
	for _, v := range vendors {
		out[v.ID] = v
	}
	writeJSON(w, http.StatusOK, out)
}

// GetMenu serves one vendor's menu; an unknown vendor gets an empty list.
func (h *APIHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	vendorID := r.PathValue("vendor_id")
	menu, err := h.catalog.GetMenu(r.Context(), vendorID)
	if err != nil {
		log.ErrorContext(r.Context(), "api handler - get menu failed", "vendor_id", vendorID, "err", err)
		http.Error(w, "failed to load menu", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

// OnlineVendors serves the ids of vendors live within the presence window.
func (h *APIHandler) OnlineVendors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"online": h.catalog.OnlineVendors(r.Context()),
	})
}

// PlaceOrder accepts an order, stores it and triggers the new_order
// broadcast. The broadcast happens inline on this request path, not
// through any websocket connection.
func (h *APIHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.ErrorContext(r.Context(), "api handler - place order - bad request", "err", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	order, err := h.orders.PlaceOrder(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"status": "Vendor not found"})
			return
		}
		log.ErrorContext(r.Context(), "api handler - place order failed", "vendor_id", req.VendorID, "err", err)
		http.Error(w, "failed to place order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "Order Placed",
		"order_id": order.ID,
	})
}

// Healthz is the liveness probe.
func (h *APIHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
