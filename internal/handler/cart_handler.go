package handler

import (
	"errors"
	"io"
	"net/http"

	"vineyard/internal/model"
	"vineyard/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart and checkout HTTP requests.
type CartHandler struct {
	carts    service.CartService
	checkout service.CheckoutService
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts service.CartService, checkout service.CheckoutService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:    carts,
		checkout: checkout,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// CreateGuest handles POST /api/carts requests by issuing a guest owner id.
func (h *CartHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, model.GuestCartResponse{OwnerID: h.carts.NewGuestID()})
}

// Get handles GET /api/carts/{owner} requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.Get(r.Context(), r.PathValue("owner"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// AddItem handles POST /api/carts/{owner}/items requests. Quantity defaults to 1.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := h.carts.AddItem(r.Context(), r.PathValue("owner"), req.KeyText, req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// UpdateQuantity handles PUT /api/carts/{owner}/items/{keyText} requests.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	view, err := h.carts.UpdateQuantity(r.Context(), r.PathValue("owner"), r.PathValue("keyText"), req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// RemoveLine handles DELETE /api/carts/{owner}/items/{keyText} requests.
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.RemoveLine(r.Context(), r.PathValue("owner"), r.PathValue("keyText"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Clear handles DELETE /api/carts/{owner} requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), r.PathValue("owner")); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Checkout handles POST /api/carts/{owner}/checkout requests. The body is optional.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeServiceError(w, err, h.logger)
		return
	}

	receipt, err := h.checkout.Checkout(r.Context(), r.PathValue("owner"), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, receipt)
}
