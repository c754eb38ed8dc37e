package handler

import (
	"net/http"

	"vineyard/internal/model"
	"vineyard/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles receipt, purchase and order history HTTP requests.
type OrderHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.CheckoutService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// GetReceipt handles GET /api/receipts/{id} requests.
func (h *OrderHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	id, ok := h.receiptID(w, r)
	if !ok {
		return
	}

	receipt, err := h.service.GetReceipt(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

// Purchase handles POST /api/receipts/{id}/purchase requests.
func (h *OrderHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	id, ok := h.receiptID(w, r)
	if !ok {
		return
	}

	var req model.PurchaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	receipt, err := h.service.Purchase(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

// History handles GET /api/users/{owner}/orders requests with optional
// search and paymentType filters.
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.OrderFilter{
		Search:      query.Get("search"),
		PaymentType: query.Get("paymentType"),
	}

	receipts, err := h.service.History(r.Context(), r.PathValue("owner"), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, receipts)
}

func (h *OrderHandler) receiptID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidInput, "invalid receipt ID format", h.logger)
		return uuid.Nil, false
	}
	return id, true
}
