package router

import (
	"net/http"

	"vineyard/internal/handler"
	"vineyard/internal/metrics"
	"vineyard/internal/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Menu    *handler.MenuHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Account *handler.AccountHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	h Handlers,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	adminKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()
	admin := middleware.AdminAPIKey(adminKey, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	})
	mux.Handle("GET /metrics", metrics.Handler(gatherer))

	// Menu routes; writes require the admin key
	mux.HandleFunc("GET /api/menu", h.Menu.List)
	mux.HandleFunc("GET /api/menu/{keyText}", h.Menu.Get)
	mux.Handle("POST /api/menu", admin(http.HandlerFunc(h.Menu.Create)))
	mux.Handle("DELETE /api/menu/{keyText}", admin(http.HandlerFunc(h.Menu.Delete)))
	mux.Handle("POST /api/menu/delete", admin(http.HandlerFunc(h.Menu.DeleteMany)))

	// Cart routes
	mux.HandleFunc("POST /api/carts", h.Cart.CreateGuest)
	mux.HandleFunc("GET /api/carts/{owner}", h.Cart.Get)
	mux.HandleFunc("DELETE /api/carts/{owner}", h.Cart.Clear)
	mux.HandleFunc("POST /api/carts/{owner}/items", h.Cart.AddItem)
	mux.HandleFunc("PUT /api/carts/{owner}/items/{keyText}", h.Cart.UpdateQuantity)
	mux.HandleFunc("DELETE /api/carts/{owner}/items/{keyText}", h.Cart.RemoveLine)
	mux.HandleFunc("POST /api/carts/{owner}/checkout", h.Cart.Checkout)

	// Receipt and order history routes
	mux.HandleFunc("GET /api/receipts/{id}", h.Order.GetReceipt)
	mux.HandleFunc("POST /api/receipts/{id}/purchase", h.Order.Purchase)
	mux.HandleFunc("GET /api/users/{owner}/orders", h.Order.History)

	// Account and review routes
	mux.HandleFunc("POST /api/accounts/signup", h.Account.SignUp)
	mux.HandleFunc("POST /api/accounts/login", h.Account.LogIn)
	mux.HandleFunc("GET /api/reviews", h.Account.ListReviews)
	mux.HandleFunc("POST /api/reviews", h.Account.SubmitReview)

	// Apply middleware in order: Recovery -> Logging -> Metrics -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(handler)
	handler = middleware.Metrics(m)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
