package api

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Services struct {
	Catalog  service.CatalogService
	Cart     service.CartService
	Wishlist service.WishlistService
	Checkout service.CheckoutService

	// CheckoutLimiter is optional; checkout is unlimited without it.
	CheckoutLimiter middleware.RateLimiter
}

// NewRouter registers the shopper API under /api/v1 behind the session
// middleware. Ambient endpoints (health, metrics, swagger) are mounted
// without a session. The returned handler carries the full middleware chain.
func NewRouter(svc Services, sessions *session.Manager, healthHandler http.Handler) http.Handler {

	productHandler := handlers.NewProductHandler(svc.Catalog)
	cartHandler := handlers.NewCartHandler(svc.Cart)
	wishlistHandler := handlers.NewWishlistHandler(svc.Wishlist)
	checkoutHandler := handlers.NewCheckoutHandler(svc.Checkout)
	orderHandler := handlers.NewOrderHandler(svc.Checkout)

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	apiMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	apiMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	apiMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	apiMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	apiMux.HandleFunc("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	apiMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	apiMux.HandleFunc("POST /api/v1/cart/items/{id}/increment", cartHandler.IncrementItem())
	apiMux.HandleFunc("POST /api/v1/cart/items/{id}/decrement", cartHandler.DecrementItem())
	apiMux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist())
	apiMux.HandleFunc("POST /api/v1/wishlist/items", wishlistHandler.AddItem())
	apiMux.HandleFunc("GET /api/v1/wishlist/items/{id}", wishlistHandler.Contains())
	apiMux.HandleFunc("DELETE /api/v1/wishlist/items/{id}", wishlistHandler.RemoveItem())
	apiMux.HandleFunc("POST /api/v1/wishlist/items/{id}/toggle", wishlistHandler.ToggleItem())
	apiMux.HandleFunc("POST /api/v1/checkout/validate", checkoutHandler.ValidateShipping())
	var placeOrder http.Handler = checkoutHandler.PlaceOrder()
	if svc.CheckoutLimiter != nil {
		placeOrder = middleware.CheckoutRateLimit(svc.CheckoutLimiter)(placeOrder)
	}
	apiMux.Handle("POST /api/v1/checkout", placeOrder)
	apiMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder())

	// metrics wraps the mux directly so the matched pattern is visible to it
	var apiHandler http.Handler = metrics.Middleware(apiMux)
	apiHandler = middleware.Session(sessions)(apiHandler)

	routerMux := http.NewServeMux()
	routerMux.Handle("/api/v1/", apiHandler)
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if healthHandler != nil {
		routerMux.Handle("GET /health", healthHandler)
	}

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)

	return handler
}
