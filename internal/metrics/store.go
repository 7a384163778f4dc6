package metrics

import (
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/cart"
	"github.com/aaravmahajanofficial/storefront/internal/wishlist"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_operations_total",
			Help: "Effective cart mutations by operation.",
		},
		[]string{"op"},
	)
	wishlistOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_wishlist_operations_total",
			Help: "Effective wishlist mutations by operation.",
		},
		[]string{"op"},
	)
	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_sessions_active",
			Help: "Shopper sessions currently held in memory.",
		},
	)
	ordersPlacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Orders placed through checkout.",
		},
	)
	orderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_order_total",
			Help:    "Order totals, in catalog currency units.",
			Buckets: []float64{500, 1000, 2500, 5000, 10000, 25000, 50000, 100000},
		},
	)
	checkoutRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_rejections_total",
			Help: "Checkout submissions rejected by shipping validation, by field.",
		},
		[]string{"field"},
	)
)

// SessionListener turns store change events into counters and debug logs.
// It satisfies session.Listener.
type SessionListener struct {
	logger *slog.Logger
}

func NewSessionListener(logger *slog.Logger) *SessionListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionListener{logger: logger}
}

func (l *SessionListener) CartChanged(sessionID string, ev cart.Event) {
	cartOperationsTotal.WithLabelValues(string(ev.Op)).Inc()
	l.logger.Debug("Cart changed",
		slog.String("sessionID", sessionID),
		slog.String("op", string(ev.Op)),
		slog.Int64("productID", ev.ProductID),
		slog.Int("quantity", ev.Quantity))
}

func (l *SessionListener) WishlistChanged(sessionID string, ev wishlist.Event) {
	wishlistOperationsTotal.WithLabelValues(string(ev.Op)).Inc()
	l.logger.Debug("Wishlist changed",
		slog.String("sessionID", sessionID),
		slog.String("op", string(ev.Op)),
		slog.Int64("productID", ev.ProductID))
}

func (l *SessionListener) SessionsActive(n int) {
	sessionsActive.Set(float64(n))
}

func OrderPlaced(total float64) {
	ordersPlacedTotal.Inc()
	orderValue.Observe(total)
}

func CheckoutRejected(fields map[string]string) {
	for field := range fields {
		checkoutRejectionsTotal.WithLabelValues(field).Inc()
	}
}
