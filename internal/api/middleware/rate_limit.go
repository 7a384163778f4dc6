package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

// RateLimiter is satisfied by repository.RateLimitRepository.
type RateLimiter interface {
	CheckCheckoutRateLimit(ctx context.Context, sessionID string) (bool, int, int, error)
}

// CheckoutRateLimit caps checkout attempts per session. It must run after the
// session middleware. Limiter failures are logged and the request is let through.
func CheckoutRateLimit(limiter RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			logger := LoggerFromContext(r.Context())

			sess, ok := SessionFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			allowed, remaining, retryAfter, err := limiter.CheckCheckoutRateLimit(r.Context(), sess.ID)
			if err != nil {
				logger.Error("Checkout rate limit check failed", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				logger.Warn("Checkout rate limit exceeded", slog.Int("retryAfter", retryAfter))
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, errors.TooManyRequestsError("Too many checkout attempts").
					WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter)))
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			next.ServeHTTP(w, r)
		})
	}
}
