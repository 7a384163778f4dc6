package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/session"
)

const SessionHeader = "X-Session-ID"

type sessionContextKey string

const SessionKey = sessionContextKey("session")

// Session resolves the shopper session from the X-Session-ID header. A missing
// or malformed id gets a freshly minted one, which is echoed on the response
// so the client can keep using it.
func Session(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			id := r.Header.Get(SessionHeader)
			if !session.ValidID(id) {
				id = session.NewID()
			}

			sess, created := manager.Get(id)
			w.Header().Set(SessionHeader, sess.ID)

			logger := LoggerFromContext(r.Context()).With(slog.String("session_id", sess.ID))
			if created {
				logger.Info("Session started")
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			ctx = context.WithValue(ctx, LoggerKey, logger)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	return sess, ok
}
