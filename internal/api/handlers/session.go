package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

// requireSession fetches the shopper session placed in the context by the
// session middleware, writing an error response when it is missing.
func requireSession(w http.ResponseWriter, r *http.Request) (*session.Session, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		logger.Error("Session missing from request context")
		response.Error(w, errors.InternalError("Session unavailable"))
		return nil, logger, false
	}

	return sess, logger, true
}
