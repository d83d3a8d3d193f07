package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"quickshow-booking/pkg/utils"
)

// Identity resolves the caller from the X-User-ID header and falls back to
// the configured default user when none is supplied. There is no session
// validation here; authentication lives outside this service.
func Identity(defaultUserID string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-User-ID")
			if userID == "" {
				userID = defaultUserID
				logger.Debug("no user header, using default identity",
					zap.String("user_id", userID),
					zap.String("path", r.URL.Path),
				)
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
