package middleware

import (
	"context"
	"net/http"

	"taza-be/internal/auth"
	"taza-be/internal/logger"
	"taza-be/internal/metrics"
	"taza-be/internal/utils"

	"go.uber.org/zap"
)

// SessionValidator confirms that the session behind a token is still live.
type SessionValidator interface {
	ValidateSession(ctx context.Context, sessionID string, userID uint) error
}

// Auth is passive: requests without a usable token pass through anonymously.
// When a token is present but invalid, expired or revoked, the reason is kept
// in the context so routes that need a caller can report it.
func Auth(tokens *auth.Manager, sessions SessionValidator, reg *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := auth.ExtractAccessToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			log := logger.FromCtx(ctx).With(zap.String("layer", "middleware"), zap.String("method", "Auth"))

			id, err := tokens.Verify(raw)
			if err != nil {
				reg.Inc(metrics.AuthFailures)
				log.Debug("token rejected", zap.Error(err))
				next.ServeHTTP(w, r.WithContext(utils.SetAuthError(ctx, err)))
				return
			}

			if !id.Legacy && sessions != nil {
				if err := sessions.ValidateSession(ctx, id.SessionID, id.UserID); err != nil {
					reg.Inc(metrics.AuthFailures)
					log.Debug("session rejected", zap.Uint("user_id", id.UserID), zap.Error(err))
					next.ServeHTTP(w, r.WithContext(utils.SetAuthError(ctx, err)))
					return
				}
			}

			ctx = utils.SetUserContext(ctx, id.UserID, id.SessionID, id.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
