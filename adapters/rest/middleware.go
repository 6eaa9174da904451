package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"employee-task-service/core"
	"employee-task-service/pkg/auth"
	"employee-task-service/pkg/res"
)

type ctxKey string

const userKey ctxKey = "current-user"

// UserFromContext returns the authenticated user stored by the auth
// middleware.
func UserFromContext(ctx context.Context) (core.User, bool) {
	u, ok := ctx.Value(userKey).(core.User)
	return u, ok
}

// NewAuthMiddleware resolves the bearer token to a stored user. A token whose
// subject no longer exists is rejected the same as a bad signature.
func NewAuthMiddleware(log *slog.Logger, svc *core.Service, tokens *auth.TokenManager, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, tokenString, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				res.Error(w, "Not authenticated", http.StatusUnauthorized)
				return
			}

			username, err := tokens.Parse(tokenString)
			if err != nil {
				res.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			user, err := svc.GetUserByUsername(ctx, username)
			if err != nil {
				log.Debug("token subject not resolvable", "username", username, "error", err)
				res.Error(w, core.ErrUserNotFound.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
		})
	}
}

// NewRecoverMiddleware is the outermost boundary: panics are logged and
// collapse to an opaque 500. No detail leaves the process.
func NewRecoverMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("unhandled panic", "path", r.URL.Path, "panic", rec)
					res.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
