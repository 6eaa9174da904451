package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"employee-task-service/core"
	"employee-task-service/pkg/res"
)

func NewPingHandler(log *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.Ping(ctx); err != nil {
			log.Warn("ping failed", "error", err)
			res.Json(w, map[string]string{"database": "down"}, http.StatusServiceUnavailable)
			return
		}
		res.Json(w, map[string]string{"database": "ok"}, http.StatusOK)
	}
}
