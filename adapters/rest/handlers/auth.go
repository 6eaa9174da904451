package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"employee-task-service/adapters/rest"
	"employee-task-service/core"
	"employee-task-service/pkg/auth"
	"employee-task-service/pkg/res"
)

func NewRegisterHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.RegisterIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := rest.Validate.Struct(in); err != nil {
			res.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		user, err := svc.RegisterUser(ctx, in.Username, in.Password)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, user, http.StatusCreated)
	}
}

// NewTokenHandler exchanges form credentials for a bearer token.
func NewTokenHandler(log *slog.Logger, svc *core.Service, tokens *auth.TokenManager, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			res.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		user, err := svc.Authenticate(ctx, username, password)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		token, err := tokens.Issue(user.Username)
		if err != nil {
			log.Error("token issue failed", "error", err)
			res.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		res.Json(w, rest.TokenOut{AccessToken: token, TokenType: "bearer"}, http.StatusOK)
	}
}
