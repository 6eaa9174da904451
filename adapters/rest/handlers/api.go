package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"employee-task-service/adapters/rest"
	"employee-task-service/core"
	"employee-task-service/pkg/auth"
	"employee-task-service/pkg/res"
)

const defaultListLimit = 100

func Register(mux *http.ServeMux, log *slog.Logger, svc *core.Service, tokens *auth.TokenManager, timeout time.Duration) {
	requireUser := rest.NewAuthMiddleware(log, svc, tokens, timeout)

	mux.Handle("GET /{$}", NewRootHandler())
	mux.Handle("GET /ping", NewPingHandler(log, svc, timeout))

	// auth
	mux.Handle("POST /auth/register", NewRegisterHandler(log, svc, timeout))
	mux.Handle("POST /auth/token", NewTokenHandler(log, svc, tokens, timeout))

	// employees
	mux.Handle("POST /employees", requireUser(NewCreateEmployeeHandler(log, svc, timeout)))
	mux.Handle("GET /employees", requireUser(NewListEmployeesHandler(log, svc, timeout)))
	mux.Handle("GET /employees/{id}", requireUser(NewGetEmployeeHandler(log, svc, timeout)))
	mux.Handle("PUT /employees/{id}", requireUser(NewUpdateEmployeeHandler(log, svc, timeout)))
	mux.Handle("DELETE /employees/{id}", requireUser(NewDeleteEmployeeHandler(log, svc, timeout)))
	mux.Handle("GET /employees/{id}/tasks", requireUser(NewListEmployeeTasksHandler(log, svc, timeout)))
	mux.Handle("POST /employees/{id}/tasks", requireUser(NewCreateEmployeeTaskHandler(log, svc, timeout)))

	// tasks
	mux.Handle("POST /tasks", requireUser(NewCreateTaskHandler(log, svc, timeout)))
	mux.Handle("GET /tasks", requireUser(NewListTasksHandler(log, svc, timeout)))
	mux.Handle("GET /tasks/{id}", requireUser(NewGetTaskHandler(log, svc, timeout)))
	mux.Handle("PUT /tasks/{id}", requireUser(NewUpdateTaskHandler(log, svc, timeout)))
	mux.Handle("DELETE /tasks/{id}", requireUser(NewDeleteTaskHandler(log, svc, timeout)))
	mux.Handle("PATCH /tasks/{id}/assign", requireUser(NewAssignTaskHandler(log, svc, timeout)))
}

func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]any{"message": "Employee & Task API"}, http.StatusOK)
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// listParams reads skip/limit from the query string. Absent values default to
// skip=0, limit=100; limit=0 is honoured as-is and yields an empty page.
func listParams(r *http.Request) (skip, limit int, ok bool) {
	skip, limit = 0, defaultListLimit
	q := r.URL.Query()

	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		skip = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		limit = n
	}
	return skip, limit, true
}
