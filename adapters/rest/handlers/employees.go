package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"employee-task-service/adapters/rest"
	"employee-task-service/core"
	"employee-task-service/pkg/res"
)

func NewCreateEmployeeHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateEmployeeIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := rest.Validate.Struct(in); err != nil {
			res.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		active := true
		if in.IsActive != nil {
			active = *in.IsActive
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		emp, err := svc.CreateEmployee(ctx, core.Employee{
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Email:      in.Email,
			Position:   in.Position,
			Department: in.Department,
			IsActive:   active,
		})
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, emp, http.StatusCreated)
	}
}

func NewListEmployeesHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, ok := listParams(r)
		if !ok {
			res.Error(w, "invalid skip or limit", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListEmployees(ctx, skip, limit)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, items, http.StatusOK)
	}
}

func NewGetEmployeeHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		emp, err := svc.GetEmployeeDetail(ctx, id)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, emp, http.StatusOK)
	}
}

func NewUpdateEmployeeHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.UpdateEmployeeIn
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

		emp, err := svc.PatchEmployee(ctx, id, core.EmployeePatch{
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Email:      in.Email,
			Position:   in.Position,
			Department: in.Department,
			IsActive:   in.IsActive,
		})
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, emp, http.StatusOK)
	}
}

func NewDeleteEmployeeHandler(log *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.DeleteEmployee(ctx, id); err != nil {
			rest.WriteErr(w, err)
			return
		}
		if user, ok := rest.UserFromContext(r.Context()); ok {
			log.Info("employee deleted with tasks", "employee_id", id, "by", user.Username)
		}
		res.NoContent(w)
	}
}

func NewListEmployeeTasksHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		skip, limit, ok := listParams(r)
		if !ok {
			res.Error(w, "invalid skip or limit", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tasks, err := svc.ListEmployeeTasks(ctx, id, skip, limit)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		if tasks == nil {
			tasks = []core.Task{}
		}
		res.Json(w, tasks, http.StatusOK)
	}
}

func NewCreateEmployeeTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		in, ok := decodeTaskIn(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		// employee_id in the body is ignored, the path parameter wins
		task, err := svc.CreateEmployeeTask(ctx, id, taskFromIn(in))
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusCreated)
	}
}
