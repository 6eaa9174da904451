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

func decodeTaskIn(w http.ResponseWriter, r *http.Request) (rest.CreateTaskIn, bool) {
	var in rest.CreateTaskIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		res.Error(w, "invalid json", http.StatusBadRequest)
		return rest.CreateTaskIn{}, false
	}
	if err := rest.Validate.Struct(in); err != nil {
		res.Error(w, err.Error(), http.StatusBadRequest)
		return rest.CreateTaskIn{}, false
	}
	return in, true
}

func taskFromIn(in rest.CreateTaskIn) core.Task {
	priority := core.DefaultPriority
	if in.Priority != nil {
		priority = *in.Priority
	}
	return core.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    priority,
		DueDate:     in.DueDate,
		EmployeeID:  in.EmployeeID,
	}
}

func NewCreateTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeTaskIn(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		task, err := svc.CreateTask(ctx, taskFromIn(in))
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusCreated)
	}
}

func NewListTasksHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, ok := listParams(r)
		if !ok {
			res.Error(w, "invalid skip or limit", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tasks, err := svc.ListTasks(ctx, skip, limit)
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

func NewGetTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		task, err := svc.GetTask(ctx, id)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusOK)
	}
}

func NewUpdateTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.UpdateTaskIn
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

		task, err := svc.PatchTask(ctx, id, core.TaskPatch{
			Title:       in.Title,
			Description: in.Description,
			Status:      in.Status,
			Priority:    in.Priority,
			DueDate:     in.DueDate,
		})
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusOK)
	}
}

func NewAssignTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.AssignTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		task, err := svc.AssignTask(ctx, id, in.EmployeeID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusOK)
	}
}

func NewDeleteTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.DeleteTask(ctx, id); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.NoContent(w)
	}
}
