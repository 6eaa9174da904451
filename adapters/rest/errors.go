package rest

import (
	"errors"
	"net/http"

	"employee-task-service/core"
	"employee-task-service/pkg/res"
)

// WriteErr maps domain errors to HTTP status codes. Duplicate username/email
// come back as 400 with a detail message, matching the wire behaviour of the
// API this service replaces.
func WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidArgs):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrUserExists), errors.Is(err, core.ErrEmployeeEmailExists):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrInvalidCredentials):
		res.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrEmployeeNotFound),
		errors.Is(err, core.ErrTaskNotFound):
		res.Error(w, err.Error(), http.StatusNotFound)
	default:
		res.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
