package core

import "errors"

// Users errors
var (
	ErrUserExists         = errors.New("username already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

// Employees errors
var (
	ErrEmployeeEmailExists = errors.New("email already registered")
	ErrEmployeeNotFound    = errors.New("employee not found")
)

// Tasks errors
var (
	ErrTaskNotFound = errors.New("task not found")
)

var ErrInvalidArgs = errors.New("invalid args")
