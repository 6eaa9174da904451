package rest

import "github.com/go-playground/validator/v10"

// Validate checks payload constraints before anything reaches the service.
var Validate = validator.New()

type RegisterIn struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type TokenOut struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateEmployeeIn struct {
	FirstName  string `json:"first_name" validate:"required,min=1"`
	LastName   string `json:"last_name" validate:"required,min=1"`
	Email      string `json:"email" validate:"required,email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	IsActive   *bool  `json:"is_active"`
}

type UpdateEmployeeIn struct {
	FirstName  *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName   *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

type CreateTaskIn struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    *int   `json:"priority"`
	DueDate     string `json:"due_date"`
	EmployeeID  *int64 `json:"employee_id,omitempty"` // Nil - unassigned
}

type UpdateTaskIn struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

type AssignTaskIn struct {
	EmployeeID *int64 `json:"employee_id"` // Nil clears the assignment
}
