package core

import "time"

// User is an API identity. The password hash never leaves the service.
type User struct {
	ID             int64  `json:"id" db:"id"`
	Username       string `json:"username" db:"username"`
	HashedPassword string `json:"-" db:"hashed_password"`
	IsActive       bool   `json:"is_active" db:"is_active"`
}

type Employee struct {
	ID         int64     `json:"id" db:"id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	Email      string    `json:"email" db:"email"`
	Position   string    `json:"position" db:"position"`
	Department string    `json:"department" db:"department"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Task statuses are stored as free strings, "todo" being the default.
const (
	StatusTODO       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

const DefaultPriority = 3

type Task struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	Priority    int       `json:"priority" db:"priority"`
	DueDate     string    `json:"due_date" db:"due_date"`
	EmployeeID  *int64    `json:"employee_id" db:"employee_id"` // Nil - unassigned
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// EmployeeWithCount is the row shape of the employee list query, which joins
// the task count onto each employee.
type EmployeeWithCount struct {
	Employee
	TaskCount int64 `json:"task_count" db:"task_count"`
}

// EmployeeDetail is the outbound employee projection: the employee itself,
// its live task count and its task list.
type EmployeeDetail struct {
	Employee
	TaskCount int64  `json:"task_count"`
	Tasks     []Task `json:"tasks"`
}

// EmployeePatch carries only the fields the caller supplied. Nil means
// "leave unchanged".
type EmployeePatch struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Position   *string
	Department *string
	IsActive   *bool
}

// TaskPatch mirrors EmployeePatch for tasks. Assignment changes go through
// AssignTask, not the patch.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *int
	DueDate     *string
}
