package core

import "context"

// DB is the storage port the service runs against. The Postgres adapter and
// the in-memory test fake both implement it. Every mutation returns the
// persisted row so callers see server-assigned fields (id, created_at).
type DB interface {
	Ping(ctx context.Context) error

	// users
	CreateUser(ctx context.Context, username, hashedPassword string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)

	// employees
	CreateEmployee(ctx context.Context, e Employee) (Employee, error)
	GetEmployee(ctx context.Context, id int64) (Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (Employee, error)
	ListEmployees(ctx context.Context, skip, limit int) ([]EmployeeWithCount, error)
	UpdateEmployee(ctx context.Context, e Employee) (Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error

	// tasks
	CreateTask(ctx context.Context, t Task) (Task, error)
	GetTask(ctx context.Context, id int64) (Task, error)
	ListTasks(ctx context.Context, skip, limit int) ([]Task, error)
	ListEmployeeTasks(ctx context.Context, employeeID int64, skip, limit int) ([]Task, error)
	UpdateTask(ctx context.Context, t Task) (Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
