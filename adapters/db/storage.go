package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"employee-task-service/core"
)

type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, address string) (*DB, error) {
	conn, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	return &DB{log: log, conn: conn}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Users

func (db *DB) CreateUser(ctx context.Context, username, hashedPassword string) (core.User, error) {
	const q = `
		INSERT INTO users(username, hashed_password)
		VALUES ($1, $2)
		RETURNING id, username, hashed_password, is_active;
	`

	var u core.User
	if err := db.conn.GetContext(ctx, &u, q, username, hashedPassword); err != nil {
		if isUniqueViolation(err) {
			return core.User{}, core.ErrUserExists
		}
		return core.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (db *DB) GetUserByUsername(ctx context.Context, username string) (core.User, error) {
	const q = `SELECT id, username, hashed_password, is_active FROM users WHERE username = $1`

	var u core.User
	if err := db.conn.GetContext(ctx, &u, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.User{}, core.ErrUserNotFound
		}
		return core.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Employees

const employeeColumns = `id, first_name, last_name, email,
	COALESCE(position, '') AS position, COALESCE(department, '') AS department,
	is_active, created_at`

func (db *DB) CreateEmployee(ctx context.Context, e core.Employee) (core.Employee, error) {
	const q = `
		INSERT INTO employees(first_name, last_name, email, position, department, is_active)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6)
		RETURNING ` + employeeColumns + `;
	`

	var out core.Employee
	err := db.conn.GetContext(ctx, &out, q, e.FirstName, e.LastName, e.Email, e.Position, e.Department, e.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return core.Employee{}, core.ErrEmployeeEmailExists
		}
		return core.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return out, nil
}

func (db *DB) GetEmployee(ctx context.Context, id int64) (core.Employee, error) {
	const q = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	var e core.Employee
	if err := db.conn.GetContext(ctx, &e, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Employee{}, core.ErrEmployeeNotFound
		}
		return core.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (db *DB) GetEmployeeByEmail(ctx context.Context, email string) (core.Employee, error) {
	const q = `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	var e core.Employee
	if err := db.conn.GetContext(ctx, &e, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Employee{}, core.ErrEmployeeNotFound
		}
		return core.Employee{}, fmt.Errorf("get employee by email: %w", err)
	}
	return e, nil
}

// ListEmployees joins the per-employee task count onto each row. Employees
// without tasks count zero through the outer join.
func (db *DB) ListEmployees(ctx context.Context, skip, limit int) ([]core.EmployeeWithCount, error) {
	const q = `
		SELECT e.id, e.first_name, e.last_name, e.email,
		       COALESCE(e.position, '') AS position, COALESCE(e.department, '') AS department,
		       e.is_active, e.created_at,
		       COUNT(t.id) AS task_count
		FROM employees e
		LEFT JOIN tasks t ON t.employee_id = e.id
		GROUP BY e.id
		ORDER BY e.id
		LIMIT $1 OFFSET $2;
	`

	var out []core.EmployeeWithCount
	if err := db.conn.SelectContext(ctx, &out, q, limit, skip); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}

func (db *DB) UpdateEmployee(ctx context.Context, e core.Employee) (core.Employee, error) {
	const q = `
		UPDATE employees
		SET first_name = $2,
		    last_name = $3,
		    email = $4,
		    position = NULLIF($5, ''),
		    department = NULLIF($6, ''),
		    is_active = $7
		WHERE id = $1
		RETURNING ` + employeeColumns + `;
	`

	var out core.Employee
	err := db.conn.GetContext(ctx, &out, q, e.ID, e.FirstName, e.LastName, e.Email, e.Position, e.Department, e.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return core.Employee{}, core.ErrEmployeeEmailExists
		}
		if errors.Is(err, sql.ErrNoRows) {
			return core.Employee{}, core.ErrEmployeeNotFound
		}
		return core.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return out, nil
}

func (db *DB) DeleteEmployee(ctx context.Context, id int64) error {
	const q = `DELETE FROM employees WHERE id = $1`

	res, err := db.conn.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrEmployeeNotFound
	}
	return nil
}

// Tasks

const taskColumns = `id, title, COALESCE(description, '') AS description, status, priority,
	COALESCE(due_date, '') AS due_date, employee_id, created_at`

func (db *DB) CreateTask(ctx context.Context, t core.Task) (core.Task, error) {
	const q = `
		INSERT INTO tasks(title, description, status, priority, due_date, employee_id)
		VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), $6)
		RETURNING ` + taskColumns + `;
	`

	var out core.Task
	err := db.conn.GetContext(ctx, &out, q, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.EmployeeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return core.Task{}, core.ErrEmployeeNotFound
		}
		return core.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return out, nil
}

func (db *DB) GetTask(ctx context.Context, id int64) (core.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	var t core.Task
	if err := db.conn.GetContext(ctx, &t, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Task{}, core.ErrTaskNotFound
		}
		return core.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (db *DB) ListTasks(ctx context.Context, skip, limit int) ([]core.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks ORDER BY id LIMIT $1 OFFSET $2`

	var out []core.Task
	if err := db.conn.SelectContext(ctx, &out, q, limit, skip); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

func (db *DB) ListEmployeeTasks(ctx context.Context, employeeID int64, skip, limit int) ([]core.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE employee_id = $1 ORDER BY id LIMIT $2 OFFSET $3`

	var out []core.Task
	if err := db.conn.SelectContext(ctx, &out, q, employeeID, limit, skip); err != nil {
		return nil, fmt.Errorf("list employee tasks: %w", err)
	}
	return out, nil
}

func (db *DB) UpdateTask(ctx context.Context, t core.Task) (core.Task, error) {
	const q = `
		UPDATE tasks
		SET title = $2,
		    description = NULLIF($3, ''),
		    status = $4,
		    priority = $5,
		    due_date = NULLIF($6, ''),
		    employee_id = $7
		WHERE id = $1
		RETURNING ` + taskColumns + `;
	`

	var out core.Task
	err := db.conn.GetContext(ctx, &out, q, t.ID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.EmployeeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return core.Task{}, core.ErrEmployeeNotFound
		}
		if errors.Is(err, sql.ErrNoRows) {
			return core.Task{}, core.ErrTaskNotFound
		}
		return core.Task{}, fmt.Errorf("update task: %w", err)
	}
	return out, nil
}

func (db *DB) DeleteTask(ctx context.Context, id int64) error {
	const q = `DELETE FROM tasks WHERE id = $1`

	res, err := db.conn.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrTaskNotFound
	}
	return nil
}

// pg helpers

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
