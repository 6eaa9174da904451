package core

import (
	"context"
	"errors"
	"strings"

	"employee-task-service/pkg/auth"
)

// detailTaskLimit caps the task list embedded in an employee projection.
const detailTaskLimit = 100

type Service struct {
	db DB
}

func NewService(db DB) *Service {
	return &Service{db: db}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Users

func (s *Service) RegisterUser(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidArgs
	}

	if _, err := s.db.GetUserByUsername(ctx, username); err == nil {
		return User{}, ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, err
	}
	return s.db.CreateUser(ctx, username, hash)
}

// Authenticate resolves username+password to a stored user. Unknown usernames
// and password mismatches are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	user, err := s.db.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !auth.CheckPassword(password, user.HashedPassword) {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return s.db.GetUserByUsername(ctx, username)
}

// Employees

func (s *Service) CreateEmployee(ctx context.Context, e Employee) (EmployeeDetail, error) {
	if strings.TrimSpace(e.FirstName) == "" || strings.TrimSpace(e.LastName) == "" || strings.TrimSpace(e.Email) == "" {
		return EmployeeDetail{}, ErrInvalidArgs
	}

	if _, err := s.db.GetEmployeeByEmail(ctx, e.Email); err == nil {
		return EmployeeDetail{}, ErrEmployeeEmailExists
	} else if !errors.Is(err, ErrEmployeeNotFound) {
		return EmployeeDetail{}, err
	}

	created, err := s.db.CreateEmployee(ctx, e)
	if err != nil {
		return EmployeeDetail{}, err
	}
	return EmployeeDetail{Employee: created, TaskCount: 0, Tasks: []Task{}}, nil
}

func (s *Service) GetEmployeeDetail(ctx context.Context, id int64) (EmployeeDetail, error) {
	if id <= 0 {
		return EmployeeDetail{}, ErrInvalidArgs
	}

	emp, err := s.db.GetEmployee(ctx, id)
	if err != nil {
		return EmployeeDetail{}, err
	}
	tasks, err := s.db.ListEmployeeTasks(ctx, id, 0, detailTaskLimit)
	if err != nil {
		return EmployeeDetail{}, err
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return EmployeeDetail{Employee: emp, TaskCount: int64(len(tasks)), Tasks: tasks}, nil
}

func (s *Service) ListEmployees(ctx context.Context, skip, limit int) ([]EmployeeDetail, error) {
	if skip < 0 || limit < 0 {
		return nil, ErrInvalidArgs
	}

	rows, err := s.db.ListEmployees(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	out := make([]EmployeeDetail, 0, len(rows))
	for _, row := range rows {
		tasks, err := s.db.ListEmployeeTasks(ctx, row.ID, 0, detailTaskLimit)
		if err != nil {
			return nil, err
		}
		if tasks == nil {
			tasks = []Task{}
		}
		out = append(out, EmployeeDetail{Employee: row.Employee, TaskCount: row.TaskCount, Tasks: tasks})
	}
	return out, nil
}

func (s *Service) PatchEmployee(ctx context.Context, id int64, p EmployeePatch) (EmployeeDetail, error) {
	if id <= 0 {
		return EmployeeDetail{}, ErrInvalidArgs
	}

	cur, err := s.db.GetEmployee(ctx, id)
	if err != nil {
		return EmployeeDetail{}, err
	}

	if p.FirstName != nil {
		name := strings.TrimSpace(*p.FirstName)
		if name == "" {
			return EmployeeDetail{}, ErrInvalidArgs
		}
		cur.FirstName = name
	}
	if p.LastName != nil {
		name := strings.TrimSpace(*p.LastName)
		if name == "" {
			return EmployeeDetail{}, ErrInvalidArgs
		}
		cur.LastName = name
	}
	if p.Email != nil {
		cur.Email = strings.TrimSpace(*p.Email)
	}
	if p.Position != nil {
		cur.Position = strings.TrimSpace(*p.Position)
	}
	if p.Department != nil {
		cur.Department = strings.TrimSpace(*p.Department)
	}
	if p.IsActive != nil {
		cur.IsActive = *p.IsActive
	}

	if _, err := s.db.UpdateEmployee(ctx, cur); err != nil {
		return EmployeeDetail{}, err
	}
	return s.GetEmployeeDetail(ctx, id)
}

// DeleteEmployee removes the employee; its tasks go with it (cascade).
func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgs
	}
	return s.db.DeleteEmployee(ctx, id)
}

func (s *Service) ListEmployeeTasks(ctx context.Context, employeeID int64, skip, limit int) ([]Task, error) {
	if employeeID <= 0 || skip < 0 || limit < 0 {
		return nil, ErrInvalidArgs
	}
	if _, err := s.db.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.db.ListEmployeeTasks(ctx, employeeID, skip, limit)
}

// CreateEmployeeTask creates a task under /employees/{id}/tasks. The path
// parameter wins over any employee_id in the body.
func (s *Service) CreateEmployeeTask(ctx context.Context, employeeID int64, t Task) (Task, error) {
	if employeeID <= 0 {
		return Task{}, ErrInvalidArgs
	}
	if _, err := s.db.GetEmployee(ctx, employeeID); err != nil {
		return Task{}, err
	}
	t.EmployeeID = &employeeID
	return s.createTask(ctx, t)
}

// Tasks

// CreateTask validates a supplied employee reference before persisting, the
// same way the employee-scoped creation and assignment paths do.
func (s *Service) CreateTask(ctx context.Context, t Task) (Task, error) {
	if t.EmployeeID != nil {
		if *t.EmployeeID <= 0 {
			return Task{}, ErrInvalidArgs
		}
		if _, err := s.db.GetEmployee(ctx, *t.EmployeeID); err != nil {
			return Task{}, err
		}
	}
	return s.createTask(ctx, t)
}

func (s *Service) createTask(ctx context.Context, t Task) (Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return Task{}, ErrInvalidArgs
	}
	if t.Status == "" {
		t.Status = StatusTODO
	}
	return s.db.CreateTask(ctx, t)
}

func (s *Service) GetTask(ctx context.Context, id int64) (Task, error) {
	if id <= 0 {
		return Task{}, ErrInvalidArgs
	}
	return s.db.GetTask(ctx, id)
}

func (s *Service) ListTasks(ctx context.Context, skip, limit int) ([]Task, error) {
	if skip < 0 || limit < 0 {
		return nil, ErrInvalidArgs
	}
	return s.db.ListTasks(ctx, skip, limit)
}

func (s *Service) PatchTask(ctx context.Context, id int64, p TaskPatch) (Task, error) {
	if id <= 0 {
		return Task{}, ErrInvalidArgs
	}

	cur, err := s.db.GetTask(ctx, id)
	if err != nil {
		return Task{}, err
	}

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return Task{}, ErrInvalidArgs
		}
		cur.Title = title
	}
	if p.Description != nil {
		cur.Description = strings.TrimSpace(*p.Description)
	}
	if p.Status != nil {
		cur.Status = *p.Status
	}
	if p.Priority != nil {
		cur.Priority = *p.Priority
	}
	if p.DueDate != nil {
		cur.DueDate = *p.DueDate
	}

	return s.db.UpdateTask(ctx, cur)
}

// AssignTask sets or clears a task's employee reference. A missing employee
// fails before anything is written, so the prior assignment survives.
func (s *Service) AssignTask(ctx context.Context, taskID int64, employeeID *int64) (Task, error) {
	if taskID <= 0 {
		return Task{}, ErrInvalidArgs
	}

	cur, err := s.db.GetTask(ctx, taskID)
	if err != nil {
		return Task{}, err
	}

	if employeeID != nil {
		if *employeeID <= 0 {
			return Task{}, ErrInvalidArgs
		}
		if _, err := s.db.GetEmployee(ctx, *employeeID); err != nil {
			return Task{}, err
		}
	}

	cur.EmployeeID = employeeID
	return s.db.UpdateTask(ctx, cur)
}

func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgs
	}
	return s.db.DeleteTask(ctx, id)
}
