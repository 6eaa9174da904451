package core_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"employee-task-service/core"
)

// fakeDB is an in-memory core.DB used by the service tests. It mirrors the
// storage adapter's behaviour, including the cascade delete of tasks.
type fakeDB struct {
	mu sync.RWMutex

	nextUserID     int64
	nextEmployeeID int64
	nextTaskID     int64

	users     map[int64]core.User
	employees map[int64]core.Employee
	tasks     map[int64]core.Task
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		nextUserID:     1,
		nextEmployeeID: 1,
		nextTaskID:     1,
		users:          make(map[int64]core.User),
		employees:      make(map[int64]core.Employee),
		tasks:          make(map[int64]core.Task),
	}
}

func cloneTask(t core.Task) core.Task {
	out := t
	if t.EmployeeID != nil {
		eid := *t.EmployeeID
		out.EmployeeID = &eid
	}
	return out
}

func (db *fakeDB) Ping(context.Context) error {
	return nil
}

// users

func (db *fakeDB) CreateUser(_ context.Context, username, hashedPassword string) (core.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return core.User{}, core.ErrUserExists
		}
	}

	id := db.nextUserID
	db.nextUserID++

	user := core.User{ID: id, Username: username, HashedPassword: hashedPassword, IsActive: true}
	db.users[id] = user
	return user, nil
}

func (db *fakeDB) GetUserByUsername(_ context.Context, username string) (core.User, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return core.User{}, core.ErrUserNotFound
}

// employees

func (db *fakeDB) CreateEmployee(_ context.Context, e core.Employee) (core.Employee, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, other := range db.employees {
		if other.Email == e.Email {
			return core.Employee{}, core.ErrEmployeeEmailExists
		}
	}

	e.ID = db.nextEmployeeID
	db.nextEmployeeID++
	e.CreatedAt = time.Now()

	db.employees[e.ID] = e
	return e, nil
}

func (db *fakeDB) GetEmployee(_ context.Context, id int64) (core.Employee, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	e, ok := db.employees[id]
	if !ok {
		return core.Employee{}, core.ErrEmployeeNotFound
	}
	return e, nil
}

func (db *fakeDB) GetEmployeeByEmail(_ context.Context, email string) (core.Employee, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, e := range db.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return core.Employee{}, core.ErrEmployeeNotFound
}

func (db *fakeDB) ListEmployees(_ context.Context, skip, limit int) ([]core.EmployeeWithCount, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var all []core.EmployeeWithCount
	for _, e := range db.employees {
		var count int64
		for _, t := range db.tasks {
			if t.EmployeeID != nil && *t.EmployeeID == e.ID {
				count++
			}
		}
		all = append(all, core.EmployeeWithCount{Employee: e, TaskCount: count})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return pageOf(all, skip, limit), nil
}

func (db *fakeDB) UpdateEmployee(_ context.Context, e core.Employee) (core.Employee, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.employees[e.ID]; !ok {
		return core.Employee{}, core.ErrEmployeeNotFound
	}
	for _, other := range db.employees {
		if other.ID != e.ID && other.Email == e.Email {
			return core.Employee{}, core.ErrEmployeeEmailExists
		}
	}

	db.employees[e.ID] = e
	return e, nil
}

func (db *fakeDB) DeleteEmployee(_ context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.employees[id]; !ok {
		return core.ErrEmployeeNotFound
	}
	delete(db.employees, id)

	// cascade
	for tid, t := range db.tasks {
		if t.EmployeeID != nil && *t.EmployeeID == id {
			delete(db.tasks, tid)
		}
	}
	return nil
}

// tasks

func (db *fakeDB) CreateTask(_ context.Context, t core.Task) (core.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if t.EmployeeID != nil {
		if _, ok := db.employees[*t.EmployeeID]; !ok {
			return core.Task{}, core.ErrEmployeeNotFound
		}
	}

	t.ID = db.nextTaskID
	db.nextTaskID++
	t.CreatedAt = time.Now()

	db.tasks[t.ID] = cloneTask(t)
	return cloneTask(t), nil
}

func (db *fakeDB) GetTask(_ context.Context, id int64) (core.Task, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, ok := db.tasks[id]
	if !ok {
		return core.Task{}, core.ErrTaskNotFound
	}
	return cloneTask(t), nil
}

func (db *fakeDB) ListTasks(_ context.Context, skip, limit int) ([]core.Task, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return pageOf(db.sortedTasks(func(core.Task) bool { return true }), skip, limit), nil
}

func (db *fakeDB) ListEmployeeTasks(_ context.Context, employeeID int64, skip, limit int) ([]core.Task, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	match := func(t core.Task) bool {
		return t.EmployeeID != nil && *t.EmployeeID == employeeID
	}
	return pageOf(db.sortedTasks(match), skip, limit), nil
}

func (db *fakeDB) UpdateTask(_ context.Context, t core.Task) (core.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.tasks[t.ID]; !ok {
		return core.Task{}, core.ErrTaskNotFound
	}
	if t.EmployeeID != nil {
		if _, ok := db.employees[*t.EmployeeID]; !ok {
			return core.Task{}, core.ErrEmployeeNotFound
		}
	}

	db.tasks[t.ID] = cloneTask(t)
	return cloneTask(t), nil
}

func (db *fakeDB) DeleteTask(_ context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.tasks[id]; !ok {
		return core.ErrTaskNotFound
	}
	delete(db.tasks, id)
	return nil
}

func (db *fakeDB) sortedTasks(match func(core.Task) bool) []core.Task {
	var out []core.Task
	for _, t := range db.tasks {
		if match(t) {
			out = append(out, cloneTask(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func pageOf[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return nil
	}
	items = items[skip:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
