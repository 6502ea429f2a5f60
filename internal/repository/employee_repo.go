package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/db"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
)

// EmployeeRepo is a SQLite implementation of EmployeeRepository
type EmployeeRepo struct {
	db *db.DB
}

// NewEmployeeRepo creates a new EmployeeRepo
func NewEmployeeRepo(database *db.DB) *EmployeeRepo {
	return &EmployeeRepo{db: database}
}

// List returns every employee in insertion (id) order. Rows are rebuilt
// through the domain constructor so a corrupt row surfaces as an error.
func (r *EmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	query := `
		SELECT id, name, hourly_rate, hours_worked
		FROM employees
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `
		SELECT id, name, hourly_rate, hours_worked
		FROM employees
		WHERE id = ?
	`

	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create inserts a new employee and returns the stored copy with its id
func (r *EmployeeRepo) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	query := `
		INSERT INTO employees (name, hours_worked, hourly_rate, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := formatTime()
	result, err := r.db.ExecContext(ctx, query, e.Name(), e.HoursWorked(), e.HourlyRate(), now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get employee ID: %w", err)
	}

	return domain.NewEmployeeWithID(id, e.Name(), e.HourlyRate(), e.HoursWorked())
}

// Update writes rate and hours of an already persisted employee
func (r *EmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	if e.ID() == 0 {
		return fmt.Errorf("cannot update employee %q: not persisted", e.Name())
	}

	query := `
		UPDATE employees
		SET name = ?, hourly_rate = ?, hours_worked = ?, updated_at = ?
		WHERE id = ?
	`
	return execOne(ctx, r.db, "update employee", query,
		e.Name(), e.HourlyRate(), e.HoursWorked(), formatTime(), e.ID())
}

// UpdateField sets a single column. The new value is checked against the
// same rules as a freshly constructed employee before it is written.
func (r *EmployeeRepo) UpdateField(ctx context.Context, id int64, field, value string) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	name, rate, hours := current.Name(), current.HourlyRate(), current.HoursWorked()
	switch field {
	case FieldName:
		name = value
	case FieldHourlyRate:
		if rate, err = strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("invalid hourly rate %q: %w", value, err)
		}
	case FieldHoursWorked:
		if hours, err = strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("invalid hours worked %q: %w", value, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidField, field)
	}

	updated, err := domain.NewEmployeeWithID(id, name, rate, hours)
	if err != nil {
		return err
	}
	return r.Update(ctx, updated)
}

// Delete removes an employee by ID
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "delete employee", `DELETE FROM employees WHERE id = ?`, id)
}

// Clear removes every employee
func (r *EmployeeRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var (
		id          int64
		name        string
		hourlyRate  float64
		hoursWorked float64
	)
	if err := row.Scan(&id, &name, &hourlyRate, &hoursWorked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}

	e, err := domain.NewEmployeeWithID(id, name, hourlyRate, hoursWorked)
	if err != nil {
		return nil, fmt.Errorf("stored employee %d is invalid: %w", id, err)
	}
	return e, nil
}
