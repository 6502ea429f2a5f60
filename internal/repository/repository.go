package repository

import (
	"context"
	"errors"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
)

var (
	// ErrNotFound is returned when an id matches no row
	ErrNotFound = errors.New("record not found")
	// ErrInvalidField is returned by UpdateField for a column that cannot be edited
	ErrInvalidField = errors.New("invalid field")
)

// Editable columns for UpdateField
const (
	FieldName        = "name"
	FieldHourlyRate  = "hourly_rate"
	FieldHoursWorked = "hours_worked"
	FieldPrice       = "price"
)

// EmployeeRepository manages employee persistence
type EmployeeRepository interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	// Create inserts the employee and returns it with its assigned id
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	// UpdateField sets one column from its textual value, validating it first
	UpdateField(ctx context.Context, id int64, field, value string) error
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

// DishRepository manages dish persistence
type DishRepository interface {
	List(ctx context.Context) ([]*domain.Dish, error)
	GetByID(ctx context.Context, id int64) (*domain.Dish, error)
	Create(ctx context.Context, d *domain.Dish) (*domain.Dish, error)
	Update(ctx context.Context, d *domain.Dish) error
	UpdateField(ctx context.Context, id int64, field, value string) error
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

// SettingsRepository stores restaurant-wide flags
type SettingsRepository interface {
	OpenLate(ctx context.Context) (bool, error)
	SetOpenLate(ctx context.Context, openLate bool) error
}
