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

// DishRepo is a SQLite implementation of DishRepository
type DishRepo struct {
	db *db.DB
}

// NewDishRepo creates a new DishRepo
func NewDishRepo(database *db.DB) *DishRepo {
	return &DishRepo{db: database}
}

// List returns the whole menu in insertion (id) order
func (r *DishRepo) List(ctx context.Context) ([]*domain.Dish, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price FROM dishes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}
	defer rows.Close()

	dishes := make([]*domain.Dish, 0)
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dishes: %w", err)
	}

	return dishes, nil
}

// GetByID retrieves a dish by ID
func (r *DishRepo) GetByID(ctx context.Context, id int64) (*domain.Dish, error) {
	d, err := scanDish(r.db.QueryRowContext(ctx, `SELECT id, name, price FROM dishes WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// Create inserts a new dish and returns the stored copy with its id
func (r *DishRepo) Create(ctx context.Context, d *domain.Dish) (*domain.Dish, error) {
	now := formatTime()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO dishes (name, price, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		d.Name(), d.Price(), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dish: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get dish ID: %w", err)
	}

	return domain.NewDishWithID(id, d.Name(), d.Price())
}

// Update writes name and price of an already persisted dish
func (r *DishRepo) Update(ctx context.Context, d *domain.Dish) error {
	if d.ID() == 0 {
		return fmt.Errorf("cannot update dish %q: not persisted", d.Name())
	}
	return execOne(ctx, r.db, "update dish",
		`UPDATE dishes SET name = ?, price = ?, updated_at = ? WHERE id = ?`,
		d.Name(), d.Price(), formatTime(), d.ID())
}

// UpdateField sets the name or the price from its textual value
func (r *DishRepo) UpdateField(ctx context.Context, id int64, field, value string) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	name, price := current.Name(), current.Price()
	switch field {
	case FieldName:
		name = value
	case FieldPrice:
		if price, err = strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("invalid price %q: %w", value, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidField, field)
	}

	updated, err := domain.NewDishWithID(id, name, price)
	if err != nil {
		return err
	}
	return r.Update(ctx, updated)
}

// Delete removes a dish by ID
func (r *DishRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "delete dish", `DELETE FROM dishes WHERE id = ?`, id)
}

// Clear removes every dish
func (r *DishRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dishes`); err != nil {
		return fmt.Errorf("failed to clear dishes: %w", err)
	}
	return nil
}

func scanDish(row rowScanner) (*domain.Dish, error) {
	var (
		id    int64
		name  string
		price float64
	)
	if err := row.Scan(&id, &name, &price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan dish: %w", err)
	}

	d, err := domain.NewDishWithID(id, name, price)
	if err != nil {
		return nil, fmt.Errorf("stored dish %d is invalid: %w", id, err)
	}
	return d, nil
}
