package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/db"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"), "")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations())
	t.Cleanup(func() { database.Close() })
	return database
}

func mustEmployee(t *testing.T, name string, rate, hours float64) *domain.Employee {
	t.Helper()
	e, err := domain.NewEmployee(name, rate, hours)
	require.NoError(t, err)
	return e
}

func TestEmployeeRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepo(openTestDB(t))

	first, err := repo.Create(ctx, mustEmployee(t, "Charlie", 15, 40))
	require.NoError(t, err)
	assert.NotZero(t, first.ID())
	second, err := repo.Create(ctx, mustEmployee(t, "Dana", 20, 35))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Charlie", list[0].Name())
	assert.Equal(t, "Dana", list[1].Name())

	got, err := repo.GetByID(ctx, second.ID())
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.HourlyRate())
	assert.Equal(t, 35.0, got.HoursWorked())

	updated, err := domain.NewEmployeeWithID(second.ID(), "Dana", 22, 30)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, updated))
	got, err = repo.GetByID(ctx, second.ID())
	require.NoError(t, err)
	assert.Equal(t, 22.0, got.HourlyRate())

	require.NoError(t, repo.Delete(ctx, first.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID()), ErrNotFound)
	_, err = repo.GetByID(ctx, first.ID())
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Clear(ctx))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmployeeRepo_UpdateField(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepo(openTestDB(t))
	e, err := repo.Create(ctx, mustEmployee(t, "Sam", 10, 20))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateField(ctx, e.ID(), FieldHourlyRate, "12.5"))
	require.NoError(t, repo.UpdateField(ctx, e.ID(), FieldHoursWorked, "168"))
	require.NoError(t, repo.UpdateField(ctx, e.ID(), FieldName, "  Samuel "))

	got, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, "Samuel", got.Name())
	assert.Equal(t, 12.5, got.HourlyRate())
	assert.Equal(t, 168.0, got.HoursWorked())

	assert.ErrorIs(t, repo.UpdateField(ctx, e.ID(), FieldHoursWorked, "169"), domain.ErrValidation)
	assert.ErrorIs(t, repo.UpdateField(ctx, e.ID(), FieldName, "R2D2"), domain.ErrValidation)
	assert.Error(t, repo.UpdateField(ctx, e.ID(), FieldHourlyRate, "lots"))
	assert.ErrorIs(t, repo.UpdateField(ctx, e.ID(), "id", "3"), ErrInvalidField)
	assert.ErrorIs(t, repo.UpdateField(ctx, 999, FieldName, "Ghost"), ErrNotFound)
}

func TestDishRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewDishRepo(openTestDB(t))

	d, err := domain.NewDish("Pizza", 9.99)
	require.NoError(t, err)
	pizza, err := repo.Create(ctx, d)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateField(ctx, pizza.ID(), FieldPrice, "11"))
	assert.ErrorIs(t, repo.UpdateField(ctx, pizza.ID(), FieldPrice, "-1"), domain.ErrValidation)
	assert.ErrorIs(t, repo.UpdateField(ctx, pizza.ID(), FieldHoursWorked, "1"), ErrInvalidField)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 11.0, list[0].Price())

	require.NoError(t, repo.Delete(ctx, pizza.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, pizza.ID()), ErrNotFound)
	require.NoError(t, repo.Clear(ctx))
}

func TestSettingsRepo_OpenLate(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepo(openTestDB(t))

	openLate, err := repo.OpenLate(ctx)
	require.NoError(t, err)
	assert.False(t, openLate)

	require.NoError(t, repo.SetOpenLate(ctx, true))
	openLate, err = repo.OpenLate(ctx)
	require.NoError(t, err)
	assert.True(t, openLate)

	require.NoError(t, repo.SetOpenLate(ctx, false))
	openLate, err = repo.OpenLate(ctx)
	require.NoError(t, err)
	assert.False(t, openLate)
}
