package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRestaurant(t *testing.T) *Restaurant {
	t.Helper()
	r, err := NewRestaurant("Cafe")
	require.NoError(t, err)
	return r
}

func TestNewRestaurant(t *testing.T) {
	r, err := NewRestaurant("  Emery's ")
	require.NoError(t, err)
	assert.Equal(t, "Emery's", r.Name())
	assert.False(t, r.OpenLate())
	assert.Equal(t, ClosesEarly, r.Status())

	_, err = NewRestaurant(" ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRestaurant_AddEmployee(t *testing.T) {
	r := newTestRestaurant(t)

	res := r.AddEmployee("John Doe", 15.50, 40)
	assert.True(t, res.OK)
	assert.Empty(t, res.Message)

	res = r.AddEmployee("john DOE", 18, 30)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "already exists")
	assert.ErrorIs(t, res.Err(), ErrConflict)
	assert.Equal(t, 1, r.EmployeeCount())

	res = r.AddEmployee("", -10, -5)
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
	assert.ErrorIs(t, res.Err(), ErrValidation)
	assert.Equal(t, 1, r.EmployeeCount())
}

func TestRestaurant_RemoveEmployee(t *testing.T) {
	r := newTestRestaurant(t)
	require.True(t, r.AddEmployee("Jane Doe", 14, 30).OK)

	res := r.RemoveEmployee("Nonexistent")
	assert.False(t, res.OK)
	assert.Equal(t, "Employee not found.", res.Message)
	assert.ErrorIs(t, res.Err(), ErrNotFound)
	assert.Equal(t, 1, r.EmployeeCount())

	res = r.RemoveEmployee("  ")
	assert.ErrorIs(t, res.Err(), ErrEmptyName)
	assert.Equal(t, 1, r.EmployeeCount())

	res = r.RemoveEmployee(" JANE doe ")
	assert.True(t, res.OK)
	assert.Contains(t, res.Message, "removed")
	assert.Equal(t, 0, r.EmployeeCount())
}

func TestRestaurant_UpdateEmployee(t *testing.T) {
	t.Run("full success", func(t *testing.T) {
		r := newTestRestaurant(t)
		require.True(t, r.AddEmployee("Sam", 12, 25).OK)

		res := r.UpdateEmployee("sam", 16.5, 35)
		assert.True(t, res.OK)
		assert.Contains(t, res.Message, "updated")

		e := r.FindEmployee("Sam")
		require.NotNil(t, e)
		assert.Equal(t, 16.5, e.HourlyRate())
		assert.Equal(t, 35.0, e.HoursWorked())
	})

	t.Run("valid rate but hours out of range", func(t *testing.T) {
		r := newTestRestaurant(t)
		require.True(t, r.AddEmployee("Sam", 12, 25).OK)

		res := r.UpdateEmployee("Sam", 14, 169)
		assert.False(t, res.OK)
		assert.Equal(t, "Employee update completed with validation errors.", res.Message)

		e := r.FindEmployee("Sam")
		assert.Equal(t, 14.0, e.HourlyRate())
		assert.Equal(t, 25.0, e.HoursWorked())
	})

	t.Run("negative rate but valid hours", func(t *testing.T) {
		r := newTestRestaurant(t)
		require.True(t, r.AddEmployee("Jane Doe", 12.5, 40).OK)

		res := r.UpdateEmployee("jane doe", -1, 38)
		assert.False(t, res.OK)
		assert.ErrorIs(t, res.Err(), ErrValidation)

		e := r.FindEmployee("Jane Doe")
		assert.Equal(t, 12.5, e.HourlyRate())
		assert.Equal(t, 38.0, e.HoursWorked())
	})

	t.Run("not found", func(t *testing.T) {
		r := newTestRestaurant(t)
		res := r.UpdateEmployee("Ghost", 10, 10)
		assert.ErrorIs(t, res.Err(), ErrNotFound)
	})
}

func TestRestaurant_Dishes(t *testing.T) {
	r := newTestRestaurant(t)

	res := r.AddDish("Soup", 5.00)
	assert.True(t, res.OK)
	assert.Empty(t, res.Message)

	res = r.AddDish("soup", 3.00)
	assert.False(t, res.OK)
	assert.Equal(t, "Dish with name 'soup' already exists.", res.Message)

	menu := r.MenuDisplayStrings()
	require.Len(t, menu, 1)
	assert.Contains(t, menu[0], "Soup")
	assert.Contains(t, menu[0], "5.00")

	res = r.UpdateDish("SOUP", -2)
	assert.Equal(t, "Dish update failed due to validation.", res.Message)
	assert.Equal(t, 5.0, r.FindDish("soup").Price())

	res = r.UpdateDish("Soup", 6.25)
	assert.True(t, res.OK)
	assert.Equal(t, 6.25, r.FindDish("soup").Price())

	assert.ErrorIs(t, r.UpdateDish("Stew", 1).Err(), ErrNotFound)
	assert.ErrorIs(t, r.RemoveDish("Stew").Err(), ErrNotFound)
	assert.ErrorIs(t, r.RemoveDish("").Err(), ErrEmptyName)

	res = r.RemoveDish("soup")
	assert.True(t, res.OK)
	assert.Equal(t, 0, r.DishCount())
}

func TestRestaurant_TotalPayroll(t *testing.T) {
	r := newTestRestaurant(t)
	assert.Equal(t, 0.0, r.TotalPayroll())

	require.True(t, r.AddEmployee("Sam", 10, 20).OK)
	require.True(t, r.AddEmployee("Dana", 20, 10).OK)
	assert.InDelta(t, 400.00, r.TotalPayroll(), 1e-9)
}

func TestRestaurant_DisplayOrder(t *testing.T) {
	r := newTestRestaurant(t)
	require.True(t, r.AddEmployee("Zed", 20, 30).OK)
	require.True(t, r.AddEmployee("Alice", 18.5, 40).OK)

	rows := r.EmployeeDisplayStrings()
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0], "Zed")
	assert.Contains(t, rows[1], "Alice")
}

func TestRestaurant_ClearAllAndReload(t *testing.T) {
	r := newTestRestaurant(t)
	require.True(t, r.AddEmployee("Charlie", 15, 40).OK)
	require.True(t, r.AddEmployee("Dana", 20, 35).OK)
	require.True(t, r.AddDish("Pizza", 9.99).OK)
	require.True(t, r.AddDish("Salad", 6.49).OK)

	employees := r.Employees()
	dishes := r.Dishes()
	beforeStaff := r.EmployeeDisplayStrings()
	beforeMenu := r.MenuDisplayStrings()

	r.ClearAll()
	assert.Equal(t, 0, r.EmployeeCount())
	assert.Equal(t, 0, r.DishCount())
	assert.Empty(t, r.EmployeeDisplayStrings())

	for _, e := range employees {
		r.LoadEmployee(e)
	}
	for _, d := range dishes {
		r.LoadDish(d)
	}

	assert.Equal(t, beforeStaff, r.EmployeeDisplayStrings())
	assert.Equal(t, beforeMenu, r.MenuDisplayStrings())
}

func TestRestaurant_LoadBypassesDuplicateCheck(t *testing.T) {
	r := newTestRestaurant(t)
	require.True(t, r.AddEmployee("Sam", 10, 10).OK)

	dup, err := NewEmployeeWithID(9, "SAM", 11, 11)
	require.NoError(t, err)
	r.LoadEmployee(dup)
	r.LoadEmployee(nil)
	assert.Equal(t, 2, r.EmployeeCount())

	// the construction path still refuses a third one
	assert.ErrorIs(t, r.AddEmployee("sam", 1, 1).Err(), ErrConflict)
}

func TestRestaurant_RemoveByID(t *testing.T) {
	r := newTestRestaurant(t)
	e, err := NewEmployeeWithID(4, "Ana", 10, 10)
	require.NoError(t, err)
	d, err := NewDishWithID(8, "Taco", 3)
	require.NoError(t, err)
	r.LoadEmployee(e)
	r.LoadDish(d)

	assert.False(t, r.RemoveEmployeeByID(99))
	assert.True(t, r.RemoveEmployeeByID(4))
	assert.True(t, r.RemoveDishByID(8))
	assert.Equal(t, 0, r.EmployeeCount())
	assert.Equal(t, 0, r.DishCount())
}

func TestRestaurant_OpenLate(t *testing.T) {
	r := newTestRestaurant(t)

	assert.True(t, r.ToggleOpenLate())
	assert.Equal(t, OpenLate, r.Status())
	assert.Equal(t, "Open Late", r.Status().String())

	r.SetOpenLate(false)
	assert.False(t, r.OpenLate())
	assert.Equal(t, "Closes Early", r.Status().String())
}

func TestRestaurant_CollectionsAreCopies(t *testing.T) {
	r := newTestRestaurant(t)
	require.True(t, r.AddDish("Soup", 5).OK)

	dishes := r.Dishes()
	dishes[0] = nil
	assert.NotNil(t, r.Dishes()[0])
}
