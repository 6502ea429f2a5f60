package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/repository"
)

// in-memory fakes standing in for the SQLite repositories
type fakeEmployeeRepo struct {
	nextID    int64
	rows      []*domain.Employee
	failWrite error
}

func (m *fakeEmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, len(m.rows))
	copy(out, m.rows)
	return out, nil
}
func (m *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	for _, e := range m.rows {
		if e.ID() == id {
			return e, nil
		}
	}
	return nil, repository.ErrNotFound
}
func (m *fakeEmployeeRepo) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if m.failWrite != nil {
		return nil, m.failWrite
	}
	m.nextID++
	stored, err := domain.NewEmployeeWithID(m.nextID, e.Name(), e.HourlyRate(), e.HoursWorked())
	if err != nil {
		return nil, err
	}
	m.rows = append(m.rows, stored)
	return stored, nil
}
func (m *fakeEmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	if m.failWrite != nil {
		return m.failWrite
	}
	for i, row := range m.rows {
		if row.ID() == e.ID() {
			copied, err := domain.NewEmployeeWithID(e.ID(), e.Name(), e.HourlyRate(), e.HoursWorked())
			if err != nil {
				return err
			}
			m.rows[i] = copied
			return nil
		}
	}
	return repository.ErrNotFound
}
func (m *fakeEmployeeRepo) UpdateField(ctx context.Context, id int64, field, value string) error {
	e, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if field != repository.FieldName {
		return repository.ErrInvalidField
	}
	renamed, err := domain.NewEmployeeWithID(id, value, e.HourlyRate(), e.HoursWorked())
	if err != nil {
		return err
	}
	return m.Update(ctx, renamed)
}
func (m *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	for i, e := range m.rows {
		if e.ID() == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
func (m *fakeEmployeeRepo) Clear(ctx context.Context) error {
	m.rows = nil
	return nil
}

type fakeDishRepo struct {
	nextID int64
	rows   []*domain.Dish
}

func (m *fakeDishRepo) List(ctx context.Context) ([]*domain.Dish, error) {
	out := make([]*domain.Dish, len(m.rows))
	copy(out, m.rows)
	return out, nil
}
func (m *fakeDishRepo) GetByID(ctx context.Context, id int64) (*domain.Dish, error) {
	for _, d := range m.rows {
		if d.ID() == id {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}
func (m *fakeDishRepo) Create(ctx context.Context, d *domain.Dish) (*domain.Dish, error) {
	m.nextID++
	stored, err := domain.NewDishWithID(m.nextID, d.Name(), d.Price())
	if err != nil {
		return nil, err
	}
	m.rows = append(m.rows, stored)
	return stored, nil
}
func (m *fakeDishRepo) Update(ctx context.Context, d *domain.Dish) error {
	for i, row := range m.rows {
		if row.ID() == d.ID() {
			copied, err := domain.NewDishWithID(d.ID(), d.Name(), d.Price())
			if err != nil {
				return err
			}
			m.rows[i] = copied
			return nil
		}
	}
	return repository.ErrNotFound
}
func (m *fakeDishRepo) UpdateField(ctx context.Context, id int64, field, value string) error {
	return repository.ErrInvalidField
}
func (m *fakeDishRepo) Delete(ctx context.Context, id int64) error {
	for i, d := range m.rows {
		if d.ID() == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
func (m *fakeDishRepo) Clear(ctx context.Context) error {
	m.rows = nil
	return nil
}

type fakeSettingsRepo struct {
	openLate bool
	fail     error
}

func (m *fakeSettingsRepo) OpenLate(ctx context.Context) (bool, error) { return m.openLate, nil }
func (m *fakeSettingsRepo) SetOpenLate(ctx context.Context, openLate bool) error {
	if m.fail != nil {
		return m.fail
	}
	m.openLate = openLate
	return nil
}

type fixture struct {
	svc       RestaurantService
	employees *fakeEmployeeRepo
	dishes    *fakeDishRepo
	settings  *fakeSettingsRepo
}

func newStoredFixture(t *testing.T) *fixture {
	t.Helper()
	r, err := domain.NewRestaurant("Cafe")
	require.NoError(t, err)

	f := &fixture{
		employees: &fakeEmployeeRepo{},
		dishes:    &fakeDishRepo{},
		settings:  &fakeSettingsRepo{},
	}
	f.svc = NewRestaurantService(r, &Store{
		Employees: f.employees,
		Dishes:    f.dishes,
		Settings:  f.settings,
	}, nil)
	return f
}

func newMemoryService(t *testing.T) RestaurantService {
	t.Helper()
	r, err := domain.NewRestaurant("Cafe")
	require.NoError(t, err)
	return NewRestaurantService(r, nil, nil)
}

func TestMemoryMode(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t)
	assert.False(t, svc.Persistent())
	require.NoError(t, svc.Sync(ctx))

	res, err := svc.AddEmployee(ctx, "Sam", 10, 20)
	require.NoError(t, err)
	assert.True(t, res.OK)

	res, err = svc.AddDish(ctx, "Soup", 5)
	require.NoError(t, err)
	assert.True(t, res.OK)

	res, err = svc.UpdateDish(ctx, "soup", 6)
	require.NoError(t, err)
	assert.True(t, res.OK)

	assert.ErrorIs(t, svc.EditEmployee(ctx, 1, repository.FieldName, "Max"), ErrNoStore)

	snap := svc.Snapshot()
	assert.Equal(t, "Cafe", snap.Name)
	require.Len(t, snap.Employees, 1)
	require.Len(t, snap.Dishes, 1)
	assert.Equal(t, 6.0, snap.Dishes[0].Price)
	assert.InDelta(t, 200.0, snap.Payroll, 1e-9)
}

func TestAddEmployee_PersistsAndAssignsID(t *testing.T) {
	ctx := context.Background()
	f := newStoredFixture(t)

	res, err := f.svc.AddEmployee(ctx, "Alice", 20, 30)
	require.NoError(t, err)
	assert.True(t, res.OK)

	require.Len(t, f.employees.rows, 1)
	e := f.svc.Restaurant().FindEmployee("alice")
	require.NotNil(t, e)
	assert.Equal(t, int64(1), e.ID())

	res, err = f.svc.AddEmployee(ctx, "ALICE", 1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err(), domain.ErrConflict)
	assert.Len(t, f.employees.rows, 1)
}

func TestAddEmployee_StorageFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newStoredFixture(t)
	f.employees.failWrite = errors.New("disk full")

	_, err := f.svc.AddEmployee(ctx, "Alice", 20, 30)
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 0, f.svc.Restaurant().EmployeeCount())
}

func TestRemoveEmployee(t *testing.T) {
	ctx := context.Background()
	f := newStoredFixture(t)
	_, err := f.svc.AddEmployee(ctx, "Jane Doe", 14, 30)
	require.NoError(t, err)

	res, err := f.svc.RemoveEmployee(ctx, "Nonexistent")
	require.NoError(t, err)
	assert.Equal(t, "Employee not found.", res.Message)
	assert.Len(t, f.employees.rows, 1)

	res, err = f.svc.RemoveEmployee(ctx, "jane doe")
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Empty(t, f.employees.rows)
	assert.Equal(t, 0, f.svc.Restaurant().EmployeeCount())
}

func TestUpdateEmployee_PartialIsPersisted(t *testing.T) {
	ctx := context.Background()
	f := newStoredFixture(t)
	_, err := f.svc.AddEmployee(ctx, "Jane Doe", 12.5, 40)
	require.NoError(t, err)

	res, err := f.svc.UpdateEmployee(ctx, "Jane Doe", -1, 38)
	require.NoError(t, err)
	assert.False(t, res.OK)

	stored := f.employees.rows[0]
	assert.Equal(t, 12.5, stored.HourlyRate())
	assert.Equal(t, 38.0, stored.HoursWorked())
}

func TestEditEmployee(t *testing.T) {
	ctx := context.Background()
	f := newStoredFixture(t)
	_, err := f.svc.AddEmployee(ctx, "Sam", 10, 10)
	require.NoError(t, err)
	_, err = f.svc.AddEmployee(ctx, "Dana", 10, 10)
	require.NoError(t, err)

	err = f.svc.EditEmployee(ctx, 1, repository.FieldName, "dana")
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, f.svc.EditEmployee(ctx, 1, repository.FieldName, "Samuel"))
	assert.NotNil(t, f.svc.Restaurant().FindEmployee("Samuel"))
	assert.Nil(t, f.svc.Restaurant().FindEmployee("Sam"))
}

func TestDishes_Stored(t *testing.T) {
	ctx := context.Background()
	f := newStoredFixture(t)

	res, err := f.svc.AddDish(ctx, "Soup", 5)
	require.NoError(t, err)
	assert.True(t, res.OK)

	res, err = f.svc.UpdateDish(ctx, "soup", -2)
	require.NoError(t, err)
	assert.Equal(t, "Dish update failed due to validation.", res.Message)
	assert.Equal(t, 5.0, f.dishes.rows[0].Price())

	res, err = f.svc.UpdateDish(ctx, "soup", 7.5)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, 7.5, f.dishes.rows[0].Price())

	res, err = f.svc.RemoveDish(ctx, "SOUP")
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Empty(t, f.dishes.rows)
}

func TestOpenLate(t *testing.T) {
	ctx := context.Background()
	f := newStoredFixture(t)

	openLate, err := f.svc.ToggleOpenLate(ctx)
	require.NoError(t, err)
	assert.True(t, openLate)
	assert.True(t, f.settings.openLate)

	require.NoError(t, f.svc.SetOpenLate(ctx, false))
	assert.False(t, f.settings.openLate)

	f.settings.fail = errors.New("locked")
	_, err = f.svc.ToggleOpenLate(ctx)
	assert.Error(t, err)
	assert.False(t, f.svc.Restaurant().OpenLate())
}

func TestSync_LoadsStoredState(t *testing.T) {
	ctx := context.Background()
	f := newStoredFixture(t)
	e, err := domain.NewEmployeeWithID(7, "Ana", 10, 10)
	require.NoError(t, err)
	f.employees.rows = []*domain.Employee{e}
	f.settings.openLate = true

	require.NoError(t, f.svc.Sync(ctx))
	snap := f.svc.Snapshot()
	assert.Equal(t, domain.OpenLate, snap.Status)
	require.Len(t, snap.Employees, 1)
	assert.Equal(t, int64(7), snap.Employees[0].ID)
}

func TestPayrollAndReset(t *testing.T) {
	ctx := context.Background()
	f := newStoredFixture(t)
	_, err := f.svc.AddEmployee(ctx, "Sam", 10, 20)
	require.NoError(t, err)
	_, err = f.svc.AddEmployee(ctx, "Dana", 20, 10)
	require.NoError(t, err)

	report := f.svc.Payroll()
	require.Len(t, report.Lines, 2)
	assert.InDelta(t, 400.0, report.Total, 1e-9)
	assert.Equal(t, "Sam | Hours: 20.00 | Rate: $10.00 | Pay: $200.00", report.Lines[0].String())

	require.NoError(t, f.svc.Reset(ctx))
	assert.Empty(t, f.employees.rows)
	assert.Equal(t, 0.0, f.svc.Payroll().Total)
}
