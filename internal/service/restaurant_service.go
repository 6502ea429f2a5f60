package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/logging"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/repository"
)

var (
	ErrNoStore = errors.New("operation requires the database; not available in memory mode")
)

// Store groups the repositories backing a restaurant. A nil *Store keeps
// everything in memory.
type Store struct {
	Employees repository.EmployeeRepository
	Dishes    repository.DishRepository
	Settings  repository.SettingsRepository
}

// RestaurantService coordinates the restaurant aggregate with its storage.
// Business outcomes come back as a domain.Result; the error return is reserved
// for storage failures.
type RestaurantService interface {
	// Restaurant returns the underlying aggregate; callers must not mutate it
	Restaurant() *domain.Restaurant

	// Sync reloads roster, menu and open-late flag from storage
	Sync(ctx context.Context) error

	AddEmployee(ctx context.Context, name string, hourlyRate, hoursWorked float64) (domain.Result, error)
	RemoveEmployee(ctx context.Context, name string) (domain.Result, error)
	UpdateEmployee(ctx context.Context, name string, newRate, newHours float64) (domain.Result, error)
	// EditEmployee changes a single stored column of the employee with the given id
	EditEmployee(ctx context.Context, id int64, field, value string) error

	AddDish(ctx context.Context, name string, price float64) (domain.Result, error)
	RemoveDish(ctx context.Context, name string) (domain.Result, error)
	UpdateDish(ctx context.Context, name string, newPrice float64) (domain.Result, error)
	EditDish(ctx context.Context, id int64, field, value string) error

	// ToggleOpenLate flips the flag and returns the new value
	ToggleOpenLate(ctx context.Context) (bool, error)
	SetOpenLate(ctx context.Context, openLate bool) error

	// Reset deletes every employee and dish and closes early
	Reset(ctx context.Context) error

	Payroll() PayrollReport
	Snapshot() Snapshot
	Persistent() bool
}

type restaurantService struct {
	mu         sync.Mutex
	restaurant *domain.Restaurant
	store      *Store
	log        *logging.Logger
}

// NewRestaurantService creates a service around r. store may be nil.
func NewRestaurantService(r *domain.Restaurant, store *Store, log *logging.Logger) RestaurantService {
	if log == nil {
		log = logging.Nop()
	}
	return &restaurantService{
		restaurant: r,
		store:      store,
		log:        log.With("component", "restaurant"),
	}
}

func (s *restaurantService) Restaurant() *domain.Restaurant {
	return s.restaurant
}

func (s *restaurantService) Persistent() bool {
	return s.store != nil
}

func (s *restaurantService) Sync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncLocked(ctx)
}

// syncLocked replaces the in-memory collections with what storage holds
func (s *restaurantService) syncLocked(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	employees, err := s.store.Employees.List(ctx)
	if err != nil {
		return err
	}
	dishes, err := s.store.Dishes.List(ctx)
	if err != nil {
		return err
	}
	openLate, err := s.store.Settings.OpenLate(ctx)
	if err != nil {
		return err
	}

	s.restaurant.ClearAll()
	for _, e := range employees {
		s.restaurant.LoadEmployee(e)
	}
	for _, d := range dishes {
		s.restaurant.LoadDish(d)
	}
	s.restaurant.SetOpenLate(openLate)

	s.log.Debug("synchronised from storage", "employees", len(employees), "dishes", len(dishes), "open_late", openLate)
	return nil
}

// restoreLocked puts the aggregate back in line with storage after a failed write
func (s *restaurantService) restoreLocked(ctx context.Context, cause error) error {
	if err := s.syncLocked(ctx); err != nil {
		s.log.Error("failed to resynchronise after storage error", "error", err)
	}
	return cause
}

func (s *restaurantService) AddEmployee(ctx context.Context, name string, hourlyRate, hoursWorked float64) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.restaurant.AddEmployee(name, hourlyRate, hoursWorked)
	if !res.OK {
		s.log.Debug("employee rejected", "name", name, "reason", res.Message)
		return res, nil
	}
	if s.store == nil {
		s.log.Info("employee added", "name", strings.TrimSpace(name))
		return res, nil
	}

	e := s.restaurant.FindEmployee(name)
	created, err := s.store.Employees.Create(ctx, e)
	if err != nil {
		return res, s.restoreLocked(ctx, err)
	}
	s.log.Info("employee added", "id", created.ID(), "name", created.Name())
	return res, s.syncLocked(ctx)
}

func (s *restaurantService) RemoveEmployee(ctx context.Context, name string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e := s.restaurant.FindEmployee(name); e != nil && s.store != nil {
		if err := s.store.Employees.Delete(ctx, e.ID()); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return domain.Result{}, err
		}
	}

	res := s.restaurant.RemoveEmployee(name)
	if res.OK {
		s.log.Info("employee removed", "name", strings.TrimSpace(name))
	}
	return res, nil
}

func (s *restaurantService) UpdateEmployee(ctx context.Context, name string, newRate, newHours float64) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.restaurant.UpdateEmployee(name, newRate, newHours)
	e := s.restaurant.FindEmployee(name)
	if e == nil || s.store == nil {
		return res, nil
	}

	// a partial update still changed one of the two values
	if err := s.store.Employees.Update(ctx, e); err != nil {
		return res, s.restoreLocked(ctx, err)
	}
	s.log.Info("employee updated", "id", e.ID(), "rate", e.HourlyRate(), "hours", e.HoursWorked(), "ok", res.OK)
	return res, nil
}

func (s *restaurantService) EditEmployee(ctx context.Context, id int64, field, value string) error {
	if s.store == nil {
		return ErrNoStore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if field == repository.FieldName {
		if other := s.restaurant.FindEmployee(value); other != nil && other.ID() != id {
			return fmt.Errorf("%w: Employee with name '%s' already exists.", domain.ErrConflict, strings.TrimSpace(value))
		}
	}
	if err := s.store.Employees.UpdateField(ctx, id, field, value); err != nil {
		return err
	}
	s.log.Info("employee edited", "id", id, "field", field)
	return s.syncLocked(ctx)
}

func (s *restaurantService) AddDish(ctx context.Context, name string, price float64) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.restaurant.AddDish(name, price)
	if !res.OK {
		s.log.Debug("dish rejected", "name", name, "reason", res.Message)
		return res, nil
	}
	if s.store == nil {
		s.log.Info("dish added", "name", strings.TrimSpace(name))
		return res, nil
	}

	created, err := s.store.Dishes.Create(ctx, s.restaurant.FindDish(name))
	if err != nil {
		return res, s.restoreLocked(ctx, err)
	}
	s.log.Info("dish added", "id", created.ID(), "name", created.Name())
	return res, s.syncLocked(ctx)
}

func (s *restaurantService) RemoveDish(ctx context.Context, name string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d := s.restaurant.FindDish(name); d != nil && s.store != nil {
		if err := s.store.Dishes.Delete(ctx, d.ID()); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return domain.Result{}, err
		}
	}

	res := s.restaurant.RemoveDish(name)
	if res.OK {
		s.log.Info("dish removed", "name", strings.TrimSpace(name))
	}
	return res, nil
}

func (s *restaurantService) UpdateDish(ctx context.Context, name string, newPrice float64) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.restaurant.UpdateDish(name, newPrice)
	if !res.OK || s.store == nil {
		return res, nil
	}

	d := s.restaurant.FindDish(name)
	if err := s.store.Dishes.Update(ctx, d); err != nil {
		return res, s.restoreLocked(ctx, err)
	}
	s.log.Info("dish updated", "id", d.ID(), "price", d.Price())
	return res, nil
}

func (s *restaurantService) EditDish(ctx context.Context, id int64, field, value string) error {
	if s.store == nil {
		return ErrNoStore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if field == repository.FieldName {
		if other := s.restaurant.FindDish(value); other != nil && other.ID() != id {
			return fmt.Errorf("%w: Dish with name '%s' already exists.", domain.ErrConflict, strings.TrimSpace(value))
		}
	}
	if err := s.store.Dishes.UpdateField(ctx, id, field, value); err != nil {
		return err
	}
	s.log.Info("dish edited", "id", id, "field", field)
	return s.syncLocked(ctx)
}

func (s *restaurantService) ToggleOpenLate(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	openLate := s.restaurant.ToggleOpenLate()
	if err := s.persistOpenLate(ctx, openLate); err != nil {
		s.restaurant.SetOpenLate(!openLate)
		return !openLate, err
	}
	return openLate, nil
}

func (s *restaurantService) SetOpenLate(ctx context.Context, openLate bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.restaurant.OpenLate()
	s.restaurant.SetOpenLate(openLate)
	if err := s.persistOpenLate(ctx, openLate); err != nil {
		s.restaurant.SetOpenLate(previous)
		return err
	}
	return nil
}

func (s *restaurantService) persistOpenLate(ctx context.Context, openLate bool) error {
	if s.store != nil {
		if err := s.store.Settings.SetOpenLate(ctx, openLate); err != nil {
			return err
		}
	}
	s.log.Info("open late changed", "open_late", openLate)
	return nil
}

func (s *restaurantService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Employees.Clear(ctx); err != nil {
			return err
		}
		if err := s.store.Dishes.Clear(ctx); err != nil {
			return err
		}
		if err := s.store.Settings.SetOpenLate(ctx, false); err != nil {
			return err
		}
	}

	s.restaurant.ClearAll()
	s.restaurant.SetOpenLate(false)
	s.log.Warn("all records deleted")
	return nil
}

func (s *restaurantService) Payroll() PayrollReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newPayrollReport(s.restaurant)
}

func (s *restaurantService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newSnapshot(s.restaurant)
}
