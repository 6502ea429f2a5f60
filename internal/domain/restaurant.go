package domain

import (
	"fmt"
	"strings"
)

// Hours is the operating-hours state of a restaurant
type Hours int

const (
	ClosesEarly Hours = iota
	OpenLate
)

func (h Hours) String() string {
	if h == OpenLate {
		return "Open Late"
	}
	return "Closes Early"
}

// Restaurant is the aggregate root owning the staff roster and the menu.
// Employee and dish names are unique per collection, compared case-insensitively.
//
// A Restaurant is not safe for concurrent use; callers serialise access.
type Restaurant struct {
	name      string
	openLate  bool
	employees []*Employee
	dishes    []*Dish
}

// NewRestaurant creates an empty restaurant that closes early
func NewRestaurant(name string) (*Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "Restaurant name cannot be null or empty")
	}
	return &Restaurant{
		name:      name,
		employees: make([]*Employee, 0),
		dishes:    make([]*Dish, 0),
	}, nil
}

func (r *Restaurant) Name() string { return r.name }

func (r *Restaurant) OpenLate() bool { return r.openLate }

func (r *Restaurant) SetOpenLate(openLate bool) { r.openLate = openLate }

// ToggleOpenLate flips the open-late flag and returns the new value
func (r *Restaurant) ToggleOpenLate() bool {
	r.openLate = !r.openLate
	return r.openLate
}

// Status returns the operating hours as a two-state value
func (r *Restaurant) Status() Hours {
	if r.openLate {
		return OpenLate
	}
	return ClosesEarly
}

// AddEmployee validates and appends a new employee.
// The result message is empty on success.
func (r *Restaurant) AddEmployee(name string, hourlyRate, hoursWorked float64) Result {
	e, err := NewEmployee(name, hourlyRate, hoursWorked)
	if err != nil {
		return failure(ErrValidation, err.Error())
	}
	if r.indexOfEmployee(e.Name()) >= 0 {
		return failure(ErrConflict, fmt.Sprintf("Employee with name '%s' already exists.", e.Name()))
	}
	r.employees = append(r.employees, e)
	return success("")
}

// RemoveEmployee removes the first employee whose name matches
func (r *Restaurant) RemoveEmployee(name string) Result {
	if isBlank(name) {
		return emptyNameResult()
	}
	i := r.indexOfEmployee(name)
	if i < 0 {
		return failure(ErrNotFound, "Employee not found.")
	}
	r.employees = append(r.employees[:i], r.employees[i+1:]...)
	return success("Employee removed successfully.")
}

// UpdateEmployee applies the new rate and hours independently.
// A value that fails validation is skipped while the other is still applied,
// and the result reports the partial failure.
func (r *Restaurant) UpdateEmployee(name string, newRate, newHours float64) Result {
	if isBlank(name) {
		return emptyNameResult()
	}
	e := r.FindEmployee(name)
	if e == nil {
		return failure(ErrNotFound, "Employee not found.")
	}
	rateOK := e.SetHourlyRate(newRate).OK
	hoursOK := e.SetHoursWorked(newHours).OK
	if rateOK && hoursOK {
		return success("Employee updated successfully.")
	}
	return failure(ErrValidation, "Employee update completed with validation errors.")
}

// AddDish validates and appends a new dish.
// The result message is empty on success.
func (r *Restaurant) AddDish(name string, price float64) Result {
	d, err := NewDish(name, price)
	if err != nil {
		return failure(ErrValidation, err.Error())
	}
	if r.indexOfDish(d.Name()) >= 0 {
		return failure(ErrConflict, fmt.Sprintf("Dish with name '%s' already exists.", d.Name()))
	}
	r.dishes = append(r.dishes, d)
	return success("")
}

// RemoveDish removes the first dish whose name matches
func (r *Restaurant) RemoveDish(name string) Result {
	if isBlank(name) {
		return emptyNameResult()
	}
	i := r.indexOfDish(name)
	if i < 0 {
		return failure(ErrNotFound, "Dish not found.")
	}
	r.dishes = append(r.dishes[:i], r.dishes[i+1:]...)
	return success("Dish removed successfully.")
}

// UpdateDish changes the price of the matching dish
func (r *Restaurant) UpdateDish(name string, newPrice float64) Result {
	if isBlank(name) {
		return emptyNameResult()
	}
	d := r.FindDish(name)
	if d == nil {
		return failure(ErrNotFound, "Dish not found.")
	}
	if !d.SetPrice(newPrice).OK {
		return failure(ErrValidation, "Dish update failed due to validation.")
	}
	return success("Dish updated successfully.")
}

// TotalPayroll sums the weekly pay of every employee
func (r *Restaurant) TotalPayroll() float64 {
	var total float64
	for _, e := range r.employees {
		total += e.WeeklyPay()
	}
	return total
}

// EmployeeDisplayStrings returns one row per employee in insertion order
func (r *Restaurant) EmployeeDisplayStrings() []string {
	out := make([]string, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e.DisplayString())
	}
	return out
}

// MenuDisplayStrings returns one row per dish in insertion order
func (r *Restaurant) MenuDisplayStrings() []string {
	out := make([]string, 0, len(r.dishes))
	for _, d := range r.dishes {
		out = append(out, d.DisplayString())
	}
	return out
}

// ClearAll empties both collections so they can be reloaded from storage
func (r *Restaurant) ClearAll() {
	r.employees = make([]*Employee, 0)
	r.dishes = make([]*Dish, 0)
}

// LoadEmployee appends an already validated employee, typically one read back
// from storage. Unlike AddEmployee it does not check for duplicate names:
// loaded data is trusted.
func (r *Restaurant) LoadEmployee(e *Employee) {
	if e == nil {
		return
	}
	r.employees = append(r.employees, e)
}

// LoadDish appends an already validated dish without duplicate checks
func (r *Restaurant) LoadDish(d *Dish) {
	if d == nil {
		return
	}
	r.dishes = append(r.dishes, d)
}

// Employees returns a copy of the roster
func (r *Restaurant) Employees() []*Employee {
	out := make([]*Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

// Dishes returns a copy of the menu
func (r *Restaurant) Dishes() []*Dish {
	out := make([]*Dish, len(r.dishes))
	copy(out, r.dishes)
	return out
}

func (r *Restaurant) EmployeeCount() int { return len(r.employees) }
func (r *Restaurant) DishCount() int     { return len(r.dishes) }

// FindEmployee returns the first employee whose name matches, or nil
func (r *Restaurant) FindEmployee(name string) *Employee {
	if i := r.indexOfEmployee(name); i >= 0 {
		return r.employees[i]
	}
	return nil
}

// FindDish returns the first dish whose name matches, or nil
func (r *Restaurant) FindDish(name string) *Dish {
	if i := r.indexOfDish(name); i >= 0 {
		return r.dishes[i]
	}
	return nil
}

// RemoveEmployeeByID removes every employee with the given id
func (r *Restaurant) RemoveEmployeeByID(id int64) bool {
	kept := r.employees[:0]
	removed := false
	for _, e := range r.employees {
		if e.ID() == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	r.employees = kept
	return removed
}

// RemoveDishByID removes every dish with the given id
func (r *Restaurant) RemoveDishByID(id int64) bool {
	kept := r.dishes[:0]
	removed := false
	for _, d := range r.dishes {
		if d.ID() == id {
			removed = true
			continue
		}
		kept = append(kept, d)
	}
	r.dishes = kept
	return removed
}

func (r *Restaurant) indexOfEmployee(name string) int {
	name = strings.TrimSpace(name)
	for i, e := range r.employees {
		if strings.EqualFold(e.Name(), name) {
			return i
		}
	}
	return -1
}

func (r *Restaurant) indexOfDish(name string) int {
	name = strings.TrimSpace(name)
	for i, d := range r.dishes {
		if strings.EqualFold(d.Name(), name) {
			return i
		}
	}
	return -1
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func emptyNameResult() Result {
	return failure(ErrEmptyName, "Name cannot be null or empty.")
}
