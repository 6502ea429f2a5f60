package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// MaxHoursPerWeek is the number of hours in a week (24*7)
const MaxHoursPerWeek = 168.0

var employeeNamePattern = regexp.MustCompile(`^[A-Za-z ]+$`)

// Employee is a member of staff paid by the hour.
// Only the rate and the hours worked change after construction.
type Employee struct {
	id          int64
	name        string
	hourlyRate  float64
	hoursWorked float64
}

// NewEmployee creates an employee that has not been persisted yet
func NewEmployee(name string, hourlyRate, hoursWorked float64) (*Employee, error) {
	return NewEmployeeWithID(0, name, hourlyRate, hoursWorked)
}

// NewEmployeeWithID creates an employee carrying a storage identity.
// It fails with a *ValidationError if any field is out of range.
func NewEmployeeWithID(id int64, name string, hourlyRate, hoursWorked float64) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "Employee name cannot be null or empty")
	}
	if !employeeNamePattern.MatchString(name) {
		return nil, invalid("name", "Employee name must contain only letters and spaces.")
	}
	if !validAmount(hourlyRate) {
		return nil, invalid("hourly_rate", "Hourly rate cannot be negative")
	}
	if !validHours(hoursWorked) {
		return nil, invalid("hours_worked", "Hours worked must be between 0 and %.0f", MaxHoursPerWeek)
	}
	if id < 0 {
		return nil, invalid("id", "Employee ID cannot be negative")
	}

	return &Employee{
		id:          id,
		name:        name,
		hourlyRate:  hourlyRate,
		hoursWorked: hoursWorked,
	}, nil
}

func (e *Employee) ID() int64            { return e.id }
func (e *Employee) Name() string         { return e.name }
func (e *Employee) HourlyRate() float64  { return e.hourlyRate }
func (e *Employee) HoursWorked() float64 { return e.hoursWorked }

// WeeklyPay returns hourly rate times hours worked
func (e *Employee) WeeklyPay() float64 {
	return e.hourlyRate * e.hoursWorked
}

// SetHourlyRate updates the rate unless it is negative
func (e *Employee) SetHourlyRate(rate float64) Result {
	if !validAmount(rate) {
		return failure(ErrValidation, "Hourly rate cannot be negative")
	}
	e.hourlyRate = rate
	return success("")
}

// SetHoursWorked updates the hours unless they fall outside [0, 168]
func (e *Employee) SetHoursWorked(hours float64) Result {
	if !validHours(hours) {
		return failure(ErrValidation, fmt.Sprintf("Hours worked must be between 0 and %.0f", MaxHoursPerWeek))
	}
	e.hoursWorked = hours
	return success("")
}

// DisplayString renders the employee as a fixed-width row
func (e *Employee) DisplayString() string {
	return fmt.Sprintf("%d | %-15s | $%-8.2f | %4.1f hrs | Weekly Pay: $%.2f",
		e.id, e.name, e.hourlyRate, e.hoursWorked, e.WeeklyPay())
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func validHours(v float64) bool {
	return v >= 0 && v <= MaxHoursPerWeek
}
