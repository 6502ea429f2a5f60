package service

import (
	"fmt"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
)

// PayrollLine is the weekly pay of one employee
type PayrollLine struct {
	ID          int64
	Name        string
	HoursWorked float64
	HourlyRate  float64
	Pay         float64
}

func (l PayrollLine) String() string {
	return fmt.Sprintf("%s | Hours: %.2f | Rate: $%.2f | Pay: $%.2f", l.Name, l.HoursWorked, l.HourlyRate, l.Pay)
}

// PayrollReport lists every employee's weekly pay in roster order
type PayrollReport struct {
	Lines []PayrollLine
	Total float64
}

func newPayrollReport(r *domain.Restaurant) PayrollReport {
	employees := r.Employees()
	report := PayrollReport{Lines: make([]PayrollLine, 0, len(employees))}
	for _, e := range employees {
		report.Lines = append(report.Lines, PayrollLine{
			ID:          e.ID(),
			Name:        e.Name(),
			HoursWorked: e.HoursWorked(),
			HourlyRate:  e.HourlyRate(),
			Pay:         e.WeeklyPay(),
		})
	}
	report.Total = r.TotalPayroll()
	return report
}

// Snapshot is a read-only view of the restaurant for the front-ends
type Snapshot struct {
	Name      string
	Status    domain.Hours
	Employees []EmployeeView
	Dishes    []DishView
	Payroll   float64
}

// EmployeeView carries an employee's fields together with its display row
type EmployeeView struct {
	ID          int64
	Name        string
	HourlyRate  float64
	HoursWorked float64
	WeeklyPay   float64
	Display     string
}

// DishView carries a dish's fields together with its display row
type DishView struct {
	ID      int64
	Name    string
	Price   float64
	Display string
}

func newSnapshot(r *domain.Restaurant) Snapshot {
	employees := r.Employees()
	dishes := r.Dishes()

	snap := Snapshot{
		Name:      r.Name(),
		Status:    r.Status(),
		Employees: make([]EmployeeView, 0, len(employees)),
		Dishes:    make([]DishView, 0, len(dishes)),
		Payroll:   r.TotalPayroll(),
	}
	for _, e := range employees {
		snap.Employees = append(snap.Employees, EmployeeView{
			ID:          e.ID(),
			Name:        e.Name(),
			HourlyRate:  e.HourlyRate(),
			HoursWorked: e.HoursWorked(),
			WeeklyPay:   e.WeeklyPay(),
			Display:     e.DisplayString(),
		})
	}
	for _, d := range dishes {
		snap.Dishes = append(snap.Dishes, DishView{
			ID:      d.ID(),
			Name:    d.Name(),
			Price:   d.Price(),
			Display: d.DisplayString(),
		})
	}
	return snap
}
