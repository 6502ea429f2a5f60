package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/app"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/service"
)

// PayrollModel shows each employee's weekly pay and the total
type PayrollModel struct {
	app     *app.App
	report  service.PayrollReport
	loading bool
}

type payrollDataMsg struct {
	report service.PayrollReport
}

// NewPayrollModel creates a new payroll screen model
func NewPayrollModel(a *app.App) tea.Model {
	return &PayrollModel{app: a, loading: true}
}

func (m *PayrollModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *PayrollModel) loadData() tea.Cmd {
	return func() tea.Msg {
		return payrollDataMsg{report: m.app.Restaurant.Payroll()}
	}
}

func (m *PayrollModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case payrollDataMsg:
		m.loading = false
		m.report = msg.report
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()
	}
	return m, nil
}

func (m *PayrollModel) View() string {
	if m.loading {
		return "Calculating payroll..."
	}

	var s string
	s += titleStyle.Render("Weekly Payroll") + "\n\n"

	if len(m.report.Lines) == 0 {
		s += subtitleStyle.Render("  No employees to display.") + "\n\n"
	} else {
		s += subtitleStyle.Render(fmt.Sprintf("  %-20s %8s %10s %12s", "Name", "Hours", "Rate", "Pay")) + "\n"
		for _, line := range m.report.Lines {
			s += fmt.Sprintf("  %-20s %8.2f %10s %12s\n",
				truncateStr(line.Name, 20),
				line.HoursWorked,
				formatMoney(line.HourlyRate),
				formatMoney(line.Pay),
			)
		}
		s += "\n"
	}

	s += "  " + totalStyle.Render(fmt.Sprintf("Total weekly payroll: %s", formatMoney(m.report.Total))) + "\n"
	return s
}
