package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/app"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/service"
)

// listMode is shared by the staff and menu screens
type listMode int

const (
	listModeBrowse listMode = iota
	listModeNew
	listModeEdit
	listModeConfirmDelete
)

// employee form field indices
const (
	empFieldName = iota
	empFieldRate
	empFieldHours
)

// EmployeesModel lists the staff roster with add, edit and delete
type EmployeesModel struct {
	app       *app.App
	employees []service.EmployeeView
	cursor    int
	loading   bool
	err       error

	statusMsg string
	statusOK  bool

	mode    listMode
	form    *recordForm
	editing string // name of the employee being edited
}

// NewEmployeesModel creates a new staff screen model
func NewEmployeesModel(a *app.App) tea.Model {
	return &EmployeesModel{app: a, loading: true}
}

// IsCapturingInput returns true when the form or a delete prompt is active
func (m *EmployeesModel) IsCapturingInput() bool {
	return m.mode != listModeBrowse
}

func (m *EmployeesModel) Init() tea.Cmd {
	return loadSnapshot(m.app)
}

func (m *EmployeesModel) selected() (service.EmployeeView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.employees) {
		return service.EmployeeView{}, false
	}
	return m.employees[m.cursor], true
}

func (m *EmployeesModel) openNewForm() tea.Cmd {
	m.mode = listModeNew
	m.form = newRecordForm("New Employee",
		formField{label: "Name:", placeholder: "Jane Doe", charLimit: 60, width: 40},
		formField{label: "Hourly rate ($):", placeholder: "15.50", charLimit: 10, width: 15},
		formField{label: "Hours worked:", placeholder: "40", charLimit: 6, width: 10},
	)
	return m.form.start()
}

func (m *EmployeesModel) openEditForm(e service.EmployeeView) tea.Cmd {
	m.mode = listModeEdit
	m.editing = e.Name
	m.form = newRecordForm("Edit "+e.Name,
		formField{label: "Hourly rate ($):", value: fmt.Sprintf("%.2f", e.HourlyRate), charLimit: 10, width: 15},
		formField{label: "Hours worked:", value: fmt.Sprintf("%.1f", e.HoursWorked), charLimit: 6, width: 10},
	)
	return m.form.start()
}

func (m *EmployeesModel) save() tea.Cmd {
	mode, form, editing := m.mode, m.form, m.editing
	return func() tea.Msg {
		ctx := context.Background()

		if mode == listModeEdit {
			rate, rateErr := parseAmount(form.value(0))
			hours, hoursErr := parseAmount(form.value(1))
			if rateErr != nil || hoursErr != nil {
				return recordSavedMsg{res: domain.Result{Message: "Invalid input; please enter numeric values."}}
			}
			res, err := m.app.Restaurant.UpdateEmployee(ctx, editing, rate, hours)
			return recordSavedMsg{res: res, err: err, closeForm: true}
		}

		rate, rateErr := parseAmount(form.value(empFieldRate))
		hours, hoursErr := parseAmount(form.value(empFieldHours))
		if rateErr != nil || hoursErr != nil {
			return recordSavedMsg{res: domain.Result{Message: "Invalid input; please enter numbers for rate/hours."}}
		}
		res, err := m.app.Restaurant.AddEmployee(ctx, form.value(empFieldName), rate, hours)
		if res.OK && res.Message == "" {
			res.Message = "Employee added successfully."
		}
		return recordSavedMsg{res: res, err: err}
	}
}

func (m *EmployeesModel) remove(name string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.app.Restaurant.RemoveEmployee(context.Background(), name)
		return recordSavedMsg{res: res, err: err, closeForm: true}
	}
}

func (m *EmployeesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.loading = false
		m.employees = msg.snap.Employees
		if m.cursor >= len(m.employees) {
			m.cursor = max(0, len(m.employees)-1)
		}
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, loadSnapshot(m.app)

	case recordSavedMsg:
		if msg.err != nil {
			m.mode = listModeBrowse
			m.err = msg.err
			return m, loadSnapshot(m.app)
		}
		if !msg.res.OK && !msg.closeForm && m.form != nil {
			m.form.err = msg.res.Message
			return m, nil
		}
		m.mode = listModeBrowse
		m.form = nil
		m.statusMsg, m.statusOK = msg.res.Message, msg.res.OK
		return m, loadSnapshot(m.app)
	}

	switch m.mode {
	case listModeNew, listModeEdit:
		action, cmd := m.form.update(msg)
		switch action {
		case formCancel:
			m.mode = listModeBrowse
			m.form = nil
		case formSubmit:
			return m, m.save()
		}
		return m, cmd

	case listModeConfirmDelete:
		if msg, ok := msg.(tea.KeyMsg); ok {
			m.mode = listModeBrowse
			if e, found := m.selected(); found && key.Matches(msg, DefaultKeyMap.Confirm) {
				return m, m.remove(e.Name)
			}
			m.statusMsg = ""
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.loading {
			return m, nil
		}
		m.statusMsg = ""
		m.err = nil

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.employees)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			return m, m.openNewForm()
		case key.Matches(msg, DefaultKeyMap.Select):
			if e, found := m.selected(); found {
				return m, m.openEditForm(e)
			}
		case key.Matches(msg, DefaultKeyMap.Delete):
			if _, found := m.selected(); found {
				m.mode = listModeConfirmDelete
			}
		}
	}

	return m, nil
}

func (m *EmployeesModel) View() string {
	if m.mode == listModeNew || m.mode == listModeEdit {
		return m.form.view()
	}

	if m.loading {
		return "Loading staff..."
	}

	var s string
	s += titleStyle.Render("Staff") + "\n\n"

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}
	if m.statusMsg != "" {
		s += resultLine(m.statusOK, m.statusMsg) + "\n\n"
	}

	if len(m.employees) == 0 {
		s += subtitleStyle.Render("  No employees to display. Press 'n' to add one.") + "\n"
		return s
	}

	s += subtitleStyle.Render("  Name            | Rate     | Hours | Weekly Pay") + "\n"
	for i, e := range m.employees {
		if i == m.cursor {
			s += selectedStyle.Render("> "+e.Display) + "\n"
		} else {
			s += "  " + e.Display + "\n"
		}
	}

	if m.mode == listModeConfirmDelete {
		if e, found := m.selected(); found {
			s += "\n" + warningStyle.Render(fmt.Sprintf("  Remove %s? [y/N]", e.Name)) + "\n"
		}
		return s
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: edit rate/hours  d: delete")
	return s
}

// loadSnapshot reads the current restaurant state
func loadSnapshot(a *app.App) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snap: a.Restaurant.Snapshot()}
	}
}
