package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/app"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/importer"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/service"
)

// maxImportProblems caps how many rejected lines the dashboard lists
const maxImportProblems = 6

// DashboardModel represents the dashboard home screen
type DashboardModel struct {
	app  *app.App
	snap service.Snapshot

	loading bool

	// Import form state
	form       *recordForm
	lastImport *importer.Summary
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(a *app.App) tea.Model {
	return &DashboardModel{app: a, loading: true}
}

// IsCapturingInput returns true while the import path is being typed
func (m *DashboardModel) IsCapturingInput() bool {
	return m.form != nil
}

func (m *DashboardModel) Init() tea.Cmd {
	return loadSnapshot(m.app)
}

func (m *DashboardModel) runImport(path string) tea.Cmd {
	return func() tea.Msg {
		summary, err := importer.ImportFile(context.Background(), path, m.app.Restaurant)
		return importDoneMsg{summary: summary, err: err}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.loading = false
		m.snap = msg.snap
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, loadSnapshot(m.app)

	case importDoneMsg:
		if msg.err != nil {
			if m.form != nil {
				m.form.err = importErrorText(msg.err)
			}
			return m, nil
		}
		m.form = nil
		m.lastImport = &msg.summary
		return m, loadSnapshot(m.app)
	}

	if m.form != nil {
		action, cmd := m.form.update(msg)
		switch action {
		case formCancel:
			m.form = nil
		case formSubmit:
			return m, m.runImport(m.form.value(0))
		}
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, DefaultKeyMap.Import) {
		m.lastImport = nil
		m.form = newRecordForm("Load data from file",
			formField{label: "Full file path:", placeholder: "/path/to/data.txt", charLimit: 260, width: 50},
		)
		return m, m.form.start()
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	if m.form != nil {
		return m.form.view() + "\n\n" + subtitleStyle.Render(
			"  One record per line: \"name,rate,hours\" for staff, \"name,price\" for dishes")
	}

	if m.loading {
		return "Loading dashboard..."
	}

	var s string
	s += titleStyle.Render(m.snap.Name) + "\n\n"
	s += fmt.Sprintf("  Status:          %s\n", statusBadge(m.snap.Status))

	storage := "memory only (changes are lost on exit)"
	if m.app.DB != nil {
		storage = m.app.DB.Path()
	}
	s += fmt.Sprintf("  Storage:         %s\n\n", subtitleStyle.Render(truncateStr(storage, 60)))

	s += fmt.Sprintf("  Employees:       %d\n", len(m.snap.Employees))
	s += fmt.Sprintf("  Dishes:          %d\n", len(m.snap.Dishes))
	s += fmt.Sprintf("  Weekly payroll:  %s\n", totalStyle.Render(formatMoney(m.snap.Payroll)))

	if m.lastImport != nil {
		s += "\n" + successStyle.Render("  ✅ "+m.lastImport.Message()) + "\n"
		for i, problem := range m.lastImport.Problems {
			if i == maxImportProblems {
				s += subtitleStyle.Render(fmt.Sprintf("  ... and %d more", len(m.lastImport.Problems)-i)) + "\n"
				break
			}
			s += warningStyle.Render("  ⚠️ "+truncateStr(problem, 70)) + "\n"
		}
	}

	s += "\n" + helpStyle.Render("  i: load data from file  o: toggle open late")
	return s
}

func importErrorText(err error) string {
	switch {
	case errors.Is(err, importer.ErrEmptyFilename):
		return "Filename cannot be empty."
	case errors.Is(err, importer.ErrFileNotFound):
		return err.Error()
	default:
		return fmt.Sprintf("import failed: %v", err)
	}
}
