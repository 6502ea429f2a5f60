package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/app"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/logging"
)

// settings form field indices
const (
	settingsFieldName = iota
	settingsFieldLogLevel
	settingsFieldLogMode
)

type settingsSavedMsg struct {
	err error
}

// SettingsModel shows the configuration and edits the parts that are safe to
// change while running. Changes apply on the next start.
type SettingsModel struct {
	app       *app.App
	form      *recordForm
	err       error
	statusMsg string
}

// NewSettingsModel creates a new settings screen
func NewSettingsModel(a *app.App) tea.Model {
	return &SettingsModel{app: a}
}

// IsCapturingInput returns true when the edit form is active
func (m *SettingsModel) IsCapturingInput() bool {
	return m.form != nil
}

func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

func (m *SettingsModel) openForm() tea.Cmd {
	cfg := m.app.Config
	m.form = newRecordForm("Edit Settings",
		formField{label: "Restaurant name:", value: cfg.Restaurant.Name, charLimit: 80, width: 40},
		formField{label: "Log level (debug, info, warn, error):", value: cfg.Log.Level, charLimit: 10, width: 10},
		formField{label: "Log mode (development, production):", value: cfg.Log.Mode, charLimit: 12, width: 14},
	)
	return m.form.start()
}

func (m *SettingsModel) saveSettings() tea.Cmd {
	name := m.form.value(settingsFieldName)
	level := strings.ToLower(m.form.value(settingsFieldLogLevel))
	mode := strings.ToLower(m.form.value(settingsFieldLogMode))

	return func() tea.Msg {
		if name == "" {
			return settingsSavedMsg{err: fmt.Errorf("restaurant name is required")}
		}
		if logging.ParseLevel(level).String() != level {
			return settingsSavedMsg{err: fmt.Errorf("unknown log level %q", level)}
		}
		if mode != "development" && mode != "production" {
			return settingsSavedMsg{err: fmt.Errorf("log mode must be development or production")}
		}

		m.app.Config.Restaurant.Name = name
		m.app.Config.Log.Level = level
		m.app.Config.Log.Mode = mode

		if err := m.app.SaveConfig(); err != nil {
			return settingsSavedMsg{err: fmt.Errorf("failed to save config: %w", err)}
		}
		return settingsSavedMsg{}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(settingsSavedMsg); ok {
		if msg.err != nil {
			if m.form != nil {
				m.form.err = msg.err.Error()
			}
			return m, nil
		}
		m.form = nil
		m.statusMsg = "Settings saved; restart to apply"
		return m, nil
	}

	if m.form != nil {
		action, cmd := m.form.update(msg)
		switch action {
		case formCancel:
			m.form = nil
		case formSubmit:
			return m, m.saveSettings()
		}
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, DefaultKeyMap.Select) {
		m.statusMsg = ""
		return m, m.openForm()
	}
	return m, nil
}

func (m *SettingsModel) View() string {
	if m.form != nil {
		return m.form.view()
	}

	var s string
	s += titleStyle.Render("Settings") + "\n\n"

	if m.statusMsg != "" {
		s += successStyle.Render("  "+m.statusMsg) + "\n\n"
	}

	cfg := m.app.Config
	labelStyle := lipgloss.NewStyle().Bold(true).Width(18)
	valueStyle := lipgloss.NewStyle().Foreground(primaryColor)

	database := "disabled (memory only)"
	if m.app.DB != nil {
		database = m.app.DB.Path()
	}
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "stderr"
	}

	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Restaurant:"), valueStyle.Render(cfg.Restaurant.Name))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Database:"), valueStyle.Render(database))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Log level:"), valueStyle.Render(cfg.Log.Level))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Log mode:"), valueStyle.Render(cfg.Log.Mode))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Log file:"), valueStyle.Render(logFile))

	s += "\n" + helpStyle.Render("  enter: edit settings")
	return s
}
