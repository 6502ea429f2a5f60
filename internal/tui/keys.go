package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Navigation
	Home     key.Binding
	Staff    key.Binding
	Menu     key.Binding
	Payroll  key.Binding
	Settings key.Binding

	// Actions
	OpenLate key.Binding
	Import   key.Binding
	Select   key.Binding
	New      key.Binding
	Delete   key.Binding
	Confirm  key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Home:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
	Staff:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "staff")),
	Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	Payroll:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "payroll")),
	Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
	OpenLate: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle open late")),
	Import:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import file")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
	New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	Confirm:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}
