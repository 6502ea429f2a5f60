package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

// formField describes one text input of a recordForm
type formField struct {
	label       string
	placeholder string
	value       string
	charLimit   int
	width       int
}

// recordForm is a vertical stack of text inputs shared by the add/edit screens
type recordForm struct {
	title  string
	labels []string
	fields []textinput.Model
	focus  int
	err    string
}

func newRecordForm(title string, fields ...formField) *recordForm {
	f := &recordForm{
		title:  title,
		labels: make([]string, len(fields)),
		fields: make([]textinput.Model, len(fields)),
	}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = field.charLimit
		in.Width = field.width
		in.SetValue(field.value)
		f.labels[i] = field.label
		f.fields[i] = in
	}
	return f
}

// value returns the trimmed text of field i
func (f *recordForm) value(i int) string {
	return strings.TrimSpace(f.fields[i].Value())
}

func (f *recordForm) start() tea.Cmd {
	f.focus = 0
	return f.fields[0].Focus()
}

func (f *recordForm) moveFocus(delta int) tea.Cmd {
	f.fields[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].Focus()
}

func (f *recordForm) update(msg tea.Msg) (formAction, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return formCancel, nil

		case "tab", "down":
			return formNone, f.moveFocus(1)

		case "shift+tab", "up":
			return formNone, f.moveFocus(-1)

		case "enter":
			// Enter on the last field submits, otherwise advances
			if f.focus == len(f.fields)-1 {
				return formSubmit, nil
			}
			return formNone, f.moveFocus(1)

		case "ctrl+s":
			return formSubmit, nil
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return formNone, cmd
}

func (f *recordForm) view() string {
	var s string
	s += titleStyle.Render(f.title) + "\n\n"

	for i, label := range f.labels {
		indicator := "  "
		labelStyle := subtitleStyle
		if i == f.focus {
			indicator = "> "
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), f.fields[i].View())
	}

	if f.err != "" {
		s += errorStyle.Render("  Error: "+f.err) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")
	return s
}
