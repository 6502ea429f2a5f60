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

// MenuModel lists the dishes with add, reprice and delete
type MenuModel struct {
	app     *app.App
	dishes  []service.DishView
	cursor  int
	loading bool
	err     error

	statusMsg string
	statusOK  bool

	mode    listMode
	form    *recordForm
	editing string
}

// NewMenuModel creates a new menu screen model
func NewMenuModel(a *app.App) tea.Model {
	return &MenuModel{app: a, loading: true}
}

func (m *MenuModel) IsCapturingInput() bool {
	return m.mode != listModeBrowse
}

func (m *MenuModel) Init() tea.Cmd {
	return loadSnapshot(m.app)
}

func (m *MenuModel) selected() (service.DishView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.dishes) {
		return service.DishView{}, false
	}
	return m.dishes[m.cursor], true
}

func (m *MenuModel) openNewForm() tea.Cmd {
	m.mode = listModeNew
	m.form = newRecordForm("New Dish",
		formField{label: "Dish name:", placeholder: "Tomato Soup", charLimit: 60, width: 40},
		formField{label: "Price ($):", placeholder: "5.00", charLimit: 10, width: 15},
	)
	return m.form.start()
}

func (m *MenuModel) openEditForm(d service.DishView) tea.Cmd {
	m.mode = listModeEdit
	m.editing = d.Name
	m.form = newRecordForm("Reprice "+d.Name,
		formField{label: "New price ($):", value: fmt.Sprintf("%.2f", d.Price), charLimit: 10, width: 15},
	)
	return m.form.start()
}

func (m *MenuModel) save() tea.Cmd {
	mode, form, editing := m.mode, m.form, m.editing
	return func() tea.Msg {
		ctx := context.Background()

		if mode == listModeEdit {
			price, err := parseAmount(form.value(0))
			if err != nil {
				return recordSavedMsg{res: domain.Result{Message: "Invalid input; please enter a number for price."}}
			}
			res, err := m.app.Restaurant.UpdateDish(ctx, editing, price)
			return recordSavedMsg{res: res, err: err, closeForm: true}
		}

		name := form.value(0)
		if name == "" {
			return recordSavedMsg{res: domain.Result{Message: "Dish name cannot be empty."}}
		}
		price, err := parseAmount(form.value(1))
		if err != nil {
			return recordSavedMsg{res: domain.Result{Message: "Invalid input; please enter a number for price."}}
		}
		res, err := m.app.Restaurant.AddDish(ctx, name, price)
		if res.OK && res.Message == "" {
			res.Message = "Dish added successfully."
		}
		return recordSavedMsg{res: res, err: err}
	}
}

func (m *MenuModel) remove(name string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.app.Restaurant.RemoveDish(context.Background(), name)
		return recordSavedMsg{res: res, err: err, closeForm: true}
	}
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.loading = false
		m.dishes = msg.snap.Dishes
		if m.cursor >= len(m.dishes) {
			m.cursor = max(0, len(m.dishes)-1)
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
			if d, found := m.selected(); found && key.Matches(msg, DefaultKeyMap.Confirm) {
				return m, m.remove(d.Name)
			}
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
			if m.cursor < len(m.dishes)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			return m, m.openNewForm()
		case key.Matches(msg, DefaultKeyMap.Select):
			if d, found := m.selected(); found {
				return m, m.openEditForm(d)
			}
		case key.Matches(msg, DefaultKeyMap.Delete):
			if _, found := m.selected(); found {
				m.mode = listModeConfirmDelete
			}
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	if m.mode == listModeNew || m.mode == listModeEdit {
		return m.form.view()
	}

	if m.loading {
		return "Loading menu..."
	}

	var s string
	s += titleStyle.Render("Menu") + "\n\n"

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}
	if m.statusMsg != "" {
		s += resultLine(m.statusOK, m.statusMsg) + "\n\n"
	}

	if len(m.dishes) == 0 {
		s += subtitleStyle.Render("  Menu is empty. Press 'n' to add a dish.") + "\n"
		return s
	}

	s += subtitleStyle.Render("  Dish Name           | Price") + "\n"
	for i, d := range m.dishes {
		if i == m.cursor {
			s += selectedStyle.Render("> "+d.Display) + "\n"
		} else {
			s += "  " + d.Display + "\n"
		}
	}

	if m.mode == listModeConfirmDelete {
		if d, found := m.selected(); found {
			s += "\n" + warningStyle.Render(fmt.Sprintf("  Remove %s from the menu? [y/N]", d.Name)) + "\n"
		}
		return s
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: change price  d: delete")
	return s
}
