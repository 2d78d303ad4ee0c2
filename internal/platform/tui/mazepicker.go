package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

// CampaignID is the picker row that plays every built-in maze in order.
const CampaignID = "campaign"

// PickerKeyMap defines the key bindings for the maze picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MazePickerModel lets users pick the campaign or a single built-in maze.
type MazePickerModel struct {
	ids      []string // Row index to maze ID; CampaignID first
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	selected string
	quitting bool
	back     bool
}

// NewMazePickerModel creates a picker listing every registered maze.
func NewMazePickerModel(width, height int) MazePickerModel {
	mazes := registry.List()

	ids := make([]string, 0, len(mazes)+1)
	rows := make([]table.Row, 0, len(mazes)+1)
	ids = append(ids, CampaignID)
	rows = append(rows, table.Row{"", "Campaign", fmt.Sprintf("%d mazes", len(mazes))})
	for _, mz := range mazes {
		ids = append(ids, mz.ID)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", mz.Order),
			mz.Title,
			fmt.Sprintf("%dx%d", mz.Cols, mz.Rows),
		})
	}

	h := help.New()
	h.Width = width

	m := MazePickerModel{
		ids:    ids,
		help:   h,
		keys:   DefaultPickerKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable(rows)
	return m
}

// createTable builds the maze table sized for the current window.
func (m *MazePickerModel) createTable(rows []table.Row) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Maze", Width: 16},
		{Title: "Size", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(len(rows)+1, min(m.height-8, 12))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m MazePickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MazePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if c := m.table.Cursor(); c >= 0 && c < len(m.ids) {
				m.selected = m.ids[c]
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m MazePickerModel) View() string {
	if m.quitting || m.back || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("P U R S U I T", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a maze:", m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(centerText(m.help.View(m.keys), m.width)))

	return b.String()
}

// Selected returns the chosen maze ID (or CampaignID), empty while choosing.
func (m MazePickerModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m MazePickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MazePickerModel) WantsBack() bool {
	return m.back
}

// centerText pads text on the left so it sits centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMazePicker runs the picker and returns the chosen maze ID, or an empty
// string when the user backed out or quit.
func RunMazePicker(width, height int) (string, error) {
	p := tea.NewProgram(
		NewMazePickerModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(MazePickerModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return "", nil
	}
	return m.Selected(), nil
}
