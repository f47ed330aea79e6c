// internal/tui/checklist.go
//
// The interactive module picker. It follows The Elm Architecture that
// bubbletea is built around:
//
// 1. Model: the checklist state (items, cursor, checked set)
// 2. Update: key handling
// 3. View: rendered checklist plus a help footer

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	hintTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	None    key.Binding
	Confirm key.Binding
	Abort   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Confirm, k.Abort}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.All, k.None, k.Confirm, k.Abort},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		All:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		None:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "none")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Abort:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// Checklist is a multi-select prompt. Nothing is pre-checked; space toggles
// the item under the cursor and enter confirms the final selection.
type Checklist struct {
	title   string
	items   []string
	checked []bool
	cursor  int
	keys    keyMap
	help    help.Model
	done    bool
	aborted bool
}

// NewChecklist builds a checklist over the given items.
func NewChecklist(title string, items []string) Checklist {
	return Checklist{
		title:   title,
		items:   items,
		checked: make([]bool, len(items)),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m Checklist) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Checklist) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Abort):
			m.aborted = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.items) > 0 {
				m.checked[m.cursor] = !m.checked[m.cursor]
			}
		case key.Matches(msg, m.keys.All):
			for i := range m.checked {
				m.checked[i] = true
			}
		case key.Matches(msg, m.keys.None):
			for i := range m.checked {
				m.checked[i] = false
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Checklist) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ] "
		style := itemStyle
		if m.checked[i] {
			box = "[x] "
			style = checkedStyle
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(box + item))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintTextStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the checked items in list order.
func (m Checklist) Selected() []string {
	var out []string
	for i, item := range m.items {
		if m.checked[i] {
			out = append(out, item)
		}
	}
	return out
}

// Aborted reports whether the user cancelled instead of confirming.
func (m Checklist) Aborted() bool {
	return m.aborted
}

// RunChecklist runs the checklist as a standalone bubbletea program and
// returns the confirmed selection. Cancelling yields an empty selection, not
// an error; errors come only from the terminal program itself.
func RunChecklist(title string, items []string) ([]string, error) {
	p := tea.NewProgram(NewChecklist(title, items))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(Checklist)
	if !ok || m.Aborted() {
		return nil, nil
	}
	return m.Selected(), nil
}
