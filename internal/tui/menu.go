package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// AppItem is one entry in the launcher menu.
type AppItem struct {
	Name string // subcommand name, e.g. "calc"
	Desc string
}

// FilterValue implements list.Item
func (a AppItem) FilterValue() string { return a.Name }

// appItemDelegate renders launcher entries.
type appItemDelegate struct {
	itemStyle         lipgloss.Style
	selectedItemStyle lipgloss.Style
	descStyle         lipgloss.Style
	width             int
}

func (d appItemDelegate) Height() int                             { return 2 }
func (d appItemDelegate) Spacing() int                            { return 1 }
func (d appItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d appItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(AppItem)
	if !ok {
		return
	}

	var title string
	if index == m.Index() {
		title = d.selectedItemStyle.Render(fmt.Sprintf("▸ %s", item.Name))
	} else {
		title = d.itemStyle.Render(fmt.Sprintf("  %s", item.Name))
	}

	availableWidth := d.width - 6
	if availableWidth < 20 {
		availableWidth = 20
	}
	desc := wordwrap.String(item.Desc, availableWidth)
	// Keep entries at a fixed height of two lines.
	if lines := strings.Split(desc, "\n"); len(lines) > 1 {
		desc = lines[0]
	}

	fmt.Fprintf(w, "%s\n%s", title, d.itemStyle.Render(d.descStyle.Render(desc)))
}

// MenuModel is the launcher shown when termtoys starts with no subcommand.
type MenuModel struct {
	list     list.Model
	delegate appItemDelegate
	selected string
	quitting bool
}

// NewMenu creates the launcher menu over the given apps.
func NewMenu(items []AppItem) *MenuModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	delegate := appItemDelegate{
		itemStyle:         lipgloss.NewStyle().PaddingLeft(4),
		selectedItemStyle: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170")),
		descStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		width:             80,
	}

	l := list.New(listItems, delegate, 80, 16)
	l.Title = "termtoys"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return &MenuModel{list: l, delegate: delegate}
}

// Selected returns the chosen app name, or "" if the menu was cancelled.
func (m *MenuModel) Selected() string {
	return m.selected
}

// Init implements tea.Model
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width
		if width < 40 {
			width = 40
		}
		height := msg.Height
		if height < 10 {
			height = 10
		}
		m.list.SetWidth(width)
		m.list.SetHeight(height - 2)
		m.delegate.width = width
		m.list.SetDelegate(m.delegate)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(AppItem); ok {
				m.selected = item.Name
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the menu
func (m *MenuModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View() + "\n" + helpStyle.Render("↑/↓: Navigate • Enter: Select • q: Quit")
}
