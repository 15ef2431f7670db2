package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/theme"
)

// MenuItem represents a single item in an action menu. Key, when set, is a
// shortcut that triggers the item directly.
type MenuItem struct {
	Label    string
	Key      string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical action menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation and shortcuts.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			return m, m.activate(m.Selected)
		}
	default:
		for i, item := range m.Items {
			if item.Key != "" && item.Key == key {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}

	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	item := m.Items[i]
	if item.Action == nil || item.Disabled {
		return nil
	}
	return item.Action()
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if item.Key != "" {
			label = "[" + item.Key + "] " + label
		}
		switch {
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		default:
			b.WriteString(theme.Unselected.Render("    " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
