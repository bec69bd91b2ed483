package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/tui/commands"
	"github.com/javiermolinar/horario/internal/tui/view"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Remove key.Binding
	Copy   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy grid"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Remove, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up},
		{k.Remove, k.Reload},
		{k.Copy, k.Help, k.Quit},
	}
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	logKey(msg, m)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.sections)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		sec := m.selectedSection()
		if sec == nil {
			m.statusMsg = "Nothing to remove"
			return m, nil
		}
		m.loading = true
		return m, commands.RemoveSection(m.repo, m.collectionID(), sec.ID)

	case key.Matches(msg, m.keys.Copy):
		if m.result == nil || len(m.sections) == 0 {
			m.statusMsg = "Nothing to copy"
			return m, nil
		}
		return m, commands.CopyText(view.PlainGrid(m.result), m.copyFn)

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, commands.LoadCollection(m.repo, m.collectionID())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}
