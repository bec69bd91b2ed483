package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/debuglog"
)

// logKey records a key press with the state it was pressed in.
func logKey(msg tea.KeyMsg, m Model) {
	if !debuglog.Enabled() {
		return
	}
	debuglog.Log("KEY", map[string]any{
		"key":      msg.String(),
		"selected": m.selected,
		"sections": len(m.sections),
		"loading":  m.loading,
	})
}

// logRebuild records the outcome of a grid rebuild.
func logRebuild(m Model) {
	if !debuglog.Enabled() || m.result == nil {
		return
	}
	debuglog.Log("GRID_REBUILD", map[string]any{
		"collection": m.collectionName(),
		"sections":   len(m.sections),
		"covered":    m.result.Grid.Covered(),
		"conflicts":  len(m.result.Conflicts),
	})
}
