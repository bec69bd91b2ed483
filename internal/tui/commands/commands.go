// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/schedule"
)

// CollectionLoadedMsg is sent when the collection's sections are loaded.
type CollectionLoadedMsg struct {
	Sections []*schedule.Section
}

// SectionRemovedMsg is sent after a section is deleted from the collection.
type SectionRemovedMsg struct {
	ID string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadCollection reads every section of a collection in insertion order.
func LoadCollection(repo schedule.Repository, collectionID string) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return CollectionLoadedMsg{}
		}
		sections, err := repo.ListSections(context.Background(), collectionID)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading sections: %w", err)}
		}
		return CollectionLoadedMsg{Sections: sections}
	}
}

// RemoveSection deletes a section from a collection.
func RemoveSection(repo schedule.Repository, collectionID, sectionID string) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: fmt.Errorf("no repository")}
		}
		if err := repo.RemoveSection(context.Background(), collectionID, sectionID); err != nil {
			return ErrMsg{Err: err}
		}
		return SectionRemovedMsg{ID: sectionID}
	}
}

// CopyText writes text with write and reports the outcome as a status message.
func CopyText(text string, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return StatusMsgCmd{Msg: fmt.Sprintf("Copy failed: %v", err)}
		}
		return StatusMsgCmd{Msg: "Grid copied to clipboard"}
	}
}
