package schedule

import (
	"context"
	"time"
)

// Collection is a named, persistent set of sections chosen by the user.
type Collection struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Repository defines the storage interface for section collections.
type Repository interface {
	// EnsureCollection returns the collection with the given name, creating it if needed.
	EnsureCollection(ctx context.Context, name string) (*Collection, error)

	// ListCollections returns all collections ordered by name.
	ListCollections(ctx context.Context) ([]*Collection, error)

	// AddSection appends a section to a collection.
	// Returns ErrDuplicateSection if the section ID is already present.
	AddSection(ctx context.Context, collectionID string, s *Section) error

	// GetSection retrieves a section by ID. Returns ErrSectionNotFound if missing.
	GetSection(ctx context.Context, collectionID, sectionID string) (*Section, error)

	// RemoveSection deletes a section. Returns ErrSectionNotFound if missing.
	RemoveSection(ctx context.Context, collectionID, sectionID string) error

	// ListSections returns the collection's sections in insertion order.
	ListSections(ctx context.Context, collectionID string) ([]*Section, error)

	// ClearSections removes every section from a collection and returns how many were removed.
	ClearSections(ctx context.Context, collectionID string) (int, error)

	// Close releases any resources held by the repository.
	Close() error
}
