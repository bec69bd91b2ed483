// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/horario/internal/schedule"
)

// SQLite implements schedule.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// EnsureCollection returns the named collection, creating it if it does not exist.
func (s *SQLite) EnsureCollection(ctx context.Context, name string) (*schedule.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("collection name cannot be empty")
	}

	c, err := s.getCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	c = &schedule.Collection{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (id, name, created_at) VALUES (?, ?, ?)`,
		c.ID, c.Name, c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting collection: %w", err)
	}
	return c, nil
}

func (s *SQLite) getCollection(ctx context.Context, name string) (*schedule.Collection, error) {
	var (
		c         schedule.Collection
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM collections WHERE name = ?`, name,
	).Scan(&c.ID, &c.Name, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying collection: %w", err)
	}
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	return &c, nil
}

// ListCollections returns all collections ordered by name.
func (s *SQLite) ListCollections(ctx context.Context) ([]*schedule.Collection, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM collections ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var collections []*schedule.Collection
	for rows.Next() {
		var (
			c         schedule.Collection
			createdAt string
		)
		if err := rows.Scan(&c.ID, &c.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		collections = append(collections, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collections: %w", err)
	}
	return collections, nil
}

// AddSection appends a section to the end of a collection.
// Returns ErrDuplicateSection if a section with the same ID is already present.
func (s *SQLite) AddSection(ctx context.Context, collectionID string, sec *schedule.Section) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sections WHERE collection_id = ? AND section_id = ?`,
		collectionID, sec.ID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking duplicate: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("%w: %s", schedule.ErrDuplicateSection, sec.ID)
	}

	var next int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) + 1 FROM sections WHERE collection_id = ?`,
		collectionID,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("computing position: %w", err)
	}

	query := `
		INSERT INTO sections (
			collection_id, section_id, position, clave, materia, grupo,
			profesor, horario, agrupacion, turno
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		collectionID,
		sec.ID,
		next,
		sec.Clave,
		sec.Materia,
		sec.Grupo,
		sec.Profesor,
		sec.Horario,
		sec.Agrupacion,
		sec.Turno,
	)
	if err != nil {
		return fmt.Errorf("inserting section: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

const sectionColumns = `section_id, clave, materia, grupo, profesor, horario, agrupacion, turno`

type scanner interface {
	Scan(dest ...any) error
}

func scanSection(sc scanner) (*schedule.Section, error) {
	var sec schedule.Section
	err := sc.Scan(
		&sec.ID,
		&sec.Clave,
		&sec.Materia,
		&sec.Grupo,
		&sec.Profesor,
		&sec.Horario,
		&sec.Agrupacion,
		&sec.Turno,
	)
	if err != nil {
		return nil, err
	}
	return &sec, nil
}

// GetSection retrieves a section by ID.
func (s *SQLite) GetSection(ctx context.Context, collectionID, sectionID string) (*schedule.Section, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sectionColumns+` FROM sections WHERE collection_id = ? AND section_id = ?`,
		collectionID, sectionID,
	)
	sec, err := scanSection(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", schedule.ErrSectionNotFound, sectionID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying section: %w", err)
	}
	return sec, nil
}

// RemoveSection deletes a section from a collection.
func (s *SQLite) RemoveSection(ctx context.Context, collectionID, sectionID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM sections WHERE collection_id = ? AND section_id = ?`,
		collectionID, sectionID,
	)
	if err != nil {
		return fmt.Errorf("removing section: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", schedule.ErrSectionNotFound, sectionID)
	}
	return nil
}

// ListSections returns a collection's sections in the order they were added.
func (s *SQLite) ListSections(ctx context.Context, collectionID string) ([]*schedule.Section, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+sectionColumns+` FROM sections WHERE collection_id = ? ORDER BY position`,
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sections []*schedule.Section
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return sections, nil
}

// ClearSections removes every section from a collection.
func (s *SQLite) ClearSections(ctx context.Context, collectionID string) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sections WHERE collection_id = ?`, collectionID)
	if err != nil {
		return 0, fmt.Errorf("clearing sections: %w", err)
	}
	rows, _ := result.RowsAffected()
	return int(rows), nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
