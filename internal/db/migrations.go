package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sections (
			collection_id TEXT NOT NULL REFERENCES collections(id) ON DELETE CASCADE,
			section_id    TEXT NOT NULL,
			position      INTEGER NOT NULL,
			clave         TEXT NOT NULL DEFAULT '',
			materia       TEXT NOT NULL,
			grupo         TEXT NOT NULL,
			profesor      TEXT NOT NULL DEFAULT '',
			horario       TEXT NOT NULL DEFAULT '',
			agrupacion    TEXT NOT NULL DEFAULT '',
			turno         TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (collection_id, section_id)
		);

		CREATE INDEX IF NOT EXISTS idx_sections_position ON sections(collection_id, position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
