package curriculum

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const techniquesQuery = `
SELECT
	CAST(id AS TEXT),
	COALESCE(name, ''),
	COALESCE(kanji, ''),
	COALESCE(image, ''),
	COALESCE("group", ''),
	COALESCE(category, ''),
	COALESCE(dan_level, 0),
	COALESCE("order", 0)
FROM techniques
WHERE "group" IS NOT NULL AND TRIM("group") NOT IN ('', ?)
ORDER BY "order", name`

// SQLiteSource reads the bundled judo database.
type SQLiteSource struct {
	skipCounter
	db *sql.DB
}

// OpenSQLite opens the database file at path.
func OpenSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return NewSQLiteSource(db), nil
}

// NewSQLiteSource wraps an existing handle.
func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

// Techniques reads every eligible row. Rows whose columns do not convert
// are skipped and counted.
func (s *SQLiteSource) Techniques(ctx context.Context) ([]Technique, error) {
	s.resetSkipped()
	rows, err := s.db.QueryContext(ctx, techniquesQuery, OtherGroup)
	if err != nil {
		return nil, fmt.Errorf("query techniques: %w", err)
	}
	defer rows.Close()

	var out []Technique
	for rows.Next() {
		var t Technique
		if err := rows.Scan(&t.ID, &t.Name, &t.Kanji, &t.Image, &t.Group, &t.Category, &t.DanLevel, &t.Order); err != nil {
			s.skip()
			continue
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read techniques: %w", err)
	}
	return out, nil
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
