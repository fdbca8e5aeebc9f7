package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/andys/csvrec/record"
)

// InsertRecord inserts a single record into table. Column order is taken
// from names (the reader's column name list); names absent from the
// record are skipped so transform-synthesized columns only appear when
// populated.
func (c *Connection) InsertRecord(table string, names []string, rec record.Record) error {
	if c.db == nil {
		return fmt.Errorf("sql: database is closed")
	}

	columns := make([]string, 0, len(names))
	placeholders := make([]string, 0, len(names))
	values := make([]interface{}, 0, len(names))

	for _, name := range names {
		if val, ok := rec[name]; ok {
			columns = append(columns, name)
			values = append(values, val)
			if c.Type == PostgreSQL {
				placeholders = append(placeholders, fmt.Sprintf("$%d", len(values)))
			} else {
				placeholders = append(placeholders, "?")
			}
		}
	}

	if len(columns) == 0 {
		return fmt.Errorf("no columns to insert into table %s", table)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		escapeIdentifier(table, c.Type),
		strings.Join(escapeIdentifiers(columns, c.Type), ", "),
		strings.Join(placeholders, ", "),
	)

	if c.cfg != nil && c.cfg.Debug {
		fmt.Fprintf(os.Stderr, "Executing SQL: %s\n", query)
	}

	if _, err := c.db.Exec(query, values...); err != nil {
		return fmt.Errorf("failed to execute query: %s, error: %w", query, err)
	}

	return nil
}
