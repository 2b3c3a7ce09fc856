package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/rs/zerolog/log"
)

// ViewName is the single view all generated SQL must reference.
const ViewName = "data"

// ErrDatasetNotReady is fatal: the process must not serve /ask without a
// loaded dataset.
var ErrDatasetNotReady = errors.New("dataset not ready")

// Type is the semantic type of a dataset column.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeDate    Type = "date"
	TypeBoolean Type = "boolean"
)

// Column is one entry of the dataset schema, in file order.
type Column struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Catalog is the process-wide, read-only handle over the prepared columnar
// dataset. It is created once at startup and safe for concurrent use.
type Catalog struct {
	db       *sql.DB
	path     string
	columns  []Column
	rowCount int64
}

// Open loads the prepared parquet file into an in-process DuckDB view.
// A missing or unreadable file returns ErrDatasetNotReady.
func Open(ctx context.Context, path string) (*Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no dataset path configured", ErrDatasetNotReady)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatasetNotReady, path, err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open engine: %w", err)
	}

	stmt := fmt.Sprintf("CREATE OR REPLACE VIEW %s AS SELECT * FROM read_parquet('%s')", ViewName, escapePath(path))
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create view: %v", ErrDatasetNotReady, err)
	}

	c := &Catalog{db: db, path: path}

	if c.columns, err = introspect(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: introspect schema: %v", ErrDatasetNotReady, err)
	}
	if err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", ViewName)).Scan(&c.rowCount); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: count rows: %v", ErrDatasetNotReady, err)
	}

	log.Info().
		Str("view", ViewName).
		Str("parquet", path).
		Int("columns", len(c.columns)).
		Int64("rows", c.rowCount).
		Msg("dataset view initialized")

	return c, nil
}

// DB exposes the read-only connection pool for the executor.
func (c *Catalog) DB() *sql.DB { return c.db }

// ViewName returns the stable view identifier used in generated SQL.
func (c *Catalog) ViewName() string { return ViewName }

// Columns returns the ordered schema.
func (c *Catalog) Columns() []Column {
	out := make([]Column, len(c.columns))
	copy(out, c.columns)
	return out
}

// RowCount returns the number of rows loaded at startup.
func (c *Catalog) RowCount() int64 { return c.rowCount }

// Ping verifies the engine still answers trivial queries; used by /readyz.
func (c *Catalog) Ping(ctx context.Context) error {
	var one int
	if err := c.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("engine ping: %w", err)
	}
	if one != 1 {
		return fmt.Errorf("engine ping: unexpected result %d", one)
	}
	return nil
}

func (c *Catalog) Close() error { return c.db.Close() }

func introspect(ctx context.Context, db *sql.DB) ([]Column, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("DESCRIBE %s", ViewName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var name, engineType string
		var null, key, dflt, extra sql.NullString
		if err := rows.Scan(&name, &engineType, &null, &key, &dflt, &extra); err != nil {
			return nil, err
		}
		cols = append(cols, Column{Name: name, Type: mapType(engineType)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, errors.New("view has no columns")
	}
	return cols, nil
}

// mapType collapses engine column types into the four semantic types the
// prompt context and frontend care about.
func mapType(engineType string) Type {
	t := strings.ToUpper(engineType)
	switch {
	case strings.HasPrefix(t, "DECIMAL"):
		return TypeNumber
	case t == "TINYINT", t == "SMALLINT", t == "INTEGER", t == "BIGINT", t == "HUGEINT",
		t == "UTINYINT", t == "USMALLINT", t == "UINTEGER", t == "UBIGINT",
		t == "FLOAT", t == "REAL", t == "DOUBLE":
		return TypeNumber
	case t == "DATE", strings.HasPrefix(t, "TIMESTAMP"), t == "TIME":
		return TypeDate
	case t == "BOOLEAN":
		return TypeBoolean
	default:
		return TypeString
	}
}

// escapePath normalizes a filesystem path for inlining into a single-quoted
// engine string literal. Windows separators confuse the reader.
func escapePath(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	return strings.ReplaceAll(path, "'", "''")
}
