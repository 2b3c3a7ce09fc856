package query

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/praxpk/prompt-visualizer/internal/models"
	"github.com/rs/zerolog/log"
)

// ExecutionError wraps engine-level failures (unknown column, type mismatch,
// late syntax rejection). It is recovered by collapsing the request to the
// "insufficient data" answer, never surfaced as a server error.
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string { return fmt.Sprintf("query execution failed: %v", e.Err) }

func (e *ExecutionError) Unwrap() error { return e.Err }

// Executor runs validated SQL against the dataset view. The connection pool
// is read-only and safe for concurrent use; no locking happens here.
type Executor struct {
	db      *sql.DB
	maxRows int
}

func NewExecutor(db *sql.DB, maxRows int) *Executor {
	return &Executor{db: db, maxRows: maxRows}
}

// Execute returns the shaped result of one read-only query. Result sets are
// capped at maxRows; clients that need more should include their own LIMIT.
func (e *Executor) Execute(ctx context.Context, sqlText string) (*models.ResultSet, error) {
	start := time.Now()

	rows, err := e.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, &ExecutionError{Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &ExecutionError{Err: err}
	}

	out := make([]map[string]any, 0)
	for rows.Next() && len(out) < e.maxRows {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &ExecutionError{Err: err}
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = normalize(vals[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &ExecutionError{Err: err}
	}

	log.Debug().
		Int("rows", len(out)).
		Dur("duration", time.Since(start)).
		Msg("query executed")

	return &models.ResultSet{
		Columns:  cols,
		Rows:     out,
		RowCount: len(out),
	}, nil
}

// normalize converts driver-specific scan values into JSON-friendly ones.
func normalize(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}
