package store

import (
	"context"
	"fmt"
)

// Worksheet names of the backing tabular store.
const (
	TableUsers    = "users"
	TableDaily    = "daily"
	TableExercise = "exercise"
	TableMeal     = "meal"
	TableBowel    = "bowel"
)

// Tables lists every worksheet, in the order cascade deletion walks them.
var Tables = []string{TableUsers, TableDaily, TableExercise, TableMeal, TableBowel}

// TableStore is the seam between the application and the backing tabular
// store. Implementations: SheetStore (Google Sheets), PostgresStore (GORM,
// transactional replace), MemoryStore (tests and local dev).
type TableStore interface {
	// FetchTable returns every data row of the named table. A missing or
	// empty worksheet yields an empty slice and a nil error; only genuine
	// transport/auth failures are returned as errors.
	FetchTable(ctx context.Context, table string) ([]*Record, error)

	// AppendRecord writes one row after the existing last row. Field order
	// is the record's insertion order; no header reconciliation is done.
	AppendRecord(ctx context.Context, table string, rec *Record) error

	// ReplaceTable clears the table and rewrites it: a header row derived
	// from the first record's fields, then all rows. Empty input clears the
	// table and writes no header.
	ReplaceTable(ctx context.Context, table string, recs []*Record) error
}

// WriteError wraps an append or replace failure with the table and the
// operation that failed. Callers surface it to the user; there is no retry.
type WriteError struct {
	Table string
	Op    string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
