package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/bkiskm0705-stack/nutrition-app/models"
	"github.com/bkiskm0705-stack/nutrition-app/store"
)

// Reconciler owns the two invariants the store itself cannot enforce: at
// most one daily row per (name, date), and no rows left behind anywhere
// after an athlete is deleted. Everything runs on the fetch-filter-replace
// pattern, so two concurrent writers race and the last replace wins; see
// the race test for the accepted behavior.
type Reconciler struct {
	store store.TableStore
}

func NewReconciler(st store.TableStore) *Reconciler {
	return &Reconciler{store: st}
}

// UpsertDaily replaces any existing row for (name, date) with the new one.
// The fetch is redone on every call, so retrying after a failure is safe.
func (r *Reconciler) UpsertDaily(ctx context.Context, cond *models.DailyCondition) error {
	rows, err := r.store.FetchTable(ctx, store.TableDaily)
	if err != nil {
		return fmt.Errorf("load daily table: %w", err)
	}
	kept := make([]*store.Record, 0, len(rows)+1)
	for _, row := range rows {
		if row.Get("name") == cond.Name && row.Get("date") == cond.Date {
			continue
		}
		kept = append(kept, row)
	}
	kept = append(kept, cond.ToRecord())
	return r.store.ReplaceTable(ctx, store.TableDaily, kept)
}

// AppendLog adds one row to an append-only table (exercise, meal, bowel).
func (r *Reconciler) AppendLog(ctx context.Context, table string, rec *store.Record) error {
	return r.store.AppendRecord(ctx, table, rec)
}

// DeleteResult reports how many rows each table lost.
type DeleteResult struct {
	Removed map[string]int `json:"removed"`
}

// PartialDeleteError marks a cascade delete that did not finish on every
// table. Tables processed before the failure stay deleted; the caller must
// report the inconsistent state rather than claim success.
type PartialDeleteError struct {
	Name    string
	Removed map[string]int
	Failed  map[string]error
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf("deleted %q from %d of %d tables",
		e.Name, len(store.Tables)-len(e.Failed), len(store.Tables))
}

// Report renders the per-table outcome for logs and the admin mail.
func (e *PartialDeleteError) Report() string {
	tables := make([]string, 0, len(e.Failed))
	for t := range e.Failed {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	out := ""
	for _, t := range tables {
		out += fmt.Sprintf("%s: FAILED (%v)\n", t, e.Failed[t])
	}
	for _, t := range store.Tables {
		if _, failed := e.Failed[t]; !failed {
			out += fmt.Sprintf("%s: removed %d rows\n", t, e.Removed[t])
		}
	}
	return out
}

// DeleteUser removes every row referencing the athlete from all five
// tables. Tables are processed sequentially and independently; there is no
// cross-table transaction. A table whose replace fails is recorded and the
// walk continues, so one bad table does not strand rows in the rest.
// Tables with nothing to remove are not rewritten.
func (r *Reconciler) DeleteUser(ctx context.Context, name string) (*DeleteResult, error) {
	res := &DeleteResult{Removed: make(map[string]int)}
	failed := make(map[string]error)

	for _, table := range store.Tables {
		rows, err := r.store.FetchTable(ctx, table)
		if err != nil {
			failed[table] = err
			continue
		}
		kept := make([]*store.Record, 0, len(rows))
		for _, row := range rows {
			if row.Get("name") == name {
				continue
			}
			kept = append(kept, row)
		}
		removed := len(rows) - len(kept)
		if removed == 0 {
			res.Removed[table] = 0
			continue
		}
		if err := r.store.ReplaceTable(ctx, table, kept); err != nil {
			failed[table] = err
			continue
		}
		res.Removed[table] = removed
	}

	if len(failed) > 0 {
		return res, &PartialDeleteError{Name: name, Removed: res.Removed, Failed: failed}
	}
	return res, nil
}
