package services

import (
	"context"
	"testing"

	"github.com/bkiskm0705-stack/nutrition-app/store"
)

func newConditionFixture() (*ConditionService, *store.MemoryStore) {
	mem := store.NewMemoryStore()
	rec := NewReconciler(mem)
	return NewConditionService(mem, rec), mem
}

func appendDaily(t *testing.T, mem *store.MemoryStore, name, date, weight string) {
	t.Helper()
	rec := store.NewRecord().
		Set("name", name).
		Set("date", date).
		Set("weight", weight).
		Set("body_fat", "12").
		Set("sleep", "7")
	if err := mem.AppendRecord(context.Background(), store.TableDaily, rec); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestHistorySortsByDateAndCollapsesDuplicatesLastWins(t *testing.T) {
	svc, mem := newConditionFixture()
	ctx := context.Background()

	// out of order, with a transient duplicate pair left by a raced write
	appendDaily(t, mem, "田中", "2024-01-03", "64")
	appendDaily(t, mem, "田中", "2024-01-01", "65")
	appendDaily(t, mem, "田中", "2024-01-01", "66")
	appendDaily(t, mem, "佐藤", "2024-01-02", "70")

	hist, err := svc.History(ctx, "田中")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("got %d entries, want 2", len(hist))
	}
	if hist[0].Date != "2024-01-01" || hist[1].Date != "2024-01-03" {
		t.Errorf("dates not ascending: %s, %s", hist[0].Date, hist[1].Date)
	}
	if hist[0].Weight != 66 {
		t.Errorf("duplicate date should keep the later row, weight = %v", hist[0].Weight)
	}
}

func TestHistoryCoercesFullWidthNumbers(t *testing.T) {
	svc, mem := newConditionFixture()
	appendDaily(t, mem, "田中", "2024-01-01", "６５.５")

	hist, err := svc.History(context.Background(), "田中")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if hist[0].Weight != 65.5 {
		t.Errorf("weight = %v, want 65.5", hist[0].Weight)
	}
}

func TestLatestIsNilWithoutRecords(t *testing.T) {
	svc, _ := newConditionFixture()
	latest, err := svc.Latest(context.Background(), "誰か")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest != nil {
		t.Errorf("expected nil, got %+v", latest)
	}
}

func TestDayRollupCollapsesDuplicateNames(t *testing.T) {
	svc, mem := newConditionFixture()
	appendDaily(t, mem, "田中", "2024-01-01", "65")
	appendDaily(t, mem, "佐藤", "2024-01-01", "70")
	appendDaily(t, mem, "田中", "2024-01-01", "66")
	appendDaily(t, mem, "田中", "2024-01-02", "64")

	rows, err := svc.DayRollup(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("rollup: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Name != "田中" || rows[0].Weight != 66 {
		t.Errorf("first row = %+v, want 田中 with the later weight 66", rows[0])
	}
	if rows[1].Name != "佐藤" {
		t.Errorf("second row = %+v, want 佐藤", rows[1])
	}
}
