package desktop

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return rows
}

func TestAppendDailyWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), DailyFile)

	first := DailyEntry{Date: "2024-01-01", Weight: "65.5", Sleep: "7.5", ExerciseNote: "ジョグ"}
	second := DailyEntry{Date: "2024-01-02", Weight: "65.0"}
	if err := AppendDaily(path, first); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := AppendDaily(path, second); err != nil {
		t.Fatalf("second append: %v", err)
	}

	rows := readAll(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if !reflect.DeepEqual(rows[0], dailyHeader) {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "2024-01-01" || rows[1][1] != "65.5" || rows[1][7] != "ジョグ" {
		t.Errorf("first data row = %v", rows[1])
	}
	if rows[2][0] != "2024-01-02" {
		t.Errorf("second data row = %v", rows[2])
	}
}

func TestSaveProfileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProfileFile)

	if err := SaveProfile(path, Profile{Name: "田中", DOB: "1999-04-01", Height: "175"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := SaveProfile(path, Profile{Name: "田中", DOB: "1999-04-01", Height: "176"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	rows := readAll(t, path)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	if !reflect.DeepEqual(rows[0], profileHeader) {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][2] != "176" {
		t.Errorf("height = %q, want the overwritten value", rows[1][2])
	}
}

func TestLoadRecentReturnsTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), DailyFile)
	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"} {
		if err := AppendDaily(path, DailyEntry{Date: date, Weight: "65"}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	rows, err := LoadRecent(path, 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "2024-01-02" || rows[2][0] != "2024-01-04" {
		t.Errorf("tail rows = %v", rows)
	}
}

func TestLoadRecentMissingFileIsEmpty(t *testing.T) {
	rows, err := LoadRecent(filepath.Join(t.TempDir(), "nope.csv"), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != nil {
		t.Errorf("expected nil for a missing file, got %v", rows)
	}
}
