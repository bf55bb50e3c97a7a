package store

import (
	"reflect"
	"testing"
)

func TestSpreadsheetIDFromURL(t *testing.T) {
	url := "https://docs.google.com/spreadsheets/d/15-4U9We9aKSS9rqDbCgI7QY8Y4fVJvDDvUtcCth8T30/edit?gid=0#gid=0"
	id, err := SpreadsheetIDFromURL(url)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "15-4U9We9aKSS9rqDbCgI7QY8Y4fVJvDDvUtcCth8T30" {
		t.Errorf("got %q", id)
	}

	if _, err := SpreadsheetIDFromURL("https://example.com/no-sheet"); err == nil {
		t.Error("expected an error for a URL without a spreadsheet ID")
	}
}

func TestValuesFromRecordsHeaderFromFirstRecord(t *testing.T) {
	recs := []*Record{
		NewRecord().Set("name", "A").Set("date", "2024-01-01").Set("weight", "65"),
		NewRecord().Set("name", "B").Set("date", "2024-01-02").Set("weight", "70"),
	}
	rows := valuesFromRecords(recs)

	wantHeader := []interface{}{"name", "date", "weight"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	wantRow := []interface{}{"B", "2024-01-02", "70"}
	if !reflect.DeepEqual(rows[2], wantRow) {
		t.Errorf("row = %v, want %v", rows[2], wantRow)
	}
}

func TestRecordsFromValues(t *testing.T) {
	values := [][]interface{}{
		{"name", "date", "weight"},
		{"A", "2024-01-01", 65.5},
		{"B", "2024-01-02"}, // short row: missing cells become empty fields
	}
	recs := recordsFromValues(values)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if got := recs[0].Get("weight"); got != "65.5" {
		t.Errorf("numeric cell = %q, want \"65.5\"", got)
	}
	if got := recs[1].Get("weight"); got != "" {
		t.Errorf("missing cell = %q, want empty", got)
	}
	if !reflect.DeepEqual(recs[0].Keys(), []string{"name", "date", "weight"}) {
		t.Errorf("keys = %v", recs[0].Keys())
	}
}

func TestRecordsFromValuesHeaderOnly(t *testing.T) {
	if recs := recordsFromValues([][]interface{}{{"name", "date"}}); len(recs) != 0 {
		t.Errorf("header-only sheet should yield no records, got %d", len(recs))
	}
	if recs := recordsFromValues(nil); len(recs) != 0 {
		t.Errorf("empty sheet should yield no records, got %d", len(recs))
	}
}
