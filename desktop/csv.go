// Package desktop is the offline alternate entry path: plain local CSV
// files, not the shared spreadsheet. The two storage paths are not
// reconciled with each other.
package desktop

import (
	"encoding/csv"
	"fmt"
	"os"
)

const (
	DailyFile   = "daily_data.csv"
	ProfileFile = "user_profile.csv"
)

// Headers match the files the team already has on disk.
var (
	dailyHeader   = []string{"日付", "体重", "体脂肪率", "睡眠時間", "排便", "便の状態", "運動時間", "運動内容", "食事メモ"}
	profileHeader = []string{"名前", "生年月日", "身長"}
)

// DailyEntry is one appended row. Values stay as entered; nothing is
// normalized on this path.
type DailyEntry struct {
	Date         string
	Weight       string
	BodyFat      string
	Sleep        string
	Bowel        string
	BowelState   string
	ExerciseTime string
	ExerciseNote string
	MealNote     string
}

func (e DailyEntry) row() []string {
	return []string{
		e.Date, e.Weight, e.BodyFat, e.Sleep,
		e.Bowel, e.BowelState, e.ExerciseTime, e.ExerciseNote, e.MealNote,
	}
}

// AppendDaily appends one row, writing the header first when the file does
// not exist yet.
func AppendDaily(path string, e DailyEntry) error {
	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(dailyHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write(e.row()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	w.Flush()
	return w.Error()
}

type Profile struct {
	Name   string
	DOB    string
	Height string
}

// SaveProfile overwrites the single-row profile file.
func SaveProfile(path string, p Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(profileHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.Write([]string{p.Name, p.DOB, p.Height}); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	w.Flush()
	return w.Error()
}

// LoadRecent returns the last n data rows, oldest first. A missing file is
// just "no records yet".
func LoadRecent(path string, n int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}
	data := rows[1:]
	if len(data) > n {
		data = data[len(data)-n:]
	}
	return data, nil
}
