package models

import (
	"github.com/bkiskm0705-stack/nutrition-app/store"
)

// Append-only log rows. No keys, no dedup; rows stay in submission order.

type ExerciseEntry struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Time    string `json:"time"` // duration label, e.g. "30分"
	Content string `json:"content"`
}

func (e *ExerciseEntry) ToRecord() *store.Record {
	return store.NewRecord().
		Set("name", e.Name).
		Set("date", e.Date).
		Set("time", e.Time).
		Set("content", e.Content)
}

func ExerciseFromRecord(rec *store.Record) *ExerciseEntry {
	return &ExerciseEntry{
		Name:    rec.Get("name"),
		Date:    rec.Get("date"),
		Time:    rec.Get("time"),
		Content: rec.Get("content"),
	}
}

type MealEntry struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Type     string `json:"type"` // 朝食/昼食/夕食/間食
	Time     string `json:"time"`
	Menu     string `json:"menu"`
	ImageURL string `json:"image_url"` // empty when upload failed or no photo
}

func (m *MealEntry) ToRecord() *store.Record {
	return store.NewRecord().
		Set("name", m.Name).
		Set("date", m.Date).
		Set("type", m.Type).
		Set("time", m.Time).
		Set("menu", m.Menu).
		Set("image_url", m.ImageURL)
}

func MealFromRecord(rec *store.Record) *MealEntry {
	return &MealEntry{
		Name:     rec.Get("name"),
		Date:     rec.Get("date"),
		Type:     rec.Get("type"),
		Time:     rec.Get("time"),
		Menu:     rec.Get("menu"),
		ImageURL: rec.Get("image_url"),
	}
}

type BowelEntry struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Amount   string `json:"amount"`   // 普通/少ない/多い
	Hardness string `json:"hardness"` // 普通/柔らかい/下痢/硬い
}

func (b *BowelEntry) ToRecord() *store.Record {
	return store.NewRecord().
		Set("name", b.Name).
		Set("date", b.Date).
		Set("time", b.Time).
		Set("amount", b.Amount).
		Set("hardness", b.Hardness)
}

func BowelFromRecord(rec *store.Record) *BowelEntry {
	return &BowelEntry{
		Name:     rec.Get("name"),
		Date:     rec.Get("date"),
		Time:     rec.Get("time"),
		Amount:   rec.Get("amount"),
		Hardness: rec.Get("hardness"),
	}
}
