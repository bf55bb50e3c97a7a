package models

import (
	"github.com/bkiskm0705-stack/nutrition-app/store"
	"github.com/bkiskm0705-stack/nutrition-app/utils"
)

// DailyCondition is one row of the daily table: the morning check-in.
// At most one logical row exists per (name, date); the reconciler enforces
// that on write, and readers still collapse duplicates last-wins in case a
// raced write left a transient pair.
type DailyCondition struct {
	Name    string  `json:"name"`
	Date    string  `json:"date"` // YYYY-MM-DD
	Weight  float64 `json:"weight"`
	BodyFat float64 `json:"body_fat"`
	Sleep   float64 `json:"sleep"`
}

func (d *DailyCondition) ToRecord() *store.Record {
	return store.NewRecord().
		Set("name", d.Name).
		Set("date", d.Date).
		Set("weight", utils.FormatFloat(d.Weight)).
		Set("body_fat", utils.FormatFloat(d.BodyFat)).
		Set("sleep", utils.FormatFloat(d.Sleep))
}

func ConditionFromRecord(rec *store.Record) *DailyCondition {
	return &DailyCondition{
		Name:    rec.Get("name"),
		Date:    rec.Get("date"),
		Weight:  utils.NormalizeFloat(rec.Get("weight")),
		BodyFat: utils.NormalizeFloat(rec.Get("body_fat")),
		Sleep:   utils.NormalizeFloat(rec.Get("sleep")),
	}
}
