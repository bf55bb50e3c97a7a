package models

import (
	"github.com/bkiskm0705-stack/nutrition-app/store"
	"github.com/bkiskm0705-stack/nutrition-app/utils"
)

// Athlete is one row of the users table. Name doubles as the identifier;
// uniqueness is soft-enforced at registration, not by the store.
type Athlete struct {
	Name   string  `json:"name"`
	DOB    string  `json:"dob"`
	Height float64 `json:"height"`
}

func (a *Athlete) ToRecord() *store.Record {
	return store.NewRecord().
		Set("name", a.Name).
		Set("dob", a.DOB).
		Set("height", utils.FormatFloat(a.Height))
}

func AthleteFromRecord(rec *store.Record) *Athlete {
	return &Athlete{
		Name:   rec.Get("name"),
		DOB:    rec.Get("dob"),
		Height: utils.NormalizeFloat(rec.Get("height")),
	}
}
