package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bkiskm0705-stack/nutrition-app/models"
	"github.com/bkiskm0705-stack/nutrition-app/store"
	"github.com/bkiskm0705-stack/nutrition-app/utils"
)

var ErrAthleteNotFound = errors.New("athlete not found")

type AdminService struct {
	store      store.TableStore
	reconciler *Reconciler
	users      *UserService
	conditions *ConditionService
	logs       *LogService
}

func NewAdminService(st store.TableStore, rec *Reconciler, users *UserService, conds *ConditionService, logs *LogService) *AdminService {
	return &AdminService{store: st, reconciler: rec, users: users, conditions: conds, logs: logs}
}

// AthleteAnalysis is the per-athlete admin view: profile, condition trend,
// and full histories, newest first.
type AthleteAnalysis struct {
	Profile    *models.Athlete          `json:"profile"`
	BMI        float64                  `json:"bmi,omitempty"`
	Conditions []*models.DailyCondition `json:"conditions"`
	Exercises  []*models.ExerciseEntry  `json:"exercises"`
	Meals      []*models.MealEntry      `json:"meals"`
	Bowels     []*models.BowelEntry     `json:"bowels"`
}

func (s *AdminService) Analyze(ctx context.Context, name string) (*AthleteAnalysis, error) {
	profile, err := s.users.Find(ctx, name)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrAthleteNotFound
	}

	conds, err := s.conditions.History(ctx, name)
	if err != nil {
		return nil, err
	}
	exercises, err := s.logs.UserExercises(ctx, name)
	if err != nil {
		return nil, err
	}
	meals, err := s.logs.UserMeals(ctx, name)
	if err != nil {
		return nil, err
	}
	bowels, err := s.logs.UserBowels(ctx, name)
	if err != nil {
		return nil, err
	}

	analysis := &AthleteAnalysis{
		Profile:    profile,
		Conditions: conds,
		Exercises:  exercises,
		Meals:      meals,
		Bowels:     bowels,
	}
	if len(conds) > 0 {
		if bmi, ok := utils.BMI(profile.Height, conds[len(conds)-1].Weight); ok {
			analysis.BMI = bmi
		}
	}
	return analysis, nil
}

// DayRollup is the per-day admin view across every athlete.
type DayRollup struct {
	Date       string                   `json:"date"`
	Conditions []*models.DailyCondition `json:"conditions"`
	Exercises  []*models.ExerciseEntry  `json:"exercises"`
	Meals      []*models.MealEntry      `json:"meals"`
	Bowels     []*models.BowelEntry     `json:"bowels"`
}

func (s *AdminService) Rollup(ctx context.Context, date string) (*DayRollup, error) {
	conds, err := s.conditions.DayRollup(ctx, date)
	if err != nil {
		return nil, err
	}
	exercises, err := s.logs.DayExercises(ctx, date)
	if err != nil {
		return nil, err
	}
	meals, err := s.logs.DayMeals(ctx, date)
	if err != nil {
		return nil, err
	}
	bowels, err := s.logs.DayBowels(ctx, date)
	if err != nil {
		return nil, err
	}
	return &DayRollup{
		Date:       date,
		Conditions: conds,
		Exercises:  exercises,
		Meals:      meals,
		Bowels:     bowels,
	}, nil
}

// DeletionSummary shows what a delete would remove, for the confirmation
// screen.
type DeletionSummary struct {
	Profile *models.Athlete `json:"profile"`
	Counts  map[string]int  `json:"counts"`
}

func (s *AdminService) DeletionSummary(ctx context.Context, name string) (*DeletionSummary, error) {
	profile, err := s.users.Find(ctx, name)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrAthleteNotFound
	}

	counts := make(map[string]int, len(store.Tables))
	for _, table := range store.Tables {
		rows, err := s.store.FetchTable(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("load %s table: %w", table, err)
		}
		n := 0
		for _, row := range rows {
			if row.Get("name") == name {
				n++
			}
		}
		counts[table] = n
	}
	return &DeletionSummary{Profile: profile, Counts: counts}, nil
}

// DeleteAthlete runs the cascade. On partial failure the admin gets a mail
// naming the tables left dirty; the error still propagates so the UI never
// claims a clean delete.
func (s *AdminService) DeleteAthlete(ctx context.Context, name string) (*DeleteResult, error) {
	res, err := s.reconciler.DeleteUser(ctx, name)
	if err != nil {
		var partial *PartialDeleteError
		if errors.As(err, &partial) {
			if mailErr := utils.SendCascadeReport(name, partial.Report()); mailErr != nil {
				log.Printf("cascade report mail failed: %v", mailErr)
			}
		}
		return res, err
	}
	return res, nil
}
