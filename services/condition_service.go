package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/bkiskm0705-stack/nutrition-app/models"
	"github.com/bkiskm0705-stack/nutrition-app/store"
)

type ConditionService struct {
	store      store.TableStore
	reconciler *Reconciler
}

func NewConditionService(st store.TableStore, rec *Reconciler) *ConditionService {
	return &ConditionService{store: st, reconciler: rec}
}

// Upsert stores today's check-in, replacing an earlier submission for the
// same date.
func (s *ConditionService) Upsert(ctx context.Context, cond *models.DailyCondition) error {
	return s.reconciler.UpsertDaily(ctx, cond)
}

// History returns one athlete's condition rows sorted by date ascending.
// Duplicate dates collapse last-wins (row order in the sheet is submission
// order, so the later row is the correction).
func (s *ConditionService) History(ctx context.Context, name string) ([]*models.DailyCondition, error) {
	rows, err := s.store.FetchTable(ctx, store.TableDaily)
	if err != nil {
		return nil, fmt.Errorf("load daily table: %w", err)
	}
	byDate := make(map[string]*models.DailyCondition)
	for _, row := range rows {
		if row.Get("name") != name {
			continue
		}
		cond := models.ConditionFromRecord(row)
		byDate[cond.Date] = cond
	}
	out := make([]*models.DailyCondition, 0, len(byDate))
	for _, cond := range byDate {
		out = append(out, cond)
	}
	// ISO dates sort chronologically as strings
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// Latest returns the most recent check-in, or nil when the athlete has none.
func (s *ConditionService) Latest(ctx context.Context, name string) (*models.DailyCondition, error) {
	hist, err := s.History(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(hist) == 0 {
		return nil, nil
	}
	return hist[len(hist)-1], nil
}

// DayRollup returns every athlete's condition row for one date, duplicate
// names collapsed last-wins.
func (s *ConditionService) DayRollup(ctx context.Context, date string) ([]*models.DailyCondition, error) {
	rows, err := s.store.FetchTable(ctx, store.TableDaily)
	if err != nil {
		return nil, fmt.Errorf("load daily table: %w", err)
	}
	byName := make(map[string]*models.DailyCondition)
	var order []string
	for _, row := range rows {
		if row.Get("date") != date {
			continue
		}
		cond := models.ConditionFromRecord(row)
		if _, seen := byName[cond.Name]; !seen {
			order = append(order, cond.Name)
		}
		byName[cond.Name] = cond
	}
	out := make([]*models.DailyCondition, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out, nil
}
