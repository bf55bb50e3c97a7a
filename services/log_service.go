package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/bkiskm0705-stack/nutrition-app/models"
	"github.com/bkiskm0705-stack/nutrition-app/store"
)

// LogService reads and writes the three append-only tables.
type LogService struct {
	store      store.TableStore
	reconciler *Reconciler
}

func NewLogService(st store.TableStore, rec *Reconciler) *LogService {
	return &LogService{store: st, reconciler: rec}
}

func (s *LogService) AppendExercise(ctx context.Context, e *models.ExerciseEntry) error {
	return s.reconciler.AppendLog(ctx, store.TableExercise, e.ToRecord())
}

func (s *LogService) AppendMeal(ctx context.Context, m *models.MealEntry) error {
	return s.reconciler.AppendLog(ctx, store.TableMeal, m.ToRecord())
}

func (s *LogService) AppendBowel(ctx context.Context, b *models.BowelEntry) error {
	return s.reconciler.AppendLog(ctx, store.TableBowel, b.ToRecord())
}

func (s *LogService) userRows(ctx context.Context, table, name string) ([]*store.Record, error) {
	rows, err := s.store.FetchTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("load %s table: %w", table, err)
	}
	out := make([]*store.Record, 0, len(rows))
	for _, row := range rows {
		if row.Get("name") == name {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *LogService) dateRows(ctx context.Context, table, date string) ([]*store.Record, error) {
	rows, err := s.store.FetchTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("load %s table: %w", table, err)
	}
	out := make([]*store.Record, 0, len(rows))
	for _, row := range rows {
		if row.Get("date") == date {
			out = append(out, row)
		}
	}
	return out, nil
}

// RecentExercises returns the athlete's last n entries in sheet order,
// oldest first (the self-review card shows the tail of the log).
func (s *LogService) RecentExercises(ctx context.Context, name string, n int) ([]*models.ExerciseEntry, error) {
	if n <= 0 {
		n = 3
	}
	rows, err := s.userRows(ctx, store.TableExercise, name)
	if err != nil {
		return nil, err
	}
	rows = tail(rows, n)
	out := make([]*models.ExerciseEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.ExerciseFromRecord(row))
	}
	return out, nil
}

func (s *LogService) RecentBowels(ctx context.Context, name string, n int) ([]*models.BowelEntry, error) {
	if n <= 0 {
		n = 3
	}
	rows, err := s.userRows(ctx, store.TableBowel, name)
	if err != nil {
		return nil, err
	}
	rows = tail(rows, n)
	out := make([]*models.BowelEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.BowelFromRecord(row))
	}
	return out, nil
}

// UserExercises returns the full history, newest date first.
func (s *LogService) UserExercises(ctx context.Context, name string) ([]*models.ExerciseEntry, error) {
	rows, err := s.userRows(ctx, store.TableExercise, name)
	if err != nil {
		return nil, err
	}
	out := make([]*models.ExerciseEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.ExerciseFromRecord(row))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *LogService) UserMeals(ctx context.Context, name string) ([]*models.MealEntry, error) {
	rows, err := s.userRows(ctx, store.TableMeal, name)
	if err != nil {
		return nil, err
	}
	out := make([]*models.MealEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.MealFromRecord(row))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *LogService) UserBowels(ctx context.Context, name string) ([]*models.BowelEntry, error) {
	rows, err := s.userRows(ctx, store.TableBowel, name)
	if err != nil {
		return nil, err
	}
	out := make([]*models.BowelEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.BowelFromRecord(row))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// Day listings for the admin roll-up, in sheet (submission) order.

func (s *LogService) DayExercises(ctx context.Context, date string) ([]*models.ExerciseEntry, error) {
	rows, err := s.dateRows(ctx, store.TableExercise, date)
	if err != nil {
		return nil, err
	}
	out := make([]*models.ExerciseEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.ExerciseFromRecord(row))
	}
	return out, nil
}

func (s *LogService) DayMeals(ctx context.Context, date string) ([]*models.MealEntry, error) {
	rows, err := s.dateRows(ctx, store.TableMeal, date)
	if err != nil {
		return nil, err
	}
	out := make([]*models.MealEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.MealFromRecord(row))
	}
	return out, nil
}

func (s *LogService) DayBowels(ctx context.Context, date string) ([]*models.BowelEntry, error) {
	rows, err := s.dateRows(ctx, store.TableBowel, date)
	if err != nil {
		return nil, err
	}
	out := make([]*models.BowelEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.BowelFromRecord(row))
	}
	return out, nil
}

func tail(rows []*store.Record, n int) []*store.Record {
	if len(rows) > n {
		return rows[len(rows)-n:]
	}
	return rows
}
