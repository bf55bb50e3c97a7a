package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bkiskm0705-stack/nutrition-app/models"
	"github.com/bkiskm0705-stack/nutrition-app/store"
)

var ErrAlreadyRegistered = errors.New("athlete already registered")

type UserService struct {
	store store.TableStore
}

func NewUserService(st store.TableStore) *UserService {
	return &UserService{store: st}
}

// Find returns the athlete's users row, or nil when the name has never
// registered. Login succeeds either way; registration is a separate step.
func (s *UserService) Find(ctx context.Context, name string) (*models.Athlete, error) {
	rows, err := s.store.FetchTable(ctx, store.TableUsers)
	if err != nil {
		return nil, fmt.Errorf("load users table: %w", err)
	}
	for _, row := range rows {
		if row.Get("name") == name {
			return models.AthleteFromRecord(row), nil
		}
	}
	return nil, nil
}

// Register appends the first-time profile row. Name uniqueness is only
// enforced here, not by the store.
func (s *UserService) Register(ctx context.Context, athlete *models.Athlete) error {
	existing, err := s.Find(ctx, athlete.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyRegistered
	}
	return s.store.AppendRecord(ctx, store.TableUsers, athlete.ToRecord())
}

func (s *UserService) List(ctx context.Context) ([]*models.Athlete, error) {
	rows, err := s.store.FetchTable(ctx, store.TableUsers)
	if err != nil {
		return nil, fmt.Errorf("load users table: %w", err)
	}
	out := make([]*models.Athlete, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.AthleteFromRecord(row))
	}
	return out, nil
}
