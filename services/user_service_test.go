package services

import (
	"context"
	"errors"
	"testing"

	"github.com/bkiskm0705-stack/nutrition-app/models"
	"github.com/bkiskm0705-stack/nutrition-app/store"
)

func TestFindUnknownAthleteIsNilNotError(t *testing.T) {
	svc := NewUserService(store.NewMemoryStore())
	athlete, err := svc.Find(context.Background(), "田中")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if athlete != nil {
		t.Errorf("expected nil for an unregistered name, got %+v", athlete)
	}
}

func TestRegisterThenFind(t *testing.T) {
	svc := NewUserService(store.NewMemoryStore())
	ctx := context.Background()

	in := &models.Athlete{Name: "田中", DOB: "1999-04-01", Height: 175}
	if err := svc.Register(ctx, in); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.Find(ctx, "田中")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("registered athlete not found")
	}
	if got.DOB != "1999-04-01" || got.Height != 175 {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestRegisterTwiceIsRejected(t *testing.T) {
	svc := NewUserService(store.NewMemoryStore())
	ctx := context.Background()

	first := &models.Athlete{Name: "田中", DOB: "1999-04-01", Height: 175}
	if err := svc.Register(ctx, first); err != nil {
		t.Fatalf("register: %v", err)
	}

	again := &models.Athlete{Name: "田中", DOB: "2000-01-01", Height: 180}
	if err := svc.Register(ctx, again); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Height != 175 {
		t.Errorf("second register must not overwrite, got %+v", list)
	}
}
