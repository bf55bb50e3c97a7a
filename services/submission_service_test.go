package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bkiskm0705-stack/nutrition-app/store"
)

func newSubmissionFixture(upload ImageUploader) (*SubmissionService, *store.MemoryStore) {
	mem := store.NewMemoryStore()
	rec := NewReconciler(mem)
	conds := NewConditionService(mem, rec)
	logs := NewLogService(mem, rec)
	if upload == nil {
		upload = func(string) (string, error) { return "", errors.New("no uploader") }
	}
	return NewSubmissionService(conds, logs, upload), mem
}

func tableCount(t *testing.T, mem *store.MemoryStore, table string) int {
	t.Helper()
	rows, err := mem.FetchTable(context.Background(), table)
	if err != nil {
		t.Fatalf("fetch %s: %v", table, err)
	}
	return len(rows)
}

func TestSaveFullSubmissionSpansAllTables(t *testing.T) {
	upload := func(string) (string, error) { return "https://cdn.example.com/meal-photos/abc.jpg", nil }
	svc, mem := newSubmissionFixture(upload)

	in := &Submission{
		Date:    "2024-01-01",
		Weight:  "65.5",
		BodyFat: "12.3",
		Sleep:   7.5,
		Bowel:   []BowelInput{{Time: "08:00", Amount: "普通", Hardness: "普通"}},
		Exercise: []ExerciseInput{
			{Time: "30分", Content: "ジョグ"},
			{Time: "10分", Content: ""}, // no content, skipped
		},
		Meals: []MealInput{
			{Type: "朝食", Time: "07:00", Menu: "ご飯", ImageBase64: "ZmFrZQ=="},
			{Type: "昼食"}, // neither menu nor photo, skipped
		},
	}

	res, err := svc.Save(context.Background(), "田中", in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !res.OK || !res.Condition {
		t.Errorf("result not clean: %+v", res)
	}
	if res.Exercise.Saved != 1 || res.Meals.Saved != 1 || res.Bowel.Saved != 1 {
		t.Errorf("saved counts = ex %d meal %d bowel %d, want 1 each",
			res.Exercise.Saved, res.Meals.Saved, res.Bowel.Saved)
	}

	if n := tableCount(t, mem, store.TableDaily); n != 1 {
		t.Errorf("daily rows = %d, want 1", n)
	}
	if n := tableCount(t, mem, store.TableExercise); n != 1 {
		t.Errorf("exercise rows = %d, want 1 (empty content skipped)", n)
	}
	if n := tableCount(t, mem, store.TableMeal); n != 1 {
		t.Errorf("meal rows = %d, want 1 (empty meal skipped)", n)
	}

	meals, _ := mem.FetchTable(context.Background(), store.TableMeal)
	if got := meals[0].Get("image_url"); !strings.HasPrefix(got, "https://") {
		t.Errorf("image_url = %q, want the uploaded URL", got)
	}
}

func TestSaveRejectsNonPositiveWeight(t *testing.T) {
	svc, mem := newSubmissionFixture(nil)

	for _, weight := range []string{"", "0", "-5", "ゼロ"} {
		in := &Submission{Date: "2024-01-01", Weight: weight}
		if _, err := svc.Save(context.Background(), "田中", in); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("weight %q: expected ErrInvalidWeight, got %v", weight, err)
		}
	}
	if n := tableCount(t, mem, store.TableDaily); n != 0 {
		t.Errorf("rejected submissions must not write, daily has %d rows", n)
	}
}

func TestSaveAcceptsFullWidthWeight(t *testing.T) {
	svc, _ := newSubmissionFixture(nil)
	in := &Submission{Date: "2024-01-01", Weight: "６５．５"}
	res, err := svc.Save(context.Background(), "田中", in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !res.Condition {
		t.Error("condition section should be saved")
	}
}

func TestSaveSameDateTwiceUpsertsCondition(t *testing.T) {
	svc, mem := newSubmissionFixture(nil)
	ctx := context.Background()

	if _, err := svc.Save(ctx, "田中", &Submission{Date: "2024-01-01", Weight: "65"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := svc.Save(ctx, "田中", &Submission{Date: "2024-01-01", Weight: "66"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	rows, _ := mem.FetchTable(ctx, store.TableDaily)
	if len(rows) != 1 {
		t.Fatalf("daily rows = %d, want the pair collapsed to 1", len(rows))
	}
	if got := rows[0].Get("weight"); got != "66" {
		t.Errorf("weight = %q, want the resubmitted \"66\"", got)
	}
}

func TestSaveKeepsMealRowWhenUploadFails(t *testing.T) {
	upload := func(string) (string, error) { return "", errors.New("bucket unreachable") }
	svc, mem := newSubmissionFixture(upload)

	in := &Submission{
		Date:   "2024-01-01",
		Weight: "65",
		Meals:  []MealInput{{Type: "朝食", Menu: "ご飯", ImageBase64: "ZmFrZQ=="}},
	}
	res, err := svc.Save(context.Background(), "田中", in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !res.OK || res.Meals.Saved != 1 {
		t.Errorf("upload failure must not drop the meal: %+v", res)
	}

	meals, _ := mem.FetchTable(context.Background(), store.TableMeal)
	if got := meals[0].Get("image_url"); got != "" {
		t.Errorf("image_url = %q, want empty after a failed upload", got)
	}
	if got := meals[0].Get("menu"); got != "ご飯" {
		t.Errorf("menu = %q", got)
	}
}

func TestSaveConditionFailureAbortsLogSections(t *testing.T) {
	mem := store.NewMemoryStore()
	flaky := &flakyStore{TableStore: mem, failTable: store.TableDaily}
	rec := NewReconciler(flaky)
	svc := NewSubmissionService(
		NewConditionService(flaky, rec),
		NewLogService(flaky, rec),
		func(string) (string, error) { return "", nil },
	)

	in := &Submission{
		Date:     "2024-01-01",
		Weight:   "65",
		Exercise: []ExerciseInput{{Time: "30分", Content: "ジョグ"}},
	}
	res, err := svc.Save(context.Background(), "田中", in)
	if err == nil {
		t.Fatal("expected an error when the condition write fails")
	}
	if res.Condition {
		t.Error("condition must be reported unsaved")
	}
	if n := tableCount(t, mem, store.TableExercise); n != 0 {
		t.Errorf("log sections must not run after a condition failure, exercise has %d rows", n)
	}
}
