package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bkiskm0705-stack/nutrition-app/config"
	"github.com/bkiskm0705-stack/nutrition-app/models"
	"github.com/bkiskm0705-stack/nutrition-app/utils"
)

// ErrInvalidWeight rejects a submission whose weight does not normalize to
// a positive number, mirroring the save-button gate in the entry form.
var ErrInvalidWeight = errors.New("weight must be a positive number")

// ImageUploader turns a base64 photo into a hosted URL. Injected so tests
// run without S3.
type ImageUploader func(base64Data string) (string, error)

// MealPhotoUploader is the production uploader: optional moderation pass,
// then S3. A rejected or failed photo is reported as an error; the caller
// keeps the meal row with an empty URL.
func MealPhotoUploader(base64Data string) (string, error) {
	if config.C.AWS.Moderation {
		data, _, err := utils.DecodeBase64Image(base64Data)
		if err != nil {
			return "", err
		}
		safe, label, err := utils.CheckImageSafe(data)
		if err != nil {
			// moderation outage must not block the submission
			log.Printf("image moderation unavailable: %v", err)
		} else if !safe {
			return "", fmt.Errorf("photo rejected by moderation (%s)", label)
		}
	}
	return utils.UploadBase64Image(base64Data, "meal-photos")
}

type BowelInput struct {
	Time     string `json:"time"`
	Amount   string `json:"amount"`
	Hardness string `json:"hardness"`
}

type ExerciseInput struct {
	Time    string `json:"time"`
	Content string `json:"content"`
}

type MealInput struct {
	Type        string `json:"type"`
	Time        string `json:"time"`
	Menu        string `json:"menu"`
	ImageBase64 string `json:"image_base64"`
}

// Submission is one press of the save button: a condition upsert plus any
// number of bowel, exercise, and meal rows, all for the same date.
type Submission struct {
	Date     string          `json:"date" binding:"required"`
	Weight   string          `json:"weight" binding:"required"`
	BodyFat  string          `json:"body_fat"`
	Sleep    float64         `json:"sleep"`
	Bowel    []BowelInput    `json:"bowel"`
	Exercise []ExerciseInput `json:"exercise"`
	Meals    []MealInput     `json:"meals"`
}

type SectionResult struct {
	Saved  int      `json:"saved"`
	Errors []string `json:"errors,omitempty"`
}

// SubmissionResult reports per-section outcomes. The writes span four
// tables with no transaction, so a failure mid-way leaves earlier sections
// committed; OK is true only when everything landed.
type SubmissionResult struct {
	Condition bool          `json:"condition"`
	Bowel     SectionResult `json:"bowel"`
	Exercise  SectionResult `json:"exercise"`
	Meals     SectionResult `json:"meals"`
	OK        bool          `json:"ok"`
}

type SubmissionService struct {
	conditions *ConditionService
	logs       *LogService
	upload     ImageUploader
}

func NewSubmissionService(conds *ConditionService, logs *LogService, upload ImageUploader) *SubmissionService {
	return &SubmissionService{conditions: conds, logs: logs, upload: upload}
}

// Save commits a full daily submission for one athlete. The condition
// upsert goes first; if it fails nothing else is attempted. Log sections
// proceed independently and collect their own errors.
func (s *SubmissionService) Save(ctx context.Context, name string, in *Submission) (*SubmissionResult, error) {
	weight := utils.NormalizeFloat(in.Weight)
	if weight <= 0 {
		return nil, ErrInvalidWeight
	}

	res := &SubmissionResult{}

	cond := &models.DailyCondition{
		Name:    name,
		Date:    in.Date,
		Weight:  weight,
		BodyFat: utils.NormalizeFloat(in.BodyFat),
		Sleep:   in.Sleep,
	}
	if err := s.conditions.Upsert(ctx, cond); err != nil {
		return res, fmt.Errorf("save condition: %w", err)
	}
	res.Condition = true

	for _, b := range in.Bowel {
		entry := &models.BowelEntry{
			Name: name, Date: in.Date,
			Time: b.Time, Amount: b.Amount, Hardness: b.Hardness,
		}
		if err := s.logs.AppendBowel(ctx, entry); err != nil {
			res.Bowel.Errors = append(res.Bowel.Errors, err.Error())
			continue
		}
		res.Bowel.Saved++
	}

	for _, e := range in.Exercise {
		if e.Content == "" {
			continue
		}
		entry := &models.ExerciseEntry{
			Name: name, Date: in.Date,
			Time: e.Time, Content: e.Content,
		}
		if err := s.logs.AppendExercise(ctx, entry); err != nil {
			res.Exercise.Errors = append(res.Exercise.Errors, err.Error())
			continue
		}
		res.Exercise.Saved++
	}

	for _, m := range in.Meals {
		if m.Menu == "" && m.ImageBase64 == "" {
			continue
		}
		imageURL := ""
		if m.ImageBase64 != "" {
			url, err := s.upload(m.ImageBase64)
			if err != nil {
				// missing photo is acceptable, a lost meal row is not
				log.Printf("meal photo upload failed for %s: %v", name, err)
			} else {
				imageURL = url
			}
		}
		entry := &models.MealEntry{
			Name: name, Date: in.Date,
			Type: m.Type, Time: m.Time, Menu: m.Menu, ImageURL: imageURL,
		}
		if err := s.logs.AppendMeal(ctx, entry); err != nil {
			res.Meals.Errors = append(res.Meals.Errors, err.Error())
			continue
		}
		res.Meals.Saved++
	}

	res.OK = len(res.Bowel.Errors) == 0 && len(res.Exercise.Errors) == 0 && len(res.Meals.Errors) == 0
	return res, nil
}
