package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bkiskm0705-stack/nutrition-app/config"
	"github.com/bkiskm0705-stack/nutrition-app/services"
)

func buildServices() (*services.ConditionService, *services.LogService, *services.SubmissionService) {
	rec := services.NewReconciler(config.Store)
	conds := services.NewConditionService(config.Store, rec)
	logs := services.NewLogService(config.Store, rec)
	subs := services.NewSubmissionService(conds, logs, services.MealPhotoUploader)
	return conds, logs, subs
}

// SubmitRecords saves one full daily submission. The response always
// carries the per-section outcome; the client shows the success toast only
// on ok=true, because the writes span four tables without a transaction.
func SubmitRecords(c *gin.Context) {
	var input services.Submission
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := c.GetString("name")
	_, _, subs := buildServices()
	result, err := subs.Save(c.Request.Context(), name, &input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWeight) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "result": result})
		return
	}
	if !result.OK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "some records were not saved", "result": result})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetSummary is the self-review tab: latest metrics, the condition trend,
// and the last three exercise and bowel entries.
func GetSummary(c *gin.Context) {
	name := c.GetString("name")
	conds, logs, _ := buildServices()
	ctx := c.Request.Context()

	history, err := conds.History(ctx, name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	exercises, err := logs.RecentExercises(ctx, name, 3)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	bowels, err := logs.RecentBowels(ctx, name, 3)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"trend":            history,
		"recent_exercises": exercises,
		"recent_bowels":    bowels,
	}
	if len(history) > 0 {
		resp["latest"] = history[len(history)-1]
	}
	c.JSON(http.StatusOK, resp)
}
