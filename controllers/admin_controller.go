package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bkiskm0705-stack/nutrition-app/config"
	"github.com/bkiskm0705-stack/nutrition-app/services"
)

func buildAdminService() *services.AdminService {
	rec := services.NewReconciler(config.Store)
	users := services.NewUserService(config.Store)
	conds := services.NewConditionService(config.Store, rec)
	logs := services.NewLogService(config.Store, rec)
	return services.NewAdminService(config.Store, rec, users, conds, logs)
}

func ListAthletes(c *gin.Context) {
	userSvc := services.NewUserService(config.Store)
	athletes, err := userSvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, athletes)
}

// GetAthlete is the per-athlete analysis view.
func GetAthlete(c *gin.Context) {
	admin := buildAdminService()
	analysis, err := admin.Analyze(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, services.ErrAthleteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GetDailyRollup lists every athlete's records for one date.
func GetDailyRollup(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter required"})
		return
	}

	admin := buildAdminService()
	rollup, err := admin.Rollup(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rollup)
}

// GetDeletionSummary backs the confirmation screen: profile plus how many
// rows each table would lose.
func GetDeletionSummary(c *gin.Context) {
	admin := buildAdminService()
	summary, err := admin.DeletionSummary(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, services.ErrAthleteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DeleteAthlete runs the cascade. confirm=true is required, standing in
// for the dashboard's consent checkbox. A partial failure returns 502 with
// the per-table outcome so nothing is silently declared complete.
func DeleteAthlete(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deletion requires confirm=true"})
		return
	}

	admin := buildAdminService()
	result, err := admin.DeleteAthlete(c.Request.Context(), c.Param("name"))
	if err != nil {
		var partial *services.PartialDeleteError
		if errors.As(err, &partial) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   partial.Error(),
				"removed": partial.Removed,
				"report":  partial.Report(),
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
