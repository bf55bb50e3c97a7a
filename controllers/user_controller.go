package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bkiskm0705-stack/nutrition-app/config"
	"github.com/bkiskm0705-stack/nutrition-app/models"
	"github.com/bkiskm0705-stack/nutrition-app/services"
	"github.com/bkiskm0705-stack/nutrition-app/utils"
)

type RegisterInput struct {
	DOB    string `json:"dob" binding:"required"` // YYYY-MM-DD
	Height string `json:"height" binding:"required"`
}

// RegisterProfile appends the first-time users row for the logged-in name.
func RegisterProfile(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	height := utils.NormalizeFloat(input.Height)
	if height <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "height must be a positive number"})
		return
	}

	name := c.GetString("name")
	userSvc := services.NewUserService(config.Store)
	err := userSvc.Register(c.Request.Context(), &models.Athlete{
		Name:   name,
		DOB:    input.DOB,
		Height: height,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyRegistered) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

// GetProfile returns the logged-in athlete's users row.
func GetProfile(c *gin.Context) {
	name := c.GetString("name")
	userSvc := services.NewUserService(config.Store)
	athlete, err := userSvc.Find(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if athlete == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not registered"})
		return
	}
	c.JSON(http.StatusOK, athlete)
}
