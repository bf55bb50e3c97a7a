package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bkiskm0705-stack/nutrition-app/config"
	"github.com/bkiskm0705-stack/nutrition-app/services"
	"github.com/bkiskm0705-stack/nutrition-app/utils"
)

type LoginInput struct {
	Name string `json:"name" binding:"required"`
}

// Login is the participant entry point: name only, no password. The token
// is issued either way; registered tells the client whether to show the
// first-time profile form.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.Store)
	athlete, err := userSvc.Find(c.Request.Context(), input.Name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"registered": athlete != nil,
	})
}

type AdminLoginInput struct {
	Password string `json:"password" binding:"required"`
}

// AdminLogin gates the dashboard with the shared static password.
func AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expected := config.C.Auth.AdminPassword
	if expected == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: ADMIN_PASSWORD not set"})
		return
	}
	if subtle.ConstantTimeCompare([]byte(input.Password), []byte(expected)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}

	token, err := utils.GenerateAdminJWT()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
