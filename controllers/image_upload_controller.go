package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bkiskm0705-stack/nutrition-app/services"
)

type UploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadImage hosts one photo ahead of a submission and returns its URL.
// Unlike the inline meal-photo path this one surfaces failures, so clients
// that want to retry before saving can.
func UploadImage(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := services.MealPhotoUploader(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
