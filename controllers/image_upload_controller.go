package controllers

import (
	"net/http"

	"foodie-backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /upload/recipe-image
func UploadRecipeImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "recipe-images")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
