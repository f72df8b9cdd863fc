package controllers

import (
	"errors"
	"net/http"

	"foodie-backend/services"

	"github.com/gin-gonic/gin"
)

type RecallController struct {
	Recalls *services.RecallService
}

func NewRecallController(rs *services.RecallService) *RecallController {
	return &RecallController{Recalls: rs}
}

// GET /recalls?limit=10&page=1&state=NY&since=20240101
func (rc *RecallController) List(c *gin.Context) {
	q := services.RecallQuery{
		State: c.Query("state"),
		Since: c.Query("since"),
		Limit: atoiDefault(c.Query("limit"), 10),
		Page:  atoiDefault(c.Query("page"), 1),
	}

	page, err := rc.Recalls.Query(q)
	if err != nil {
		var fe *services.FetchError
		if errors.As(err, &fe) {
			c.JSON(http.StatusBadGateway, gin.H{"ok": false, "message": fe.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"count":      page.Total,
		"results":    page.Records,
		"page":       page.Page,
		"totalPages": page.TotalPages,
	})
}
