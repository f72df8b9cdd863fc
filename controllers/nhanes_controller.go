package controllers

import (
	"net/http"

	"foodie-backend/models"
	"foodie-backend/services"

	"github.com/gin-gonic/gin"
)

type NhanesController struct {
	Nhanes *services.NhanesService
}

func NewNhanesController(ns *services.NhanesService) *NhanesController {
	return &NhanesController{Nhanes: ns}
}

// GET /nhanes/benchmarks?nutrient=sodium&age=19-30&sex=0
func (nc *NhanesController) Benchmarks(c *gin.Context) {
	nutrient := c.DefaultQuery("nutrient", "sodium")
	ageBin := c.DefaultQuery("age", "19-30")
	sex := atoiDefault(c.Query("sex"), 0) // 0 = all sexes

	data, err := nc.Nhanes.Benchmark(nutrient, ageBin, sex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

// POST /dev/nhanes/seed — bulk-load benchmark rows for local development.
func (nc *NhanesController) Seed(c *gin.Context) {
	var rows []models.NhanesBenchmark
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := nc.Nhanes.Seed(rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "seeded": len(rows)})
}
