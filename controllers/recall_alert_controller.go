package controllers

import (
	"errors"
	"net/http"

	"foodie-backend/models"
	"foodie-backend/services"

	"github.com/gin-gonic/gin"
)

const (
	recipeAlertWindow = 100 // recalls scanned for one recipe
	fleetAlertWindow  = 50  // recalls scanned across all recipes
)

type RecallAlertController struct {
	Recipes *services.RecipeService
	FDA     *services.OpenFDAService
}

func NewRecallAlertController(rs *services.RecipeService, fda *services.OpenFDAService) *RecallAlertController {
	return &RecallAlertController{Recipes: rs, FDA: fda}
}

// GET /recall-alerts/recipe/:recipeId
func (rc *RecallAlertController) RecipeAlerts(c *gin.Context) {
	recipeID := uint(atoiDefault(c.Param("recipeId"), 0))
	recipe, err := rc.Recipes.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results, err := rc.FDA.FetchRecent(recipeAlertWindow)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	alerts := services.MatchIngredients(ingredientNames(recipe), services.RecordsFromResults(results))
	c.JSON(http.StatusOK, gin.H{
		"alerts":      alerts,
		"recipe":      recipe.Title,
		"totalAlerts": len(alerts),
	})
}

// GET /recall-alerts/recipes — every recipe that currently has at least
// one alert, against a single feed window.
func (rc *RecallAlertController) AllRecipesWithAlerts(c *gin.Context) {
	recipes, err := rc.Recipes.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results, err := rc.FDA.FetchRecent(fleetAlertWindow)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	window := services.RecordsFromResults(results)

	flagged := []gin.H{}
	for i := range recipes {
		alerts := services.MatchIngredients(ingredientNames(&recipes[i]), window)
		if len(alerts) == 0 {
			continue
		}
		flagged = append(flagged, gin.H{
			"recipe": gin.H{
				"id":          recipes[i].ID,
				"title":       recipes[i].Title,
				"author":      recipes[i].Author,
				"cuisine":     recipes[i].Cuisine,
				"rating":      recipes[i].Rating,
				"reviewCount": recipes[i].ReviewCount,
			},
			"alerts":     alerts,
			"alertCount": len(alerts),
		})
	}

	c.JSON(http.StatusOK, gin.H{"recipes": flagged})
}

func ingredientNames(recipe *models.Recipe) []string {
	names := make([]string, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		names = append(names, ing.Name)
	}
	return names
}
