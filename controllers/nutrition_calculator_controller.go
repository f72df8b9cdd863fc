package controllers

import (
	"net/http"

	"foodie-backend/models"
	"foodie-backend/services"

	"github.com/gin-gonic/gin"
)

// POST /nutrition-calculator/calories
func CalculateDailyCalories(c *gin.Context) {
	var input services.CalorieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please provide age, gender, weight, height, and activity level",
		})
		return
	}

	result, err := services.CalculateDailyCalories(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type RecipeNutritionInput struct {
	Ingredients []struct {
		Name   string `json:"name" binding:"required"`
		Amount string `json:"amount"`
	} `json:"ingredients" binding:"required,min=1,dive"`
	Servings int `json:"servings" binding:"required,min=1"`
}

// POST /nutrition-calculator/recipe
func CalculateRecipeNutrition(c *gin.Context) {
	var input RecipeNutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please provide ingredients array and servings count",
		})
		return
	}

	ingredients := make([]models.Ingredient, 0, len(input.Ingredients))
	for _, ing := range input.Ingredients {
		ingredients = append(ingredients, models.Ingredient{Name: ing.Name, Amount: ing.Amount})
	}

	result, err := services.CalculateRecipeNutrition(ingredients, input.Servings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
