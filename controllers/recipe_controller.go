package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"foodie-backend/models"
	"foodie-backend/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Recipes *services.RecipeService
}

func NewRecipeController(rs *services.RecipeService) *RecipeController {
	return &RecipeController{Recipes: rs}
}

type RecipeInput struct {
	Title        string   `json:"title" binding:"required,max=100"`
	Description  string   `json:"description" binding:"required,max=500"`
	Ingredients  []struct {
		Name   string `json:"name" binding:"required"`
		Amount string `json:"amount" binding:"required"`
	} `json:"ingredients" binding:"required,min=1,dive"`
	Instructions []string `json:"instructions" binding:"required,min=1"`
	CookingTime  int      `json:"cookingTime" binding:"required,min=1"`
	Servings     int      `json:"servings" binding:"required,min=1"`
	Difficulty   string   `json:"difficulty"`
	Cuisine      string   `json:"cuisine" binding:"required"`
	Tags         []string `json:"tags"`
	Image        string   `json:"image"`
}

func (in *RecipeInput) toModel() *models.Recipe {
	ingredients := make([]models.Ingredient, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		ingredients = append(ingredients, models.Ingredient{Name: ing.Name, Amount: ing.Amount})
	}
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = "Medium"
	}
	return &models.Recipe{
		Title:        in.Title,
		Description:  in.Description,
		Ingredients:  ingredients,
		Instructions: in.Instructions,
		CookingTime:  in.CookingTime,
		Servings:     in.Servings,
		Difficulty:   difficulty,
		Cuisine:      in.Cuisine,
		Tags:         in.Tags,
		Image:        in.Image,
	}
}

// GET /recipes?page=1&limit=10&cuisine=&difficulty=&search=
func (rc *RecipeController) List(c *gin.Context) {
	q := services.RecipeListQuery{
		Page:       atoiDefault(c.Query("page"), 1),
		Limit:      atoiDefault(c.Query("limit"), 10),
		Cuisine:    c.Query("cuisine"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
	}

	recipes, total, err := rc.Recipes.List(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes":     recipes,
		"total":       total,
		"currentPage": q.Page,
		"totalPages":  int(math.Ceil(float64(total) / float64(q.Limit))),
	})
}

func (rc *RecipeController) Get(c *gin.Context) {
	recipe, err := rc.Recipes.GetByID(uint(atoiDefault(c.Param("id"), 0)))
	if err != nil {
		respondRecipeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) Create(c *gin.Context) {
	var input RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := input.toModel()
	recipe.AuthorID = c.GetUint("userID")
	if err := rc.Recipes.Create(recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	created, err := rc.Recipes.GetByID(recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rc *RecipeController) Update(c *gin.Context) {
	var input RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uint(atoiDefault(c.Param("id"), 0))
	recipe, err := rc.Recipes.Update(id, c.GetUint("userID"), input.toModel())
	if err != nil {
		respondRecipeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) Delete(c *gin.Context) {
	id := uint(atoiDefault(c.Param("id"), 0))
	if err := rc.Recipes.Delete(id, c.GetUint("userID")); err != nil {
		respondRecipeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

func (rc *RecipeController) Like(c *gin.Context) {
	id := uint(atoiDefault(c.Param("id"), 0))
	likes, err := rc.Recipes.ToggleLike(id, c.GetUint("userID"))
	if err != nil {
		respondRecipeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

func respondRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// atoiDefault coerces query/path numbers leniently: bad or missing input
// falls back to the default instead of failing the request.
func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
