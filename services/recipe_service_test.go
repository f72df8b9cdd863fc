package services

import (
	"testing"

	"foodie-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	s := NewRecipeService(db)
	user, _ := seedRecipe(t, db)

	recipe := &models.Recipe{
		Title:        "Garlic Pasta",
		Description:  "Weeknight pasta",
		Cuisine:      "Italian",
		Servings:     2,
		CookingTime:  20,
		Instructions: []string{"Boil pasta", "Fry garlic", "Combine"},
		Tags:         []string{"quick", "vegetarian"},
		AuthorID:     user.ID,
		Ingredients: []models.Ingredient{
			{Name: "pasta", Amount: "200g"},
			{Name: "garlic", Amount: "3 cloves"},
		},
	}
	require.NoError(t, s.Create(recipe))

	got, err := s.GetByID(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Garlic Pasta", got.Title)
	assert.Len(t, got.Ingredients, 2)
	assert.Equal(t, []string{"Boil pasta", "Fry garlic", "Combine"}, got.Instructions)
	assert.Equal(t, "cook", got.Author.Username)
}

func TestRecipeGetNotFound(t *testing.T) {
	db := newTestDB(t)
	s := NewRecipeService(db)

	_, err := s.GetByID(42)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeListFilters(t *testing.T) {
	db := newTestDB(t)
	s := NewRecipeService(db)
	user, _ := seedRecipe(t, db) // seeds one Italian recipe "Tomato Soup"

	require.NoError(t, s.Create(&models.Recipe{
		Title: "Pad Thai", Description: "Street food classic", Cuisine: "Thai",
		Servings: 2, CookingTime: 25, Difficulty: "Hard", AuthorID: user.ID,
	}))

	recipes, total, err := s.List(RecipeListQuery{Cuisine: "Thai"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pad Thai", recipes[0].Title)

	recipes, total, err = s.List(RecipeListQuery{Search: "street"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pad Thai", recipes[0].Title)

	_, total, err = s.List(RecipeListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestRecipeUpdateReplacesIngredients(t *testing.T) {
	db := newTestDB(t)
	s := NewRecipeService(db)
	user, recipe := seedRecipe(t, db)

	updated, err := s.Update(recipe.ID, user.ID, &models.Recipe{
		Title:       "Roasted Tomato Soup",
		Description: "Richer version",
		Cuisine:     "Italian",
		Servings:    4,
		CookingTime: 45,
		Difficulty:  "Medium",
		Ingredients: []models.Ingredient{
			{Name: "tomato", Amount: "800g"},
			{Name: "garlic", Amount: "2 cloves"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Roasted Tomato Soup", updated.Title)
	assert.Len(t, updated.Ingredients, 2)
}

func TestRecipeUpdateOwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	s := NewRecipeService(db)
	_, recipe := seedRecipe(t, db)

	other := models.User{Username: "intruder", Email: "intruder@example.com", Password: "x"}
	require.NoError(t, db.Create(&other).Error)

	_, err := s.Update(recipe.ID, other.ID, &models.Recipe{Title: "Hijacked"})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestRecipeDelete(t *testing.T) {
	db := newTestDB(t)
	s := NewRecipeService(db)
	user, recipe := seedRecipe(t, db)

	require.NoError(t, s.Delete(recipe.ID, user.ID))

	_, err := s.GetByID(recipe.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeToggleLike(t *testing.T) {
	db := newTestDB(t)
	s := NewRecipeService(db)
	user, recipe := seedRecipe(t, db)

	likes, err := s.ToggleLike(recipe.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	likes, err = s.ToggleLike(recipe.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
}
