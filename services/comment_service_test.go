package services

import (
	"testing"

	"foodie-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRecipe(t *testing.T, db *gorm.DB) (*models.User, *models.Recipe) {
	t.Helper()

	user := models.User{Username: "cook", Email: "cook@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	recipe := models.Recipe{
		Title:       "Tomato Soup",
		Description: "Simple soup",
		Cuisine:     "Italian",
		Servings:    4,
		CookingTime: 30,
		AuthorID:    user.ID,
		Ingredients: []models.Ingredient{{Name: "tomato", Amount: "500g"}},
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &user, &recipe
}

func TestAddCommentUpdatesRecipeRating(t *testing.T) {
	db := newTestDB(t)
	user, recipe := seedRecipe(t, db)
	s := NewCommentService(db)

	_, err := s.Add(user.ID, recipe.ID, "Lovely", 4)
	require.NoError(t, err)
	_, err = s.Add(user.ID, recipe.ID, "Even better reheated", 5)
	require.NoError(t, err)

	var updated models.Recipe
	require.NoError(t, db.First(&updated, recipe.ID).Error)
	assert.Equal(t, 4.5, updated.Rating)
	assert.Equal(t, 2, updated.ReviewCount)
}

func TestAddCommentUnknownRecipe(t *testing.T) {
	db := newTestDB(t)
	user, _ := seedRecipe(t, db)
	s := NewCommentService(db)

	_, err := s.Add(user.ID, 9999, "ghost", 3)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestDeleteCommentRecomputesRating(t *testing.T) {
	db := newTestDB(t)
	user, recipe := seedRecipe(t, db)
	s := NewCommentService(db)

	c1, err := s.Add(user.ID, recipe.ID, "meh", 2)
	require.NoError(t, err)
	_, err = s.Add(user.ID, recipe.ID, "great", 5)
	require.NoError(t, err)

	require.NoError(t, s.Delete(c1.ID, user.ID))

	var updated models.Recipe
	require.NoError(t, db.First(&updated, recipe.ID).Error)
	assert.Equal(t, 5.0, updated.Rating)
	assert.Equal(t, 1, updated.ReviewCount)
}

func TestDeleteCommentOwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	user, recipe := seedRecipe(t, db)
	s := NewCommentService(db)

	other := models.User{Username: "other", Email: "other@example.com", Password: "x"}
	require.NoError(t, db.Create(&other).Error)

	c, err := s.Add(user.ID, recipe.ID, "mine", 4)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete(c.ID, other.ID), ErrNotOwner)
}

func TestToggleCommentLike(t *testing.T) {
	db := newTestDB(t)
	user, recipe := seedRecipe(t, db)
	s := NewCommentService(db)

	c, err := s.Add(user.ID, recipe.ID, "nice", 4)
	require.NoError(t, err)

	likes, err := s.ToggleLike(c.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	likes, err = s.ToggleLike(c.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
}
