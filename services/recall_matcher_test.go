package services

import (
	"testing"

	"foodie-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchIngredientsProductMatch(t *testing.T) {
	window := []models.RecallRecord{
		{RecallNumber: "R1", ProductDescription: "Organic Spinach Recall", ReasonForRecall: "Listeria"},
	}

	alerts := MatchIngredients([]string{"spinach", "beef"}, window)

	require.Len(t, alerts, 1)
	assert.Equal(t, "spinach", alerts[0].Ingredient)
	assert.Equal(t, "R1", alerts[0].RecallNumber)
	assert.Equal(t, "Organic Spinach Recall", alerts[0].RecallProduct)
}

func TestMatchIngredientsCaseInsensitive(t *testing.T) {
	window := []models.RecallRecord{
		{RecallNumber: "R1", ProductDescription: "Diced Tomato Cans"},
	}

	upper := MatchIngredients([]string{"Tomato"}, window)
	lower := MatchIngredients([]string{"tomato"}, window)

	assert.Equal(t, lower, upper)
	require.Len(t, lower, 1)
	assert.Equal(t, "tomato", lower[0].Ingredient)
}

func TestMatchIngredientsAtMostOneAlertPerIngredient(t *testing.T) {
	window := []models.RecallRecord{
		{RecallNumber: "R1", ProductDescription: "Fresh Onion Batch A"},
		{RecallNumber: "R2", ProductDescription: "Fresh Onion Batch B"},
	}

	alerts := MatchIngredients([]string{"onion"}, window)

	require.Len(t, alerts, 1)
	// first record in the window wins
	assert.Equal(t, "R1", alerts[0].RecallNumber)
}

func TestMatchIngredientsReasonMatch(t *testing.T) {
	window := []models.RecallRecord{
		{RecallNumber: "R1", ProductDescription: "Frozen Meal Kit", ReasonForRecall: "Undeclared peanut"},
	}

	alerts := MatchIngredients([]string{"peanut"}, window)

	require.Len(t, alerts, 1)
	assert.Equal(t, "Undeclared peanut", alerts[0].Reason)
}

func TestMatchIngredientsIngredientContainsProduct(t *testing.T) {
	window := []models.RecallRecord{
		{RecallNumber: "R1", ProductDescription: "cheddar"},
	}

	alerts := MatchIngredients([]string{"sharp cheddar cheese"}, window)

	require.Len(t, alerts, 1)
	assert.Equal(t, "sharp cheddar cheese", alerts[0].Ingredient)
}

func TestMatchIngredientsNoMatch(t *testing.T) {
	window := []models.RecallRecord{
		{RecallNumber: "R1", ProductDescription: "Romaine Lettuce", ReasonForRecall: "E. coli"},
	}

	alerts := MatchIngredients([]string{"chicken"}, window)
	assert.Empty(t, alerts)
}

func TestMatchIngredientsNormalizesWhitespace(t *testing.T) {
	window := []models.RecallRecord{
		{RecallNumber: "R1", ProductDescription: "Ground Beef Patties"},
	}

	alerts := MatchIngredients([]string{"  Beef  "}, window)

	require.Len(t, alerts, 1)
	assert.Equal(t, "beef", alerts[0].Ingredient)
}

func TestMatchIngredientsPreservesWindowOrder(t *testing.T) {
	window := []models.RecallRecord{
		{RecallNumber: "R1", ProductDescription: "Raw Milk"},
		{RecallNumber: "R2", ProductDescription: "Whole Wheat Bread"},
	}

	alerts := MatchIngredients([]string{"bread", "milk"}, window)

	require.Len(t, alerts, 2)
	assert.Equal(t, "milk", alerts[0].Ingredient)
	assert.Equal(t, "bread", alerts[1].Ingredient)
}
