package models

import (
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	Title        string       `gorm:"size:100;not null" json:"title"`
	Description  string       `gorm:"size:500;not null" json:"description"`
	Ingredients  []Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	Instructions []string     `gorm:"serializer:json" json:"instructions"`
	CookingTime  int          `json:"cookingTime"`
	Servings     int          `json:"servings"`
	Difficulty   string       `gorm:"size:10;default:Medium" json:"difficulty"`
	Cuisine      string       `gorm:"not null" json:"cuisine"`
	Tags         []string     `gorm:"serializer:json" json:"tags"`
	Image        string       `json:"image"`
	AuthorID     uint         `gorm:"index;not null" json:"-"`
	Author       User         `json:"author"`
	Likes        []RecipeLike `gorm:"constraint:OnDelete:CASCADE" json:"likes"`
	Rating       float64      `json:"rating"`
	ReviewCount  int          `json:"reviewCount"`
}

type Ingredient struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	RecipeID uint   `gorm:"index;not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Amount   string `gorm:"not null" json:"amount"`
}

// One row per (recipe, user); liking again removes the row.
type RecipeLike struct {
	ID       uint `gorm:"primaryKey" json:"-"`
	RecipeID uint `gorm:"uniqueIndex:idx_recipe_like;not null" json:"-"`
	UserID   uint `gorm:"uniqueIndex:idx_recipe_like;not null" json:"userId"`
}
