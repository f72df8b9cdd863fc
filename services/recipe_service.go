package services

import (
	"errors"
	"strings"

	"foodie-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeService struct{ db *gorm.DB }

func NewRecipeService(db *gorm.DB) *RecipeService { return &RecipeService{db: db} }

type RecipeListQuery struct {
	Page       int
	Limit      int
	Cuisine    string
	Difficulty string
	Search     string
}

func (s *RecipeService) List(q RecipeListQuery) ([]models.Recipe, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}

	scoped := func() *gorm.DB {
		tx := s.db.Model(&models.Recipe{})
		if q.Cuisine != "" {
			tx = tx.Where("cuisine = ?", q.Cuisine)
		}
		if q.Difficulty != "" {
			tx = tx.Where("difficulty = ?", q.Difficulty)
		}
		if q.Search != "" {
			like := "%" + strings.ToLower(q.Search) + "%"
			tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
		return tx
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := scoped().
		Preload("Ingredients").
		Preload("Author").
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListAll loads every recipe with its ingredients, for the fleet-wide
// recall alert scan.
func (s *RecipeService) ListAll() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Preload("Ingredients").Preload("Author").Find(&recipes).Error
	return recipes, err
}

func (s *RecipeService) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Ingredients").
		Preload("Author").
		Preload("Likes").
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Create(recipe *models.Recipe) error {
	return s.db.Create(recipe).Error
}

// Update replaces the recipe's fields and its ingredient rows. Only the
// author may update.
func (s *RecipeService) Update(id, userID uint, in *models.Recipe) (*models.Recipe, error) {
	recipe, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, ErrNotOwner
	}

	recipe.Title = in.Title
	recipe.Description = in.Description
	recipe.Instructions = in.Instructions
	recipe.CookingTime = in.CookingTime
	recipe.Servings = in.Servings
	recipe.Difficulty = in.Difficulty
	recipe.Cuisine = in.Cuisine
	recipe.Tags = in.Tags
	if in.Image != "" {
		recipe.Image = in.Image
	}

	// Save scalar fields first, then swap the ingredient rows; saving with
	// the stale preloaded children would re-create rows Replace removes.
	if err := s.db.Omit(clause.Associations).Save(recipe).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(recipe).Association("Ingredients").Unscoped().Replace(in.Ingredients); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *RecipeService) Delete(id, userID uint) error {
	recipe, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if recipe.AuthorID != userID {
		return ErrNotOwner
	}
	return s.db.Select("Ingredients", "Likes").Delete(recipe).Error
}

// ToggleLike likes the recipe for the user, or removes the like if it is
// already there. Returns the new like count.
func (s *RecipeService) ToggleLike(id, userID uint) (int64, error) {
	if _, err := s.GetByID(id); err != nil {
		return 0, err
	}

	var like models.RecipeLike
	err := s.db.Where("recipe_id = ? AND user_id = ?", id, userID).First(&like).Error
	switch {
	case err == nil:
		if err := s.db.Delete(&like).Error; err != nil {
			return 0, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&models.RecipeLike{RecipeID: id, UserID: userID}).Error; err != nil {
			return 0, err
		}
	default:
		return 0, err
	}

	var count int64
	if err := s.db.Model(&models.RecipeLike{}).Where("recipe_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
