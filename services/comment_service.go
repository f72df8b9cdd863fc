package services

import (
	"errors"
	"math"

	"foodie-backend/models"

	"gorm.io/gorm"
)

type CommentService struct{ db *gorm.DB }

func NewCommentService(db *gorm.DB) *CommentService { return &CommentService{db: db} }

func (s *CommentService) ListByRecipe(recipeID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.
		Preload("Author").
		Preload("Likes").
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (s *CommentService) Add(userID, recipeID uint, content string, rating int) (*models.Comment, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		Content:  content,
		Rating:   rating,
		AuthorID: userID,
		RecipeID: recipeID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	if err := s.recomputeRating(recipeID); err != nil {
		return nil, err
	}

	if err := s.db.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes the user's own comment and recomputes the recipe rating.
func (s *CommentService) Delete(commentID, userID uint) error {
	var comment models.Comment
	if err := s.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.AuthorID != userID {
		return ErrNotOwner
	}

	if err := s.db.Select("Likes").Delete(&comment).Error; err != nil {
		return err
	}
	return s.recomputeRating(comment.RecipeID)
}

func (s *CommentService) ToggleLike(commentID, userID uint) (int64, error) {
	var comment models.Comment
	if err := s.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCommentNotFound
		}
		return 0, err
	}

	var like models.CommentLike
	err := s.db.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&like).Error
	switch {
	case err == nil:
		if err := s.db.Delete(&like).Error; err != nil {
			return 0, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&models.CommentLike{CommentID: commentID, UserID: userID}).Error; err != nil {
			return 0, err
		}
	default:
		return 0, err
	}

	var count int64
	if err := s.db.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// recomputeRating keeps Recipe.Rating (one decimal) and ReviewCount in
// step with the comments.
func (s *CommentService) recomputeRating(recipeID uint) error {
	var stats struct {
		Avg float64
		N   int64
	}
	err := s.db.Model(&models.Comment{}).
		Where("recipe_id = ?", recipeID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS n").
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return s.db.Model(&models.Recipe{}).Where("id = ?", recipeID).Updates(map[string]interface{}{
		"rating":       math.Round(stats.Avg*10) / 10,
		"review_count": stats.N,
	}).Error
}
