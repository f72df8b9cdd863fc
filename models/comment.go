package models

import (
	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	Content  string        `gorm:"size:500;not null" json:"content"`
	Rating   int           `gorm:"not null" json:"rating"` // 1–5
	AuthorID uint          `gorm:"index;not null" json:"-"`
	Author   User          `json:"author"`
	RecipeID uint          `gorm:"index;not null" json:"recipeId"`
	Likes    []CommentLike `gorm:"constraint:OnDelete:CASCADE" json:"likes"`
}

type CommentLike struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	CommentID uint `gorm:"uniqueIndex:idx_comment_like;not null" json:"-"`
	UserID    uint `gorm:"uniqueIndex:idx_comment_like;not null" json:"userId"`
}
