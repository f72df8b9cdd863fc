package controllers

import (
	"errors"
	"net/http"

	"foodie-backend/services"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	Comments *services.CommentService
}

func NewCommentController(cs *services.CommentService) *CommentController {
	return &CommentController{Comments: cs}
}

// GET /comments/recipe/:recipeId
func (cc *CommentController) ListByRecipe(c *gin.Context) {
	recipeID := uint(atoiDefault(c.Param("recipeId"), 0))
	comments, err := cc.Comments.ListByRecipe(recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

type CommentInput struct {
	RecipeID uint   `json:"recipeId" binding:"required"`
	Content  string `json:"content" binding:"required,max=500"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
}

func (cc *CommentController) Add(c *gin.Context) {
	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.Comments.Add(c.GetUint("userID"), input.RecipeID, input.Content, input.Rating)
	if err != nil {
		respondCommentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) Delete(c *gin.Context) {
	id := uint(atoiDefault(c.Param("id"), 0))
	if err := cc.Comments.Delete(id, c.GetUint("userID")); err != nil {
		respondCommentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment removed"})
}

func (cc *CommentController) Like(c *gin.Context) {
	id := uint(atoiDefault(c.Param("id"), 0))
	likes, err := cc.Comments.ToggleLike(id, c.GetUint("userID"))
	if err != nil {
		respondCommentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

func respondCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
	case errors.Is(err, services.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
