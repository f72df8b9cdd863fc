package services

import (
	"foodie-backend/config"
	"foodie-backend/models"
)

type ProfileInput struct {
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	var recipeCount int64
	config.DB.Model(&models.Recipe{}).Where("author_id = ?", userID).Count(&recipeCount)

	return map[string]interface{}{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"avatar":       user.Avatar,
		"bio":          user.Bio,
		"recipe_count": recipeCount,
		"joined":       user.CreatedAt.Format("2006-01-02"),
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	user.Avatar = input.Avatar
	user.Bio = input.Bio
	return config.DB.Save(user).Error
}
