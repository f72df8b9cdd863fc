package services

import (
	"errors"

	"foodie-backend/config"
	"foodie-backend/models"
	"foodie-backend/utils"

	"gorm.io/gorm"
)

func RegisterUser(username, email, password string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", email, username).First(&existing).Error; err == nil {
		return nil, errors.New("email or username already taken")
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (*models.User, string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
