package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessToken struct {
	Generic

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User   User      `json:"user"`

	Token string `gorm:"uniqueIndex" json:"token"`
}

func CreateAccessToken(db *gorm.DB, userID uuid.UUID, token string) (*AccessToken, error) {
	accessToken := &AccessToken{
		UserID: userID,
		Token:  token,
	}

	if err := db.Create(accessToken).Error; err != nil {
		return nil, err
	}

	return accessToken, nil
}

func GetAccessToken(db *gorm.DB, token string) (*AccessToken, error) {
	var accessToken AccessToken

	err := db.First(&accessToken, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &accessToken, nil
}
