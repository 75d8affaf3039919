package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Generic

	Email    string `gorm:"unique" json:"-"`
	FullName string `gorm:"not null" json:"full_name"`
}

func CreateUser(db *gorm.DB, email, fullName string) (*User, error) {
	user := &User{
		Email:    email,
		FullName: fullName,
	}

	if err := db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func GetUserByID(db *gorm.DB, id uuid.UUID) (*User, error) {
	var user User

	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func GetUserByEmail(db *gorm.DB, email string) (*User, error) {
	var user User

	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
