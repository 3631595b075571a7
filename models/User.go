package models

import (
	"gorm.io/gorm"
)

// User is a dashboard account (admin or property owner).
type User struct {
	gorm.Model
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	Password       string     `json:"-"`
	SocialLogin    bool       `json:"socialLogin"`
	SocialProvider string     `json:"socialProvider"`
	AvatarURL      string     `json:"avatarURL"`
	Role           string     `json:"role" gorm:"type:varchar(20);default:user;index"` // user, admin
	APIConnected   bool       `json:"apiConnected"`
	Properties     []Property `json:"properties,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
}
