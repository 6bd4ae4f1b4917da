package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is the household member an expense is attributed to.
type User struct {
	DefaultModel
	Username string `gorm:"uniqueIndex"`
}

func (u User) Self() string {
	return "User"
}

func (u *User) BeforeSave(_ *gorm.DB) (err error) {
	u.Username = strings.TrimSpace(u.Username)
	return nil
}
