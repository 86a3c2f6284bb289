package model

import (
	"time"
)

// User represents the database model for users. The primary key is the
// identity provider's user id, stored as text.
type User struct {
	ID        string    `gorm:"primaryKey;size:32"`
	Username  string    `gorm:"not null;size:255;index"`
	Email     string    `gorm:"size:255"`
	AvatarURL string    `gorm:"size:512"`
	Balance   int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
