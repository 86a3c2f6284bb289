package model

import (
	"time"
)

// UserServer represents the database model for purchase records. Rows cascade
// away with their owning user; the config reference is not cascaded.
type UserServer struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	UserID     string    `gorm:"not null;size:32;index"`
	ConfigID   uint64    `gorm:"not null;index"`
	ServerName string    `gorm:"not null;size:50"`
	Status     string    `gorm:"not null;size:20;default:'active';index"`
	IPAddress  string    `gorm:"size:45"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	User   User         `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Config ServerConfig `gorm:"foreignKey:ConfigID;references:ID"`
}

// TableName specifies the table name for UserServer
func (UserServer) TableName() string {
	return "user_servers"
}
