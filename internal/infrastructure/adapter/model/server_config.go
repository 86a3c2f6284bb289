package model

import (
	"time"
)

// ServerConfig represents the database model for purchasable tiers.
// Features is the JSON-encoded ordered feature list.
type ServerConfig struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"uniqueIndex;not null;size:100"`
	CPUCores     int       `gorm:"not null"`
	RAMGB        float64   `gorm:"not null"`
	StorageGB    int       `gorm:"not null"`
	StorageType  string    `gorm:"not null;size:50;default:'NVMe SSD'"`
	BandwidthGB  int       `gorm:"not null;default:0"`
	PriceMonthly int64     `gorm:"not null"`
	MaxWebsites  int       `gorm:"not null;default:1"`
	Features     string    `gorm:"type:text;not null;default:'[]'"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for ServerConfig
func (ServerConfig) TableName() string {
	return "server_configs"
}
