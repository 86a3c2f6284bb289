package model

import (
	"time"
)

// Transaction represents the database model for the balance ledger.
// Application logic only ever inserts and reads; there are no updates.
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      string    `gorm:"not null;size:32;index"`
	Type        string    `gorm:"not null;size:20;index"`
	Amount      int64     `gorm:"not null"`
	Description string    `gorm:"type:text"`
	ReferenceID *uint64   `gorm:"index"`
	CreatedAt   time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
