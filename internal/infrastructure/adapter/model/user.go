package model

import (
	"time"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
)

// User represents the database model for users
type User struct {
	UserID            string         `gorm:"primaryKey;size:64"`
	Email             string         `gorm:"not null;uniqueIndex;size:255"`
	PhoneNumber       string         `gorm:"size:32"`
	FirstName         string         `gorm:"size:128"`
	LastName          string         `gorm:"size:128"`
	UserType          string         `gorm:"not null;size:16;index"`
	IsActive          bool           `gorm:"not null;default:true"`
	WalletBalanceKobo int64          `gorm:"not null;default:0"` // Balance in kobo
	Meters            []entity.Meter `gorm:"serializer:json"`
	LastLogin         time.Time      `gorm:"index"`
	CreatedAt         time.Time      `gorm:"not null"`
	UpdatedAt         time.Time      `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
