package model

import (
	"time"
)

// Purchase represents the database model for purchase records
type Purchase struct {
	Reference   string `gorm:"primaryKey;size:64"`
	Status      string `gorm:"not null;size:16"`
	TxnType     string `gorm:"not null;size:16;index"`
	Email       string `gorm:"size:255;index"`
	PhoneNumber string `gorm:"size:32"`

	AmountKobo int64 `gorm:"not null"` // Gross amount in kobo

	Units        string `gorm:"size:32"`
	ServiceFee   string `gorm:"size:32"`
	PlatformFees string `gorm:"size:32"`
	Commission   string `gorm:"size:32"`
	Token        string `gorm:"size:64"`

	MeterNumber string `gorm:"size:32"`
	MeterType   string `gorm:"size:32"`
	Location    string `gorm:"size:255"`

	CustomerName    string `gorm:"size:255"`
	CustomerContact string `gorm:"size:64"`

	PaymentMethod string `gorm:"size:32"`
	WalletBalance string `gorm:"size:32"`

	PurchaseDate *time.Time `gorm:"index"`
	CreatedAt    time.Time  `gorm:"not null"`
}

// TableName specifies the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}
