package model

import (
	"time"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
)

// Ticket represents the database model for support tickets
type Ticket struct {
	TicketID  string                 `gorm:"primaryKey;size:32"`
	Email     string                 `gorm:"not null;size:255;index"`
	UserType  string                 `gorm:"size:16"`
	Details   string                 `gorm:"not null;type:text"`
	Status    string                 `gorm:"not null;size:16;index"`
	Comments  []entity.TicketComment `gorm:"serializer:json"`
	CreatedAt time.Time              `gorm:"not null"`
}

// TableName specifies the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
