package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ChallanID  string          `gorm:"index;not null"`
	Particular string          `gorm:"not null"`
	Quantity   int             `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Remarks    string
	CreatedAt  time.Time
}
