package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username          string    `gorm:"uniqueIndex"`
	Password          string    `json:"-"`
	Role              string    `gorm:"index"` // "admin" or "user"
	BillingCode       string    `gorm:"index"`
	LastChallanNumber int64     `gorm:"default:10000"`
	CreatedAt         time.Time
}
