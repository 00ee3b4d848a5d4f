package models

import (
	"time"

	"github.com/google/uuid"
)

type Branch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index;not null"`
	ClientID  uuid.UUID `gorm:"index;not null"`
	CreatedAt time.Time
}
