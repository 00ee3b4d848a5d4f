package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChallanAuditLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChallanID   string    `gorm:"index"`
	Action      string
	PerformedBy string
	Details     datatypes.JSON
	CreatedAt   time.Time
}
