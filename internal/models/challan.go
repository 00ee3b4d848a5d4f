package models

import (
	"time"

	"github.com/google/uuid"
)

// Challan is immutable once issued. ClientName and BranchName are
// snapshots taken at issue time so later renames never change the
// text of an already issued document.
type Challan struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChallanID  string    `gorm:"uniqueIndex"`
	Date       time.Time `gorm:"index"`
	ClientID   uuid.UUID `gorm:"index"`
	ClientName string
	BranchID   uuid.UUID `gorm:"index"`
	BranchName string
	IssuedBy   string `gorm:"index"`
	CreatedAt  time.Time
}
