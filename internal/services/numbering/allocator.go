package numbering

import (
	"errors"
	"fmt"

	"challan-management-backend/internal/models"

	"gorm.io/gorm"
)

var ErrBillerNotFound = errors.New("biller not found")

// BillerStore is the slice of user storage the allocator needs. The
// increment must be atomic at the store so concurrent allocations for
// one biller never observe the same counter value.
type BillerStore interface {
	GetByUsername(username string) (*models.User, error)
	IncrementChallanNumber(username string) (int64, error)
}

type Allocator struct {
	billers BillerStore
}

func NewAllocator(billers BillerStore) *Allocator {
	return &Allocator{billers: billers}
}

// Allocate issues the next challan identifier for the biller: billing
// code prefix followed by the post-increment counter. Counters are
// seeded at 10000 on registration, so the first identifier ends in
// 10001. Gaps are tolerated (a failed downstream write never returns
// a number to the pool), duplicates are not.
func (a *Allocator) Allocate(username string) (string, error) {
	biller, err := a.billers.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBillerNotFound
		}
		return "", err
	}

	next, err := a.billers.IncrementChallanNumber(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBillerNotFound
		}
		return "", err
	}

	return fmt.Sprintf("%s%d", biller.BillingCode, next), nil
}
