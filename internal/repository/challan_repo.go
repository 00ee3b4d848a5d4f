package repository

import (
	"challan-management-backend/internal/models"

	"gorm.io/gorm"
)

type ChallanRepository struct {
	db *gorm.DB
}

func NewChallanRepository(db *gorm.DB) *ChallanRepository {
	return &ChallanRepository{db: db}
}

// CreateWithItems writes the challan header and its line items as one
// transaction so a failed item insert never leaves an orphaned header.
func (r *ChallanRepository) CreateWithItems(challan *models.Challan, items []models.BillingItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(challan).Error; err != nil {
			return err
		}
		return tx.Create(&items).Error
	})
}

func (r *ChallanRepository) ListAll() ([]models.Challan, error) {
	var challans []models.Challan
	err := r.db.Order("challan_id desc").Find(&challans).Error
	return challans, err
}

// ListByPrefix returns only challans issued under the given billing
// code, newest first.
func (r *ChallanRepository) ListByPrefix(billingCode string) ([]models.Challan, error) {
	var challans []models.Challan
	err := r.db.Where("challan_id LIKE ?", billingCode+"%").
		Order("date desc").Find(&challans).Error
	return challans, err
}

func (r *ChallanRepository) GetByChallanID(challanID string) (*models.Challan, error) {
	var challan models.Challan
	err := r.db.First(&challan, "challan_id = ?", challanID).Error
	if err != nil {
		return nil, err
	}
	return &challan, nil
}

func (r *ChallanRepository) ItemsByChallanID(challanID string) ([]models.BillingItem, error) {
	var items []models.BillingItem
	err := r.db.Where("challan_id = ?", challanID).
		Order("particular asc").Find(&items).Error
	return items, err
}

func (r *ChallanRepository) InsertAuditLog(entry *models.ChallanAuditLog) error {
	return r.db.Create(entry).Error
}
