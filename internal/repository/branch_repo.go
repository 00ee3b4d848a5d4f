package repository

import (
	"challan-management-backend/internal/models"

	"gorm.io/gorm"
)

type BranchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

func (r *BranchRepository) CreateMany(branches []models.Branch) error {
	return r.db.Create(&branches).Error
}

func (r *BranchRepository) ListByClient(clientID string) ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Where("client_id = ?", clientID).Order("name asc").Find(&branches).Error
	return branches, err
}

func (r *BranchRepository) GetByID(id string) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}
