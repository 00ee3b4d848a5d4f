package repository

import (
	"challan-management-backend/internal/models"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *ItemRepository) List() ([]models.Item, error) {
	var items []models.Item
	err := r.db.Order("name asc").Find(&items).Error
	return items, err
}
