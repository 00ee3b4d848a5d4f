package repository

import (
	"challan-management-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("username asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdatePassword(id string, hashed string) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("password", hashed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementChallanNumber bumps the biller's counter in a single UPDATE
// and returns the post-increment value. The database serializes
// concurrent increments for the same row, so two allocations can never
// observe the same counter value.
func (r *UserRepository) IncrementChallanNumber(username string) (int64, error) {
	var user models.User
	res := r.db.Model(&user).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "last_challan_number"}}}).
		Where("username = ?", username).
		Update("last_challan_number", gorm.Expr("last_challan_number + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return user.LastChallanNumber, nil
}
