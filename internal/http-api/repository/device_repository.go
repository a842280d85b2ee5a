package repository

import (
	"streamhub/internal/http-api/models"

	"gorm.io/gorm"
)

type DeviceRepository interface {
	Create(device *models.Device) error
	ListByUser(userID int64) ([]models.Device, error)
	CountByUser(userID int64) (int64, error)
	FindByID(id int64) (*models.Device, error)
	Delete(id int64) error
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) Create(device *models.Device) error {
	return r.db.Create(device).Error
}

func (r *deviceRepository) ListByUser(userID int64) ([]models.Device, error) {
	var devices []models.Device
	if err := r.db.Where("user_id = ?", userID).
		Order("registered_at DESC").
		Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *deviceRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Device{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *deviceRepository) FindByID(id int64) (*models.Device, error) {
	var device models.Device
	if err := r.db.First(&device, "device_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Device{}, "device_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
