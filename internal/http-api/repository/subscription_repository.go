package repository

import (
	"streamhub/internal/http-api/models"

	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(plan *models.SubscriptionPlan) error
	Update(plan *models.SubscriptionPlan) error
	Delete(id int64) error
	FindByID(id int64) (*models.SubscriptionPlan, error)
	List() ([]models.SubscriptionPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(plan *models.SubscriptionPlan) error {
	return r.db.Create(plan).Error
}

func (r *planRepository) Update(plan *models.SubscriptionPlan) error {
	return r.db.Save(plan).Error
}

func (r *planRepository) Delete(id int64) error {
	result := r.db.Delete(&models.SubscriptionPlan{}, "plan_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *planRepository) FindByID(id int64) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	if err := r.db.First(&plan, "plan_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	if err := r.db.Order("price ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

type SubscriptionRepository interface {
	Create(sub *models.UserSubscription) error
	ListByUser(userID int64) ([]models.UserSubscription, error)
	FindByUser(userID int64) (*models.UserSubscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(sub *models.UserSubscription) error {
	return r.db.Create(sub).Error
}

func (r *subscriptionRepository) ListByUser(userID int64) ([]models.UserSubscription, error) {
	var subs []models.UserSubscription
	if err := r.db.Preload("User").Preload("Plan").
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// FindByUser resolves the user's subscription for the device-limit check.
func (r *subscriptionRepository) FindByUser(userID int64) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	if err := r.db.Preload("Plan").
		Where("user_id = ?", userID).
		First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}
