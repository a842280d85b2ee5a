package repository

import (
	"streamhub/internal/http-api/models"

	"gorm.io/gorm"
)

type BillingRepository interface {
	ListByUser(userID int64) ([]models.Billing, error)
}

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

// ListByUser joins through user_subscriptions so callers only ever see
// billing rows they own transitively.
func (r *billingRepository) ListByUser(userID int64) ([]models.Billing, error) {
	var bills []models.Billing
	if err := r.db.
		Joins("JOIN user_subscriptions ON user_subscriptions.user_subscription_id = billing.user_subscription_id").
		Where("user_subscriptions.user_id = ?", userID).
		Preload("UserSubscription").
		Preload("UserSubscription.Plan").
		Order("billing.payment_date DESC").
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}
