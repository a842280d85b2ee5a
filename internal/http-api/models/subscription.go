package models

import "time"

// SubscriptionPlan is immutable reference data, writable only by admins.
type SubscriptionPlan struct {
	ID               int64   `json:"plan_id" gorm:"column:plan_id;primaryKey;autoIncrement"`
	PlanName         string  `json:"plan_name" gorm:"size:255;not null"`
	Price            float64 `json:"price" gorm:"not null"`
	MaxDevices       int     `json:"max_devices" gorm:"not null"`
	HDAvailable      bool    `json:"hd_available" gorm:"column:hd_available;not null"`
	UltraHDAvailable bool    `json:"ultra_hd_available" gorm:"column:ultra_hd_available;not null"`
	DurationDays     int     `json:"duration_days" gorm:"not null"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

// UserSubscription links one user to one plan for a start/end window.
// One-active-per-user is a convention, not a database constraint.
type UserSubscription struct {
	ID        int64     `json:"user_subscription_id" gorm:"column:user_subscription_id;primaryKey;autoIncrement"`
	UserID    int64     `json:"-" gorm:"not null;index"`
	PlanID    int64     `json:"-" gorm:"not null;index"`
	StartDate time.Time `json:"start_date" gorm:"not null"`
	EndDate   time.Time `json:"end_date" gorm:"not null"`

	// Associations
	User User             `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Plan SubscriptionPlan `json:"plan,omitempty" gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE;"`
}

func (UserSubscription) TableName() string {
	return "user_subscriptions"
}
