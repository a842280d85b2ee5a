package models

import "time"

// Billing is one charge event against a subscription. PaymentStatus is
// free-text in the source schema, not an enum.
type Billing struct {
	ID                 int64     `json:"billing_id" gorm:"column:billing_id;primaryKey;autoIncrement"`
	UserSubscriptionID int64     `json:"-" gorm:"not null;index"`
	Amount             float64   `json:"amount" gorm:"not null"`
	PaymentMethod      string    `json:"payment_method" gorm:"size:100;not null"`
	PaymentDate        time.Time `json:"payment_date" gorm:"autoCreateTime"`
	DueDate            time.Time `json:"due_date" gorm:"not null"`
	PaymentStatus      string    `json:"payment_status" gorm:"size:50;not null"`

	// Associations
	UserSubscription UserSubscription `json:"user_subscription,omitempty" gorm:"foreignKey:UserSubscriptionID;constraint:OnDelete:CASCADE;"`
}

func (Billing) TableName() string {
	return "billing"
}
