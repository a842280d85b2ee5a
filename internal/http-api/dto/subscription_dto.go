package dto

import (
	"time"

	"streamhub/internal/http-api/models"
)

// CreateSubscriptionDTO: payload for POST /api/subscriptions
type CreateSubscriptionDTO struct {
	PlanID    int64     `json:"plan_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// CreatePlanDTO: admin payload for POST /api/subscription-plans
type CreatePlanDTO struct {
	PlanName         string  `json:"plan_name" binding:"required"`
	Price            float64 `json:"price" binding:"required"`
	MaxDevices       int     `json:"max_devices" binding:"required"`
	HDAvailable      bool    `json:"hd_available"`
	UltraHDAvailable bool    `json:"ultra_hd_available"`
	DurationDays     int     `json:"duration_days" binding:"required"`
}

func (d CreatePlanDTO) ToModel() models.SubscriptionPlan {
	return models.SubscriptionPlan{
		PlanName:         d.PlanName,
		Price:            d.Price,
		MaxDevices:       d.MaxDevices,
		HDAvailable:      d.HDAvailable,
		UltraHDAvailable: d.UltraHDAvailable,
		DurationDays:     d.DurationDays,
	}
}

// UpdatePlanDTO: admin partial update of a plan
type UpdatePlanDTO struct {
	PlanName         *string  `json:"plan_name,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	MaxDevices       *int     `json:"max_devices,omitempty"`
	HDAvailable      *bool    `json:"hd_available,omitempty"`
	UltraHDAvailable *bool    `json:"ultra_hd_available,omitempty"`
	DurationDays     *int     `json:"duration_days,omitempty"`
}

func (d UpdatePlanDTO) ApplyTo(p *models.SubscriptionPlan) {
	if d.PlanName != nil {
		p.PlanName = *d.PlanName
	}
	if d.Price != nil {
		p.Price = *d.Price
	}
	if d.MaxDevices != nil {
		p.MaxDevices = *d.MaxDevices
	}
	if d.HDAvailable != nil {
		p.HDAvailable = *d.HDAvailable
	}
	if d.UltraHDAvailable != nil {
		p.UltraHDAvailable = *d.UltraHDAvailable
	}
	if d.DurationDays != nil {
		p.DurationDays = *d.DurationDays
	}
}
