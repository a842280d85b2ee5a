package models

import "time"

type Device struct {
	ID           int64     `json:"device_id" gorm:"column:device_id;primaryKey;autoIncrement"`
	UserID       int64     `json:"user_id" gorm:"not null;index"`
	DeviceType   string    `json:"device_type" gorm:"size:100;not null"`
	DeviceName   string    `json:"device_name" gorm:"size:255;not null"`
	RegisteredAt time.Time `json:"registered_at" gorm:"autoCreateTime"`
}

func (Device) TableName() string {
	return "devices"
}
