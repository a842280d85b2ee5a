package models

import "time"

type Review struct {
	ID         int64     `json:"review_id" gorm:"column:review_id;primaryKey;autoIncrement"`
	UserID     int64     `json:"user_id" gorm:"not null;index"`
	MovieID    int64     `json:"movie_id" gorm:"not null;index"`
	Rating     int       `json:"rating" gorm:"not null"`
	ReviewText *string   `json:"review_text,omitempty" gorm:"size:500"`
	ReviewDate time.Time `json:"review_date" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
