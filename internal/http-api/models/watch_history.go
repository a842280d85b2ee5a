package models

import "time"

// WatchHistory records one playback session. The (user, movie, timestamp)
// uniqueness mirrors the source schema; the timestamp is set at insert so
// the constraint never fires in practice.
type WatchHistory struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_user_movie_ts"`
	MovieID       int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_user_movie_ts"`
	Timestamp     time.Time `json:"timestamp" gorm:"autoCreateTime;uniqueIndex:idx_user_movie_ts"`
	WatchDuration int       `json:"watch_duration" gorm:"not null"`

	// Associations
	Movie Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (WatchHistory) TableName() string {
	return "watch_history"
}
