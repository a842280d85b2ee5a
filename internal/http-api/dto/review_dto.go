package dto

// CreateReviewDTO: payload for POST /api/reviews
type CreateReviewDTO struct {
	MovieID    int64   `json:"movie_id" binding:"required"`
	Rating     int     `json:"rating" binding:"required"`
	ReviewText *string `json:"review_text,omitempty"`
}

// UpdateReviewDTO: partial update of the caller's own review
type UpdateReviewDTO struct {
	Rating     *int    `json:"rating,omitempty"`
	ReviewText *string `json:"review_text,omitempty"`
}

// CreateWatchHistoryDTO: payload for POST /api/watch-history
type CreateWatchHistoryDTO struct {
	MovieID       int64 `json:"movie_id" binding:"required"`
	WatchDuration int   `json:"watch_duration" binding:"required"`
}

// RegisterDeviceDTO: payload for POST /api/devices
type RegisterDeviceDTO struct {
	DeviceType string `json:"device_type" binding:"required"`
	DeviceName string `json:"device_name" binding:"required"`
}
