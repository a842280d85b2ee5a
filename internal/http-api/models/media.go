package models

// Media is a sub-unit of a movie, e.g. one episode of a series.
type Media struct {
	ID          int64   `json:"media_id" gorm:"column:media_id;primaryKey;autoIncrement"`
	MovieID     int64   `json:"movie_id" gorm:"not null;index"`
	Episode     *int    `json:"episode,omitempty"`
	Description *string `json:"description,omitempty" gorm:"type:text"`
}

func (Media) TableName() string {
	return "media"
}
