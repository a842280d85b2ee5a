package models

type Movie struct {
	ID          int64   `json:"movie_id" gorm:"column:movie_id;primaryKey;autoIncrement"`
	Title       string  `json:"title" gorm:"size:255;not null"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Poster      *string `json:"poster,omitempty" gorm:"size:255"`
	Description *string `json:"description,omitempty" gorm:"type:text"`
	ReleaseYear *int    `json:"release_year,omitempty"`
	Genre       *string `json:"genre,omitempty" gorm:"size:100"`
	Duration    *int    `json:"duration,omitempty"`
	IsAvailable bool    `json:"is_available" gorm:"not null"`
	IMDBID      *string `json:"imdb_id,omitempty" gorm:"column:imdb_id;uniqueIndex;size:20"`

	// Associations
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Media   []Media  `json:"media,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}
