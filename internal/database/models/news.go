package models

import (
	"time"

	"github.com/google/uuid"
)

// News represents a news post on the lab dashboard
type News struct {
	BaseModel
	Title       string    `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Content     string    `json:"content" gorm:"type:text;not null" validate:"required"`
	Image       string    `json:"image" gorm:"size:500"`
	AuthorID    uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	PublishDate time.Time `json:"publish_date"`

	// Relationships
	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for News
func (News) TableName() string {
	return "news"
}
