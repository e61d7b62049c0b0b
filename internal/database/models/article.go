package models

import (
	"time"

	"github.com/google/uuid"
)

// Article represents a published research article
type Article struct {
	BaseModel
	Title       string    `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Content     string    `json:"content" gorm:"type:text;not null" validate:"required"`
	AuthorID    uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	PublishDate time.Time `json:"publish_date"`
	PDFLink     string    `json:"pdf_link" gorm:"size:500" validate:"omitempty,url"`
	JournalLink string    `json:"journal_link" gorm:"size:500" validate:"omitempty,url"`

	// Relationships
	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for Article
func (Article) TableName() string {
	return "articles"
}
