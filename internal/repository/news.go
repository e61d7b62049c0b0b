package repository

import (
	"lab-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsRepository handles database operations for news posts
type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create creates a news post
func (r *NewsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID retrieves a news post by ID
func (r *NewsRepository) GetByID(id uuid.UUID) (*models.News, error) {
	var news models.News
	err := r.db.Preload("Author").First(&news, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetAll retrieves all news posts, newest first
func (r *NewsRepository) GetAll() ([]models.News, error) {
	var news []models.News
	err := r.db.Preload("Author").Order("publish_date DESC").Find(&news).Error
	return news, err
}

// Update updates a news post
func (r *NewsRepository) Update(news *models.News) error {
	return r.db.Save(news).Error
}

// Delete deletes a news post
func (r *NewsRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.News{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
