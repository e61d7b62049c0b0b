package repository

import (
	"lab-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleRepository handles database operations for articles
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Create creates an article
func (r *ArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article by ID
func (r *ArticleRepository) GetByID(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").First(&article, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetAll retrieves all articles, newest first
func (r *ArticleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Order("publish_date DESC").Find(&articles).Error
	return articles, err
}

// Update updates an article
func (r *ArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// Delete deletes an article
func (r *ArticleRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Article{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
