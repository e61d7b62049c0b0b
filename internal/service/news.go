package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"lab-portal-backend/internal/authz"
	"lab-portal-backend/internal/database/models"
	apperrors "lab-portal-backend/internal/errors"
	"lab-portal-backend/internal/repository"
	"lab-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ensure NewsService implements NewsServiceInterface
var _ NewsServiceInterface = (*NewsService)(nil)

// NewsService handles business logic for news posts
type NewsService struct {
	repo      repository.NewsRepositoryInterface
	files     *storage.FileStore
	validator *validator.Validate
}

// NewNewsService creates a new news service
func NewNewsService(repo repository.NewsRepositoryInterface, files *storage.FileStore, validator *validator.Validate) *NewsService {
	return &NewsService{
		repo:      repo,
		files:     files,
		validator: validator,
	}
}

// CreateNewsRequest represents the request to create a news post
type CreateNewsRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Content     string     `json:"content" validate:"required"`
	Image       string     `json:"image" validate:"omitempty,url,max=500"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
}

// UpdateNewsRequest represents a partial update to a news post
type UpdateNewsRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content     *string    `json:"content,omitempty"`
	Image       *string    `json:"image,omitempty" validate:"omitempty,url,max=500"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
}

// NewsResponse represents the response for news operations
type NewsResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	AuthorID    uuid.UUID `json:"author_id"`
	PublishDate time.Time `json:"publish_date"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// Create creates a news post authored by the principal
func (s *NewsService) Create(req *CreateNewsRequest, principal authz.Principal) (*NewsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	publishDate := time.Now()
	if req.PublishDate != nil {
		publishDate = *req.PublishDate
	}

	news := &models.News{
		Title:       req.Title,
		Content:     req.Content,
		Image:       req.Image,
		AuthorID:    principal.ID,
		PublishDate: publishDate,
	}

	if err := s.repo.Create(news); err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}

	return s.toResponse(news), nil
}

// GetByID retrieves a news post by ID
func (s *NewsService) GetByID(id uuid.UUID) (*NewsResponse, error) {
	news, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	return s.toResponse(news), nil
}

// List retrieves all news posts, newest first
func (s *NewsService) List() ([]NewsResponse, error) {
	news, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}

	responses := make([]NewsResponse, 0, len(news))
	for i := range news {
		responses = append(responses, *s.toResponse(&news[i]))
	}
	return responses, nil
}

// Update applies a partial update. Allowed for the author or the LabLeader.
func (s *NewsService) Update(id uuid.UUID, req *UpdateNewsRequest, principal authz.Principal) (*NewsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	news, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	if !authz.Authorize(principal, authz.ActionUpdateNews, news.AuthorID).Allowed() {
		return nil, apperrors.ErrForbidden
	}

	if req.Title != nil {
		news.Title = *req.Title
	}
	if req.Content != nil {
		news.Content = *req.Content
	}
	if req.Image != nil {
		news.Image = *req.Image
	}
	if req.PublishDate != nil {
		news.PublishDate = *req.PublishDate
	}

	news.Author = nil
	if err := s.repo.Update(news); err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}

	return s.toResponse(news), nil
}

// Delete removes a news post. Allowed for the author or the LabLeader.
func (s *NewsService) Delete(id uuid.UUID, principal authz.Principal) error {
	news, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNewsNotFound
		}
		return fmt.Errorf("failed to get news: %w", err)
	}

	if !authz.Authorize(principal, authz.ActionDeleteNews, news.AuthorID).Allowed() {
		return apperrors.ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNewsNotFound
		}
		return fmt.Errorf("failed to delete news: %w", err)
	}
	return nil
}

// UploadImage stores an uploaded image and returns its public URL
func (s *NewsService) UploadImage(fh *multipart.FileHeader) (string, error) {
	if s.files == nil {
		return "", errors.New("image storage is not available")
	}
	url, err := s.files.SaveImage(fh)
	if err != nil {
		return "", apperrors.NewValidationError("image", err.Error())
	}
	return url, nil
}

func (s *NewsService) toResponse(news *models.News) *NewsResponse {
	return &NewsResponse{
		ID:          news.ID,
		Title:       news.Title,
		Content:     news.Content,
		Image:       news.Image,
		AuthorID:    news.AuthorID,
		PublishDate: news.PublishDate,
		CreatedAt:   news.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   news.UpdatedAt.Format(time.RFC3339),
	}
}
