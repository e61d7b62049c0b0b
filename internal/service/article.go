package service

import (
	"errors"
	"fmt"
	"time"

	"lab-portal-backend/internal/authz"
	"lab-portal-backend/internal/database/models"
	apperrors "lab-portal-backend/internal/errors"
	"lab-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ensure ArticleService implements ArticleServiceInterface
var _ ArticleServiceInterface = (*ArticleService)(nil)

// ArticleService handles business logic for published articles
type ArticleService struct {
	repo      repository.ArticleRepositoryInterface
	validator *validator.Validate
}

// NewArticleService creates a new article service
func NewArticleService(repo repository.ArticleRepositoryInterface, validator *validator.Validate) *ArticleService {
	return &ArticleService{
		repo:      repo,
		validator: validator,
	}
}

// CreateArticleRequest represents the request to create an article
type CreateArticleRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=300"`
	Content     string     `json:"content" validate:"required"`
	PDFLink     string     `json:"pdf_link" validate:"omitempty,url,max=500"`
	JournalLink string     `json:"journal_link" validate:"omitempty,url,max=500"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
}

// UpdateArticleRequest represents a partial update to an article
type UpdateArticleRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Content     *string    `json:"content,omitempty"`
	PDFLink     *string    `json:"pdf_link,omitempty" validate:"omitempty,url,max=500"`
	JournalLink *string    `json:"journal_link,omitempty" validate:"omitempty,url,max=500"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
}

// ArticleResponse represents the response for article operations
type ArticleResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PDFLink     string    `json:"pdf_link"`
	JournalLink string    `json:"journal_link"`
	AuthorID    uuid.UUID `json:"author_id"`
	PublishDate time.Time `json:"publish_date"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// Create creates an article authored by the principal
func (s *ArticleService) Create(req *CreateArticleRequest, principal authz.Principal) (*ArticleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	publishDate := time.Now()
	if req.PublishDate != nil {
		publishDate = *req.PublishDate
	}

	article := &models.Article{
		Title:       req.Title,
		Content:     req.Content,
		PDFLink:     req.PDFLink,
		JournalLink: req.JournalLink,
		AuthorID:    principal.ID,
		PublishDate: publishDate,
	}

	if err := s.repo.Create(article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return s.toResponse(article), nil
}

// GetByID retrieves an article by ID
func (s *ArticleService) GetByID(id uuid.UUID) (*ArticleResponse, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return s.toResponse(article), nil
}

// List retrieves all articles, newest first
func (s *ArticleService) List() ([]ArticleResponse, error) {
	articles, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	responses := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, *s.toResponse(&articles[i]))
	}
	return responses, nil
}

// Update applies a partial update. Allowed for the author or the LabLeader.
func (s *ArticleService) Update(id uuid.UUID, req *UpdateArticleRequest, principal authz.Principal) (*ArticleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	article, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	if !authz.Authorize(principal, authz.ActionUpdateArticle, article.AuthorID).Allowed() {
		return nil, apperrors.ErrForbidden
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.PDFLink != nil {
		article.PDFLink = *req.PDFLink
	}
	if req.JournalLink != nil {
		article.JournalLink = *req.JournalLink
	}
	if req.PublishDate != nil {
		article.PublishDate = *req.PublishDate
	}

	article.Author = nil
	if err := s.repo.Update(article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return s.toResponse(article), nil
}

// Delete removes an article. Allowed for the author or the LabLeader.
func (s *ArticleService) Delete(id uuid.UUID, principal authz.Principal) error {
	article, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrArticleNotFound
		}
		return fmt.Errorf("failed to get article: %w", err)
	}

	if !authz.Authorize(principal, authz.ActionDeleteArticle, article.AuthorID).Allowed() {
		return apperrors.ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrArticleNotFound
		}
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

func (s *ArticleService) toResponse(article *models.Article) *ArticleResponse {
	return &ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Content:     article.Content,
		PDFLink:     article.PDFLink,
		JournalLink: article.JournalLink,
		AuthorID:    article.AuthorID,
		PublishDate: article.PublishDate,
		CreatedAt:   article.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   article.UpdatedAt.Format(time.RFC3339),
	}
}
