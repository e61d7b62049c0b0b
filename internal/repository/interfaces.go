package repository

import (
	"lab-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithLeaderPromotion(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetByLeaderID(leaderID uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	UpdateWithLeaderPromotion(team *models.Team) error
	DeleteCascade(id uuid.UUID) error
	CheckNameExists(name string, excludeID *uuid.UUID) (bool, error)
}

// MembershipRepositoryInterface defines the interface for team membership operations
type MembershipRepositoryInterface interface {
	Add(membership *models.TeamMembership) error
	Remove(teamID, userID uuid.UUID) error
	Exists(teamID, userID uuid.UUID) (bool, error)
	GetByTeamID(teamID uuid.UUID) ([]models.TeamMembership, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetWithTeam(id uuid.UUID) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// NewsRepositoryInterface defines the interface for news repository operations
type NewsRepositoryInterface interface {
	Create(news *models.News) error
	GetByID(id uuid.UUID) (*models.News, error)
	GetAll() ([]models.News, error)
	Update(news *models.News) error
	Delete(id uuid.UUID) error
}

// ArticleRepositoryInterface defines the interface for article repository operations
type ArticleRepositoryInterface interface {
	Create(article *models.Article) error
	GetByID(id uuid.UUID) (*models.Article, error)
	GetAll() ([]models.Article, error)
	Update(article *models.Article) error
	Delete(id uuid.UUID) error
}
