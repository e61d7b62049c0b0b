package service

import (
	"mime/multipart"

	"lab-portal-backend/internal/authz"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*UserResponse, error)
	Login(req *LoginRequest) (*LoginResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	List() ([]UserResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest, principal authz.Principal) (*UserResponse, error)
	Delete(id uuid.UUID, principal authz.Principal) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest, principal authz.Principal) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	List() ([]TeamResponse, error)
	GetWithMembers(id uuid.UUID) (*TeamWithMembersResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest, principal authz.Principal) (*TeamResponse, error)
	Delete(id uuid.UUID, principal authz.Principal) error
	AddMember(teamID uuid.UUID, req *AddMemberRequest, principal authz.Principal) error
	RemoveMember(teamID, userID uuid.UUID, principal authz.Principal) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest, principal authz.Principal) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	List() ([]ProjectResponse, error)
	ListByTeam(teamID uuid.UUID) ([]ProjectResponse, error)
	Update(id uuid.UUID, req *UpdateProjectRequest, principal authz.Principal) (*ProjectResponse, error)
	Delete(id uuid.UUID, principal authz.Principal) error
}

// NewsServiceInterface defines the interface for news service
type NewsServiceInterface interface {
	Create(req *CreateNewsRequest, principal authz.Principal) (*NewsResponse, error)
	GetByID(id uuid.UUID) (*NewsResponse, error)
	List() ([]NewsResponse, error)
	Update(id uuid.UUID, req *UpdateNewsRequest, principal authz.Principal) (*NewsResponse, error)
	Delete(id uuid.UUID, principal authz.Principal) error
	UploadImage(fh *multipart.FileHeader) (string, error)
}

// ArticleServiceInterface defines the interface for article service
type ArticleServiceInterface interface {
	Create(req *CreateArticleRequest, principal authz.Principal) (*ArticleResponse, error)
	GetByID(id uuid.UUID) (*ArticleResponse, error)
	List() ([]ArticleResponse, error)
	Update(id uuid.UUID, req *UpdateArticleRequest, principal authz.Principal) (*ArticleResponse, error)
	Delete(id uuid.UUID, principal authz.Principal) error
}

// DirectoryServiceInterface defines the interface for directory lookups
type DirectoryServiceInterface interface {
	SearchByName(cn string) ([]DirectoryUser, error)
}
