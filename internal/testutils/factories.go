package testutils

import (
	"time"

	"lab-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique email per instance to avoid unique index conflicts
	email := "user-" + id.String()[:8] + "@lab.test"

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		// bcrypt hash of "password123"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         models.RoleTeamMember,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// LabLeader creates a user with the LabLeader role
func (f *UserFactory) LabLeader() *models.User {
	return f.WithRole(models.RoleLabLeader)
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team led by the given user
func (f *TeamFactory) Create(leaderID uuid.UUID) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Team " + id.String()[:8],
		Acro:        "T" + id.String()[:3],
		Description: "A test team",
		LeaderID:    leaderID,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(leaderID uuid.UUID, name string) *models.Team {
	team := f.Create(leaderID)
	team.Name = name
	return team
}

// MembershipFactory provides methods to create test TeamMembership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a membership linking a user to a team
func (f *MembershipFactory) Create(teamID, userID uuid.UUID) *models.TeamMembership {
	return &models.TeamMembership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		UserID: userID,
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project under the given team
func (f *ProjectFactory) Create(teamID uuid.UUID) *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Project " + id.String()[:8],
		Description: "A test project",
		State:       models.ProjectStatePlanning,
		TeamID:      teamID,
	}
}

// WithState sets a custom state for the project
func (f *ProjectFactory) WithState(teamID uuid.UUID, state models.ProjectState) *models.Project {
	project := f.Create(teamID)
	project.State = state
	return project
}

// NewsFactory provides methods to create test News data
type NewsFactory struct{}

// NewNewsFactory creates a new NewsFactory
func NewNewsFactory() *NewsFactory {
	return &NewsFactory{}
}

// Create creates a test News post authored by the given user
func (f *NewsFactory) Create(authorID uuid.UUID) *models.News {
	id := uuid.New()
	return &models.News{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "News " + id.String()[:8],
		Content:     "Some lab news content",
		AuthorID:    authorID,
		PublishDate: time.Now(),
	}
}

// ArticleFactory provides methods to create test Article data
type ArticleFactory struct{}

// NewArticleFactory creates a new ArticleFactory
func NewArticleFactory() *ArticleFactory {
	return &ArticleFactory{}
}

// Create creates a test Article authored by the given user
func (f *ArticleFactory) Create(authorID uuid.UUID) *models.Article {
	id := uuid.New()
	return &models.Article{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Article " + id.String()[:8],
		Content:     "Abstract of a published article",
		AuthorID:    authorID,
		PublishDate: time.Now(),
	}
}
