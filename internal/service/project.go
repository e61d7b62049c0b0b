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

// Ensure ProjectService implements ProjectServiceInterface
var _ ProjectServiceInterface = (*ProjectService)(nil)

// ProjectService handles business logic for projects. Ownership is
// transitive: every mutation resolves through the owning team's leader.
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string              `json:"name" validate:"required,min=1,max=100"`
	Description string              `json:"description" validate:"max=500"`
	State       models.ProjectState `json:"state" validate:"omitempty,oneof=PLANNING IN_PROGRESS COMPLETED ON_HOLD CANCELLED"`
	TeamID      uuid.UUID           `json:"team_id" validate:"required"`
}

// UpdateProjectRequest represents a partial update to a project
type UpdateProjectRequest struct {
	Name        *string              `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string              `json:"description,omitempty" validate:"omitempty,max=500"`
	State       *models.ProjectState `json:"state,omitempty" validate:"omitempty,oneof=PLANNING IN_PROGRESS COMPLETED ON_HOLD CANCELLED"`
	TeamID      *uuid.UUID           `json:"team_id,omitempty"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	State       models.ProjectState `json:"state"`
	TeamID      uuid.UUID           `json:"team_id"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

// Create creates a project under a team. Allowed for the team's leader or
// the LabLeader.
func (s *ProjectService) Create(req *CreateProjectRequest, principal authz.Principal) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if !authz.Authorize(principal, authz.ActionCreateProject, team.LeaderID).Allowed() {
		return nil, apperrors.ErrForbidden
	}

	state := req.State
	if state == "" {
		state = models.ProjectStatePlanning
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		State:       state,
		TeamID:      req.TeamID,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.toResponse(project), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return s.toResponse(project), nil
}

// List retrieves all projects
func (s *ProjectService) List() ([]ProjectResponse, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, *s.toResponse(&projects[i]))
	}
	return responses, nil
}

// ListByTeam retrieves all projects of a team
func (s *ProjectService) ListByTeam(teamID uuid.UUID) ([]ProjectResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	projects, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, *s.toResponse(&projects[i]))
	}
	return responses, nil
}

// Update applies a partial update. The ownership check resolves through the
// current owning team; moving the project additionally requires the target
// team to exist.
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest, principal authz.Principal) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.repo.GetWithTeam(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project.Team == nil {
		return nil, fmt.Errorf("project %s has no owning team", id)
	}
	if !authz.Authorize(principal, authz.ActionUpdateProject, project.Team.LeaderID).Allowed() {
		return nil, apperrors.ErrForbidden
	}

	if req.TeamID != nil && *req.TeamID != project.TeamID {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to get team: %w", err)
		}
		project.TeamID = *req.TeamID
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.State != nil {
		project.State = *req.State
	}

	// Detach the preloaded association so Save only writes project columns.
	project.Team = nil
	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.toResponse(project), nil
}

// Delete removes a project. Allowed for the owning team's leader or the
// LabLeader.
func (s *ProjectService) Delete(id uuid.UUID, principal authz.Principal) error {
	project, err := s.repo.GetWithTeam(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if project.Team == nil {
		return fmt.Errorf("project %s has no owning team", id)
	}
	if !authz.Authorize(principal, authz.ActionDeleteProject, project.Team.LeaderID).Allowed() {
		return apperrors.ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		State:       project.State,
		TeamID:      project.TeamID,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339),
	}
}
