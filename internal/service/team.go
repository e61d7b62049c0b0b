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

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// TeamService handles business logic for teams and their rosters
type TeamService struct {
	repo           repository.TeamRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:           repo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		validator:      validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Acro        string    `json:"acro" validate:"max=20"`
	Description string    `json:"description" validate:"max=500"`
	LeaderID    uuid.UUID `json:"leader_id" validate:"required"`
}

// UpdateTeamRequest represents a partial update to a team
type UpdateTeamRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Acro        *string    `json:"acro,omitempty" validate:"omitempty,max=20"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	LeaderID    *uuid.UUID `json:"leader_id,omitempty"`
}

// AddMemberRequest represents the request to add a user to a team roster
type AddMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Acro        string    `json:"acro"`
	Description string    `json:"description"`
	LeaderID    uuid.UUID `json:"leader_id"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// TeamWithMembersResponse includes the team roster
type TeamWithMembersResponse struct {
	TeamResponse
	Members []UserResponse `json:"members"`
}

// Create creates a new team. Business rules are evaluated in a fixed order
// before any write: the requester must not already lead a team, the name
// must be free, and the leader candidate must be a TeamMember or TeamLeader.
// A TeamMember leader is promoted inside the creation transaction.
func (s *TeamService) Create(req *CreateTeamRequest, principal authz.Principal) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByLeaderID(principal.ID); err == nil {
		return nil, apperrors.ErrAlreadyLeadsTeam
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check led team: %w", err)
	}

	taken, err := s.repo.CheckNameExists(req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if taken {
		return nil, apperrors.ErrTeamExists
	}

	leader, err := s.userRepo.GetByID(req.LeaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaderNotFound
		}
		return nil, fmt.Errorf("failed to get leader: %w", err)
	}
	if leader.Role != models.RoleTeamMember && leader.Role != models.RoleTeamLeader {
		return nil, apperrors.ErrInvalidLeaderRole
	}

	// The leads-at-most-one invariant also applies to the candidate when
	// they are not the requester.
	if leader.ID != principal.ID {
		if _, err := s.repo.GetByLeaderID(leader.ID); err == nil {
			return nil, apperrors.ErrAlreadyLeadsTeam
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check led team: %w", err)
		}
	}

	team := &models.Team{
		Name:        req.Name,
		Acro:        req.Acro,
		Description: req.Description,
		LeaderID:    req.LeaderID,
	}

	if err := s.repo.CreateWithLeaderPromotion(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team), nil
}

// List retrieves all teams
func (s *TeamService) List() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *s.toResponse(&teams[i]))
	}
	return responses, nil
}

// GetWithMembers retrieves a team together with its roster
func (s *TeamService) GetWithMembers(id uuid.UUID) (*TeamWithMembersResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	resp := &TeamWithMembersResponse{
		TeamResponse: *s.toResponse(team),
		Members:      make([]UserResponse, 0, len(team.Members)),
	}
	for i := range team.Members {
		if u := team.Members[i].User; u != nil {
			resp.Members = append(resp.Members, UserResponse{
				ID:        u.ID,
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Email:     u.Email,
				Role:      u.Role,
				CreatedAt: u.CreatedAt.Format(time.RFC3339),
				UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
			})
		}
	}
	return resp, nil
}

// Update applies a partial update. Allowed for the team's leader or the
// LabLeader. Reassigning the leader re-runs the leads-at-most-one check and
// the promotion side effect.
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest, principal authz.Principal) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if !authz.Authorize(principal, authz.ActionUpdateTeam, team.LeaderID).Allowed() {
		return nil, apperrors.ErrForbidden
	}

	if req.Name != nil && *req.Name != team.Name {
		taken, err := s.repo.CheckNameExists(*req.Name, &team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check team name: %w", err)
		}
		if taken {
			return nil, apperrors.ErrTeamExists
		}
		team.Name = *req.Name
	}
	if req.Acro != nil {
		team.Acro = *req.Acro
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.LeaderID != nil && *req.LeaderID != team.LeaderID {
		leader, err := s.userRepo.GetByID(*req.LeaderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrLeaderNotFound
			}
			return nil, fmt.Errorf("failed to get leader: %w", err)
		}
		if leader.Role != models.RoleTeamMember && leader.Role != models.RoleTeamLeader {
			return nil, apperrors.ErrInvalidLeaderRole
		}
		if existing, err := s.repo.GetByLeaderID(leader.ID); err == nil && existing.ID != team.ID {
			return nil, apperrors.ErrAlreadyLeadsTeam
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check led team: %w", err)
		}
		team.LeaderID = *req.LeaderID
	}

	if err := s.repo.UpdateWithLeaderPromotion(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// Delete removes a team and, in the same transaction, its memberships and
// projects. LabLeader only.
func (s *TeamService) Delete(id uuid.UUID, principal authz.Principal) error {
	if !authz.Authorize(principal, authz.ActionDeleteTeam, uuid.Nil).Allowed() {
		return apperrors.ErrForbidden
	}

	if err := s.repo.DeleteCascade(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddMember adds a user to the team roster. Allowed for the team's leader or
// the LabLeader; a user appears at most once per roster.
func (s *TeamService) AddMember(teamID uuid.UUID, req *AddMemberRequest, principal authz.Principal) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if !authz.Authorize(principal, authz.ActionAddMember, team.LeaderID).Allowed() {
		return apperrors.ErrForbidden
	}

	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	onRoster, err := s.membershipRepo.Exists(teamID, req.UserID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if onRoster {
		return apperrors.ErrMembershipExists
	}

	membership := &models.TeamMembership{TeamID: teamID, UserID: req.UserID}
	if err := s.membershipRepo.Add(membership); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// RemoveMember removes a user from the team roster
func (s *TeamService) RemoveMember(teamID, userID uuid.UUID, principal authz.Principal) error {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if !authz.Authorize(principal, authz.ActionRemoveMember, team.LeaderID).Allowed() {
		return apperrors.ErrForbidden
	}

	if err := s.membershipRepo.Remove(teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Acro:        team.Acro,
		Description: team.Description,
		LeaderID:    team.LeaderID,
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   team.UpdatedAt.Format(time.RFC3339),
	}
}
