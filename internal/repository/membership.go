package repository

import (
	"lab-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for team memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Add creates a membership row
func (r *MembershipRepository) Add(membership *models.TeamMembership) error {
	return r.db.Create(membership).Error
}

// Remove deletes a membership row
func (r *MembershipRepository) Remove(teamID, userID uuid.UUID) error {
	result := r.db.Delete(&models.TeamMembership{}, "team_id = ? AND user_id = ?", teamID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists checks whether a user is already on a team's roster
func (r *MembershipRepository) Exists(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMembership{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetByTeamID retrieves a team's roster with member users
func (r *MembershipRepository) GetByTeamID(teamID uuid.UUID) ([]models.TeamMembership, error) {
	var memberships []models.TeamMembership
	err := r.db.Preload("User").Where("team_id = ?", teamID).Find(&memberships).Error
	return memberships, err
}
