package repository

import (
	"lab-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithLeaderPromotion creates a team and, in the same transaction,
// promotes the leader to TeamLeader if they are currently a TeamMember.
// Promoting a user who is already a TeamLeader is a no-op.
func (r *TeamRepository) CreateWithLeaderPromotion(team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return promoteLeader(tx, team.LeaderID)
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its globally unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByLeaderID retrieves the team led by a given user, if any
func (r *TeamRepository) GetByLeaderID(leaderID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "leader_id = ?", leaderID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Leader").Order("name").Find(&teams).Error
	return teams, err
}

// GetWithMembers retrieves a team with its roster and member users
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").Preload("Members.User").Preload("Leader").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateWithLeaderPromotion saves the team and promotes the (possibly new)
// leader in the same transaction.
func (r *TeamRepository) UpdateWithLeaderPromotion(team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(team).Error; err != nil {
			return err
		}
		return promoteLeader(tx, team.LeaderID)
	})
}

// DeleteCascade removes the team's memberships, then its projects, then the
// team row itself, all in one transaction so no orphaned rows survive a
// partial failure.
func (r *TeamRepository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TeamMembership{}, "team_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Project{}, "team_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Team{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CheckNameExists checks if a team name is already taken
func (r *TeamRepository) CheckNameExists(name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Team{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// promoteLeader upgrades a TeamMember to TeamLeader. The WHERE clause keeps
// the update idempotent and leaves LabLeader and TeamLeader roles untouched.
func promoteLeader(tx *gorm.DB, leaderID uuid.UUID) error {
	return tx.Model(&models.User{}).
		Where("id = ? AND role = ?", leaderID, models.RoleTeamMember).
		Update("role", models.RoleTeamLeader).Error
}
