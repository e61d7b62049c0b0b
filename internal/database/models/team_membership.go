package models

import (
	"github.com/google/uuid"
)

// TeamMembership associates a user with a team. A user appears at most once
// per roster, enforced by the composite unique index.
type TeamMembership struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_user" validate:"required"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_user" validate:"required"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}
