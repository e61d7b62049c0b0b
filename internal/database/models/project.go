package models

import (
	"github.com/google/uuid"
)

// Project represents a research project owned by a team. Authorization for
// project mutations resolves through the owning team's LeaderID, never a
// field on the project itself.
type Project struct {
	BaseModel
	Name        string       `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string       `json:"description" gorm:"size:500" validate:"max=500"`
	State       ProjectState `json:"state" gorm:"type:varchar(20);not null;default:'PLANNING'"`
	TeamID      uuid.UUID    `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
