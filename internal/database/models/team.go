package models

import (
	"github.com/google/uuid"
)

// Team represents a research team. A user leads at most one team; the
// service layer enforces this at creation and leader reassignment.
type Team struct {
	BaseModel
	Name        string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Acro        string    `json:"acro" gorm:"size:20" validate:"max=20"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`
	LeaderID    uuid.UUID `json:"leader_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Leader   *User            `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
	Members  []TeamMembership `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Projects []Project        `json:"projects,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
