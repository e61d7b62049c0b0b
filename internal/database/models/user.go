package models

// User represents a member of the lab.
// The password hash is never serialized; API responses use service.UserResponse
// which has no password field at all.
type User struct {
	BaseModel
	FirstName    string `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
	Role         Role   `json:"role" gorm:"type:varchar(20);not null;default:'TeamMember'"`

	// Relationships
	LedTeam     *Team            `json:"led_team,omitempty" gorm:"foreignKey:LeaderID"`
	Memberships []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	News        []News           `json:"news,omitempty" gorm:"foreignKey:AuthorID"`
	Articles    []Article        `json:"articles,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
