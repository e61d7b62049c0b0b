package models

// Role represents a user's lab-wide role
type Role string

const (
	RoleLabLeader  Role = "LabLeader"
	RoleTeamLeader Role = "TeamLeader"
	RoleTeamMember Role = "TeamMember"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	switch r {
	case RoleLabLeader, RoleTeamLeader, RoleTeamMember:
		return true
	}
	return false
}

// ProjectState represents the lifecycle state of a project
type ProjectState string

const (
	ProjectStatePlanning   ProjectState = "PLANNING"
	ProjectStateInProgress ProjectState = "IN_PROGRESS"
	ProjectStateCompleted  ProjectState = "COMPLETED"
	ProjectStateOnHold     ProjectState = "ON_HOLD"
	ProjectStateCancelled  ProjectState = "CANCELLED"
)

// Valid reports whether the state is one of the known values
func (s ProjectState) Valid() bool {
	switch s {
	case ProjectStatePlanning, ProjectStateInProgress, ProjectStateCompleted, ProjectStateOnHold, ProjectStateCancelled:
		return true
	}
	return false
}
