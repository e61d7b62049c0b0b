// Package authz centralizes authorization decisions for all resource
// services. Services call Authorize instead of performing ad-hoc role or
// ownership comparisons inline; the decision is a pure function of the
// principal, the action kind, and the resource's ownership fact.
package authz

import (
	"lab-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// Principal is the authenticated identity making a request. The role is the
// one embedded in the credential at login time, not re-read from storage, so
// it may be stale for up to the credential lifetime.
type Principal struct {
	ID    uuid.UUID
	Email string
	Role  models.Role
}

// Kind classifies what privilege an action demands.
type Kind int

const (
	// KindRead is unconditionally allowed; all reads in this system are public.
	KindRead Kind = iota
	// KindOwnerMutation is allowed for the LabLeader or the resource owner.
	KindOwnerMutation
	// KindAdmin is allowed for the LabLeader only.
	KindAdmin
)

// Action names an operation together with the privilege it demands.
type Action struct {
	Name string
	Kind Kind
}

var (
	ActionReadUser   = Action{"user.read", KindRead}
	ActionUpdateUser = Action{"user.update", KindOwnerMutation}
	ActionDeleteUser = Action{"user.delete", KindAdmin}

	ActionReadTeam     = Action{"team.read", KindRead}
	ActionUpdateTeam   = Action{"team.update", KindOwnerMutation}
	ActionDeleteTeam   = Action{"team.delete", KindAdmin}
	ActionAddMember    = Action{"team.members.add", KindOwnerMutation}
	ActionRemoveMember = Action{"team.members.remove", KindOwnerMutation}

	ActionReadProject   = Action{"project.read", KindRead}
	ActionCreateProject = Action{"project.create", KindOwnerMutation}
	ActionUpdateProject = Action{"project.update", KindOwnerMutation}
	ActionDeleteProject = Action{"project.delete", KindOwnerMutation}

	ActionReadNews   = Action{"news.read", KindRead}
	ActionUpdateNews = Action{"news.update", KindOwnerMutation}
	ActionDeleteNews = Action{"news.delete", KindOwnerMutation}

	ActionReadArticle   = Action{"article.read", KindRead}
	ActionUpdateArticle = Action{"article.update", KindOwnerMutation}
	ActionDeleteArticle = Action{"article.delete", KindOwnerMutation}
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Allowed reports whether the decision permits the action.
func (d Decision) Allowed() bool {
	return d == Allow
}

// Authorize decides whether the principal may perform the action on a
// resource whose ownership fact is ownerID. Rules are evaluated in fixed
// precedence order, first match wins:
//
//  1. Admin actions: allow iff the principal is the LabLeader.
//  2. Owner-gated mutations: allow iff the principal is the LabLeader or
//     owns the resource.
//  3. Reads: allow.
//  4. Everything else: deny.
//
// Authorize never errors and performs no I/O. Ownership for projects is
// transitive: callers pass the owning team's leader ID, never a field on the
// project itself.
func Authorize(p Principal, action Action, ownerID uuid.UUID) Decision {
	switch action.Kind {
	case KindAdmin:
		if p.Role == models.RoleLabLeader {
			return Allow
		}
		return Deny
	case KindOwnerMutation:
		if p.Role == models.RoleLabLeader || p.ID == ownerID {
			return Allow
		}
		return Deny
	case KindRead:
		return Allow
	}
	return Deny
}
