// Package auth implements the authorization policy gating every API operation.
package auth

import (
	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
)

// Actor is the authenticated identity attached to a request by the
// authentication gate.
type Actor struct {
	ID       int64
	Username string
	Email    string
	Role     models.Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// Policy is a declarative per-route access descriptor. The three predicates
// are independent; each one that is enabled must pass.
type Policy struct {
	// Roles is the set of roles allowed through. Empty means any
	// authenticated user.
	Roles []models.Role
	// Ownership requires the actor to own the target resource. Admins
	// pass regardless.
	Ownership bool
	// DenySelf rejects operations whose target is the actor's own
	// account, regardless of role.
	DenySelf bool
}

// Evaluate decides allow/deny for an actor against a policy. ownerID is the
// owning user of the target resource (ignored unless Ownership is set);
// targetID is the id the operation acts on (ignored unless DenySelf is set).
func Evaluate(actor Actor, policy Policy, ownerID, targetID int64) error {
	if len(policy.Roles) > 0 && !roleAllowed(actor.Role, policy.Roles) {
		return apperrors.ErrPermissionDenied
	}

	// Self-protection fires before ownership: an admin always owns enough
	// to pass the ownership check on their own account.
	if policy.DenySelf && targetID == actor.ID {
		return apperrors.ErrSelfDeletion
	}

	if policy.Ownership && actor.ID != ownerID && !actor.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	return nil
}

// CanAccessOwned is the ownership predicate on its own: the resource's
// creator or an admin may proceed.
func CanAccessOwned(actor Actor, ownerID int64) error {
	return Evaluate(actor, Policy{Ownership: true}, ownerID, 0)
}

// CheckSelfDeletion is the self-protection predicate on its own.
func CheckSelfDeletion(actor Actor, targetID int64) error {
	return Evaluate(actor, Policy{DenySelf: true}, 0, targetID)
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
