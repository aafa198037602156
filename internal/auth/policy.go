package auth

import (
	"careernode_backend/internal/models"
	"careernode_backend/pkg/apperrors"
)

// Actor identifies the requester for the duration of one request.
// It is resolved once by the auth middleware and passed explicitly into
// every policy check; policies never read ambient request state.
type Actor struct {
	ID            string
	Role          models.UserRole
	Authenticated bool
}

// Anonymous is the actor for requests without a valid bearer token
var Anonymous = Actor{}

// ResourceKind names a creatable resource for CanCreate
type ResourceKind string

const (
	KindJob         ResourceKind = "job"
	KindApplication ResourceKind = "application"
)

// CanCreate reports whether the actor may create a resource of the given kind.
//
// Jobs require an authenticated employer. Applications require any
// authenticated actor; the role is deliberately not restricted to
// applicants, matching the behavior this service replaces.
func CanCreate(actor Actor, kind ResourceKind) bool {
	if !actor.Authenticated {
		return false
	}

	switch kind {
	case KindJob:
		return actor.Role == models.UserRoleEmployer
	case KindApplication:
		return true
	default:
		return false
	}
}

// CanMutate reports whether the actor may update or delete the job.
// Only the owning employer and admins qualify; no job field influences
// the decision.
func CanMutate(actor Actor, job *models.Job) bool {
	if !actor.Authenticated || job == nil {
		return false
	}
	return actor.ID == job.EmployerID || actor.Role == models.UserRoleAdmin
}

// IsAdmin reports whether the actor holds the admin role
func IsAdmin(actor Actor) bool {
	return actor.Authenticated && actor.Role == models.UserRoleAdmin
}

// DenyError maps a policy denial to the transport error: 401 for anonymous
// actors, 403 for authenticated actors the policy rejects.
func DenyError(actor Actor) *apperrors.AppError {
	if !actor.Authenticated {
		return apperrors.NewUnauthorizedError("Authentication required")
	}
	return apperrors.NewForbiddenError("You do not have permission to perform this action")
}
