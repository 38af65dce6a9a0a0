// Package authz is the single authorization gate shared by all three
// lifecycles. It is a pure decision layer: predicates over the caller
// identity and the target resource, composed once per operation, with no
// state and no side effects. The only errors it produces are
// Unauthenticated and Forbidden.
package authz

import (
	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/models"
)

// Identity is the opaque caller fact handed in by the authentication
// collaborator: who is calling and in what role.
type Identity struct {
	ID   uint
	Role models.Role
}

// Resource is anything with an owning employer. JobPosting ownership is the
// anchor; applications and interviews resolve ownership through their job.
type Resource interface {
	OwnedBy() uint
}

// Predicate answers allow (nil) or deny (Unauthenticated/Forbidden).
type Predicate func(caller Identity, res Resource) error

// Authenticated denies the zero identity.
func Authenticated(caller Identity, _ Resource) error {
	if caller.ID == 0 || caller.Role == "" {
		return apperr.Unauthenticated("caller identity required")
	}
	return nil
}

// HasRole allows any caller holding one of the given roles.
func HasRole(roles ...models.Role) Predicate {
	return func(caller Identity, _ Resource) error {
		for _, r := range roles {
			if caller.Role == r {
				return nil
			}
		}
		return apperr.Forbidden("insufficient role")
	}
}

// IsOwner allows the employer that owns the resource.
func IsOwner(caller Identity, res Resource) error {
	if res == nil || res.OwnedBy() != caller.ID {
		return apperr.Forbidden("resource belongs to another employer")
	}
	return nil
}

// All denies on the first failing predicate.
func All(preds ...Predicate) Predicate {
	return func(caller Identity, res Resource) error {
		for _, p := range preds {
			if err := p(caller, res); err != nil {
				return err
			}
		}
		return nil
	}
}

// Any allows if at least one predicate allows. Forbidden from the last
// predicate is surfaced; an Unauthenticated denial wins over Forbidden.
func Any(preds ...Predicate) Predicate {
	return func(caller Identity, res Resource) error {
		var last error
		for _, p := range preds {
			err := p(caller, res)
			if err == nil {
				return nil
			}
			if apperr.Is(err, apperr.CodeUnauthenticated) {
				return err
			}
			last = err
		}
		return last
	}
}

// The operation table. Every mutating operation in the three lifecycles
// checks exactly one entry here; there are no ad hoc role conditionals
// anywhere else.
var (
	// JobCreate: any staff member may open a draft.
	JobCreate = All(Authenticated, HasRole(models.RoleHR, models.RoleTPNS))

	// JobEdit, JobSubmit, JobClose: the owning employer or the
	// cross-cutting approver.
	JobEdit   = All(Authenticated, Any(HasRole(models.RoleTPNS), IsOwner))
	JobSubmit = JobEdit
	JobClose  = JobEdit

	// JobApprove, JobReject, JobDelete: approver only; owners cannot
	// self-approve.
	JobApprove = All(Authenticated, HasRole(models.RoleTPNS))
	JobReject  = JobApprove
	JobDelete  = JobApprove

	JobPendingQueue = All(Authenticated, HasRole(models.RoleTPNS))

	ApplicationSubmit = All(Authenticated, HasRole(models.RoleCandidate))

	// ApplicationRead covers both detail reads and status updates: TPNS
	// anywhere, HR only against their own postings.
	ApplicationRead   = All(Authenticated, Any(HasRole(models.RoleTPNS), All(HasRole(models.RoleHR), IsOwner)))
	ApplicationUpdate = ApplicationRead

	// ApplicationCount is checked against the posting being counted.
	ApplicationCount = ApplicationRead

	// InterviewCreate: TPNS, or the HR employer owning the application's job.
	InterviewCreate = ApplicationRead

	// InterviewModify: the interview's creator or TPNS. Ownership here is
	// the creating interviewer, not the job owner.
	InterviewModify = All(Authenticated, Any(HasRole(models.RoleTPNS), IsOwner))

	InterviewList = All(Authenticated, HasRole(models.RoleHR, models.RoleTPNS))
)

// Owned adapts a bare employer id into a Resource.
type Owned uint

func (o Owned) OwnedBy() uint { return uint(o) }
