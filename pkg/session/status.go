package session

import "github.com/google/uuid"

// Status describes the authentication state of the client.
type Status string

const (
	// StatusAnonymous means no credential is known; the start state and the
	// result of Logout.
	StatusAnonymous Status = "anonymous"

	// StatusBootstrapping means a stored credential exists and its validity
	// is being confirmed against the backend.
	StatusBootstrapping Status = "bootstrapping"

	// StatusAuthenticated means a confirmed credential and a profile are held.
	StatusAuthenticated Status = "authenticated"

	// StatusUnauthenticated means bootstrap ran and the stored credential was
	// rejected. Behaviorally identical to StatusAnonymous for routing; kept
	// distinct so consumers can tell "never logged in" from "session expired".
	StatusUnauthenticated Status = "unauthenticated"
)

// IsAuthenticated reports whether the status represents a confirmed session.
func (s Status) IsAuthenticated() bool {
	return s == StatusAuthenticated
}

// Plan is the subscription tier of the account.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// Profile is the current-user representation returned by the backend.
type Profile struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	SubscriptionPlan Plan      `json:"subscription_plan"`
	IsActive         bool      `json:"is_active"`
	IsSuperuser      bool      `json:"is_superuser"`
}

// Snapshot is an immutable view of the session state handed to subscribers.
type Snapshot struct {
	Status  Status
	Profile *Profile
	Loading bool
}

// IsAuthenticated reports whether the snapshot represents a confirmed session.
func (s Snapshot) IsAuthenticated() bool {
	return s.Status.IsAuthenticated()
}
