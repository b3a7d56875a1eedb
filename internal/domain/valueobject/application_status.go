package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ApplicationStatus – immutable value object
// ---------------------------------------------------------------------------

// ApplicationStatus represents the externally visible lifecycle stage of a
// credit application. The awaiting-decision stage is not a distinct status:
// it is PENDING with a risk evaluation attached.
type ApplicationStatus struct {
	value string
}

const (
	applicationStatusPending  = "PENDING"
	applicationStatusApproved = "APPROVED"
	applicationStatusRejected = "REJECTED"
)

var (
	ApplicationStatusPending  = ApplicationStatus{value: applicationStatusPending}
	ApplicationStatusApproved = ApplicationStatus{value: applicationStatusApproved}
	ApplicationStatusRejected = ApplicationStatus{value: applicationStatusRejected}
)

var validApplicationStatuses = map[string]ApplicationStatus{
	applicationStatusPending:  ApplicationStatusPending,
	applicationStatusApproved: ApplicationStatusApproved,
	applicationStatusRejected: ApplicationStatusRejected,
}

// NewApplicationStatus creates an ApplicationStatus from a raw string.
func NewApplicationStatus(s string) (ApplicationStatus, error) {
	v, ok := validApplicationStatuses[s]
	if !ok {
		return ApplicationStatus{}, fmt.Errorf("invalid application status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ApplicationStatus) Equal(other ApplicationStatus) bool { return s.value == other.value }

// Terminal returns true for APPROVED and REJECTED; terminal statuses never re-open.
func (s ApplicationStatus) Terminal() bool {
	return s.value == applicationStatusApproved || s.value == applicationStatusRejected
}

// ---------------------------------------------------------------------------
// MemberStatus – immutable value object
// ---------------------------------------------------------------------------

// MemberStatus represents whether a cooperative member is currently active.
type MemberStatus struct {
	value string
}

const (
	memberStatusActive   = "ACTIVE"
	memberStatusInactive = "INACTIVE"
)

var (
	MemberStatusActive   = MemberStatus{value: memberStatusActive}
	MemberStatusInactive = MemberStatus{value: memberStatusInactive}
)

var validMemberStatuses = map[string]MemberStatus{
	memberStatusActive:   MemberStatusActive,
	memberStatusInactive: MemberStatusInactive,
}

// NewMemberStatus creates a MemberStatus from a raw string.
func NewMemberStatus(s string) (MemberStatus, error) {
	v, ok := validMemberStatuses[s]
	if !ok {
		return MemberStatus{}, fmt.Errorf("invalid member status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s MemberStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s MemberStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s MemberStatus) Equal(other MemberStatus) bool { return s.value == other.value }
