package enums

import "fmt"

// FollowUpStatus tracks where a lead sits in the follow-up pipeline.
type FollowUpStatus string

const (
	FollowUpStatusPending       FollowUpStatus = "Pending"
	FollowUpStatusFollowUp      FollowUpStatus = "Follow Up"
	FollowUpStatusClosed        FollowUpStatus = "Closed"
	FollowUpStatusNotInterested FollowUpStatus = "Not Interested"
)

var validFollowUpStatuses = []FollowUpStatus{
	FollowUpStatusPending,
	FollowUpStatusFollowUp,
	FollowUpStatusClosed,
	FollowUpStatusNotInterested,
}

// String implements fmt.Stringer.
func (f FollowUpStatus) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FollowUpStatus.
func (f FollowUpStatus) IsValid() bool {
	for _, candidate := range validFollowUpStatuses {
		if candidate == f {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends follow-up tracking. Terminal
// leads never surface on the overdue worklist.
func (f FollowUpStatus) IsTerminal() bool {
	return f == FollowUpStatusClosed || f == FollowUpStatusNotInterested
}

// ParseFollowUpStatus converts raw input into a FollowUpStatus.
func ParseFollowUpStatus(value string) (FollowUpStatus, error) {
	for _, candidate := range validFollowUpStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid follow-up status %q", value)
}
