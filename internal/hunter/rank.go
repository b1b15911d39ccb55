package hunter

import (
	"slices"
	"strings"

	"ownerhunter/internal/types"
)

// emptyStatusDate sorts undated targets ahead of any MM/DD/YYYY date.
const emptyStatusDate = "00/00/0000"

var statusPriority = map[string]int{
	StatusDenied:      0,
	StatusRevoked:     1,
	StatusSuspended:   2,
	StatusConditional: 3,
	StatusActive:      4,
}

// Priority returns the rank of status; lower values are worked first.
func Priority(status string) int {
	if p, ok := statusPriority[status]; ok {
		return p
	}
	return len(statusPriority)
}

func sortDate(t types.TargetRecord) string {
	if t.StatusDate == "" {
		return emptyStatusDate
	}
	return t.StatusDate
}

// Rank sorts targets in place by status priority, then by the raw status_date string.
// Dates compare as text, not calendar values. Equal keys keep their input order.
func Rank(targets []types.TargetRecord) {
	slices.SortStableFunc(targets, func(a, b types.TargetRecord) int {
		if pa, pb := Priority(a.Status), Priority(b.Status); pa != pb {
			return pa - pb
		}
		return strings.Compare(sortDate(a), sortDate(b))
	})
}
