package hunter

import (
	"strings"

	"ownerhunter/internal/types"
)

// Statuses worth chasing. Closed and Unknown entities are not targeted.
const (
	StatusDenied      = "Denied"
	StatusRevoked     = "Revoked"
	StatusSuspended   = "Suspended"
	StatusConditional = "Conditional"
	StatusActive      = "Active"
)

var eligibleStatuses = map[string]bool{
	StatusActive:      true,
	StatusSuspended:   true,
	StatusDenied:      true,
	StatusRevoked:     true,
	StatusConditional: true,
}

// IsEligible reports whether status puts an entity on the target list.
func IsEligible(status string) bool {
	return eligibleStatuses[status]
}

// IsGhostOffice reports whether street is missing or only names a county.
func IsGhostOffice(street string) bool {
	return strings.TrimSpace(street) == "" || strings.Contains(street, "County")
}

// ghostAddress joins street and city, or falls back to the city alone.
func ghostAddress(street, city string) string {
	if street != "" {
		return street + ", " + city
	}
	return city
}

// Classification is the outcome of classifying a whole masterlist, in input order.
type Classification struct {
	Targets      []types.TargetRecord
	GhostOffices []types.GhostOfficeRecord
}

// Classify runs the ghost-office and eligibility tests on every entity. The tests are
// independent, so an entity may land in both lists or neither.
func Classify(entities []types.EntityRecord, links LinkGenerator) Classification {
	var c Classification
	for _, e := range entities {
		if IsGhostOffice(e.Street) {
			c.GhostOffices = append(c.GhostOffices, types.GhostOfficeRecord{
				LicenseID: e.LicenseID,
				Name:      e.Name,
				Status:    e.Status,
				Address:   ghostAddress(e.Street, e.City),
			})
		}

		if !IsEligible(e.Status) {
			continue
		}
		c.Targets = append(c.Targets, types.TargetRecord{
			LicenseID:   e.LicenseID,
			Name:        e.Name,
			Status:      e.Status,
			StatusDate:  e.StatusDate,
			City:        e.City,
			County:      e.County,
			ServiceType: e.ServiceType,
			DeepLink:    links.Link(e.Name),
		})
	}
	return c
}
