package utils

import (
	"strings"

	"grievance-api/models"
)

// FilterGrievances narrows an already-fetched list by status and free-text
// search. Pure function: no I/O, input order preserved, the input slice is
// never modified.
//
// statusFilter is either StatusFilterAll (or empty) or one enumeration value;
// any alias spelling is accepted. searchTerm matches case-insensitively as a
// substring against id, name, email, category and description; an empty term
// matches everything.
func FilterGrievances(grievances []models.Grievance, statusFilter, searchTerm string) []models.Grievance {
	wantStatus := ""
	if statusFilter != "" && normalizeStatus(statusFilter) != StatusFilterAll {
		if canonical, ok := CanonicalStatus(statusFilter); ok {
			wantStatus = canonical
		} else {
			// Unknown status filter matches nothing rather than everything.
			return []models.Grievance{}
		}
	}

	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]models.Grievance, 0, len(grievances))
	for _, g := range grievances {
		if wantStatus != "" && g.Status != wantStatus {
			continue
		}
		if term != "" && !matchesSearch(g, term) {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}

func matchesSearch(g models.Grievance, term string) bool {
	for _, field := range []string{g.GrievanceID, g.Name, g.Email, g.Category, g.Description} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
