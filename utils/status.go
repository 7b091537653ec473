package utils

import "strings"

const (
	// Canonical status values, stored verbatim in grievances.status.
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusClosed     = "Closed"
	StatusRejected   = "Rejected"

	// StatusFilterAll is the wildcard accepted by the list filter, never stored.
	StatusFilterAll = "all"
)

var (
	// AllStatuses lists every valid grievance status, in lifecycle order.
	AllStatuses = []string{
		StatusPending,
		StatusInProgress,
		StatusResolved,
		StatusClosed,
		StatusRejected,
	}

	statusSynonyms = map[string][]string{
		StatusPending: {
			"pending",
		},
		StatusInProgress: {
			"in progress",
			"in_progress",
			"inprogress",
		},
		StatusResolved: {
			"resolved",
		},
		StatusClosed: {
			"closed",
		},
		StatusRejected: {
			"rejected",
		},
	}
	statusAliasToCanonical = buildStatusAliasMap()
)

func buildStatusAliasMap() map[string]string {
	aliasMap := make(map[string]string)
	for canonical, synonyms := range statusSynonyms {
		aliasMap[normalizeStatus(canonical)] = canonical
		for _, alias := range synonyms {
			if normalized := normalizeStatus(alias); normalized != "" {
				aliasMap[normalized] = canonical
			}
		}
	}
	return aliasMap
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// CanonicalStatus maps a status spelling ("in_progress", "Closed", ...) to its
// canonical stored value. The second result is false for anything outside the
// enumeration.
func CanonicalStatus(status string) (string, bool) {
	canonical, ok := statusAliasToCanonical[normalizeStatus(status)]
	return canonical, ok
}

// IsValidStatus reports whether status resolves to a member of the enumeration.
func IsValidStatus(status string) bool {
	_, ok := CanonicalStatus(status)
	return ok
}
