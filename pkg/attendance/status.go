// Package attendance holds the canonical attendance status vocabulary and the
// hour-string arithmetic shared by the handlers and the report builder.
package attendance

import "strings"

// Canonical status values. Every comparison in the codebase goes through
// Normalize first; raw documents may still carry legacy synonyms like "p".
const (
	StatusPresent    = "present"
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
	StatusLate       = "late"
	StatusAbsent     = "absent"
	StatusHalfDay    = "half-day"
	StatusOnLeave    = "on-leave"
)

var synonyms = map[string]string{
	"p":           StatusPresent,
	"present":     StatusPresent,
	"checkedin":   StatusCheckedIn,
	"checked-in":  StatusCheckedIn,
	"checked in":  StatusCheckedIn,
	"checkedout":  StatusCheckedOut,
	"checked-out": StatusCheckedOut,
	"checked out": StatusCheckedOut,
	"l":           StatusLate,
	"late":        StatusLate,
	"a":           StatusAbsent,
	"absent":      StatusAbsent,
	"half-day":    StatusHalfDay,
	"halfday":     StatusHalfDay,
	"half day":    StatusHalfDay,
	"on-leave":    StatusOnLeave,
	"on leave":    StatusOnLeave,
	"leave":       StatusOnLeave,
}

// Normalize maps the free-form status strings found in attendance documents
// onto the canonical vocabulary. Unknown values pass through lowercased so
// they surface in reports instead of silently vanishing.
func Normalize(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	if canonical, ok := synonyms[s]; ok {
		return canonical
	}
	return s
}

// CountsAsPresent reports whether a status counts toward presentDays.
// Late arrivals are counted separately by the callers that also track them.
func CountsAsPresent(status string) bool {
	switch Normalize(status) {
	case StatusPresent, StatusCheckedIn, StatusCheckedOut:
		return true
	}
	return false
}

func IsAbsent(status string) bool {
	return Normalize(status) == StatusAbsent
}

func IsLate(status string) bool {
	return Normalize(status) == StatusLate
}
