package attendance

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// hoursPattern accepts "8h", "8.5h", "8 hours", "8h 15m". The minutes part is
// parsed separately so "8h 15m" contributes 8.25, not 8.
var (
	hoursPattern   = regexp.MustCompile(`(\d+\.?\d*)\s*h`)
	minutesPattern = regexp.MustCompile(`(\d+)\s*m`)
)

// ParseHours extracts worked hours from a free-text hours field. Placeholder
// values ("-", "N/A", "") report ok=false.
func ParseHours(raw string) (hours float64, ok bool) {
	if raw == "" || raw == "-" || raw == "N/A" {
		return 0, false
	}

	match := hoursPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, false
	}
	hours, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}

	if m := minutesPattern.FindStringSubmatch(raw); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err == nil {
			hours += float64(minutes) / 60
		}
	}
	return hours, true
}

// FormatHours renders a duration the way the client displays it: "8h 15m".
func FormatHours(d time.Duration) string {
	totalMinutes := int(d.Minutes())
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}
