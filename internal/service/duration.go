package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Upstream inventories encode durations in two string forms: "2h 30m" and
// ISO-8601-like "PT2H30M". Both are accepted at ingestion; anything else
// sorts as worst case.
const unparseableMinutes = 999

var (
	isoDurationPattern = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?$`)
	hmDurationPattern  = regexp.MustCompile(`(?i)^(\d+)\s*h(?:rs?)?(?:\s*(\d+)\s*m(?:in)?s?)?$`)
)

// ParseDurationMinutes parses a duration display string into minutes.
// Unparseable input returns 999 so it ranks last under fastest.
func ParseDurationMinutes(dur string) int {
	dur = strings.TrimSpace(dur)
	if dur == "" {
		return unparseableMinutes
	}

	if m := isoDurationPattern.FindStringSubmatch(dur); m != nil && (m[1] != "" || m[2] != "") {
		return atoiOrZero(m[1])*60 + atoiOrZero(m[2])
	}
	if m := hmDurationPattern.FindStringSubmatch(dur); m != nil {
		return atoiOrZero(m[1])*60 + atoiOrZero(m[2])
	}

	return unparseableMinutes
}

// FormatMinutes renders a minute count in the "2h 30m" display form.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
