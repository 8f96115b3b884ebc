package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

var (
	bareSecondsPattern = regexp.MustCompile(`^\d+$`)
	daysPattern        = regexp.MustCompile(`(?i)(\d+)\s*d`)
	hoursPattern       = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesPattern     = regexp.MustCompile(`(?i)(\d+)\s*m(?:[^s]|$)`)
	secondsPattern     = regexp.MustCompile(`(?i)(\d+)\s*s`)
)

// FormatDuration renders seconds as a compound string like "2h 30m 15s",
// emitting only nonzero components in descending unit order. Zero renders
// as "0s".
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "0s"
	}

	days := seconds / secondsPerDay
	hours := (seconds % secondsPerDay) / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute
	secs := seconds % secondsPerMinute

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}

	return strings.Join(parts, " ")
}

// ParseDuration parses a compound duration string like "2h 30m" into seconds.
// A bare integer is interpreted directly as seconds; an empty string maps to
// zero. Only matched unit components contribute ("m" not followed by "s" is
// minutes).
func ParseDuration(input string) int64 {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0
	}

	if bareSecondsPattern.MatchString(trimmed) {
		value, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return 0
		}
		return value
	}

	var total int64
	if m := daysPattern.FindStringSubmatch(trimmed); m != nil {
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			total += v * secondsPerDay
		}
	}
	if m := hoursPattern.FindStringSubmatch(trimmed); m != nil {
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			total += v * secondsPerHour
		}
	}
	if m := minutesPattern.FindStringSubmatch(trimmed); m != nil {
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			total += v * secondsPerMinute
		}
	}
	if m := secondsPattern.FindStringSubmatch(trimmed); m != nil {
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			total += v
		}
	}

	return total
}
