package service

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts "H:MM", "HH:MM" or "HH:MM:SS" into minutes since
// midnight. Seconds are accepted but ignored.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	for i, p := range parts {
		if len(p) != 2 && !(i == 0 && len(p) == 1) {
			return 0, fmt.Errorf("invalid clock %q", s)
		}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("invalid second in %q", s)
		}
	}
	return h*60 + m, nil
}

// NormalizeClock rewrites a clock as zero-padded "HH:MM"
func NormalizeClock(s string) (string, error) {
	m, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}

// IsWithinOpeningTime reports whether t is at or after opening
func IsWithinOpeningTime(t, opening string) bool {
	tm, err1 := ParseClock(t)
	om, err2 := ParseClock(opening)
	return err1 == nil && err2 == nil && om <= tm
}

// IsWithinClosingTime reports whether t is at or before closing
func IsWithinClosingTime(t, closing string) bool {
	tm, err1 := ParseClock(t)
	cm, err2 := ParseClock(closing)
	return err1 == nil && err2 == nil && tm <= cm
}

// WithinBusinessHours reports whether t lies in the inclusive window
// [opening, closing]. A window whose closing precedes its opening
// contains no time.
func WithinBusinessHours(t, opening, closing string) bool {
	return IsWithinOpeningTime(t, opening) && IsWithinClosingTime(t, closing)
}
