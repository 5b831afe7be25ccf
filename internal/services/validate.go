package services

import (
	"regexp"
	"time"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(s string) bool { return emailRx.MatchString(s) }

const dateLayout = "2006-01-02"

// parseDate accepts YYYY-MM-DD; empty input yields nil.
func parseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// listCacheTTL bounds staleness of cached public list reads.
const listCacheTTL = 5 * time.Minute
