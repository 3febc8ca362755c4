// Package weekkey derives ISO-8601 week identifiers ("2024-W01") used to
// bucket earned stars.
package weekkey

import (
	"fmt"
	"strconv"
	"time"
)

// Of returns the ISO-8601 week key for the calendar date of t, in t's own
// location. Weeks start on Monday and week 1 holds the year's first Thursday,
// so late-December dates can belong to week 1 of the next ISO year.
func Of(t time.Time) string {
	year, week := t.ISOWeek()
	return Format(year, week)
}

// Format renders an ISO year and week as a week key.
func Format(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Parse splits a week key into its ISO year and week, rejecting weeks the
// year does not have.
func Parse(key string) (year, week int, err error) {
	if len(key) != len("2006-W01") || key[4:6] != "-W" || !digits(key[:4]) || !digits(key[6:]) {
		return 0, 0, fmt.Errorf("invalid week key %q: want YYYY-Www", key)
	}
	year, _ = strconv.Atoi(key[:4])
	week, _ = strconv.Atoi(key[6:])
	if week < 1 || week > WeeksIn(year) {
		return 0, 0, fmt.Errorf("invalid week key %q: %d has %d ISO weeks", key, year, WeeksIn(year))
	}
	return year, week, nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// WeeksIn returns 52 or 53, the number of ISO weeks in year.
func WeeksIn(year int) int {
	// Dec 28 is always in the last ISO week of its year.
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// Monday returns the Monday (00:00 UTC) that starts the given ISO week.
func Monday(year, week int) time.Time {
	// Jan 4 is always in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, -offset+(week-1)*7)
}
