package timeutil

import (
	"fmt"
	"time"
)

// ScoreboardLayout is the 8-digit date format the scoreboard endpoint expects.
const ScoreboardLayout = "20060102"

// OrderLayout is the zero-padded month+day used in receipt identities.
const OrderLayout = "0102"

// ScoreboardDate formats a time as YYYYMMDD in its current location.
func ScoreboardDate(t time.Time) string {
	return t.Format(ScoreboardLayout)
}

// OrderNum formats a time as MMDD in its current location.
func OrderNum(t time.Time) string {
	return t.Format(OrderLayout)
}

// ParseOrderNum splits an MMDD string into month and day.
func ParseOrderNum(orderNum string) (time.Month, int, error) {
	parsed, err := time.Parse(OrderLayout, orderNum)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid order number %q: %w", orderNum, err)
	}
	return parsed.Month(), parsed.Day(), nil
}

// ResolvePastDate maps a month/day with no year component onto a concrete date.
// Identities carry no year, so a month/day that lands after now belongs to the
// most recent past occurrence, one year back.
func ResolvePastDate(now time.Time, month time.Month, day int) time.Time {
	candidate := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if candidate.After(now) {
		candidate = candidate.AddDate(-1, 0, 0)
	}
	return candidate
}
