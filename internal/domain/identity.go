package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"finaltabs/internal/timeutil"
)

// identityPattern matches ABBREV-MMDD identities, e.g. LAL-0211.
var identityPattern = regexp.MustCompile(`^([A-Z]+)-(\d{2})(\d{2})$`)

// Identity derives the stable key for a winning team's receipt from the team
// abbreviation and the game's calendar month/day. The key deliberately omits
// the year: the pipeline only ever looks back one day, and no team plays
// twice on one calendar day.
func Identity(teamAbbrev string, gameDate time.Time) string {
	return strings.ToUpper(teamAbbrev) + "-" + timeutil.OrderNum(gameDate)
}

// ParseIdentity splits an identity back into its abbreviation and month/day.
func ParseIdentity(identity string) (abbrev string, month time.Month, day int, err error) {
	m := identityPattern.FindStringSubmatch(strings.ToUpper(identity))
	if m == nil {
		return "", 0, 0, fmt.Errorf("malformed identity %q", identity)
	}
	month, day, err = timeutil.ParseOrderNum(m[2] + m[3])
	if err != nil {
		return "", 0, 0, err
	}
	return m[1], month, day, nil
}

// IdentityDate resolves an identity's month/day onto a concrete game date.
// The identity carries no year, so a month/day that lands in the future
// relative to now is taken as last year's occurrence.
func IdentityDate(identity string, now time.Time) (time.Time, error) {
	_, month, day, err := ParseIdentity(identity)
	if err != nil {
		return time.Time{}, err
	}
	return timeutil.ResolvePastDate(now, month, day), nil
}
