// Package service contains the business logic for the travelops backend.
// Services validate inputs, enforce business rules, and orchestrate calls to
// the facility resolver and the study repo. No HTTP and no SQL live here.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/travelops/backend/internal/domain"
)

// canonicalDateLayout is the slash-delimited form every date is normalized to.
const canonicalDateLayout = "2006/01/02"

// NormalizeDate converts a date token into canonical YYYY/MM/DD form.
//
// A token that already contains a slash and is exactly 10 characters long is
// passed through unchanged — deliberately without checking calendar validity.
// Operators paste slashed dates straight out of the booking system, so they
// are trusted as-is. Anything else must parse strictly as YYYYMMDD.
func NormalizeDate(token string) (string, error) {
	if strings.Contains(token, "/") && len(token) == 10 {
		return token, nil
	}
	t, err := time.Parse("20060102", token)
	if err != nil {
		return "", fmt.Errorf("service.NormalizeDate: %q: %w", token, domain.ErrInvalidDateFormat)
	}
	return t.Format(canonicalDateLayout), nil
}

// ActiveWeekdays returns the set of weekday codes occurring between from and
// to inclusive, keyed by the codes in domain.WeekdayCodes.
//
// Any range spanning six or more whole days necessarily covers every weekday,
// so the full set is returned without iterating. For from > to the loop never
// runs and the empty set is returned; callers that consider an inverted range
// an input error must reject it before calling (see ConvertService).
func ActiveWeekdays(from, to time.Time) map[string]bool {
	set := make(map[string]bool, len(domain.WeekdayCodes))

	if to.Sub(from) >= 6*24*time.Hour {
		for _, code := range domain.WeekdayCodes {
			set[code] = true
		}
		return set
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		// time.Weekday numbers Sunday as 0, matching WeekdayCodes order.
		set[domain.WeekdayCodes[int(d.Weekday())]] = true
	}
	return set
}

// parseCanonical parses a canonical YYYY/MM/DD string produced by
// NormalizeDate. It can still fail: the lenient passthrough lets a slashed
// but calendrically impossible token (e.g. "2024/13/40") through unchanged.
func parseCanonical(s string) (time.Time, error) {
	return time.Parse(canonicalDateLayout, s)
}
