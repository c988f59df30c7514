package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travelops/backend/internal/domain"
	"github.com/pkordes/travelops/backend/internal/service"
)

// ---- NormalizeDate ---------------------------------------------------------

func TestNormalizeDate_CompactForm(t *testing.T) {
	got, err := service.NormalizeDate("20240615")

	require.NoError(t, err)
	assert.Equal(t, "2024/06/15", got)
}

// TestNormalizeDate_CompactEqualsSlashInsertion pins the reformatting law:
// for a valid YYYYMMDD token the result equals re-inserting slashes at
// positions 4 and 6.
func TestNormalizeDate_CompactEqualsSlashInsertion(t *testing.T) {
	for _, tok := range []string{"20240101", "20241231", "19991115", "20240229"} {
		got, err := service.NormalizeDate(tok)
		require.NoError(t, err, "token %q", tok)
		assert.Equal(t, tok[:4]+"/"+tok[4:6]+"/"+tok[6:], got, "token %q", tok)
	}
}

// TestNormalizeDate_SlashedPassthrough documents the lenient-passthrough
// behaviour: a 10-character slashed token is trusted as-is, even when it is
// not a real calendar date.
func TestNormalizeDate_SlashedPassthrough(t *testing.T) {
	for _, tok := range []string{"2024/06/15", "2024/13/40", "abcd/ef/gh"} {
		got, err := service.NormalizeDate(tok)
		require.NoError(t, err, "token %q", tok)
		assert.Equal(t, tok, got, "token %q", tok)
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	for _, tok := range []string{"", "2024615", "2024-06-15", "20241315", "2024/6/15", "junk"} {
		_, err := service.NormalizeDate(tok)
		require.Error(t, err, "token %q", tok)
		assert.True(t, errors.Is(err, domain.ErrInvalidDateFormat), "token %q", tok)
	}
}

// ---- ActiveWeekdays --------------------------------------------------------

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestActiveWeekdays_WeekOrLonger_AlwaysFullSet verifies the short-circuit:
// a range spanning six or more whole days covers every weekday regardless of
// which day it starts on.
func TestActiveWeekdays_WeekOrLonger_AlwaysFullSet(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		from := day(2024, time.June, 2+offset) // 2024-06-02 is a Sunday
		got := service.ActiveWeekdays(from, from.AddDate(0, 0, 6))

		require.Len(t, got, 7, "start offset %d", offset)
		for _, code := range domain.WeekdayCodes {
			assert.True(t, got[code], "start offset %d missing %s", offset, code)
		}
	}
}

func TestActiveWeekdays_SingleDay(t *testing.T) {
	// 2024-06-05 is a Wednesday.
	from := day(2024, time.June, 5)
	got := service.ActiveWeekdays(from, from)

	assert.Equal(t, map[string]bool{"WED": true}, got)
}

func TestActiveWeekdays_PartialRange(t *testing.T) {
	// Friday 2024-06-07 through Monday 2024-06-10.
	got := service.ActiveWeekdays(day(2024, time.June, 7), day(2024, time.June, 10))

	assert.Equal(t, map[string]bool{"FRI": true, "SAT": true, "SUN": true, "MON": true}, got)
}

// TestActiveWeekdays_InvertedRange documents the expander-level behaviour for
// from > to: the loop never runs and the set is empty. ConvertService rejects
// inverted ranges before calling, so this is a safety net, not a feature.
func TestActiveWeekdays_InvertedRange(t *testing.T) {
	got := service.ActiveWeekdays(day(2024, time.June, 10), day(2024, time.June, 7))

	assert.Empty(t, got)
}
