package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladimiradmaev/health-diary-bot/internal/apperrors"
)

var now2024 = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestParseDateTime_EquivalentForms(t *testing.T) {
	want := time.Date(2024, time.February, 1, 9, 5, 0, 0, time.UTC)

	for _, input := range []string{
		"2/1 9:05",
		"02/01 09:05",
		"24/2/1 9:05",
		"2024/2/1 9:05",
	} {
		got, err := ParseDateTime(input, now2024)
		require.NoError(t, err, "input %q", input)
		assert.True(t, got.Equal(want), "input %q: got %v", input, got)
	}
}

func TestParseDateTime_AlternateSeparators(t *testing.T) {
	want := time.Date(2024, time.February, 1, 9, 5, 0, 0, time.UTC)

	for _, input := range []string{"2-1 9:05", "2.1 9:05", "2024-2-1 9:05"} {
		got, err := ParseDateTime(input, now2024)
		require.NoError(t, err, "input %q", input)
		assert.True(t, got.Equal(want), "input %q", input)
	}
}

func TestParseDateTime_TwoDigitYear(t *testing.T) {
	got, err := ParseDateTime("99/12/31 23:59", now2024)
	require.NoError(t, err)
	assert.Equal(t, 2099, got.Year())
}

func TestParseDateTime_Invalid(t *testing.T) {
	for _, input := range []string{
		"2/30 9:05",        // no such calendar date
		"2/1",              // missing time token
		"2/1 9:05 extra",   // too many tokens
		"2/1 24:00",        // hour out of range
		"2/1 9:60",         // minute out of range
		"2024/13/1 9:05",   // month out of range
		"2024/2 9:05",      // two-field form reads 2024 as the month
		"2/1/3/4 9:05",     // too many date fields
		"2/1 9:05:30",      // seconds not allowed
		"a/b 9:05",         // non-numeric date
		"2/1 x:05",         // non-numeric hour
		"",                 // empty
		"today at 9",       // free text
	} {
		_, err := ParseDateTime(input, now2024)
		require.Error(t, err, "input %q", input)
		assert.Equal(t, apperrors.CodeInvalidDateTime, apperrors.Code(err), "input %q", input)
	}
}

func TestParseDateTime_UsesReferenceYearAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2031, time.January, 2, 0, 0, 0, 0, loc)

	got, err := ParseDateTime("7/4 18:30", now)
	require.NoError(t, err)
	assert.Equal(t, 2031, got.Year())
	assert.Equal(t, time.July, got.Month())
	assert.Equal(t, loc.String(), got.Location().String())
}

func TestParseDateTime_AmbiguousFallBackPicksEarlierInstant(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, loc)

	// Clocks fall back 02:00 -> 01:00 on Nov 3 2024, so 01:30 names two
	// instants. The earlier one is still on daylight time (-04:00).
	got, err := ParseDateTime("11/3 1:30", now)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Hour())
	assert.Equal(t, 30, got.Minute())
	_, offset := got.Zone()
	assert.Equal(t, -4*60*60, offset)
}

func TestParseDateTime_HalfHourFallBackPicksEarlierInstant(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Lord_Howe")
	require.NoError(t, err)
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, loc)

	// Lord Howe shifts by 30 minutes: clocks fall back 02:00 -> 01:30 on
	// Apr 7 2024. The earlier 01:45 is still on daylight time (+11:00).
	got, err := ParseDateTime("4/7 1:45", now)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Hour())
	assert.Equal(t, 45, got.Minute())
	_, offset := got.Zone()
	assert.Equal(t, 11*60*60, offset)
}

func TestParseDateTime_SpringForwardGapFails(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, loc)

	// Clocks jump 02:00 -> 03:00 on Mar 10 2024, so 02:30 never happens.
	_, err = ParseDateTime("3/10 2:30", now)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidDateTime, apperrors.Code(err))
}
