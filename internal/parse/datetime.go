package parse

import (
	"strconv"
	"strings"
	"time"

	"github.com/vladimiradmaev/health-diary-bot/internal/apperrors"
)

var dateSeparators = strings.NewReplacer("-", "/", ".", "/")

func invalidDateTime() error {
	return apperrors.New(apperrors.TypeParse, apperrors.CodeInvalidDateTime,
		"Invalid date/time. Examples: 2/1 9:05, 02/01 09:05, 24/2/1 9:05, 2024/2/1 9:05")
}

// ParseDateTime parses a flexible "date time" input into an absolute
// timestamp. The date is month/day (year implied) or year/month/day, with
// `-` and `.` accepted as separators; a 2-digit year means 2000+year. The
// time is hour:minute, seconds are fixed at zero. Year and time zone are
// taken from now so callers and tests control the reference point.
func ParseDateTime(input string, now time.Time) (time.Time, error) {
	normalized := dateSeparators.Replace(strings.TrimSpace(input))
	fields := strings.Fields(normalized)
	if len(fields) != 2 {
		return time.Time{}, invalidDateTime()
	}

	dateParts := strings.Split(fields[0], "/")
	timeParts := strings.Split(fields[1], ":")
	if len(timeParts) != 2 {
		return time.Time{}, invalidDateTime()
	}

	hour, err := strconv.Atoi(timeParts[0])
	if err != nil {
		return time.Time{}, invalidDateTime()
	}
	minute, err := strconv.Atoi(timeParts[1])
	if err != nil {
		return time.Time{}, invalidDateTime()
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, invalidDateTime()
	}

	var year, month, day int
	switch len(dateParts) {
	case 2:
		year = now.Year()
		month, err = strconv.Atoi(dateParts[0])
		if err != nil {
			return time.Time{}, invalidDateTime()
		}
		day, err = strconv.Atoi(dateParts[1])
		if err != nil {
			return time.Time{}, invalidDateTime()
		}
	case 3:
		year, err = strconv.Atoi(dateParts[0])
		if err != nil {
			return time.Time{}, invalidDateTime()
		}
		if year >= 0 && year <= 99 {
			year += 2000
		}
		month, err = strconv.Atoi(dateParts[1])
		if err != nil {
			return time.Time{}, invalidDateTime()
		}
		day, err = strconv.Atoi(dateParts[2])
		if err != nil {
			return time.Time{}, invalidDateTime()
		}
	default:
		return time.Time{}, invalidDateTime()
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location())

	// time.Date normalizes out-of-range components, so a mismatch after
	// construction means the civil time does not exist: an impossible
	// calendar date (Feb 30) or a DST spring-forward gap.
	if !sameCivilTime(t, year, time.Month(month), day, hour, minute) {
		return time.Time{}, invalidDateTime()
	}

	// A DST fall-back repeats a wall-clock span: the same civil time names
	// two instants separated by the transition delta. If an instant one
	// delta earlier reads the same civil time, the input is ambiguous and
	// the earlier instant wins. The deltas cover the shift sizes in the tz
	// database, including the half-hour zones.
	for _, delta := range []time.Duration{30 * time.Minute, time.Hour, 2 * time.Hour} {
		if earlier := t.Add(-delta); sameCivilTime(earlier, year, time.Month(month), day, hour, minute) {
			t = earlier
			break
		}
	}

	return t, nil
}

func sameCivilTime(t time.Time, year int, month time.Month, day, hour, minute int) bool {
	return t.Year() == year && t.Month() == month && t.Day() == day &&
		t.Hour() == hour && t.Minute() == minute
}
