package parse

import (
	"strings"
	"time"

	"github.com/vladimiradmaev/health-diary-bot/internal/apperrors"
)

// GlucosePayload is the parsed form of "<value> [date time] [@note]".
// Timestamp is zero when the user did not supply a date/time.
type GlucosePayload struct {
	Value     float64
	Timestamp time.Time
	Note      string
}

// ParseGlucosePayload parses a glucose entry payload. The value token is
// mandatory; remaining tokens before the note must form a valid date/time.
func ParseGlucosePayload(payload string, now time.Time) (GlucosePayload, error) {
	withoutNote, note := splitNote(payload)

	fields := strings.Fields(withoutNote)
	if len(fields) == 0 {
		return GlucosePayload{}, apperrors.New(apperrors.TypeParse, apperrors.CodeEmptyPayload,
			"Missing glucose value")
	}

	value, err := ParseDecimal(fields[0])
	if err != nil {
		return GlucosePayload{}, apperrors.New(apperrors.TypeParse, apperrors.CodeNotANumber,
			"Invalid glucose value. Example: 5.8")
	}

	result := GlucosePayload{Value: value, Note: note}
	if rest := strings.Join(fields[1:], " "); rest != "" {
		timestamp, err := ParseDateTime(rest, now)
		if err != nil {
			return GlucosePayload{}, err
		}
		result.Timestamp = timestamp
	}
	return result, nil
}

// splitNote splits a payload at the first '@'. At most one space after the
// marker is stripped; a bare '@' yields no note.
func splitNote(input string) (string, string) {
	index := strings.Index(input, "@")
	if index < 0 {
		return strings.TrimSpace(input), ""
	}
	note := input[index+1:]
	if rest, ok := strings.CutPrefix(note, " "); ok {
		note = rest
	}
	return strings.TrimSpace(input[:index]), note
}
