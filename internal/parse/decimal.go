// Package parse contains the tolerant input parsers for user-entered
// decimals, date/times and glucose payloads.
package parse

import (
	"strconv"
	"strings"

	"github.com/vladimiradmaev/health-diary-bot/internal/apperrors"
)

// ParseDecimal parses a decimal number accepting both dot and comma as the
// decimal separator.
func ParseDecimal(input string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, apperrors.New(apperrors.TypeParse, apperrors.CodeNotANumber,
			"Could not parse number. Use format like 78.4 (dot or comma).")
	}
	return value, nil
}
