package handlers

import (
	"strings"

	"github.com/vladimiradmaev/health-diary-bot/internal/domain"
)

// Command prefixes with their long-form aliases.
var glucoseAddCommands = []struct {
	cmd string
	tag domain.GlucoseTag
}{
	{"/addgb", domain.BeforeMeal},
	{"/add_glucose_before", domain.BeforeMeal},
	{"/addga", domain.AfterMeal},
	{"/add_glucose_after", domain.AfterMeal},
}

var addMedCommands = []string{"/addmed", "/add_medication"}

// parseGlucoseAddCommand recognizes the glucose add commands and returns
// the tag plus the trimmed payload. A bare command yields an empty payload.
func parseGlucoseAddCommand(text string) (domain.GlucoseTag, string, bool) {
	for _, mapping := range glucoseAddCommands {
		if text == mapping.cmd {
			return mapping.tag, "", true
		}
		if rest, ok := strings.CutPrefix(text, mapping.cmd+" "); ok {
			return mapping.tag, strings.TrimSpace(rest), true
		}
	}
	return "", "", false
}

// parseAddMedCommand recognizes /addmed and its alias, returning the
// trimmed medication name.
func parseAddMedCommand(text string) (string, bool) {
	for _, cmd := range addMedCommands {
		if text == cmd {
			return "", true
		}
		if rest, ok := strings.CutPrefix(text, cmd+" "); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}
