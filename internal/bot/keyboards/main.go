package keyboards

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Button literals. These exact strings come back as message text when the
// user taps a reply-keyboard button, so the router matches on them.
const (
	BtnGlucoseBeforeMeal = "🩸 Glucose: Before meal"
	BtnGlucoseAfterMeal  = "🩸 Glucose: After meal"
	BtnWeight            = "⚖️ Weight"
	BtnShowMenu          = "📋 Show menu"

	// MedButtonPrefix precedes a medication name on its button.
	MedButtonPrefix = "💊 "
)

// Menu builds the reply keyboard: two fixed rows, then the chat's
// medications two per row in insertion order.
func Menu(medications []string) tgbotapi.ReplyKeyboardMarkup {
	rows := [][]tgbotapi.KeyboardButton{
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnGlucoseBeforeMeal),
			tgbotapi.NewKeyboardButton(BtnGlucoseAfterMeal),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnWeight),
			tgbotapi.NewKeyboardButton(BtnShowMenu),
		),
	}

	for i := 0; i < len(medications); i += 2 {
		row := []tgbotapi.KeyboardButton{
			tgbotapi.NewKeyboardButton(MedButtonPrefix + medications[i]),
		}
		if i+1 < len(medications) {
			row = append(row, tgbotapi.NewKeyboardButton(MedButtonPrefix+medications[i+1]))
		}
		rows = append(rows, row)
	}

	return tgbotapi.NewReplyKeyboard(rows...)
}
