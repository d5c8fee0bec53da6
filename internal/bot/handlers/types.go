package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/health-diary-bot/internal/interfaces"
)

// Sender is the part of the Telegram API the handlers use to reply.
// *tgbotapi.BotAPI satisfies it; tests substitute a recorder.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	Diary       interfaces.DiaryServiceInterface
	Medications interfaces.MedicationRegistryInterface
}
