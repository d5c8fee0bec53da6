package handlers

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/health-diary-bot/internal/bot/state"
	"github.com/vladimiradmaev/health-diary-bot/internal/logger"
)

// UpdateHandler gates incoming updates on the chat allow-list and
// serializes handling per chat before delegating to the message handler.
type UpdateHandler struct {
	allowed        map[int64]struct{}
	stateManager   *state.Manager
	messageHandler *MessageHandler
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(api Sender, allowed map[int64]struct{}, deps Dependencies, stateManager *state.Manager) *UpdateHandler {
	return &UpdateHandler{
		allowed:        allowed,
		stateManager:   stateManager,
		messageHandler: NewMessageHandler(api, deps, stateManager),
	}
}

// Handle processes a telegram update. Messages from chats outside the
// allow-list are silently dropped.
func (h *UpdateHandler) Handle(update tgbotapi.Update) error {
	if update.Message == nil || update.Message.Text == "" {
		return nil
	}

	chatID := update.Message.Chat.ID
	if _, ok := h.allowed[chatID]; !ok {
		logger.Debug("dropping message from disallowed chat", "chat_id", chatID)
		return nil
	}

	unlock := h.stateManager.LockChat(chatID)
	defer unlock()

	return h.messageHandler.Handle(chatID, strings.TrimSpace(update.Message.Text))
}
