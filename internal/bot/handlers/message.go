package handlers

import (
	"errors"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/health-diary-bot/internal/apperrors"
	"github.com/vladimiradmaev/health-diary-bot/internal/bot/keyboards"
	"github.com/vladimiradmaev/health-diary-bot/internal/bot/state"
	"github.com/vladimiradmaev/health-diary-bot/internal/domain"
	"github.com/vladimiradmaev/health-diary-bot/internal/logger"
	"github.com/vladimiradmaev/health-diary-bot/internal/parse"
)

// MessageHandler routes the text of an incoming message: slash commands
// first, then menu and medication buttons, then the chat's pending entry,
// then the fallback guidance. Direct commands never touch the pending
// state; only the matching continuation flow clears it.
type MessageHandler struct {
	api          Sender
	deps         Dependencies
	stateManager *state.Manager
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(api Sender, deps Dependencies, stateManager *state.Manager) *MessageHandler {
	return &MessageHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes one message's text. The caller holds the chat lock.
func (h *MessageHandler) Handle(chatID int64, text string) error {
	if text == "/help" {
		return h.reply(chatID, helpText)
	}

	if tag, payload, ok := parseGlucoseAddCommand(text); ok {
		return h.handleGlucoseAdd(chatID, tag, payload)
	}

	if name, ok := parseAddMedCommand(text); ok {
		return h.handleAddMedication(chatID, name)
	}

	switch text {
	case "/start", "/menu", keyboards.BtnShowMenu:
		return h.reply(chatID, menuText)
	case keyboards.BtnGlucoseBeforeMeal:
		h.stateManager.SetPending(chatID, domain.PendingGlucose{Tag: domain.BeforeMeal})
		return h.reply(chatID, glucoseBeforePrompt)
	case keyboards.BtnGlucoseAfterMeal:
		h.stateManager.SetPending(chatID, domain.PendingGlucose{Tag: domain.AfterMeal})
		return h.reply(chatID, glucoseAfterPrompt)
	case keyboards.BtnWeight:
		h.stateManager.SetPending(chatID, domain.PendingWeight{})
		return h.reply(chatID, weightPrompt)
	}

	if name, ok := strings.CutPrefix(text, keyboards.MedButtonPrefix); ok {
		return h.handleMedicationButton(chatID, strings.TrimSpace(name))
	}

	if pending, ok := h.stateManager.Pending(chatID); ok {
		return h.handlePending(chatID, pending, text)
	}

	return h.reply(chatID, fallbackText)
}

// handleGlucoseAdd handles /addgb, /addga and their long-form aliases.
func (h *MessageHandler) handleGlucoseAdd(chatID int64, tag domain.GlucoseTag, payload string) error {
	if payload == "" {
		return h.reply(chatID, glucoseUsageText)
	}

	parsed, err := parse.ParseGlucosePayload(payload, time.Now())
	if err != nil {
		return h.replyParseError(chatID, err)
	}

	if err := h.deps.Diary.AddGlucose(chatID, tag, parsed.Value, parsed.Timestamp, parsed.Note); err != nil {
		return err
	}
	return h.reply(chatID, glucoseSavedText)
}

// handleAddMedication handles /addmed and its long-form alias.
func (h *MessageHandler) handleAddMedication(chatID int64, name string) error {
	if name == "" {
		return h.reply(chatID, addMedUsageText)
	}

	added, err := h.deps.Medications.Add(chatID, name)
	if err != nil {
		return err
	}
	if added {
		return h.reply(chatID, "Medication added: "+name)
	}
	return h.reply(chatID, "Medication already exists: "+name)
}

// handleMedicationButton logs intake of a registered medication. Unknown
// names are rejected, never auto-registered.
func (h *MessageHandler) handleMedicationButton(chatID int64, name string) error {
	exists, err := h.deps.Medications.Exists(chatID, name)
	if err != nil {
		return err
	}
	if !exists {
		return h.replyParseError(chatID, apperrors.New(apperrors.TypeParse,
			apperrors.CodeUnknownMedication, unknownMedicationText))
	}

	if err := h.deps.Diary.LogMedication(chatID, name); err != nil {
		return err
	}
	return h.reply(chatID, "Medication usage saved ✅ ("+name+")")
}

// handlePending interprets free text per the chat's pending entry. Parse
// failures keep the pending state so the user can retry.
func (h *MessageHandler) handlePending(chatID int64, pending domain.PendingEntry, text string) error {
	switch p := pending.(type) {
	case domain.PendingGlucose:
		parsed, err := parse.ParseGlucosePayload(text, time.Now())
		if err != nil {
			return h.replyParseError(chatID, err)
		}
		if err := h.deps.Diary.AddGlucose(chatID, p.Tag, parsed.Value, parsed.Timestamp, parsed.Note); err != nil {
			return err
		}
	case domain.PendingWeight:
		value, err := parse.ParseDecimal(text)
		if err != nil {
			return h.replyParseError(chatID, err)
		}
		if err := h.deps.Diary.AddWeight(chatID, value); err != nil {
			return err
		}
	default:
		return errors.New("unknown pending entry kind")
	}

	h.stateManager.ClearPending(chatID)
	return h.reply(chatID, savedText)
}

// replyParseError sends the corrective text of a parse failure to the user.
// Anything else (storage failures) goes back to the caller unanswered: the
// missing confirmation is the failure signal.
func (h *MessageHandler) replyParseError(chatID int64, err error) error {
	if msg, ok := apperrors.UserMessage(err); ok {
		return h.reply(chatID, msg)
	}
	return err
}

// reply sends text together with a freshly rendered menu keyboard.
func (h *MessageHandler) reply(chatID int64, text string) error {
	medications, err := h.deps.Medications.List(chatID)
	if err != nil {
		logger.Warn("failed to load medications for keyboard", "chat_id", chatID, "error", err)
		medications = nil
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.Menu(medications)
	_, err = h.api.Send(msg)
	return err
}
