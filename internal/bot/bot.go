package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/health-diary-bot/internal/bot/handlers"
	"github.com/vladimiradmaev/health-diary-bot/internal/bot/state"
	"github.com/vladimiradmaev/health-diary-bot/internal/config"
	"github.com/vladimiradmaev/health-diary-bot/internal/logger"
)

// Bot runs the Telegram long-poll loop and dispatches updates. Updates for
// different chats are handled concurrently; the update handler serializes
// messages within one chat.
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *handlers.UpdateHandler
}

func NewBot(cfg *config.Config, deps handlers.Dependencies) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	logger.Infof("Bot authorized on account %s", api.Self.UserName)

	stateManager := state.NewManager()
	return &Bot{
		api:     api,
		handler: handlers.NewUpdateHandler(api, cfg.AllowedSet(), deps, stateManager),
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("Bot is now listening for updates...")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot is shutting down...")
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			go func(update tgbotapi.Update) {
				// One failed message must not take the loop down.
				if err := b.handler.Handle(update); err != nil {
					logger.Error("Error handling update", "error", err)
				}
			}(update)
		}
	}
}
