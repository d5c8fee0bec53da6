package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vladimiradmaev/health-diary-bot/internal/bot"
	"github.com/vladimiradmaev/health-diary-bot/internal/bot/handlers"
	"github.com/vladimiradmaev/health-diary-bot/internal/config"
	"github.com/vladimiradmaev/health-diary-bot/internal/logger"
	"github.com/vladimiradmaev/health-diary-bot/internal/services"
	"github.com/vladimiradmaev/health-diary-bot/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Health Diary Bot...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("Configuration loaded", "allowed_chats", len(cfg.AllowedChatIDs), "data_dir", cfg.DataDir)

	store := storage.New(cfg.DataDir)
	deps := handlers.Dependencies{
		Diary:       services.NewDiaryService(store),
		Medications: services.NewMedicationRegistry(store),
	}

	telegramBot, err := bot.NewBot(cfg, deps)
	if err != nil {
		logger.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Bot is running. Press Ctrl+C to stop.")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("Bot stopped with error: %v", err)
	}
}
