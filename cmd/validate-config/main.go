package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/vladimiradmaev/health-diary-bot/internal/config"
)

func main() {
	fmt.Println("Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("warning: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("bad config: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Printf("bad config: data dir not writable: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("config is ok")
	fmt.Printf("  allowed chats: %d\n", len(cfg.AllowedChatIDs))
	fmt.Printf("  data dir: %s\n", cfg.DataDir)
	fmt.Printf("  log level: %v, format: %s\n", cfg.Logger.Level, cfg.Logger.Format)
}
