package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vladimiradmaev/health-diary-bot/internal/logger"
)

// Config is the immutable process configuration. It is built once in main
// and threaded explicitly into the bot, handlers and store.
type Config struct {
	TelegramToken  string
	AllowedChatIDs []int64
	DataDir        string
	Logger         LoggerConfig
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// parseChatIDs parses a comma-separated list of chat IDs. Blank entries are
// skipped; anything non-numeric is a configuration error.
func parseChatIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chat id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	ids, err := parseChatIDs(os.Getenv("ALLOWED_CHAT_IDS"))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("ALLOWED_CHAT_IDS is required")
	}

	return &Config{
		TelegramToken:  token,
		AllowedChatIDs: ids,
		DataDir:        getEnvOrDefault("DATA_DIR", "data"),
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}, nil
}

// AllowedSet returns the allow-list as a set keyed by chat ID.
func (c *Config) AllowedSet() map[int64]struct{} {
	set := make(map[int64]struct{}, len(c.AllowedChatIDs))
	for _, id := range c.AllowedChatIDs {
		set[id] = struct{}{}
	}
	return set
}
