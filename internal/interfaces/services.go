package interfaces

import (
	"time"

	"github.com/vladimiradmaev/health-diary-bot/internal/domain"
)

// DiaryServiceInterface defines the contract for appending health records.
type DiaryServiceInterface interface {
	AddGlucose(chatID int64, tag domain.GlucoseTag, value float64, at time.Time, note string) error
	AddWeight(chatID int64, valueKg float64) error
	LogMedication(chatID int64, name string) error
}

// MedicationRegistryInterface defines the contract for the per-chat
// medication name list.
type MedicationRegistryInterface interface {
	List(chatID int64) ([]string, error)
	Exists(chatID int64, name string) (bool, error)
	Add(chatID int64, name string) (bool, error)
}
