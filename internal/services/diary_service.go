package services

import (
	"time"

	"github.com/vladimiradmaev/health-diary-bot/internal/domain"
	"github.com/vladimiradmaev/health-diary-bot/internal/storage"
)

// DiaryService appends health records on behalf of the handlers.
type DiaryService struct {
	store *storage.Store
}

func NewDiaryService(store *storage.Store) *DiaryService {
	return &DiaryService{store: store}
}

// AddGlucose appends a glucose record. A zero `at` means "now".
func (s *DiaryService) AddGlucose(chatID int64, tag domain.GlucoseTag, value float64, at time.Time, note string) error {
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return s.store.AppendGlucose(domain.GlucoseRecord{
		Timestamp: at,
		ChatID:    chatID,
		Tag:       tag,
		Value:     value,
		Note:      note,
	})
}

// AddWeight appends a weight record timestamped now.
func (s *DiaryService) AddWeight(chatID int64, valueKg float64) error {
	return s.store.AppendWeight(domain.WeightRecord{
		Timestamp: time.Now().UTC(),
		ChatID:    chatID,
		ValueKg:   valueKg,
	})
}

// LogMedication appends an intake record for the named medication.
func (s *DiaryService) LogMedication(chatID int64, name string) error {
	return s.store.AppendMedicationLog(domain.MedicationLogRecord{
		Timestamp:  time.Now().UTC(),
		ChatID:     chatID,
		Medication: name,
	})
}
