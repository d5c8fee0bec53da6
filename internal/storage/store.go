// Package storage implements the append-only per-chat record store. Each
// chat gets its own directory under the data dir with one CSV file per
// record kind plus a plain-text medication name list. Files only ever grow:
// a header line is written when a CSV file is first created and every
// record append adds exactly one line.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vladimiradmaev/health-diary-bot/internal/apperrors"
	"github.com/vladimiradmaev/health-diary-bot/internal/domain"
)

const (
	glucoseFile       = "glucose.csv"
	weightFile        = "weight.csv"
	medicationLogFile = "medication_log.csv"
	medicationsFile   = "medications.txt"

	glucoseHeader       = "timestamp,chat_id,tag,value_mmol_l,note"
	weightHeader        = "timestamp,chat_id,value_kg"
	medicationLogHeader = "timestamp,chat_id,medication"
)

// Store appends diary records to per-chat files under dataDir. Appends to
// the same file are serialized; different files are fully independent.
type Store struct {
	dataDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a store rooted at dataDir. Directories and files are created
// lazily on first append.
func New(dataDir string) *Store {
	return &Store{
		dataDir: dataDir,
		locks:   make(map[string]*sync.Mutex),
	}
}

// AppendGlucose appends one glucose record to the chat's glucose.csv.
func (s *Store) AppendGlucose(rec domain.GlucoseRecord) error {
	line := fmt.Sprintf("%s,%d,%s,%s,%s",
		rec.Timestamp.Format(time.RFC3339), rec.ChatID, rec.Tag,
		formatDecimal(rec.Value), quoteField(rec.Note))
	return s.appendLine(rec.ChatID, glucoseFile, glucoseHeader, line)
}

// AppendWeight appends one weight record to the chat's weight.csv.
func (s *Store) AppendWeight(rec domain.WeightRecord) error {
	line := fmt.Sprintf("%s,%d,%s",
		rec.Timestamp.Format(time.RFC3339), rec.ChatID, formatDecimal(rec.ValueKg))
	return s.appendLine(rec.ChatID, weightFile, weightHeader, line)
}

// AppendMedicationLog appends one intake record to the chat's medication_log.csv.
func (s *Store) AppendMedicationLog(rec domain.MedicationLogRecord) error {
	line := fmt.Sprintf("%s,%d,%s",
		rec.Timestamp.Format(time.RFC3339), rec.ChatID, quoteField(rec.Medication))
	return s.appendLine(rec.ChatID, medicationLogFile, medicationLogHeader, line)
}

// AppendMedicationName appends a name to the chat's medication list file.
// The list file has no header.
func (s *Store) AppendMedicationName(chatID int64, name string) error {
	return s.appendLine(chatID, medicationsFile, "", name)
}

// MedicationNames returns the raw, non-blank lines of the chat's medication
// list file in file order. A missing file means an empty list.
func (s *Store) MedicationNames(chatID int64) ([]string, error) {
	content, err := os.ReadFile(s.chatPath(chatID, medicationsFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	var names []string
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

func (s *Store) chatPath(chatID int64, name string) string {
	return filepath.Join(s.dataDir, strconv.FormatInt(chatID, 10), name)
}

// lockPath serializes appends per file; the map itself is guarded by mu.
func (s *Store) lockPath(path string) func() {
	s.mu.Lock()
	lock, ok := s.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[path] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (s *Store) appendLine(chatID int64, name, header, line string) error {
	path := s.chatPath(chatID, name)
	unlock := s.lockPath(path)
	defer unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.NewStorageError(err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if info.Size() == 0 && header != "" {
		if _, err := file.WriteString(header + "\n"); err != nil {
			return apperrors.NewStorageError(err)
		}
	}

	if _, err := file.WriteString(line + "\n"); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// formatDecimal renders a value in its shortest round-trip decimal form.
func formatDecimal(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// quoteField wraps a free-text field in double quotes with embedded quotes
// doubled. Numeric and timestamp fields are never quoted.
func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
