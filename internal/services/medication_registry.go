package services

import (
	"strings"

	"github.com/vladimiradmaev/health-diary-bot/internal/storage"
)

// MedicationRegistry maintains the per-chat deduplicated list of medication
// names. The list is re-read from the store on every call; medication lists
// are small and rarely change, so consistency wins over latency here.
type MedicationRegistry struct {
	store *storage.Store
}

func NewMedicationRegistry(store *storage.Store) *MedicationRegistry {
	return &MedicationRegistry{store: store}
}

// List returns the chat's medication names, normalized and deduplicated
// case-insensitively, in insertion order.
func (r *MedicationRegistry) List(chatID int64) ([]string, error) {
	lines, err := r.store.MedicationNames(chatID)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range lines {
		name := normalizeName(line)
		if name == "" || containsFold(names, name) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Exists reports whether the name matches a registered medication,
// case-insensitively.
func (r *MedicationRegistry) Exists(chatID int64, name string) (bool, error) {
	names, err := r.List(chatID)
	if err != nil {
		return false, err
	}
	return containsFold(names, normalizeName(name)), nil
}

// Add registers a new medication name. Names that are empty after
// normalization or already present (case-insensitively) are a no-op
// returning false.
func (r *MedicationRegistry) Add(chatID int64, name string) (bool, error) {
	normalized := normalizeName(name)
	if normalized == "" {
		return false, nil
	}

	names, err := r.List(chatID)
	if err != nil {
		return false, err
	}
	if containsFold(names, normalized) {
		return false, nil
	}

	if err := r.store.AppendMedicationName(chatID, normalized); err != nil {
		return false, err
	}
	return true, nil
}

// normalizeName collapses internal whitespace and trims the name.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func containsFold(names []string, name string) bool {
	for _, existing := range names {
		if strings.EqualFold(existing, name) {
			return true
		}
	}
	return false
}
