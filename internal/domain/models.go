package domain

import "time"

// GlucoseTag marks whether a glucose reading was taken before or after a meal.
type GlucoseTag string

const (
	BeforeMeal GlucoseTag = "before_meal"
	AfterMeal  GlucoseTag = "after_meal"
)

// GlucoseRecord represents a single glucose measurement in mmol/L.
type GlucoseRecord struct {
	Timestamp time.Time
	ChatID    int64
	Tag       GlucoseTag
	Value     float64
	Note      string
}

// WeightRecord represents a single body-weight measurement in kilograms.
type WeightRecord struct {
	Timestamp time.Time
	ChatID    int64
	ValueKg   float64
}

// MedicationLogRecord represents one intake of a named medication.
type MedicationLogRecord struct {
	Timestamp  time.Time
	ChatID     int64
	Medication string
}
