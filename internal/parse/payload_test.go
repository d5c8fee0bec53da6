package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladimiradmaev/health-diary-bot/internal/apperrors"
)

func TestParseGlucosePayload_ValueOnly(t *testing.T) {
	got, err := ParseGlucosePayload("5.8", now2024)
	require.NoError(t, err)
	assert.Equal(t, 5.8, got.Value)
	assert.True(t, got.Timestamp.IsZero())
	assert.Empty(t, got.Note)
}

func TestParseGlucosePayload_CommaValue(t *testing.T) {
	got, err := ParseGlucosePayload("5,8", now2024)
	require.NoError(t, err)
	assert.Equal(t, 5.8, got.Value)
}

func TestParseGlucosePayload_WithDateTime(t *testing.T) {
	got, err := ParseGlucosePayload("5.8 2/1 9:05", now2024)
	require.NoError(t, err)
	assert.Equal(t, 5.8, got.Value)
	assert.True(t, got.Timestamp.Equal(time.Date(2024, time.February, 1, 9, 5, 0, 0, time.UTC)))
}

func TestParseGlucosePayload_WithDateTimeAndNote(t *testing.T) {
	got, err := ParseGlucosePayload("5.8 2/1 9:05 @before breakfast", now2024)
	require.NoError(t, err)
	assert.Equal(t, 5.8, got.Value)
	assert.False(t, got.Timestamp.IsZero())
	assert.Equal(t, "before breakfast", got.Note)
}

func TestParseGlucosePayload_NoteOnly(t *testing.T) {
	got, err := ParseGlucosePayload("7.2 @after lunch", now2024)
	require.NoError(t, err)
	assert.True(t, got.Timestamp.IsZero())
	assert.Equal(t, "after lunch", got.Note)
}

func TestParseGlucosePayload_BareAtMeansNoNote(t *testing.T) {
	got, err := ParseGlucosePayload("5.8 @", now2024)
	require.NoError(t, err)
	assert.Empty(t, got.Note)
}

func TestParseGlucosePayload_StripsOneLeadingNoteSpace(t *testing.T) {
	got, err := ParseGlucosePayload("5.8 @  double space", now2024)
	require.NoError(t, err)
	assert.Equal(t, " double space", got.Note)
}

func TestParseGlucosePayload_MissingValue(t *testing.T) {
	_, err := ParseGlucosePayload("@only a note", now2024)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeEmptyPayload, apperrors.Code(err))
}

func TestParseGlucosePayload_InvalidValue(t *testing.T) {
	_, err := ParseGlucosePayload("high 2/1 9:05", now2024)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotANumber, apperrors.Code(err))
}

func TestParseGlucosePayload_InvalidDateTimeFailsWhole(t *testing.T) {
	_, err := ParseGlucosePayload("5.8 2/30 9:05", now2024)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidDateTime, apperrors.Code(err))
}
