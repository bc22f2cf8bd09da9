package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateJournalEntry(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		entry   *JournalEntry
		wantErr error
	}{
		{
			name:  "valid entry",
			entry: &JournalEntry{Content: "Hoje foi um dia calmo", Mood: MoodCalm, CreatedAt: now},
		},
		{
			name:  "empty title is allowed",
			entry: &JournalEntry{Title: "", Content: "Sem título hoje", Mood: MoodTired, CreatedAt: now},
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidJournalEntry,
		},
		{
			name:    "empty content",
			entry:   &JournalEntry{Mood: MoodHappy, CreatedAt: now},
			wantErr: ErrEmptyContent,
		},
		{
			name:    "invalid mood",
			entry:   &JournalEntry{Content: "texto", Mood: Mood(42), CreatedAt: now},
			wantErr: ErrInvalidMood,
		},
		{
			name:    "future timestamp",
			entry:   &JournalEntry{Content: "texto", Mood: MoodHappy, CreatedAt: now.Add(48 * time.Hour)},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJournalEntry(tt.entry)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateJournalEntry() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateJournalEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateGrowthRecord(t *testing.T) {
	now := time.Now().UTC()
	weight := 5.2
	height := 60.0
	negative := -1.0

	tests := []struct {
		name    string
		record  *GrowthRecord
		wantErr error
	}{
		{
			name:   "weight only",
			record: &GrowthRecord{WeightKg: &weight, AgeInMonths: 3, Date: now},
		},
		{
			name:   "height only",
			record: &GrowthRecord{HeightCm: &height, AgeInMonths: 3, Date: now},
		},
		{
			name:    "no measurements",
			record:  &GrowthRecord{AgeInMonths: 3, Date: now},
			wantErr: ErrNoMeasurement,
		},
		{
			name:    "negative weight",
			record:  &GrowthRecord{WeightKg: &negative, AgeInMonths: 3, Date: now},
			wantErr: ErrNegativeMeasurement,
		},
		{
			name:    "negative age",
			record:  &GrowthRecord{WeightKg: &weight, AgeInMonths: -1, Date: now},
			wantErr: ErrInvalidGrowthRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGrowthRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateGrowthRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateGrowthRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMedicalRecord_FutureDateAllowed(t *testing.T) {
	record := &MedicalRecord{
		Title: "Consulta pré-natal",
		Type:  MedicalAppointment,
		Date:  time.Now().Add(72 * time.Hour),
	}
	if err := ValidateMedicalRecord(record); err != nil {
		t.Fatalf("Future appointments should be valid: %v", err)
	}
}

func TestValidateDocument_UnknownType(t *testing.T) {
	doc := &Document{Title: "Certidão", Type: DocumentType(99)}
	if err := ValidateDocument(doc); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("Expected ErrInvalidDocument, got %v", err)
	}
}
