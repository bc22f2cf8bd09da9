// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// ValidateJournalEntry validates a JournalEntry according to domain rules.
//
// Validation rules:
//   - Content must not be empty (Title may be empty)
//   - Mood must be one of the ten fixed tags
//   - CreatedAt must not be in the future
//
// NOT validated:
//   - ID (0 is valid before the database assigns one)
func ValidateJournalEntry(entry *JournalEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidJournalEntry)
	}

	if entry.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJournalEntry, ErrEmptyContent)
	}

	if err := ValidateMood(entry.Mood); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJournalEntry, err)
	}

	if !IsValidTimestamp(entry.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidJournalEntry, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateDocument validates a Document according to domain rules.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyTitle)
	}

	if doc.Type.Label() == "" {
		return fmt.Errorf("%w: unknown type %d", ErrInvalidDocument, doc.Type)
	}

	return nil
}

// ValidateMedicalRecord validates a MedicalRecord according to domain rules.
// The date may be in the future: upcoming appointments are valid records.
func ValidateMedicalRecord(record *MedicalRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidMedicalRecord)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMedicalRecord, ErrEmptyTitle)
	}

	if record.Type.Label() == "" {
		return fmt.Errorf("%w: unknown type %d", ErrInvalidMedicalRecord, record.Type)
	}

	return nil
}

// ValidateMilestoneRecord validates a MilestoneRecord according to domain rules.
func ValidateMilestoneRecord(record *MilestoneRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidMilestoneRecord)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMilestoneRecord, ErrEmptyTitle)
	}

	if record.Type.Label() == "" {
		return fmt.Errorf("%w: unknown type %d", ErrInvalidMilestoneRecord, record.Type)
	}

	if !IsValidTimestamp(record.Date) {
		return fmt.Errorf("%w: %w", ErrInvalidMilestoneRecord, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateGrowthRecord validates a GrowthRecord according to domain rules.
//
// Validation rules:
//   - At least one of WeightKg and HeightCm must be present
//   - Present measurements must not be negative
//   - AgeInMonths must not be negative
func ValidateGrowthRecord(record *GrowthRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidGrowthRecord)
	}

	if record.WeightKg == nil && record.HeightCm == nil {
		return fmt.Errorf("%w: %w", ErrInvalidGrowthRecord, ErrNoMeasurement)
	}

	if record.WeightKg != nil && *record.WeightKg < 0 {
		return fmt.Errorf("%w: %w: weight", ErrInvalidGrowthRecord, ErrNegativeMeasurement)
	}

	if record.HeightCm != nil && *record.HeightCm < 0 {
		return fmt.Errorf("%w: %w: height", ErrInvalidGrowthRecord, ErrNegativeMeasurement)
	}

	if record.AgeInMonths < 0 {
		return fmt.Errorf("%w: age in months cannot be negative", ErrInvalidGrowthRecord)
	}

	return nil
}

// ValidateMood validates that a Mood has one of the ten fixed values.
func ValidateMood(mood Mood) error {
	if mood < MoodHappy || mood > MoodLoving {
		return fmt.Errorf("%w: value %d", ErrInvalidMood, mood)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
