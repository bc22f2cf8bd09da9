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

import "errors"

// Domain validation errors
var (
	// ErrInvalidJournalEntry indicates a JournalEntry failed validation.
	ErrInvalidJournalEntry = errors.New("invalid journal entry")

	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidMedicalRecord indicates a MedicalRecord failed validation.
	ErrInvalidMedicalRecord = errors.New("invalid medical record")

	// ErrInvalidMilestoneRecord indicates a MilestoneRecord failed validation.
	ErrInvalidMilestoneRecord = errors.New("invalid milestone record")

	// ErrInvalidGrowthRecord indicates a GrowthRecord failed validation.
	ErrInvalidGrowthRecord = errors.New("invalid growth record")

	// ErrInvalidMood indicates an unknown mood tag value.
	ErrInvalidMood = errors.New("invalid mood")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrEmptyContent indicates a required text field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyTitle indicates a required title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrNoMeasurement indicates a growth record carries neither weight nor height.
	ErrNoMeasurement = errors.New("growth record needs at least one measurement")

	// ErrNegativeMeasurement indicates a measurement below zero.
	ErrNegativeMeasurement = errors.New("measurement cannot be negative")
)
