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

package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/poiesic/materna/core"
)

// Snapshot is the JSON exchange format for a backup of every record
// family. Enum fields travel as string codes so snapshots stay readable
// and stable across releases.
type Snapshot struct {
	ExportedAt time.Time           `json:"exported_at"`
	Journal    []JournalSnapshot   `json:"journal,omitempty"`
	Documents  []DocumentSnapshot  `json:"documents,omitempty"`
	Medical    []MedicalSnapshot   `json:"medical,omitempty"`
	Milestones []MilestoneSnapshot `json:"milestones,omitempty"`
	Growth     []GrowthSnapshot    `json:"growth,omitempty"`
}

type JournalSnapshot struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
}

type DocumentSnapshot struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

type MedicalSnapshot struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
}

type MilestoneSnapshot struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
}

type GrowthSnapshot struct {
	WeightKg    *float64  `json:"weight_kg,omitempty"`
	HeightCm    *float64  `json:"height_cm,omitempty"`
	AgeInMonths int       `json:"age_in_months"`
	Date        time.Time `json:"date"`
}

// ReadSnapshot decodes a snapshot from JSON.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	return &snapshot, nil
}

var documentTypeCodes = map[string]core.DocumentType{
	"certificate":  core.DocumentCertificate,
	"vaccine_card": core.DocumentVaccineCard,
	"prescription": core.DocumentPrescription,
	"exam_result":  core.DocumentExamResult,
	"other":        core.DocumentOther,
}

var medicalTypeCodes = map[string]core.MedicalRecordType{
	"appointment": core.MedicalAppointment,
	"ultrasound":  core.MedicalUltrasound,
	"exam":        core.MedicalExam,
	"vaccine":     core.MedicalVaccine,
	"symptom":     core.MedicalSymptom,
}

var milestoneTypeCodes = map[string]core.MilestoneType{
	"first_smile": core.MilestoneFirstSmile,
	"crawling":    core.MilestoneCrawling,
	"first_steps": core.MilestoneFirstSteps,
	"first_word":  core.MilestoneFirstWord,
	"first_tooth": core.MilestoneFirstTooth,
	"other":       core.MilestoneOther,
}

func (s *JournalSnapshot) toCore() (*core.JournalEntry, error) {
	mood, err := core.ParseMood(s.Mood)
	if err != nil {
		return nil, fmt.Errorf("%w: journal mood %q", ErrMalformedSnapshot, s.Mood)
	}
	return &core.JournalEntry{
		Title:     s.Title,
		Content:   s.Content,
		Mood:      mood,
		CreatedAt: s.CreatedAt,
	}, nil
}

func (s *DocumentSnapshot) toCore() (*core.Document, error) {
	documentType, ok := documentTypeCodes[s.Type]
	if !ok {
		return nil, fmt.Errorf("%w: document type %q", ErrMalformedSnapshot, s.Type)
	}
	return &core.Document{
		Title:       s.Title,
		Description: s.Description,
		Tags:        s.Tags,
		Notes:       s.Notes,
		Type:        documentType,
		CreatedAt:   s.CreatedAt,
	}, nil
}

func (s *MedicalSnapshot) toCore() (*core.MedicalRecord, error) {
	recordType, ok := medicalTypeCodes[s.Type]
	if !ok {
		return nil, fmt.Errorf("%w: medical type %q", ErrMalformedSnapshot, s.Type)
	}
	return &core.MedicalRecord{
		Title:       s.Title,
		Description: s.Description,
		Type:        recordType,
		Date:        s.Date,
	}, nil
}

func (s *MilestoneSnapshot) toCore() (*core.MilestoneRecord, error) {
	milestoneType, ok := milestoneTypeCodes[s.Type]
	if !ok {
		return nil, fmt.Errorf("%w: milestone type %q", ErrMalformedSnapshot, s.Type)
	}
	return &core.MilestoneRecord{
		Title:       s.Title,
		Description: s.Description,
		Type:        milestoneType,
		Date:        s.Date,
	}, nil
}

func (s *GrowthSnapshot) toCore() (*core.GrowthRecord, error) {
	if s.WeightKg == nil && s.HeightCm == nil {
		return nil, fmt.Errorf("%w: growth record without measurements", ErrMalformedSnapshot)
	}
	return &core.GrowthRecord{
		WeightKg:    s.WeightKg,
		HeightCm:    s.HeightCm,
		AgeInMonths: s.AgeInMonths,
		Date:        s.Date,
	}, nil
}
