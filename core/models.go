package core

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated from database sequences or content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs. It is used to
// fingerprint records during bulk imports so re-imports stay idempotent.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Mood is one of the ten fixed emotional-state tags a journal entry carries.
type Mood int

const (
	MoodHappy Mood = iota + 1
	MoodGrateful
	MoodCalm
	MoodTired
	MoodAnxious
	MoodInsecure
	MoodSad
	MoodOverwhelmed
	MoodHopeful
	MoodLoving
)

// Moods lists every valid mood tag in declaration order.
var Moods = []Mood{
	MoodHappy, MoodGrateful, MoodCalm, MoodTired, MoodAnxious,
	MoodInsecure, MoodSad, MoodOverwhelmed, MoodHopeful, MoodLoving,
}

var moodLabels = map[Mood]string{
	MoodHappy:       "Feliz",
	MoodGrateful:    "Grata",
	MoodCalm:        "Calma",
	MoodTired:       "Cansada",
	MoodAnxious:     "Ansiosa",
	MoodInsecure:    "Insegura",
	MoodSad:         "Triste",
	MoodOverwhelmed: "Sobrecarregada",
	MoodHopeful:     "Esperançosa",
	MoodLoving:      "Amorosa",
}

var moodEmojis = map[Mood]string{
	MoodHappy:       "😊",
	MoodGrateful:    "🙏",
	MoodCalm:        "😌",
	MoodTired:       "😴",
	MoodAnxious:     "😰",
	MoodInsecure:    "😔",
	MoodSad:         "😢",
	MoodOverwhelmed: "😵",
	MoodHopeful:     "🌈",
	MoodLoving:      "🥰",
}

var moodCodes = map[Mood]string{
	MoodHappy:       "happy",
	MoodGrateful:    "grateful",
	MoodCalm:        "calm",
	MoodTired:       "tired",
	MoodAnxious:     "anxious",
	MoodInsecure:    "insecure",
	MoodSad:         "sad",
	MoodOverwhelmed: "overwhelmed",
	MoodHopeful:     "hopeful",
	MoodLoving:      "loving",
}

// Label returns the user-facing Portuguese label for the mood.
func (m Mood) Label() string {
	return moodLabels[m]
}

// Emoji returns the emoji shown next to the mood label.
func (m Mood) Emoji() string {
	return moodEmojis[m]
}

// Code returns the stable machine-readable code used in exports.
func (m Mood) Code() string {
	return moodCodes[m]
}

// ParseMood converts a machine-readable code back into a Mood.
func ParseMood(code string) (Mood, error) {
	for mood, c := range moodCodes {
		if c == code {
			return mood, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMood, code)
}

// JournalEntry is a single diary entry written by the user.
type JournalEntry struct {
	Id         ID
	Title      string
	Content    string
	Mood       Mood
	CreatedAt  time.Time // When the entry was written
	InsertedAt time.Time // When the record was inserted into the database
	UpdatedAt  time.Time // When the record was last updated
}

// Fingerprint returns a content-based ID for import deduplication.
func (e *JournalEntry) Fingerprint() ID {
	return IDFromContent("journal|" + e.Title + "|" + e.Content + "|" + e.CreatedAt.UTC().Format(time.RFC3339))
}

// DocumentType categorizes stored documents.
type DocumentType int

const (
	DocumentCertificate DocumentType = iota + 1
	DocumentVaccineCard
	DocumentPrescription
	DocumentExamResult
	DocumentOther
)

var documentTypeLabels = map[DocumentType]string{
	DocumentCertificate:  "Certidão de nascimento",
	DocumentVaccineCard:  "Carteira de vacinação",
	DocumentPrescription: "Receita médica",
	DocumentExamResult:   "Resultado de exame",
	DocumentOther:        "Outro documento",
}

// Label returns the user-facing Portuguese label for the document type.
func (t DocumentType) Label() string {
	return documentTypeLabels[t]
}

// Document is a stored reference to an important paper or file.
type Document struct {
	Id          ID
	Title       string
	Description string
	Tags        string
	Notes       string
	Type        DocumentType
	CreatedAt   time.Time
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Fingerprint returns a content-based ID for import deduplication.
func (d *Document) Fingerprint() ID {
	return IDFromContent("document|" + d.Title + "|" + d.Description + "|" + d.CreatedAt.UTC().Format(time.RFC3339))
}

// MedicalRecordType categorizes medical records.
type MedicalRecordType int

const (
	MedicalAppointment MedicalRecordType = iota + 1
	MedicalUltrasound
	MedicalExam
	MedicalVaccine
	MedicalSymptom
)

var medicalTypeLabels = map[MedicalRecordType]string{
	MedicalAppointment: "Consulta",
	MedicalUltrasound:  "Ultrassom",
	MedicalExam:        "Exame",
	MedicalVaccine:     "Vacina",
	MedicalSymptom:     "Sintoma",
}

// Label returns the user-facing Portuguese label for the record type.
func (t MedicalRecordType) Label() string {
	return medicalTypeLabels[t]
}

// MedicalRecord tracks appointments, exams, vaccines, and symptoms.
type MedicalRecord struct {
	Id          ID
	Title       string
	Description string
	Type        MedicalRecordType
	Date        time.Time
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Fingerprint returns a content-based ID for import deduplication.
func (r *MedicalRecord) Fingerprint() ID {
	return IDFromContent("medical|" + r.Title + "|" + r.Description + "|" + r.Date.UTC().Format(time.RFC3339))
}

// MilestoneType categorizes development milestones.
type MilestoneType int

const (
	MilestoneFirstSmile MilestoneType = iota + 1
	MilestoneCrawling
	MilestoneFirstSteps
	MilestoneFirstWord
	MilestoneFirstTooth
	MilestoneOther
)

var milestoneTypeLabels = map[MilestoneType]string{
	MilestoneFirstSmile: "Primeiro sorriso",
	MilestoneCrawling:   "Engatinhou",
	MilestoneFirstSteps: "Primeiros passos",
	MilestoneFirstWord:  "Primeira palavra",
	MilestoneFirstTooth: "Primeiro dente",
	MilestoneOther:      "Outro marco",
}

// Label returns the user-facing Portuguese label for the milestone type.
func (t MilestoneType) Label() string {
	return milestoneTypeLabels[t]
}

// MilestoneRecord captures a development milestone worth celebrating.
type MilestoneRecord struct {
	Id          ID
	Title       string
	Description string
	Type        MilestoneType
	Date        time.Time
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Fingerprint returns a content-based ID for import deduplication.
func (r *MilestoneRecord) Fingerprint() ID {
	return IDFromContent("milestone|" + r.Title + "|" + r.Description + "|" + r.Date.UTC().Format(time.RFC3339))
}

// GrowthRecord tracks weight and height measurements over time.
// WeightKg and HeightCm are optional; a record may carry either or both.
type GrowthRecord struct {
	Id          ID
	WeightKg    *float64
	HeightCm    *float64
	AgeInMonths int
	Date        time.Time
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Fingerprint returns a content-based ID for import deduplication.
func (r *GrowthRecord) Fingerprint() ID {
	weight, height := "-", "-"
	if r.WeightKg != nil {
		weight = fmt.Sprintf("%.3f", *r.WeightKg)
	}
	if r.HeightCm != nil {
		height = fmt.Sprintf("%.1f", *r.HeightCm)
	}
	return IDFromContent(fmt.Sprintf("growth|%s|%s|%d|%s", weight, height, r.AgeInMonths, r.Date.UTC().Format(time.RFC3339)))
}

// Profile holds the user preferences that personalize messages and reminders.
// LastPeriod and DueDate are zero when not yet set.
type Profile struct {
	Name          string
	BabyName      string
	CompanionName string
	LastPeriod    time.Time
	DueDate       time.Time
	UpdatedAt     time.Time
}

// HasDueDate reports whether a due date has been set. The zero instant
// survives serialization with a different internal representation, so the
// check compares instants instead of calling IsZero.
func (p *Profile) HasDueDate() bool {
	return !p.DueDate.Equal(time.Time{})
}

// HasLastPeriod reports whether the last menstrual period date has been set.
func (p *Profile) HasLastPeriod() bool {
	return !p.LastPeriod.Equal(time.Time{})
}
