package core

import (
	"testing"
	"time"
)

func TestJournalEntryMUS_RoundTrip(t *testing.T) {
	entry := JournalEntry{
		Id:         42,
		Title:      "Primeiro chute",
		Content:    "Senti o bebê mexer pela primeira vez hoje à noite",
		Mood:       MoodLoving,
		CreatedAt:  time.Date(2026, 2, 14, 22, 15, 0, 0, time.UTC),
		InsertedAt: time.Date(2026, 2, 14, 22, 15, 1, 0, time.UTC),
		UpdatedAt:  time.Date(2026, 2, 14, 22, 15, 1, 0, time.UTC),
	}

	bs := make([]byte, JournalEntryMUS.Size(entry))
	n := JournalEntryMUS.Marshal(entry, bs)
	if n != len(bs) {
		t.Fatalf("Marshal wrote %d bytes, Size reported %d", n, len(bs))
	}

	decoded, n, err := JournalEntryMUS.Unmarshal(bs)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if n != len(bs) {
		t.Fatalf("Unmarshal consumed %d bytes, want %d", n, len(bs))
	}

	if decoded.Id != entry.Id || decoded.Title != entry.Title ||
		decoded.Content != entry.Content || decoded.Mood != entry.Mood {
		t.Fatalf("Round trip mismatch: %+v", decoded)
	}
	if !decoded.CreatedAt.Equal(entry.CreatedAt) {
		t.Fatalf("CreatedAt mismatch: %v vs %v", decoded.CreatedAt, entry.CreatedAt)
	}
}

func TestGrowthRecordMUS_OptionalFields(t *testing.T) {
	weight := 5.2
	record := GrowthRecord{
		Id:          7,
		WeightKg:    &weight,
		HeightCm:    nil,
		AgeInMonths: 3,
		Date:        time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	bs := make([]byte, GrowthRecordMUS.Size(record))
	GrowthRecordMUS.Marshal(record, bs)

	decoded, _, err := GrowthRecordMUS.Unmarshal(bs)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.WeightKg == nil || *decoded.WeightKg != weight {
		t.Fatalf("Weight not preserved: %v", decoded.WeightKg)
	}
	if decoded.HeightCm != nil {
		t.Fatalf("Absent height came back as %v", *decoded.HeightCm)
	}
	if decoded.AgeInMonths != 3 {
		t.Fatalf("AgeInMonths = %d, want 3", decoded.AgeInMonths)
	}
}

func TestDocumentMUS_RoundTrip(t *testing.T) {
	doc := Document{
		Id:          3,
		Title:       "Ultrassom morfológico",
		Description: "Exame da semana 22",
		Tags:        "ultrassom, exame",
		Notes:       "Tudo dentro do esperado",
		Type:        DocumentExamResult,
		CreatedAt:   time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	}

	bs := make([]byte, DocumentMUS.Size(doc))
	n := DocumentMUS.Marshal(doc, bs)
	if n != len(bs) {
		t.Fatalf("Marshal wrote %d bytes, Size reported %d", n, len(bs))
	}

	decoded, n, err := DocumentMUS.Unmarshal(bs)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if n != len(bs) {
		t.Fatalf("Unmarshal consumed %d bytes, want %d", n, len(bs))
	}
	if decoded.Title != doc.Title || decoded.Tags != doc.Tags ||
		decoded.Notes != doc.Notes || decoded.Type != doc.Type {
		t.Fatalf("Round trip mismatch: %+v", decoded)
	}
}

func TestDocumentMUS_TruncatedInput(t *testing.T) {
	doc := Document{
		Id:    9,
		Title: "Cartão de vacinação",
		Type:  DocumentCertificate,
	}

	bs := make([]byte, DocumentMUS.Size(doc))
	DocumentMUS.Marshal(doc, bs)

	// Cut the buffer mid-field; every truncation point must surface an
	// error instead of a partial record.
	for cut := 1; cut < len(bs); cut++ {
		if _, _, err := DocumentMUS.Unmarshal(bs[:cut]); err == nil {
			t.Fatalf("Unmarshal accepted %d of %d bytes", cut, len(bs))
		}
	}
}

func TestMedicalRecordMUS_RoundTrip(t *testing.T) {
	record := MedicalRecord{
		Id:          11,
		Title:       "Consulta pré-natal",
		Description: "Pressão e peso verificados",
		Type:        MedicalAppointment,
		Date:        time.Date(2026, 4, 2, 14, 0, 0, 0, time.UTC),
	}

	bs := make([]byte, MedicalRecordMUS.Size(record))
	MedicalRecordMUS.Marshal(record, bs)

	decoded, _, err := MedicalRecordMUS.Unmarshal(bs)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Title != record.Title || decoded.Type != record.Type {
		t.Fatalf("Round trip mismatch: %+v", decoded)
	}
	if !decoded.Date.Equal(record.Date) {
		t.Fatalf("Date mismatch: %v vs %v", decoded.Date, record.Date)
	}
}

func TestMilestoneRecordMUS_RoundTrip(t *testing.T) {
	record := MilestoneRecord{
		Id:          13,
		Title:       "Primeiro sorriso",
		Description: "Sorriu durante o banho",
		Type:        MilestoneFirstSmile,
		Date:        time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC),
	}

	bs := make([]byte, MilestoneRecordMUS.Size(record))
	MilestoneRecordMUS.Marshal(record, bs)

	decoded, _, err := MilestoneRecordMUS.Unmarshal(bs)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Title != record.Title || decoded.Type != record.Type {
		t.Fatalf("Round trip mismatch: %+v", decoded)
	}
}

func TestProfileMUS_ZeroDates(t *testing.T) {
	profile := Profile{Name: "Mariana", CompanionName: "Lua"}

	bs := make([]byte, ProfileMUS.Size(profile))
	ProfileMUS.Marshal(profile, bs)

	decoded, _, err := ProfileMUS.Unmarshal(bs)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.HasDueDate() {
		t.Error("Unset due date should stay unset after round trip")
	}
	if decoded.HasLastPeriod() {
		t.Error("Unset last period should stay unset after round trip")
	}
	if decoded.Name != "Mariana" || decoded.CompanionName != "Lua" {
		t.Fatalf("Round trip mismatch: %+v", decoded)
	}
}
