package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/materna/core"
)

func journalAt(id core.ID, title, content string, mood core.Mood, when time.Time) core.JournalEntry {
	return core.JournalEntry{Id: id, Title: title, Content: content, Mood: mood, CreatedAt: when}
}

func TestSearch_EmptyEverything(t *testing.T) {
	engine := NewEngine()

	response := engine.Search("", Collections{})

	assert.Empty(t, response.Results)
	assert.Zero(t, response.TotalMatches)
	assert.Contains(t, response.Message, "Não encontrei resultados")
}

func TestSearch_JournalContentMatch(t *testing.T) {
	engine := NewEngine()
	cols := Collections{
		Journal: []core.JournalEntry{
			journalAt(1, "", "Hoje chorei muito", core.MoodSad, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)),
		},
	}

	response := engine.Search("chorei", cols)

	require.Len(t, response.Results, 1)
	result := response.Results[0]
	assert.Equal(t, FamilyJournal, result.Family)
	assert.Equal(t, "diário", result.Family.Label())
	assert.Contains(t, result.Summary, core.MoodSad.Emoji())
	assert.Contains(t, result.Summary, "Hoje chorei muito")
}

func TestSearch_GrowthKeywordGate(t *testing.T) {
	engine := NewEngine()
	weight := 5.2
	cols := Collections{
		Growth: []core.GrowthRecord{
			{Id: 1, WeightKg: &weight, AgeInMonths: 3, Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	response := engine.Search("peso", cols)

	require.Len(t, response.Results, 1)
	assert.Contains(t, response.Results[0].Summary, "5.2")
	assert.NotContains(t, response.Results[0].Summary, "Altura")

	// Without the trigger keyword the growth family stays out of scope.
	response = engine.Search("qualquer coisa", cols)
	assert.Empty(t, response.Results)
}

func TestSearch_MedicalGatedJournalBroadened(t *testing.T) {
	engine := NewEngine()
	cols := Collections{
		Journal: []core.JournalEntry{
			journalAt(1, "Um dia bom", "Passeio no parque", core.MoodHappy, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		},
		Medical: []core.MedicalRecord{
			{Id: 2, Title: "Passeio pós-consulta", Type: core.MedicalAppointment, Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		},
	}

	// "passeio" is no trigger keyword for medical, so only the broadened
	// journal family is searched even though the medical title matches.
	response := engine.Search("passeio", cols)
	require.Len(t, response.Results, 1)
	assert.Equal(t, FamilyJournal, response.Results[0].Family)

	// "consulta" gates medical in.
	response = engine.Search("consulta", cols)
	require.Len(t, response.Results, 1)
	assert.Equal(t, FamilyMedical, response.Results[0].Family)
}

func TestSearch_TitleSubstringOfQuery(t *testing.T) {
	engine := NewEngine()
	cols := Collections{
		Documents: []core.Document{
			{Id: 1, Title: "Certidão de nascimento", Type: core.DocumentCertificate,
				CreatedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		},
	}

	response := engine.Search("onde guardei a certidão de nascimento da Alice", cols)

	require.Len(t, response.Results, 1)
	assert.Equal(t, FamilyDocuments, response.Results[0].Family)
}

func TestSearch_CapAndTruncation(t *testing.T) {
	engine := NewEngine()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var cols Collections
	for i := range 8 {
		cols.Journal = append(cols.Journal, journalAt(core.ID(i+1), "Nota", "dia a dia",
			core.MoodCalm, base.AddDate(0, 0, i)))
	}
	for i := range 9 {
		cols.Documents = append(cols.Documents, core.Document{
			Id: core.ID(100 + i), Title: "Exame de sangue", Type: core.DocumentExamResult,
			CreatedAt: base.AddDate(0, 1, i),
		})
	}

	response := engine.Search("", cols)

	// Journal contributes at most 5, documents all 9; merged list tops
	// out at 10 while the total reflects every match.
	assert.Len(t, response.Results, 10)
	assert.Equal(t, 14, response.TotalMatches)
	assert.Contains(t, response.Message, "14")
	assert.Contains(t, response.Message, "10 mais recentes")

	journalHits := 0
	for _, result := range response.Results {
		if result.Family == FamilyJournal {
			journalHits++
		}
	}
	assert.LessOrEqual(t, journalHits, maxJournalMatches)
}

func TestSearch_SortedByRecency(t *testing.T) {
	engine := NewEngine()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := Collections{
		Journal: []core.JournalEntry{
			journalAt(1, "Antiga", "texto", core.MoodCalm, base),
			journalAt(2, "Recente", "texto", core.MoodCalm, base.AddDate(0, 0, 10)),
			journalAt(3, "Meio", "texto", core.MoodCalm, base.AddDate(0, 0, 5)),
		},
	}

	response := engine.Search("texto", cols)

	require.Len(t, response.Results, 3)
	for i := 1; i < len(response.Results); i++ {
		assert.False(t, response.Results[i].When.After(response.Results[i-1].When))
	}
}

func TestSearch_Idempotent(t *testing.T) {
	engine := NewEngine()
	cols := Collections{
		Journal: []core.JournalEntry{
			journalAt(1, "Nota", "mesmo instante", core.MoodCalm, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
			journalAt(2, "Outra", "mesmo instante", core.MoodCalm, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		},
	}

	first := engine.Search("instante", cols)
	second := engine.Search("instante", cols)

	assert.Equal(t, first, second)
}

type recordingMonitor struct {
	query    string
	matched  int
	returned int
	calls    int
}

func (m *recordingMonitor) SearchCompleted(query string, matched, returned int) {
	m.query = query
	m.matched = matched
	m.returned = returned
	m.calls++
}

func TestSearch_MonitorNotified(t *testing.T) {
	monitor := &recordingMonitor{}
	engine := NewEngine(WithMonitor(monitor))
	cols := Collections{
		Journal: []core.JournalEntry{
			journalAt(1, "Nota", "conteúdo", core.MoodCalm, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		},
	}

	engine.Search("  Conteúdo  ", cols)

	assert.Equal(t, 1, monitor.calls)
	assert.Equal(t, "conteúdo", monitor.query)
	assert.Equal(t, 1, monitor.matched)
	assert.Equal(t, 1, monitor.returned)
}
