package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/materna/companion"
	"github.com/poiesic/materna/core"
	"github.com/poiesic/materna/storage/badger"
)

func testRules(t *testing.T) (*Rules, *badger.Repositories) {
	t.Helper()

	repos, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		repos.Close()
		backend.Close()
	})

	rules := NewRules(Sources{
		Profile: repos.Profile,
		Medical: repos.Medical,
		Journal: repos.Journal,
	}, companion.NewSelector())

	return rules, repos
}

func TestPending_EmptyDatabase(t *testing.T) {
	rules, _ := testRules(t)

	notifications, err := rules.Pending(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestWeeklyMessage(t *testing.T) {
	rules, repos := testRules(t)
	ctx := context.Background()

	now := time.Date(2026, 7, 14, 10, 0, 0, 0, time.UTC)
	due := time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC) // week 25

	require.NoError(t, repos.Profile.SaveProfile(ctx, &core.Profile{Name: "Ana", DueDate: due}))

	notifications, err := rules.Pending(ctx, now)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Title, "25")

	// Same week fires with the same deterministic ID.
	again, err := rules.Pending(ctx, now.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, notifications[0].ID, again[0].ID)

	// Past the due date the weekly message stops.
	late, err := rules.Pending(ctx, due.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Empty(t, late)
}

func TestAppointmentReminder(t *testing.T) {
	rules, repos := testRules(t)
	ctx := context.Background()

	appointment := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	_, err := repos.Medical.Add(ctx, &core.MedicalRecord{
		Title: "Consulta pré-natal",
		Type:  core.MedicalAppointment,
		Date:  appointment,
	})
	require.NoError(t, err)
	_, err = repos.Medical.Add(ctx, &core.MedicalRecord{
		Title: "Ultrassom morfológico",
		Type:  core.MedicalUltrasound,
		Date:  appointment,
	})
	require.NoError(t, err)

	// Two days ahead: nothing yet.
	notifications, err := rules.Pending(ctx, appointment.AddDate(0, 0, -2))
	require.NoError(t, err)
	assert.Empty(t, notifications)

	// Within the one-day window only the appointment fires.
	notifications, err = rules.Pending(ctx, appointment.Add(-20*time.Hour))
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Body, "Consulta pré-natal")

	// After the appointment it stops.
	notifications, err = rules.Pending(ctx, appointment.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestJournalNudge(t *testing.T) {
	rules, repos := testRules(t)
	ctx := context.Background()

	wrote := time.Date(2026, 5, 1, 21, 0, 0, 0, time.UTC)
	_, err := repos.Journal.Add(ctx, &core.JournalEntry{
		Content: "hoje foi um bom dia", Mood: core.MoodHappy, CreatedAt: wrote,
	})
	require.NoError(t, err)

	// One day idle: no nudge.
	notifications, err := rules.Pending(ctx, wrote.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, notifications)

	// Four days idle: nudge.
	notifications, err = rules.Pending(ctx, wrote.AddDate(0, 0, 4))
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Title, "diário")
}

func TestScheduler_DedupesDeliveries(t *testing.T) {
	rules, repos := testRules(t)
	ctx := context.Background()

	wrote := time.Date(2026, 5, 1, 21, 0, 0, 0, time.UTC)
	_, err := repos.Journal.Add(ctx, &core.JournalEntry{
		Content: "registro", Mood: core.MoodCalm, CreatedAt: wrote,
	})
	require.NoError(t, err)

	var delivered []Notification
	scheduler := NewScheduler(rules, func(n Notification) {
		delivered = append(delivered, n)
	})

	now := wrote.AddDate(0, 0, 5)
	require.NoError(t, scheduler.Evaluate(ctx, now))
	require.NoError(t, scheduler.Evaluate(ctx, now.Add(time.Hour)))

	assert.Len(t, delivered, 1)
}
