package materna

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/materna/ai/mock"
	"github.com/poiesic/materna/core"
	"github.com/poiesic/materna/importer"
	"github.com/poiesic/materna/search"
)

func testApp(t *testing.T, opts ...AppOption) *App {
	t.Helper()

	app, err := NewApp("", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestApp_SearchOverStoredRecords(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := app.Repositories().Journal.Add(ctx, &core.JournalEntry{
		Content:   "Hoje chorei muito",
		Mood:      core.MoodSad,
		CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	response, err := app.Search(ctx, "chorei")
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	assert.Equal(t, search.FamilyJournal, response.Results[0].Family)
}

func TestApp_ReplyLocalByDefault(t *testing.T) {
	app := testApp(t)

	response := app.Reply(context.Background(), &core.JournalEntry{
		Content: "dia tranquilo", Mood: core.MoodCalm,
	})

	assert.False(t, response.Remote)
	assert.NotEmpty(t, response.Text)
}

func TestApp_ReplyWithInjectedResponder(t *testing.T) {
	responder := mock.NewMockResponder()
	responder.ReplyFunc = func(context.Context, string, string, int) (string, error) {
		return "Estou aqui com você.", nil
	}
	app := testApp(t, WithResponder(responder))

	response := app.Reply(context.Background(), &core.JournalEntry{
		Content: "medo do parto", Mood: core.MoodAnxious,
	})

	assert.True(t, response.Remote)
	assert.Equal(t, "Estou aqui com você.", response.Text)
}

func TestApp_ImporterRoundTrip(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	imp, err := app.NewImporter()
	require.NoError(t, err)
	defer imp.Release()

	// Importing twice only stores once.
	for range 2 {
		_, err = imp.Import(ctx, &importer.Snapshot{
			Journal: []importer.JournalSnapshot{{
				Content: "primeiro registro", Mood: "hopeful",
				CreatedAt: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
			}},
		})
		require.NoError(t, err)
	}

	entries, err := app.Repositories().Journal.All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
