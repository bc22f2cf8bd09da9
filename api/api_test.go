package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/materna"
	"github.com/poiesic/materna/core"
)

func testServer(t *testing.T) (*httptest.Server, *materna.App) {
	t.Helper()

	app, err := materna.NewApp("")
	require.NoError(t, err)
	server := httptest.NewServer(NewRouter(app))
	t.Cleanup(func() {
		server.Close()
		app.Close()
	})
	return server, app
}

func getJSON(t *testing.T, url string, status int, out any) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, status, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealth(t *testing.T) {
	server, _ := testServer(t)

	var payload map[string]string
	getJSON(t, server.URL+"/api/healthz", http.StatusOK, &payload)
	assert.Equal(t, "ok", payload["status"])
}

func TestAddAndSearchJournal(t *testing.T) {
	server, _ := testServer(t)

	body := `{"content": "Hoje chorei muito", "mood": "sad"}`
	resp, err := http.Post(server.URL+"/api/journal", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created addJournalResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotZero(t, created.Entry.ID)
	assert.NotEmpty(t, created.Reply.Text)
	assert.False(t, created.Reply.Remote)

	var found searchResponse
	getJSON(t, server.URL+"/api/search?q=chorei", http.StatusOK, &found)
	require.Len(t, found.Results, 1)
	assert.Equal(t, "diário", found.Results[0].Family)
}

func TestAddJournal_UnknownMood(t *testing.T) {
	server, _ := testServer(t)

	body := `{"content": "texto", "mood": "ecstatic"}`
	resp, err := http.Post(server.URL+"/api/journal", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListJournal(t *testing.T) {
	server, app := testServer(t)

	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	for i := range 3 {
		_, err := app.Repositories().Journal.Add(t.Context(), &core.JournalEntry{
			Content: "registro", Mood: core.MoodCalm, CreatedAt: base.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	var entries []journalEntry
	getJSON(t, server.URL+"/api/journal?limit=2", http.StatusOK, &entries)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].CreatedAt.After(entries[1].CreatedAt))
}

func TestReplyEndpoint(t *testing.T) {
	server, _ := testServer(t)

	body := `{"content": "acordei ansiosa", "mood": "anxious"}`
	resp, err := http.Post(server.URL+"/api/companion/reply", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply replyPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
	assert.NotEmpty(t, reply.Text)
}

func TestDueDate(t *testing.T) {
	server, _ := testServer(t)

	var payload dueDateResponse
	getJSON(t, server.URL+"/api/duedate?method=lmp&date=2024-02-29", http.StatusOK, &payload)
	assert.Equal(t, "2024-12-07", payload.DueDate)

	resp, err := http.Get(server.URL + "/api/duedate?method=moon&date=2024-02-29")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileRoundTrip(t *testing.T) {
	server, _ := testServer(t)

	resp, err := http.Get(server.URL + "/api/profile")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := `{"name": "Ana", "baby_name": "Alice", "due_date": "2026-10-22T00:00:00Z"}`
	request, err := http.NewRequest(http.MethodPut, server.URL+"/api/profile", strings.NewReader(body))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	putResp, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	putResp.Body.Close()
	require.Equal(t, http.StatusOK, putResp.StatusCode)

	var profile profilePayload
	getJSON(t, server.URL+"/api/profile", http.StatusOK, &profile)
	assert.Equal(t, "Ana", profile.Name)
	require.NotNil(t, profile.DueDate)
	assert.Equal(t, 2026, profile.DueDate.Year())
	assert.Nil(t, profile.LastPeriod)
}
