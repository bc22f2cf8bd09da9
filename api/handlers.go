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

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/poiesic/materna"
	"github.com/poiesic/materna/core"
	"github.com/poiesic/materna/gestation"
	"github.com/poiesic/materna/search"
	"github.com/poiesic/materna/storage"
)

type handlers struct {
	app *materna.App
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type searchResult struct {
	Family   string    `json:"family"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	When     time.Time `json:"when"`
	SourceID uint64    `json:"source_id"`
}

type searchResponse struct {
	Message      string         `json:"message"`
	Results      []searchResult `json:"results"`
	TotalMatches int            `json:"total_matches"`
}

func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	response, err := h.app.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "search failed")
		return
	}
	respondJSON(w, http.StatusOK, toSearchResponse(response))
}

func toSearchResponse(response search.Response) searchResponse {
	results := make([]searchResult, 0, len(response.Results))
	for _, result := range response.Results {
		results = append(results, searchResult{
			Family:   result.Family.Label(),
			Title:    result.Title,
			Summary:  result.Summary,
			When:     result.When,
			SourceID: uint64(result.SourceId),
		})
	}
	return searchResponse{
		Message:      response.Message,
		Results:      results,
		TotalMatches: response.TotalMatches,
	}
}

type journalEntry struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
}

type addJournalRequest struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Mood      string     `json:"mood"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type addJournalResponse struct {
	Entry journalEntry `json:"entry"`
	Reply replyPayload `json:"reply"`
}

type replyPayload struct {
	Text   string `json:"text"`
	Remote bool   `json:"remote"`
}

func toJournalEntry(entry *core.JournalEntry) journalEntry {
	return journalEntry{
		ID:        uint64(entry.Id),
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood.Code(),
		CreatedAt: entry.CreatedAt,
	}
}

// addJournal stores a journal entry and answers with the companion's
// supportive reply, so a client gets both in one round trip.
func (h *handlers) addJournal(w http.ResponseWriter, r *http.Request) {
	var request addJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mood, err := core.ParseMood(request.Mood)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unknown mood: "+request.Mood)
		return
	}

	createdAt := time.Now().UTC()
	if request.CreatedAt != nil {
		createdAt = *request.CreatedAt
	}
	entry := &core.JournalEntry{
		Title:     request.Title,
		Content:   request.Content,
		Mood:      mood,
		CreatedAt: createdAt,
	}
	if err := core.ValidateJournalEntry(entry); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	added, err := h.app.Repositories().Journal.Add(r.Context(), entry)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to store entry")
		return
	}

	reply := h.app.Reply(r.Context(), added[0])
	respondJSON(w, http.StatusCreated, addJournalResponse{
		Entry: toJournalEntry(added[0]),
		Reply: replyPayload{Text: reply.Text, Remote: reply.Remote},
	})
}

func (h *handlers) listJournal(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.app.Repositories().Journal.Recent(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list entries")
		return
	}

	payload := make([]journalEntry, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, toJournalEntry(entry))
	}
	respondJSON(w, http.StatusOK, payload)
}

type replyRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

func (h *handlers) reply(w http.ResponseWriter, r *http.Request) {
	var request replyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mood, err := core.ParseMood(request.Mood)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unknown mood: "+request.Mood)
		return
	}

	reply := h.app.Reply(r.Context(), &core.JournalEntry{Content: request.Content, Mood: mood})
	respondJSON(w, http.StatusOK, replyPayload{Text: reply.Text, Remote: reply.Remote})
}

var dueDateMethods = map[string]gestation.Method{
	"lmp":        gestation.MethodLastPeriod,
	"conception": gestation.MethodConception,
	"ultrasound": gestation.MethodUltrasound,
}

type dueDateResponse struct {
	DueDate       string `json:"due_date"`
	Week          int    `json:"week"`
	Day           int    `json:"day"`
	DaysRemaining int    `json:"days_remaining"`
}

func (h *handlers) dueDate(w http.ResponseWriter, r *http.Request) {
	method, ok := dueDateMethods[r.URL.Query().Get("method")]
	if !ok {
		respondError(w, http.StatusBadRequest, "method must be one of lmp, conception, ultrasound")
		return
	}
	reference, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	dueDate, err := gestation.DueDate(reference, method)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	progress := gestation.ProgressAt(dueDate, time.Now())

	respondJSON(w, http.StatusOK, dueDateResponse{
		DueDate:       dueDate.Format("2006-01-02"),
		Week:          progress.Week,
		Day:           progress.Day,
		DaysRemaining: progress.DaysRemaining,
	})
}

type profilePayload struct {
	Name          string     `json:"name"`
	BabyName      string     `json:"baby_name,omitempty"`
	CompanionName string     `json:"companion_name,omitempty"`
	LastPeriod    *time.Time `json:"last_period,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

func (h *handlers) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.app.Repositories().Profile.GetProfile(r.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "profile not set")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	payload := profilePayload{
		Name:          profile.Name,
		BabyName:      profile.BabyName,
		CompanionName: profile.CompanionName,
	}
	if profile.HasLastPeriod() {
		payload.LastPeriod = &profile.LastPeriod
	}
	if profile.HasDueDate() {
		payload.DueDate = &profile.DueDate
	}
	respondJSON(w, http.StatusOK, payload)
}

func (h *handlers) saveProfile(w http.ResponseWriter, r *http.Request) {
	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile := &core.Profile{
		Name:          payload.Name,
		BabyName:      payload.BabyName,
		CompanionName: payload.CompanionName,
	}
	if payload.LastPeriod != nil {
		profile.LastPeriod = *payload.LastPeriod
	}
	if payload.DueDate != nil {
		profile.DueDate = *payload.DueDate
	}

	if err := h.app.Repositories().Profile.SaveProfile(r.Context(), profile); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}
	respondJSON(w, http.StatusOK, payload)
}
