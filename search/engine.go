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

package search

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/poiesic/materna/core"
)

const (
	maxResults        = 10
	maxJournalMatches = 5
)

// Collections carries the record slices a single search runs over. Nil
// slices are valid and treated as empty.
type Collections struct {
	Journal    []core.JournalEntry
	Documents  []core.Document
	Medical    []core.MedicalRecord
	Milestones []core.MilestoneRecord
	Growth     []core.GrowthRecord
}

// Result is one search hit projected into display form.
type Result struct {
	Family   Family
	Title    string
	Summary  string
	When     time.Time
	SourceId core.ID
}

// Response bundles the result list with a user-facing message.
type Response struct {
	Message string
	Results []Result
	// TotalMatches counts matches before truncation to maxResults.
	TotalMatches int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger.With("component", "search-engine")
	}
}

// WithMonitor sets the activity monitor.
func WithMonitor(monitor Monitor) Option {
	return func(e *Engine) {
		e.monitor = monitor
	}
}

// Engine routes free-text queries to the record families they likely
// target and returns a bounded, recency-sorted result list. Engines are
// stateless and safe for concurrent use.
type Engine struct {
	logger  *slog.Logger
	monitor Monitor
}

// NewEngine creates a search engine.
func NewEngine(options ...Option) *Engine {
	e := &Engine{
		logger:  slog.Default().With("component", "search-engine"),
		monitor: noopMonitor{},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Search matches the query against every in-scope family and merges the
// hits. A family is in scope when the query contains one of its trigger
// keywords. Journal and documents are additionally searched whenever
// their collections are non-empty, so vague queries still surface the
// two most personal families. Medical, milestone and growth records
// stay strictly keyword-gated.
func (e *Engine) Search(query string, cols Collections) Response {
	q := normalize(query)

	var results []Result
	if len(cols.Journal) > 0 || FamilyJournal.triggered(q) {
		results = append(results, e.searchJournal(q, cols.Journal)...)
	}
	if len(cols.Documents) > 0 || FamilyDocuments.triggered(q) {
		results = append(results, e.searchDocuments(q, cols.Documents)...)
	}
	if FamilyMedical.triggered(q) {
		results = append(results, e.searchMedical(q, cols.Medical)...)
	}
	if FamilyMilestones.triggered(q) {
		results = append(results, e.searchMilestones(q, cols.Milestones)...)
	}
	if FamilyGrowth.triggered(q) {
		results = append(results, e.searchGrowth(q, cols.Growth)...)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].When.After(results[j].When)
	})

	total := len(results)
	if total > maxResults {
		results = results[:maxResults]
	}

	e.logger.Debug("search completed", "query", q, "matched", total, "returned", len(results))
	e.monitor.SearchCompleted(q, total, len(results))

	return Response{
		Message:      resultMessage(query, total, len(results)),
		Results:      results,
		TotalMatches: total,
	}
}

func resultMessage(query string, total, returned int) string {
	if total == 0 {
		return fmt.Sprintf("Não encontrei resultados para %q. Tente buscar com outras palavras. 🔍", query)
	}
	if total == 1 {
		return "Encontrei 1 resultado. ✨"
	}
	if total > returned {
		return fmt.Sprintf("Encontrei %d resultados. Mostrando os %d mais recentes. ✨", total, returned)
	}
	return fmt.Sprintf("Encontrei %d resultados. ✨", total)
}

func (e *Engine) searchJournal(q string, entries []core.JournalEntry) []Result {
	var matched []core.JournalEntry
	for _, entry := range entries {
		if matchesTitle(q, entry.Title) ||
			matchesField(q, entry.Content) ||
			matchesField(q, entry.Mood.Label()) {
			matched = append(matched, entry)
		}
	}

	// Cap journal hits to the most recent few so one prolific family
	// cannot crowd out the merged list.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if len(matched) > maxJournalMatches {
		matched = matched[:maxJournalMatches]
	}

	results := make([]Result, 0, len(matched))
	for _, entry := range matched {
		title := entry.Title
		if title == "" {
			title = "Registro do diário"
		}
		results = append(results, Result{
			Family:   FamilyJournal,
			Title:    FamilyJournal.Emoji() + " " + title,
			Summary:  entry.Mood.Emoji() + " " + truncate(entry.Content),
			When:     entry.CreatedAt,
			SourceId: entry.Id,
		})
	}
	return results
}

func (e *Engine) searchDocuments(q string, documents []core.Document) []Result {
	var results []Result
	for _, document := range documents {
		if !matchesTitle(q, document.Title) &&
			!matchesField(q, document.Description) &&
			!matchesField(q, document.Tags) &&
			!matchesField(q, document.Notes) &&
			!matchesField(q, document.Type.Label()) {
			continue
		}
		summary := document.Type.Label()
		if document.Notes != "" {
			summary += " · " + truncate(document.Notes)
		}
		results = append(results, Result{
			Family:   FamilyDocuments,
			Title:    FamilyDocuments.Emoji() + " " + document.Title,
			Summary:  summary,
			When:     document.CreatedAt,
			SourceId: document.Id,
		})
	}
	return results
}

func (e *Engine) searchMedical(q string, records []core.MedicalRecord) []Result {
	var results []Result
	for _, record := range records {
		if !matchesTitle(q, record.Title) &&
			!matchesField(q, record.Description) &&
			!matchesField(q, record.Type.Label()) {
			continue
		}
		results = append(results, Result{
			Family:   FamilyMedical,
			Title:    FamilyMedical.Emoji() + " " + record.Title,
			Summary:  record.Type.Label() + " · " + truncate(record.Description),
			When:     record.Date,
			SourceId: record.Id,
		})
	}
	return results
}

func (e *Engine) searchMilestones(q string, records []core.MilestoneRecord) []Result {
	var results []Result
	for _, record := range records {
		if !matchesTitle(q, record.Title) &&
			!matchesField(q, record.Description) &&
			!matchesField(q, record.Type.Label()) {
			continue
		}
		results = append(results, Result{
			Family:   FamilyMilestones,
			Title:    FamilyMilestones.Emoji() + " " + record.Title,
			Summary:  record.Type.Label() + " · " + truncate(record.Description),
			When:     record.Date,
			SourceId: record.Id,
		})
	}
	return results
}

func (e *Engine) searchGrowth(q string, records []core.GrowthRecord) []Result {
	// Growth records carry no free text to filter on. The keyword gate
	// already decided the query is about growth, so every record is a hit.
	results := make([]Result, 0, len(records))
	for _, record := range records {
		title := fmt.Sprintf("Medição aos %d meses", record.AgeInMonths)
		results = append(results, Result{
			Family:   FamilyGrowth,
			Title:    FamilyGrowth.Emoji() + " " + title,
			Summary:  growthSummary(&record),
			When:     record.Date,
			SourceId: record.Id,
		})
	}
	return results
}

// growthSummary synthesizes a summary from whichever measurements are
// present. Absent values are simply omitted.
func growthSummary(record *core.GrowthRecord) string {
	var parts []string
	if record.WeightKg != nil {
		parts = append(parts, fmt.Sprintf("Peso: %.1f kg", *record.WeightKg))
	}
	if record.HeightCm != nil {
		parts = append(parts, fmt.Sprintf("Altura: %.1f cm", *record.HeightCm))
	}
	if len(parts) == 0 {
		return "Sem medições registradas"
	}
	summary := parts[0]
	for _, part := range parts[1:] {
		summary += " · " + part
	}
	return summary
}
