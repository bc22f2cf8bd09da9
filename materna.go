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

package materna

import (
	"context"
	"log/slog"

	"github.com/poiesic/materna/ai"
	"github.com/poiesic/materna/ai/openai"
	"github.com/poiesic/materna/companion"
	"github.com/poiesic/materna/core"
	"github.com/poiesic/materna/importer"
	"github.com/poiesic/materna/search"
	"github.com/poiesic/materna/storage/badger"
)

// App wires the storage, search, and companion components of the
// maternity journal into one handle.
type App struct {
	backend  *badger.Backend
	repos    *badger.Repositories
	engine   *search.Engine
	selector *companion.Selector
	logger   *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	aiConfig  *ai.Config
	responder ai.Responder
}

// WithAIConfig enables the remote companion path with the given
// configuration. The remote path is only wired when the config carries
// an API key.
func WithAIConfig(config *ai.Config) AppOption {
	return func(o *appOptions) {
		o.aiConfig = config
	}
}

// WithResponder injects a responder directly, bypassing config. Used by
// tests and callers with their own client.
func WithResponder(responder ai.Responder) AppOption {
	return func(o *appOptions) {
		o.responder = responder
	}
}

// NewApp opens the database at filePath and assembles the application.
// An empty filePath opens an in-memory database, useful for tests.
func NewApp(filePath string, opts ...AppOption) (*App, error) {
	options := &appOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	repos, err := badger.NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	responder := options.responder
	if responder == nil && options.aiConfig.Enabled() {
		responder, err = openai.NewResponder(options.aiConfig)
		if err != nil {
			repos.Close()
			backend.Close()
			return nil, err
		}
	}

	selectorOptions := []companion.Option{}
	if responder != nil {
		selectorOptions = append(selectorOptions,
			companion.WithResponder(responder),
			companion.WithMaxTokens(options.aiConfig.MaxTokens),
		)
	}

	return &App{
		backend:  backend,
		repos:    repos,
		engine:   search.NewEngine(),
		selector: companion.NewSelector(selectorOptions...),
		logger:   slog.Default(),
	}, nil
}

// Close releases repositories and the underlying database.
func (a *App) Close() error {
	if err := a.repos.Close(); err != nil {
		a.logger.Error("error closing repositories", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Repositories exposes the per-family repositories and profile store.
func (a *App) Repositories() *badger.Repositories {
	return a.repos
}

// Selector exposes the companion response selector.
func (a *App) Selector() *companion.Selector {
	return a.selector
}

// Search loads every record family and runs the query through the
// search engine.
func (a *App) Search(ctx context.Context, query string) (search.Response, error) {
	cols, err := a.collections(ctx)
	if err != nil {
		return search.Response{}, err
	}
	return a.engine.Search(query, cols), nil
}

// Reply produces a supportive companion message for the journal entry.
func (a *App) Reply(ctx context.Context, entry *core.JournalEntry) companion.Response {
	return a.selector.Reply(ctx, entry)
}

// NewImporter creates a snapshot importer over the app's repositories.
func (a *App) NewImporter(opts ...importer.Option) (*importer.Importer, error) {
	return importer.NewImporter(importer.Repositories{
		Journal:    a.repos.Journal,
		Documents:  a.repos.Documents,
		Medical:    a.repos.Medical,
		Milestones: a.repos.Milestones,
		Growth:     a.repos.Growth,
	}, opts...)
}

func (a *App) collections(ctx context.Context) (search.Collections, error) {
	var cols search.Collections

	journal, err := a.repos.Journal.All(ctx)
	if err != nil {
		return cols, err
	}
	documents, err := a.repos.Documents.All(ctx)
	if err != nil {
		return cols, err
	}
	medical, err := a.repos.Medical.All(ctx)
	if err != nil {
		return cols, err
	}
	milestones, err := a.repos.Milestones.All(ctx)
	if err != nil {
		return cols, err
	}
	growth, err := a.repos.Growth.All(ctx)
	if err != nil {
		return cols, err
	}

	cols.Journal = deref(journal)
	cols.Documents = deref(documents)
	cols.Medical = deref(medical)
	cols.Milestones = deref(milestones)
	cols.Growth = deref(growth)
	return cols, nil
}

func deref[T any](records []*T) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		out = append(out, *record)
	}
	return out
}
