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
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/materna/core"
	"github.com/poiesic/materna/storage"
)

// Repositories bundles the five family repositories an import writes to.
type Repositories struct {
	Journal    storage.JournalRepository
	Documents  storage.DocumentRepository
	Medical    storage.MedicalRepository
	Milestones storage.MilestoneRepository
	Growth     storage.GrowthRepository
}

// Report summarizes one import run.
type Report struct {
	Imported int
	Skipped  int
}

func (r *Report) merge(other Report) {
	r.Imported += other.Imported
	r.Skipped += other.Skipped
}

// Option configures an Importer.
type Option func(*Importer) error

// WithPoolSize sets the worker pool size. Default is one worker per
// record family.
func WithPoolSize(size int) Option {
	return func(i *Importer) error {
		if size < 1 {
			size = 1
		}
		if i.pool != nil {
			i.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		i.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		i.logger = logger.With("component", "importer")
		return nil
	}
}

// Importer restores records from a snapshot. Each family imports on its
// own worker so large backups load in parallel, and records already
// present (matched by content fingerprint) are skipped, which makes
// re-importing the same snapshot idempotent.
type Importer struct {
	repos  Repositories
	pool   *ants.Pool
	logger *slog.Logger
}

// NewImporter creates an importer writing to the given repositories.
func NewImporter(repos Repositories, opts ...Option) (*Importer, error) {
	if repos.Journal == nil || repos.Documents == nil || repos.Medical == nil ||
		repos.Milestones == nil || repos.Growth == nil {
		return nil, ErrRepositoriesRequired
	}

	pool, err := ants.NewPool(5)
	if err != nil {
		return nil, err
	}

	i := &Importer{
		repos:  repos,
		pool:   pool,
		logger: slog.Default().With("component", "importer"),
	}
	for _, opt := range opts {
		if optErr := opt(i); optErr != nil {
			i.Release()
			return nil, optErr
		}
	}
	return i, nil
}

// Import loads every record in the snapshot, skipping records whose
// fingerprint already exists in storage. The first error from any
// family aborts the report but lets sibling families finish their
// current batch.
func (i *Importer) Import(ctx context.Context, snapshot *Snapshot) (Report, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		report   Report
		firstErr error
	)

	collect := func(r Report, err error) {
		mu.Lock()
		defer mu.Unlock()
		report.merge(r)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	tasks := []func() (Report, error){
		func() (Report, error) {
			return importFamily(ctx, i.repos.Journal, snapshot.Journal,
				func(s *JournalSnapshot) (*core.JournalEntry, error) { return s.toCore() },
				(*core.JournalEntry).Fingerprint)
		},
		func() (Report, error) {
			return importFamily(ctx, i.repos.Documents, snapshot.Documents,
				func(s *DocumentSnapshot) (*core.Document, error) { return s.toCore() },
				(*core.Document).Fingerprint)
		},
		func() (Report, error) {
			return importFamily(ctx, i.repos.Medical, snapshot.Medical,
				func(s *MedicalSnapshot) (*core.MedicalRecord, error) { return s.toCore() },
				(*core.MedicalRecord).Fingerprint)
		},
		func() (Report, error) {
			return importFamily(ctx, i.repos.Milestones, snapshot.Milestones,
				func(s *MilestoneSnapshot) (*core.MilestoneRecord, error) { return s.toCore() },
				(*core.MilestoneRecord).Fingerprint)
		},
		func() (Report, error) {
			return importFamily(ctx, i.repos.Growth, snapshot.Growth,
				func(s *GrowthSnapshot) (*core.GrowthRecord, error) { return s.toCore() },
				(*core.GrowthRecord).Fingerprint)
		},
	}

	for _, task := range tasks {
		wg.Add(1)
		task := task
		if err := i.pool.Submit(func() {
			defer wg.Done()
			collect(task())
		}); err != nil {
			wg.Done()
			collect(Report{}, err)
		}
	}
	wg.Wait()

	if firstErr != nil {
		i.logger.Error("import finished with errors", "imported", report.Imported,
			"skipped", report.Skipped, "err", firstErr)
		return report, firstErr
	}
	i.logger.Info("import finished", "imported", report.Imported, "skipped", report.Skipped)
	return report, nil
}

// importFamily converts and stores one family's snapshot records,
// skipping fingerprints already present.
func importFamily[S any, T any](
	ctx context.Context,
	repo storage.RecordRepository[T],
	snapshots []S,
	convert func(*S) (*T, error),
	fingerprint func(*T) core.ID,
) (Report, error) {
	var report Report
	if len(snapshots) == 0 {
		return report, nil
	}

	existing, err := repo.All(ctx)
	if err != nil {
		return report, err
	}
	seen := make(map[core.ID]struct{}, len(existing))
	for _, record := range existing {
		seen[fingerprint(record)] = struct{}{}
	}

	for idx := range snapshots {
		record, err := convert(&snapshots[idx])
		if err != nil {
			return report, err
		}
		fp := fingerprint(record)
		if _, ok := seen[fp]; ok {
			report.Skipped++
			continue
		}
		if _, err := repo.Add(ctx, record); err != nil {
			return report, err
		}
		seen[fp] = struct{}{}
		report.Imported++
	}
	return report, nil
}

// Release releases the worker pool. The importer should not be used
// after calling Release.
func (i *Importer) Release() {
	if i.pool != nil {
		i.pool.Release()
	}
}
