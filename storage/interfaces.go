package storage

import (
	"context"

	"github.com/poiesic/materna/core"
)

// RecordRepository is the common shape of every per-family repository.
// Implementations must be thread-safe and support concurrent access.
type RecordRepository[T any] interface {
	// Add adds one or more records to storage.
	// Records get new IDs from the family sequence and InsertedAt/UpdatedAt
	// timestamps. Returns the records with IDs and timestamps populated.
	Add(ctx context.Context, records ...*T) ([]*T, error)

	// Update updates existing records and refreshes UpdatedAt.
	// Returns ErrNotFound if any record doesn't exist.
	Update(ctx context.Context, records ...*T) ([]*T, error)

	// Delete removes records by their IDs, including index entries.
	// Returns ErrNotFound if any record doesn't exist.
	Delete(ctx context.Context, ids ...core.ID) error

	// Get retrieves a single record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, id core.ID) (*T, error)

	// All retrieves every record in the family, ordered by record timestamp
	// ascending.
	All(ctx context.Context) ([]*T, error)

	// Recent retrieves up to limit records ordered by record timestamp
	// descending, most recent first.
	Recent(ctx context.Context, limit int) ([]*T, error)

	// Close releases resources held by the repository.
	Close() error
}

// Per-family repository aliases. The five families share one access shape;
// the element type is the contract.
type (
	JournalRepository   = RecordRepository[core.JournalEntry]
	DocumentRepository  = RecordRepository[core.Document]
	MedicalRepository   = RecordRepository[core.MedicalRecord]
	MilestoneRepository = RecordRepository[core.MilestoneRecord]
	GrowthRepository    = RecordRepository[core.GrowthRecord]
)

// ProfileStore persists the single user profile.
type ProfileStore interface {
	// SaveProfile stores the profile, replacing any previous value and
	// refreshing UpdatedAt.
	SaveProfile(ctx context.Context, profile *core.Profile) error

	// GetProfile retrieves the stored profile.
	// Returns ErrNotFound if no profile has been saved yet.
	GetProfile(ctx context.Context) (*core.Profile, error)

	// Close releases resources held by the store.
	Close() error
}
