package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/materna/core"
	"github.com/poiesic/materna/storage"
)

// ProfileStore implements storage.ProfileStore for BadgerDB.
// There is a single profile per database.
type ProfileStore struct {
	backend *Backend
}

var _ storage.ProfileStore = (*ProfileStore)(nil)

// NewProfileStore creates a new ProfileStore.
func NewProfileStore(backend *Backend) *ProfileStore {
	return &ProfileStore{backend: backend}
}

// SaveProfile stores the profile, replacing any previous value.
func (s *ProfileStore) SaveProfile(ctx context.Context, profile *core.Profile) error {
	profile.UpdatedAt = time.Now().UTC()
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(profileKey, storage.Marshal(core.ProfileMUS, profile)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetProfile retrieves the stored profile.
func (s *ProfileStore) GetProfile(ctx context.Context) (*core.Profile, error) {
	var result *core.Profile
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(profileKey)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			result, err = storage.Unmarshal(core.ProfileMUS, val)
			return err
		})
	}, false)
	return result, err
}

// Close is a no-op; the store holds no resources beyond the backend.
func (s *ProfileStore) Close() error {
	return nil
}
