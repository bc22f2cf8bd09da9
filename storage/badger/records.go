package badger

import (
	"bytes"
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mus-format/mus-go"
	"github.com/poiesic/materna/core"
	"github.com/poiesic/materna/storage"
)

// recordHooks gives the generic store access to the fields it manages on a
// record family's element type.
type recordHooks[T any] struct {
	id    func(*T) core.ID
	setID func(*T, core.ID)
	// when returns the domain timestamp used for the date index
	// (CreatedAt for journal/documents, Date for the health families).
	when  func(*T) time.Time
	touch func(record *T, now time.Time, insert bool)
}

// recordStore carries the storage logic shared by all five record families.
// Family repositories are thin typed wrappers around it.
type recordStore[T any] struct {
	backend *Backend
	seq     *badger.Sequence
	keys    keySpace
	ser     mus.Serializer[T]
	hooks   recordHooks[T]
}

func newRecordStore[T any](backend *Backend, keys keySpace, ser mus.Serializer[T], hooks recordHooks[T]) (*recordStore[T], error) {
	seq, err := backend.GetSequence(keys.seq)
	if err != nil {
		return nil, err
	}
	return &recordStore[T]{
		backend: backend,
		seq:     seq,
		keys:    keys,
		ser:     ser,
		hooks:   hooks,
	}, nil
}

// Close releases the ID sequence.
func (s *recordStore[T]) Close() error {
	return s.seq.Release()
}

// Add adds one or more records to storage.
func (s *recordStore[T]) Add(ctx context.Context, records ...*T) ([]*T, error) {
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			nextID, err := s.seq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = s.seq.Next()
				if err != nil {
					return err
				}
			}
			s.hooks.setID(record, core.ID(nextID))
			s.hooks.touch(record, time.Now().UTC(), true)

			key := s.keys.makeRecordKey(s.hooks.id(record))
			if err := tx.Set(key, storage.Marshal(s.ser, record)); err != nil {
				return err
			}

			dateKey := s.keys.makeDateKey(s.hooks.when(record), s.hooks.id(record))
			if err := tx.Set(dateKey, storage.MarshalID(s.hooks.id(record))); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// Update updates existing records.
func (s *recordStore[T]) Update(ctx context.Context, records ...*T) ([]*T, error) {
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := s.keys.makeRecordKey(s.hooks.id(record))

			old, err := s.readRecord(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			s.hooks.touch(record, time.Now().UTC(), false)

			if err := tx.Set(key, storage.Marshal(s.ser, record)); err != nil {
				return err
			}

			// Move the date index entry if the domain timestamp changed
			oldWhen, newWhen := s.hooks.when(old), s.hooks.when(record)
			if !oldWhen.Equal(newWhen) {
				if err := tx.Delete(s.keys.makeDateKey(oldWhen, s.hooks.id(record))); err != nil {
					return err
				}
				if err := tx.Set(s.keys.makeDateKey(newWhen, s.hooks.id(record)), storage.MarshalID(s.hooks.id(record))); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// Delete removes records by their IDs.
func (s *recordStore[T]) Delete(ctx context.Context, ids ...core.ID) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := s.keys.makeRecordKey(id)

			record, err := s.readRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(s.keys.makeDateKey(s.hooks.when(record), id)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Get retrieves a single record by ID.
func (s *recordStore[T]) Get(ctx context.Context, id core.ID) (*T, error) {
	var result *T
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = s.readRecord(tx, s.keys.makeRecordKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// All retrieves every record, ordered by domain timestamp ascending.
func (s *recordStore[T]) All(ctx context.Context) ([]*T, error) {
	var results []*T
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = s.keys.datePrefix()

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(s.keys.datePrefix()); iter.Valid(); iter.Next() {
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			record, err := s.readRecord(tx, s.keys.makeRecordKey(recordID))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// Recent retrieves up to limit records, ordered by domain timestamp descending.
func (s *recordStore[T]) Recent(ctx context.Context, limit int) ([]*T, error) {
	var results []*T
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent records first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key with this family's date prefix
		startKey := s.keys.makePartialDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := s.keys.datePrefix()

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()
			if !bytes.HasPrefix(key, prefix) {
				break
			}

			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			record, err := s.readRecord(tx, s.keys.makeRecordKey(recordID))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// readRecord reads and deserializes a record by key.
// Returns nil without error if the key doesn't exist.
func (s *recordStore[T]) readRecord(tx *badger.Txn, key []byte) (*T, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *T
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.Unmarshal(s.ser, val)
		return err
	})
	return record, err
}
