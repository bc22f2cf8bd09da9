package badger

import (
	"time"

	"github.com/poiesic/materna/core"
	"github.com/poiesic/materna/storage"
)

// JournalRepository implements storage.JournalRepository for BadgerDB.
type JournalRepository struct {
	*recordStore[core.JournalEntry]
}

var _ storage.JournalRepository = (*JournalRepository)(nil)

// NewJournalRepository creates a new JournalRepository.
func NewJournalRepository(backend *Backend) (*JournalRepository, error) {
	store, err := newRecordStore(backend, journalKeys, core.JournalEntryMUS, recordHooks[core.JournalEntry]{
		id:    func(e *core.JournalEntry) core.ID { return e.Id },
		setID: func(e *core.JournalEntry, id core.ID) { e.Id = id },
		when:  func(e *core.JournalEntry) time.Time { return e.CreatedAt },
		touch: func(e *core.JournalEntry, now time.Time, insert bool) {
			if insert {
				e.InsertedAt = now
			}
			e.UpdatedAt = now
		},
	})
	if err != nil {
		return nil, err
	}
	return &JournalRepository{recordStore: store}, nil
}

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	*recordStore[core.Document]
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(backend *Backend) (*DocumentRepository, error) {
	store, err := newRecordStore(backend, documentKeys, core.DocumentMUS, recordHooks[core.Document]{
		id:    func(d *core.Document) core.ID { return d.Id },
		setID: func(d *core.Document, id core.ID) { d.Id = id },
		when:  func(d *core.Document) time.Time { return d.CreatedAt },
		touch: func(d *core.Document, now time.Time, insert bool) {
			if insert {
				d.InsertedAt = now
			}
			d.UpdatedAt = now
		},
	})
	if err != nil {
		return nil, err
	}
	return &DocumentRepository{recordStore: store}, nil
}

// MedicalRepository implements storage.MedicalRepository for BadgerDB.
type MedicalRepository struct {
	*recordStore[core.MedicalRecord]
}

var _ storage.MedicalRepository = (*MedicalRepository)(nil)

// NewMedicalRepository creates a new MedicalRepository.
func NewMedicalRepository(backend *Backend) (*MedicalRepository, error) {
	store, err := newRecordStore(backend, medicalKeys, core.MedicalRecordMUS, recordHooks[core.MedicalRecord]{
		id:    func(r *core.MedicalRecord) core.ID { return r.Id },
		setID: func(r *core.MedicalRecord, id core.ID) { r.Id = id },
		when:  func(r *core.MedicalRecord) time.Time { return r.Date },
		touch: func(r *core.MedicalRecord, now time.Time, insert bool) {
			if insert {
				r.InsertedAt = now
			}
			r.UpdatedAt = now
		},
	})
	if err != nil {
		return nil, err
	}
	return &MedicalRepository{recordStore: store}, nil
}

// MilestoneRepository implements storage.MilestoneRepository for BadgerDB.
type MilestoneRepository struct {
	*recordStore[core.MilestoneRecord]
}

var _ storage.MilestoneRepository = (*MilestoneRepository)(nil)

// NewMilestoneRepository creates a new MilestoneRepository.
func NewMilestoneRepository(backend *Backend) (*MilestoneRepository, error) {
	store, err := newRecordStore(backend, milestoneKeys, core.MilestoneRecordMUS, recordHooks[core.MilestoneRecord]{
		id:    func(r *core.MilestoneRecord) core.ID { return r.Id },
		setID: func(r *core.MilestoneRecord, id core.ID) { r.Id = id },
		when:  func(r *core.MilestoneRecord) time.Time { return r.Date },
		touch: func(r *core.MilestoneRecord, now time.Time, insert bool) {
			if insert {
				r.InsertedAt = now
			}
			r.UpdatedAt = now
		},
	})
	if err != nil {
		return nil, err
	}
	return &MilestoneRepository{recordStore: store}, nil
}

// GrowthRepository implements storage.GrowthRepository for BadgerDB.
type GrowthRepository struct {
	*recordStore[core.GrowthRecord]
}

var _ storage.GrowthRepository = (*GrowthRepository)(nil)

// NewGrowthRepository creates a new GrowthRepository.
func NewGrowthRepository(backend *Backend) (*GrowthRepository, error) {
	store, err := newRecordStore(backend, growthKeys, core.GrowthRecordMUS, recordHooks[core.GrowthRecord]{
		id:    func(r *core.GrowthRecord) core.ID { return r.Id },
		setID: func(r *core.GrowthRecord, id core.ID) { r.Id = id },
		when:  func(r *core.GrowthRecord) time.Time { return r.Date },
		touch: func(r *core.GrowthRecord, now time.Time, insert bool) {
			if insert {
				r.InsertedAt = now
			}
			r.UpdatedAt = now
		},
	})
	if err != nil {
		return nil, err
	}
	return &GrowthRepository{recordStore: store}, nil
}
