package core

// Hand-written MUS serializers for the persisted record types. The layout is
// field-ordered and versionless; changing a struct here requires a storage
// migration.

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Timestamps are stored with microsecond precision.
var timeMUS = raw.TimeUnixMicro

// IDMUS serializes an ID as an unsigned varint.
var IDMUS = idMUS{}

type idMUS struct{}

var _ mus.Serializer[ID] = IDMUS

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// optFloat64MUS serializes an optional measurement as a presence flag
// followed by the value.
type optFloat64MUS struct{}

var optFloat64 = optFloat64MUS{}

var _ mus.Serializer[*float64] = optFloat64

func (optFloat64MUS) Marshal(v *float64, bs []byte) (n int) {
	n = ord.Bool.Marshal(v != nil, bs)
	if v != nil {
		n += raw.Float64.Marshal(*v, bs[n:])
	}
	return n
}

func (optFloat64MUS) Unmarshal(bs []byte) (v *float64, n int, err error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return nil, n, err
	}
	var n1 int
	value, n1, err := raw.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return nil, n, err
	}
	return &value, n, nil
}

func (optFloat64MUS) Size(v *float64) (size int) {
	size = ord.Bool.Size(v != nil)
	if v != nil {
		size += raw.Float64.Size(*v)
	}
	return size
}

func (optFloat64MUS) Skip(bs []byte) (n int, err error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return n, err
	}
	n1, err := raw.Float64.Skip(bs[n:])
	return n + n1, err
}

// JournalEntryMUS serializes JournalEntry values.
var JournalEntryMUS = journalEntryMUS{}

type journalEntryMUS struct{}

var _ mus.Serializer[JournalEntry] = JournalEntryMUS

func (journalEntryMUS) Marshal(e JournalEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(e.Id, bs)
	n += ord.String.Marshal(e.Title, bs[n:])
	n += ord.String.Marshal(e.Content, bs[n:])
	n += varint.Int.Marshal(int(e.Mood), bs[n:])
	n += timeMUS.Marshal(e.CreatedAt, bs[n:])
	n += timeMUS.Marshal(e.InsertedAt, bs[n:])
	n += timeMUS.Marshal(e.UpdatedAt, bs[n:])
	return n
}

func (journalEntryMUS) Unmarshal(bs []byte) (e JournalEntry, n int, err error) {
	e.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	e.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var mood int
	mood, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.Mood = Mood(mood)
	e.CreatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (journalEntryMUS) Size(e JournalEntry) (size int) {
	size = IDMUS.Size(e.Id)
	size += ord.String.Size(e.Title)
	size += ord.String.Size(e.Content)
	size += varint.Int.Size(int(e.Mood))
	size += timeMUS.Size(e.CreatedAt)
	size += timeMUS.Size(e.InsertedAt)
	size += timeMUS.Size(e.UpdatedAt)
	return size
}

func (s journalEntryMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}

// DocumentMUS serializes Document values.
var DocumentMUS = documentMUS{}

type documentMUS struct{}

var _ mus.Serializer[Document] = DocumentMUS

func (documentMUS) Marshal(d Document, bs []byte) (n int) {
	n = IDMUS.Marshal(d.Id, bs)
	n += ord.String.Marshal(d.Title, bs[n:])
	n += ord.String.Marshal(d.Description, bs[n:])
	n += ord.String.Marshal(d.Tags, bs[n:])
	n += ord.String.Marshal(d.Notes, bs[n:])
	n += varint.Int.Marshal(int(d.Type), bs[n:])
	n += timeMUS.Marshal(d.CreatedAt, bs[n:])
	n += timeMUS.Marshal(d.InsertedAt, bs[n:])
	n += timeMUS.Marshal(d.UpdatedAt, bs[n:])
	return n
}

func (documentMUS) Unmarshal(bs []byte) (d Document, n int, err error) {
	d.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	d.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Tags, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Notes, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var docType int
	docType, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Type = DocumentType(docType)
	d.CreatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (documentMUS) Size(d Document) (size int) {
	size = IDMUS.Size(d.Id)
	size += ord.String.Size(d.Title)
	size += ord.String.Size(d.Description)
	size += ord.String.Size(d.Tags)
	size += ord.String.Size(d.Notes)
	size += varint.Int.Size(int(d.Type))
	size += timeMUS.Size(d.CreatedAt)
	size += timeMUS.Size(d.InsertedAt)
	size += timeMUS.Size(d.UpdatedAt)
	return size
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}

// MedicalRecordMUS serializes MedicalRecord values.
var MedicalRecordMUS = medicalRecordMUS{}

type medicalRecordMUS struct{}

var _ mus.Serializer[MedicalRecord] = MedicalRecordMUS

func (medicalRecordMUS) Marshal(r MedicalRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += ord.String.Marshal(r.Title, bs[n:])
	n += ord.String.Marshal(r.Description, bs[n:])
	n += varint.Int.Marshal(int(r.Type), bs[n:])
	n += timeMUS.Marshal(r.Date, bs[n:])
	n += timeMUS.Marshal(r.InsertedAt, bs[n:])
	n += timeMUS.Marshal(r.UpdatedAt, bs[n:])
	return n
}

func (medicalRecordMUS) Unmarshal(bs []byte) (r MedicalRecord, n int, err error) {
	r.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	r.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var recType int
	recType, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Type = MedicalRecordType(recType)
	r.Date, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (medicalRecordMUS) Size(r MedicalRecord) (size int) {
	size = IDMUS.Size(r.Id)
	size += ord.String.Size(r.Title)
	size += ord.String.Size(r.Description)
	size += varint.Int.Size(int(r.Type))
	size += timeMUS.Size(r.Date)
	size += timeMUS.Size(r.InsertedAt)
	size += timeMUS.Size(r.UpdatedAt)
	return size
}

func (s medicalRecordMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}

// MilestoneRecordMUS serializes MilestoneRecord values.
var MilestoneRecordMUS = milestoneRecordMUS{}

type milestoneRecordMUS struct{}

var _ mus.Serializer[MilestoneRecord] = MilestoneRecordMUS

func (milestoneRecordMUS) Marshal(r MilestoneRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += ord.String.Marshal(r.Title, bs[n:])
	n += ord.String.Marshal(r.Description, bs[n:])
	n += varint.Int.Marshal(int(r.Type), bs[n:])
	n += timeMUS.Marshal(r.Date, bs[n:])
	n += timeMUS.Marshal(r.InsertedAt, bs[n:])
	n += timeMUS.Marshal(r.UpdatedAt, bs[n:])
	return n
}

func (milestoneRecordMUS) Unmarshal(bs []byte) (r MilestoneRecord, n int, err error) {
	r.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	r.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var msType int
	msType, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Type = MilestoneType(msType)
	r.Date, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (milestoneRecordMUS) Size(r MilestoneRecord) (size int) {
	size = IDMUS.Size(r.Id)
	size += ord.String.Size(r.Title)
	size += ord.String.Size(r.Description)
	size += varint.Int.Size(int(r.Type))
	size += timeMUS.Size(r.Date)
	size += timeMUS.Size(r.InsertedAt)
	size += timeMUS.Size(r.UpdatedAt)
	return size
}

func (s milestoneRecordMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}

// GrowthRecordMUS serializes GrowthRecord values.
var GrowthRecordMUS = growthRecordMUS{}

type growthRecordMUS struct{}

var _ mus.Serializer[GrowthRecord] = GrowthRecordMUS

func (growthRecordMUS) Marshal(r GrowthRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += optFloat64.Marshal(r.WeightKg, bs[n:])
	n += optFloat64.Marshal(r.HeightCm, bs[n:])
	n += varint.Int.Marshal(r.AgeInMonths, bs[n:])
	n += timeMUS.Marshal(r.Date, bs[n:])
	n += timeMUS.Marshal(r.InsertedAt, bs[n:])
	n += timeMUS.Marshal(r.UpdatedAt, bs[n:])
	return n
}

func (growthRecordMUS) Unmarshal(bs []byte) (r GrowthRecord, n int, err error) {
	r.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	r.WeightKg, n1, err = optFloat64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.HeightCm, n1, err = optFloat64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.AgeInMonths, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Date, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (growthRecordMUS) Size(r GrowthRecord) (size int) {
	size = IDMUS.Size(r.Id)
	size += optFloat64.Size(r.WeightKg)
	size += optFloat64.Size(r.HeightCm)
	size += varint.Int.Size(r.AgeInMonths)
	size += timeMUS.Size(r.Date)
	size += timeMUS.Size(r.InsertedAt)
	size += timeMUS.Size(r.UpdatedAt)
	return size
}

func (s growthRecordMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}

// ProfileMUS serializes Profile values.
var ProfileMUS = profileMUS{}

type profileMUS struct{}

var _ mus.Serializer[Profile] = ProfileMUS

func (profileMUS) Marshal(p Profile, bs []byte) (n int) {
	n = ord.String.Marshal(p.Name, bs)
	n += ord.String.Marshal(p.BabyName, bs[n:])
	n += ord.String.Marshal(p.CompanionName, bs[n:])
	n += timeMUS.Marshal(p.LastPeriod, bs[n:])
	n += timeMUS.Marshal(p.DueDate, bs[n:])
	n += timeMUS.Marshal(p.UpdatedAt, bs[n:])
	return n
}

func (profileMUS) Unmarshal(bs []byte) (p Profile, n int, err error) {
	p.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	p.BabyName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.CompanionName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.LastPeriod, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.DueDate, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (profileMUS) Size(p Profile) (size int) {
	size = ord.String.Size(p.Name)
	size += ord.String.Size(p.BabyName)
	size += ord.String.Size(p.CompanionName)
	size += timeMUS.Size(p.LastPeriod)
	size += timeMUS.Size(p.DueDate)
	size += timeMUS.Size(p.UpdatedAt)
	return size
}

func (s profileMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}
