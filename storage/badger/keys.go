package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/materna/core"
)

// keySpace names the key prefixes of one record family.
type keySpace struct {
	record string // primary records, "<prefix>:<id>"
	date   string // date index, "<prefix>:<timestamp>:<id>"
	seq    string // BadgerDB sequence name for new IDs
}

// Key prefixes for the five record families and the profile.
var (
	journalKeys   = keySpace{record: "jrnrec", date: "jrnrecd", seq: "jrnrecseq"}
	documentKeys  = keySpace{record: "docrec", date: "docrecd", seq: "docrecseq"}
	medicalKeys   = keySpace{record: "medrec", date: "medrecd", seq: "medrecseq"}
	milestoneKeys = keySpace{record: "milrec", date: "milrecd", seq: "milrecseq"}
	growthKeys    = keySpace{record: "grwrec", date: "grwrecd", seq: "grwrecseq"}

	profileKey = []byte("profile")
)

// makeRecordKey generates a key for a record by ID.
func (k keySpace) makeRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", k.record, id))
}

// makeDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id
func (k keySpace) makeDateKey(timestamp time.Time, id core.ID) []byte {
	prefixBytes := []byte(k.date + ":")
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func (k keySpace) makePartialDateKey(timestamp time.Time) []byte {
	prefixBytes := []byte(k.date + ":")
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// datePrefix returns the full date index prefix including separator.
func (k keySpace) datePrefix() []byte {
	return []byte(k.date + ":")
}

// recordPrefix returns the full record prefix including separator.
func (k keySpace) recordPrefix() []byte {
	return []byte(k.record + ":")
}
