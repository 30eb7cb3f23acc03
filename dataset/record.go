package dataset

import (
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/openshm/vibegen/synth"
)

// Timestamp layouts used in filenames and metadata.
const (
	stampLayout = "20060102150405"
	isoLayout   = "2006-01-02T15:04:05"
)

// Metadata describes one segment record. Times are ISO-8601 strings so the
// on-disk schema stays language-neutral.
type Metadata struct {
	TagColumns          []string `bson:"tag_columns"`
	SamplingFrequency   float64  `bson:"sampling_frequency"`
	SegmentNumber       int      `bson:"segment_number"`
	StartTime           string   `bson:"start_time"`
	EndTime             string   `bson:"end_time"`
	GenerationTimestamp string   `bson:"generation_timestamp"`
	Synthetic           bool     `bson:"synthetic"`
	DataQuality         string   `bson:"data_quality"`
}

// Accelerations is the persisted form of a waveform table: per-channel
// sample sequences keyed by a shared timestamp index. The index is stored
// as Unix nanoseconds; BSON datetimes carry millisecond resolution, which
// would truncate the sub-millisecond spacing high sampling rates produce.
type Accelerations struct {
	Index    []int64              `bson:"index"`
	Channels map[string][]float64 `bson:"channels"`
}

// Times returns the timestamp index as time.Time values.
func (a Accelerations) Times() []time.Time {
	out := make([]time.Time, len(a.Index))
	for i, ns := range a.Index {
		out[i] = time.Unix(0, ns).UTC()
	}

	return out
}

// Record is the two-field container written per segment.
type Record struct {
	Accelerations Accelerations `bson:"accelerations"`
	Metadata      Metadata      `bson:"metadata"`
}

// NewRecord wraps a waveform table and its metadata for persistence.
func NewRecord(tbl *synth.Table, md Metadata) Record {
	index := make([]int64, len(tbl.Index))
	for i, ts := range tbl.Index {
		index[i] = ts.UnixNano()
	}

	return Record{
		Accelerations: Accelerations{
			Index:    index,
			Channels: tbl.Data,
		},
		Metadata: md,
	}
}

// SegmentFilename derives the deterministic file name for one segment.
func SegmentFilename(caseLabel string, segment int, start, end time.Time) string {
	return fmt.Sprintf("%s_segment%d_%s_%s.bson",
		caseLabel, segment, start.Format(stampLayout), end.Format(stampLayout))
}

// WriteRecord persists one record as a BSON document.
func WriteRecord(path string, rec Record) error {
	data, err := bson.Marshal(rec)
	if err != nil {
		return fmt.Errorf("dataset: encode record: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dataset: write record: %w", err)
	}

	return nil
}

// ReadRecord loads a record written by WriteRecord.
func ReadRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("dataset: read record: %w", err)
	}

	var rec Record
	if err := bson.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("dataset: decode record: %w", err)
	}

	return rec, nil
}
