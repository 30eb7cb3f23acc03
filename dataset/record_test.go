package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openshm/vibegen/synth"
)

func TestSegmentFilename(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)

	got := SegmentFilename("sample", 3, start, end)
	assert.Equal(t, "sample_segment3_20240101090000_20240101092500.bson", got)

	// Same inputs, same name.
	assert.Equal(t, got, SegmentFilename("sample", 3, start, end))
}

func TestRecordRoundtrip(t *testing.T) {
	g := synth.NewGenerator(synth.WithSeed(1))

	// 250 Hz over a span that does not divide evenly produces
	// sub-millisecond timestamp offsets, which must survive persistence.
	tbl, err := g.Synthesize(synth.Params{
		Sensors:         []string{"s1", "s2"},
		Duration:        3 * time.Second,
		SampleRate:      250,
		BaseFrequencies: []float64{5},
		NoiseLevel:      0.05,
		TrendAmplitude:  0.02,
	})
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	tbl.Retime(start, start.Add(3*time.Second))

	md := Metadata{
		TagColumns:          []string{},
		SamplingFrequency:   250,
		SegmentNumber:       1,
		StartTime:           "2024-01-01T09:00:00",
		EndTime:             "2024-01-01T09:25:00",
		GenerationTimestamp: "2024-01-01T09:25:01",
		Synthetic:           true,
		DataQuality:         "good",
	}

	path := filepath.Join(t.TempDir(), "rec.bson")
	require.NoError(t, WriteRecord(path, NewRecord(tbl, md)))

	rec, err := ReadRecord(path)
	require.NoError(t, err)

	assert.Equal(t, md, rec.Metadata)
	require.Len(t, rec.Accelerations.Index, tbl.Len())

	// The index must come back nanosecond-exact, including the offsets
	// that fall between milliseconds.
	for i, ts := range tbl.Index {
		assert.Equal(t, ts.UnixNano(), rec.Accelerations.Index[i], "index %d", i)
	}

	times := rec.Accelerations.Times()
	for i, ts := range tbl.Index {
		assert.True(t, ts.Equal(times[i]), "times %d: %v != %v", i, ts, times[i])
	}

	for _, name := range tbl.Channels {
		assert.Equal(t, tbl.Data[name], rec.Accelerations.Channels[name])
	}
}

func TestRecordOnDiskSchema(t *testing.T) {
	g := synth.NewGenerator(synth.WithSeed(2))

	tbl, err := g.Synthesize(synth.Params{
		Sensors:         []string{"s1"},
		Duration:        time.Second,
		SampleRate:      5,
		BaseFrequencies: []float64{5},
		NoiseLevel:      0.05,
		TrendAmplitude:  0.02,
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rec.bson")
	require.NoError(t, WriteRecord(path, NewRecord(tbl, Metadata{
		TagColumns:  []string{},
		Synthetic:   true,
		DataQuality: "good",
	})))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Downstream readers address the record by key, so the documented
	// names are part of the contract.
	var doc bson.M
	require.NoError(t, bson.Unmarshal(data, &doc))

	require.Contains(t, doc, "accelerations")
	require.Contains(t, doc, "metadata")

	meta, ok := doc["metadata"].(bson.M)
	require.True(t, ok)

	for _, key := range []string{
		"tag_columns", "sampling_frequency", "segment_number",
		"start_time", "end_time", "generation_timestamp",
		"synthetic", "data_quality",
	} {
		assert.Contains(t, meta, key)
	}

	acc, ok := doc["accelerations"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, acc, "index")
	assert.Contains(t, acc, "channels")
}

func TestReadRecordMissingFile(t *testing.T) {
	_, err := ReadRecord(filepath.Join(t.TempDir(), "absent.bson"))
	assert.Error(t, err)
}
