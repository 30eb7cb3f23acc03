package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/openshm/vibegen/settings"
	"github.com/openshm/vibegen/synth"
)

// Errors returned by Assemble.
var (
	ErrNoOutputDir     = errors.New("dataset: output directory must not be empty")
	ErrInvalidSegments = errors.New("dataset: segment count must not be negative")
)

// QualityWeight is one entry of the categorical quality-label distribution.
type QualityWeight struct {
	Label  string
	Weight float64
}

// Config drives one assembly run. Zero-value fields fall back to the
// documented defaults; OutputDir is required.
type Config struct {
	OutputDir string
	Segments  int    // default 10
	CaseLabel string // default "sample"

	// Segment schedule. Segments hold SegmentDuration of data and are
	// scheduled SegmentSpacing apart from AnchorTime.
	AnchorTime      time.Time     // default 2024-01-01 09:00:00 UTC
	SegmentDuration time.Duration // default 25 minutes
	SegmentSpacing  time.Duration // default 30 minutes

	// Per-segment synthesis parameters. Drift rates are added per segment
	// index to the leading base frequencies, so consecutive segments are
	// correlated but not identical. Noise and trend get independent
	// gaussian jitter around their nominal values. The drift rates and
	// quality weights are illustrative defaults, not physical constants.
	BaseFrequencies []float64 // default [4, 12, 18, 25, 35]
	Drift           []float64 // default [0.1, 0.05, 0.02]
	NoiseLevel      float64   // default 0.05
	NoiseJitter     float64   // default 0.01
	TrendAmplitude  float64   // default 0.02
	TrendJitter     float64   // default 0.005
	Quality         []QualityWeight

	// Progress, when set, is called after each segment is persisted.
	Progress func(segment int, filename string)
}

func defaultQuality() []QualityWeight {
	return []QualityWeight{
		{Label: "good", Weight: 0.6},
		{Label: "fair", Weight: 0.3},
		{Label: "excellent", Weight: 0.1},
	}
}

// withDefaults fills unset fields with the documented defaults.
func (c Config) withDefaults() Config {
	if c.Segments == 0 {
		c.Segments = 10
	}

	if c.CaseLabel == "" {
		c.CaseLabel = "sample"
	}

	if c.AnchorTime.IsZero() {
		c.AnchorTime = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	}

	if c.SegmentDuration == 0 {
		c.SegmentDuration = 25 * time.Minute
	}

	if c.SegmentSpacing == 0 {
		c.SegmentSpacing = 30 * time.Minute
	}

	if len(c.BaseFrequencies) == 0 {
		c.BaseFrequencies = []float64{4, 12, 18, 25, 35}
	}

	if len(c.Drift) == 0 {
		c.Drift = []float64{0.1, 0.05, 0.02}
	}

	if c.NoiseLevel == 0 {
		c.NoiseLevel = 0.05
	}

	if c.NoiseJitter == 0 {
		c.NoiseJitter = 0.01
	}

	if c.TrendAmplitude == 0 {
		c.TrendAmplitude = 0.02
	}

	if c.TrendJitter == 0 {
		c.TrendJitter = 0.005
	}

	if len(c.Quality) == 0 {
		c.Quality = defaultQuality()
	}

	return c
}

func (c Config) validate() error {
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	if c.Segments < 0 {
		return ErrInvalidSegments
	}

	return nil
}

// Assemble generates cfg.Segments labeled segment records plus one summary
// file in cfg.OutputDir. Sensor names and sampling rate come from st, with
// the settings defaults covering missing fields.
//
// Segments are written strictly sequentially; the first error aborts the
// run and already-written files stay on disk.
func Assemble(gen *synth.Generator, st settings.Settings, cfg Config) (*Summary, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sensors := st.SensorNames
	if len(sensors) == 0 {
		sensors = settings.Default().SensorNames
	}

	sampleRate := st.SamplingFrequency
	if sampleRate <= 0 {
		sampleRate = settings.Default().SamplingFrequency
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("dataset: create output directory: %w", err)
	}

	rng := gen.Rand()

	for s := 1; s <= cfg.Segments; s++ {
		start := cfg.AnchorTime.Add(time.Duration(s-1) * cfg.SegmentSpacing)
		end := start.Add(cfg.SegmentDuration)

		tbl, err := gen.Synthesize(synth.Params{
			Sensors:         sensors,
			Duration:        cfg.SegmentDuration,
			SampleRate:      sampleRate,
			BaseFrequencies: driftedFrequencies(cfg.BaseFrequencies, cfg.Drift, s),
			NoiseLevel:      cfg.NoiseLevel + cfg.NoiseJitter*rng.NormFloat64(),
			TrendAmplitude:  cfg.TrendAmplitude + cfg.TrendJitter*rng.NormFloat64(),
		})
		if err != nil {
			return nil, fmt.Errorf("dataset: segment %d: %w", s, err)
		}

		tbl.Retime(start, end)

		md := Metadata{
			TagColumns:          []string{},
			SamplingFrequency:   sampleRate,
			SegmentNumber:       s,
			StartTime:           start.Format(isoLayout),
			EndTime:             end.Format(isoLayout),
			GenerationTimestamp: time.Now().Format(isoLayout),
			Synthetic:           true,
			DataQuality:         drawQuality(rng, cfg.Quality),
		}

		name := SegmentFilename(cfg.CaseLabel, s, start, end)
		if err := WriteRecord(filepath.Join(cfg.OutputDir, name), NewRecord(tbl, md)); err != nil {
			return nil, fmt.Errorf("dataset: segment %d: %w", s, err)
		}

		if cfg.Progress != nil {
			cfg.Progress(s, name)
		}
	}

	sum := newSummary(cfg, sensors, sampleRate, time.Now())
	if err := sum.WriteFile(filepath.Join(cfg.OutputDir, SummaryFilename)); err != nil {
		return nil, err
	}

	return sum, nil
}

// driftedFrequencies applies the per-segment drift to the leading base
// frequencies. Frequencies beyond the drift list stay fixed.
func driftedFrequencies(base, drift []float64, segment int) []float64 {
	out := append([]float64(nil), base...)
	for i := range drift {
		if i >= len(out) {
			break
		}
		out[i] += float64(segment) * drift[i]
	}

	return out
}

// drawQuality samples one label from the categorical distribution.
func drawQuality(rng *rand.Rand, weights []QualityWeight) string {
	var total float64
	for _, w := range weights {
		total += w.Weight
	}

	r := rng.Float64() * total
	for _, w := range weights {
		r -= w.Weight
		if r < 0 {
			return w.Label
		}
	}

	return weights[len(weights)-1].Label
}
