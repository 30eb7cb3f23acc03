package synth

import (
	"errors"
	"math"
	"time"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by synthesis functions.
var (
	ErrNoSensors         = errors.New("synth: sensor list must not be empty")
	ErrInvalidDuration   = errors.New("synth: duration must be positive")
	ErrInvalidSampleRate = errors.New("synth: sample rate must be positive")
	ErrNoFrequencies     = errors.New("synth: base frequency list must not be empty")
	ErrInvalidFrequency  = errors.New("synth: base frequencies must be positive")
)

// Amplitude model constants, shared by all channels.
const (
	modeAmplitude  = 0.1   // amplitude of mode 0 at unit mode-shape factor
	freqVariation  = 0.02  // ±2% resonance drift per synthesis call
	trendBaseFreq  = 0.001 // Hz, environmental drift
	trendFreqSigma = 0.001

	targetMeanLow  = -1.05 // acceptance band for the re-centered channel mean
	targetMeanHigh = -0.95
)

// Params are the immutable inputs to one synthesis call.
type Params struct {
	Sensors         []string      // channel names; order defines array position
	Duration        time.Duration // signal length
	SampleRate      float64       // Hz
	BaseFrequencies []float64     // resonance frequencies; order defines mode index
	NoiseLevel      float64       // broadband noise amplitude
	TrendAmplitude  float64       // slow environmental trend amplitude
	Start           time.Time     // first timestamp; zero value is fine
}

// Validate checks that the Params describe a synthesizable signal.
func (p *Params) Validate() error {
	if len(p.Sensors) == 0 {
		return ErrNoSensors
	}

	if p.Duration <= 0 {
		return ErrInvalidDuration
	}

	if p.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if len(p.BaseFrequencies) == 0 {
		return ErrNoFrequencies
	}

	for _, f := range p.BaseFrequencies {
		if f <= 0 {
			return ErrInvalidFrequency
		}
	}

	return nil
}

// samples returns the total sample count per channel.
func (p *Params) samples() int {
	return int(p.Duration.Seconds() * p.SampleRate)
}

// Table is a multi-channel waveform sharing one timestamp axis.
type Table struct {
	Channels []string             // channel order, as passed to Synthesize
	Data     map[string][]float64 // channel name -> samples, all equal length
	Index    []time.Time          // shared timestamps, strictly increasing
}

// Len returns the number of samples per channel.
func (t *Table) Len() int {
	return len(t.Index)
}

// Retime rebuilds the timestamp axis so it spans exactly [start, end] with
// the existing sample count. Sample data is untouched.
func (t *Table) Retime(start, end time.Time) {
	n := len(t.Index)
	if n == 0 {
		return
	}

	if n == 1 {
		t.Index[0] = start
		return
	}

	span := float64(end.Sub(start))
	for i := range t.Index {
		t.Index[i] = start.Add(time.Duration(span * float64(i) / float64(n-1)))
	}
}

// Synthesize builds one waveform table. Channels are independently
// randomized draws from the shared mode/sensor-position model described in
// the package documentation. The call is pure apart from consuming the
// generator's random stream.
func (g *Generator) Synthesize(p Params) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.samples()
	durSec := p.Duration.Seconds()

	// Time axis for the oscillators: n points evenly covering [0, duration].
	t := make([]float64, n)
	if n > 1 {
		for i := range t {
			t[i] = durSec * float64(i) / float64(n-1)
		}
	}

	tbl := &Table{
		Channels: append([]string(nil), p.Sensors...),
		Data:     make(map[string][]float64, len(p.Sensors)),
		Index:    make([]time.Time, n),
	}

	step := time.Duration(float64(time.Second) / p.SampleRate)
	for i := range tbl.Index {
		tbl.Index[i] = p.Start.Add(time.Duration(i) * step)
	}

	m := len(p.Sensors)
	scratch := make([]float64, n)

	for i, sensor := range p.Sensors {
		sig := make([]float64, n)
		factor := math.Sin(math.Pi * float64(i+1) / float64(m+1))

		for j, freq := range p.BaseFrequencies {
			perturbed := freq * (1 + freqVariation*g.rng.NormFloat64())
			amp := modeAmplitude * factor / float64(j+1)
			phase := g.rng.Float64() * 2 * math.Pi

			accumulateSine(sig, scratch, t, perturbed, amp, phase)
		}

		trendFreq := trendBaseFreq + trendFreqSigma*g.rng.NormFloat64()
		trendPhase := g.rng.Float64() * 2 * math.Pi
		accumulateSine(sig, scratch, t, trendFreq, p.TrendAmplitude, trendPhase)

		for k := range sig {
			sig[k] += p.NoiseLevel * g.rng.NormFloat64()
		}

		maybeInjectAnomaly(g.rng, sig)
		maybeInjectEdgeArtifacts(g.rng, sig)

		target := targetMeanLow + g.rng.Float64()*(targetMeanHigh-targetMeanLow)
		recenter(sig, target)

		tbl.Data[sensor] = sig
	}

	return tbl, nil
}

// accumulateSine adds amp·sin(2π·freq·t + phase) into sig using scratch as
// working storage.
func accumulateSine(sig, scratch, t []float64, freq, amp, phase float64) {
	w := 2 * math.Pi * freq
	for i := range scratch {
		scratch[i] = math.Sin(w*t[i] + phase)
	}

	vecmath.ScaleBlock(scratch, scratch, amp)
	vecmath.AddBlockInPlace(sig, scratch)
}

// recenter shifts sig so its mean equals target, preserving shape.
func recenter(sig []float64, target float64) {
	if len(sig) == 0 {
		return
	}

	var sum float64
	for _, v := range sig {
		sum += v
	}

	shift := target - sum/float64(len(sig))
	for i := range sig {
		sig[i] += shift
	}
}
