// Package modal estimates the dominant resonance peaks of a time-domain
// signal. It exists to sanity-check synthesized fixtures: the peaks of a
// generated channel should sit near the requested base frequencies.
package modal

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Peaks.
var (
	ErrEmptySignal       = errors.New("modal: signal is empty")
	ErrInvalidSampleRate = errors.New("modal: sample rate must be positive")
	ErrInvalidCount      = errors.New("modal: peak count must be positive")
)

// Peak is one spectral maximum.
type Peak struct {
	Frequency float64 // Hz
	Amplitude float64 // estimated sinusoid amplitude
}

// Peaks returns up to count dominant spectral peaks of signal, strongest
// first. The signal is mean-removed, Hann-windowed and zero-padded to a
// power of two before the FFT. The window keeps frequencies that fall
// between bins from leaking across the spectrum, and the amplitude of each
// peak is recovered by summing the magnitude across the window's main lobe,
// so the estimate holds regardless of where the frequency sits within a
// bin. Frequency resolution is sampleRate / fftSize.
func Peaks(signal []float64, sampleRate float64, count int) ([]Peak, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if count <= 0 {
		return nil, ErrInvalidCount
	}

	var mean float64
	for _, v := range signal {
		mean += v
	}
	mean /= float64(len(signal))

	coeffs := hann(len(signal))

	var winSum float64
	for _, w := range coeffs {
		winSum += w
	}

	fftSize := nextPowerOf2(len(signal))

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex((v-mean)*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("modal: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("modal: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	// Zero-padding widens the main lobe by the padding ratio; the Hann
	// lobe spans ±2 bins of the unpadded resolution.
	pad := float64(fftSize) / float64(len(signal))
	capture := int(math.Ceil(2 * pad))

	// Local maxima over the one-sided spectrum, DC and Nyquist excluded.
	var peaks []Peak
	for i := 1; i < bins-1; i++ {
		if mag[i] > mag[i-1] && mag[i] >= mag[i+1] {
			peaks = append(peaks, Peak{
				Frequency: float64(i) * sampleRate / float64(fftSize),
				Amplitude: lobeAmplitude(mag, i, capture, winSum, pad),
			})
		}
	}

	sort.Slice(peaks, func(a, b int) bool {
		return peaks[a].Amplitude > peaks[b].Amplitude
	})

	if len(peaks) > count {
		peaks = peaks[:count]
	}

	return peaks, nil
}

// lobeAmplitude estimates the sinusoid amplitude behind the peak at bin k.
// For a Hann window the magnitude summed across the main lobe equals
// amplitude · winSum · pad to within a few percent for any fractional bin
// offset, which is what makes the estimate leakage-proof.
func lobeAmplitude(mag []float64, k, capture int, winSum, pad float64) float64 {
	lo := k - capture
	if lo < 0 {
		lo = 0
	}

	hi := k + capture
	if hi > len(mag)-1 {
		hi = len(mag) - 1
	}

	var sum float64
	for i := lo; i <= hi; i++ {
		sum += mag[i]
	}

	return sum / (winSum * pad)
}

// hann returns the symmetric Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	return w
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
