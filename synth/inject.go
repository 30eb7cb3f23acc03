package synth

import "math/rand"

// Defect injection constants. Fractions are of the total sample count.
const (
	anomalyProbability = 0.1
	anomalyMinFrac     = 0.01 // shortest step anomaly
	anomalyMaxFrac     = 0.05 // longest step anomaly
	anomalyStartLow    = 0.1  // anomalies start inside [10%, 80%) of the span
	anomalyStartHigh   = 0.8
	anomalyShiftSigma  = 0.3

	edgeProbability = 0.2
	edgeFrac        = 0.02 // ramp length at each edge
	startEdgePeak   = 2.0
	endEdgePeak     = -1.5
)

// maybeInjectAnomaly adds a step anomaly with probability anomalyProbability.
func maybeInjectAnomaly(rng *rand.Rand, sig []float64) {
	if rng.Float64() < anomalyProbability {
		injectAnomaly(rng, sig)
	}
}

// injectAnomaly adds a constant shift over one random contiguous run,
// simulating a sudden sensor or structural event. The run covers 1%-5% of
// the sample count and starts inside the middle [10%, 80%) of the signal.
// Returns the affected half-open range.
func injectAnomaly(rng *rand.Rand, sig []float64) (start, end int) {
	n := len(sig)

	lo := int(anomalyStartLow * float64(n))
	hi := int(anomalyStartHigh * float64(n))
	if hi <= lo {
		return 0, 0
	}

	start = lo + rng.Intn(hi-lo)

	minLen := int(anomalyMinFrac * float64(n))
	maxLen := int(anomalyMaxFrac * float64(n))

	length := minLen
	if maxLen > minLen {
		length = minLen + rng.Intn(maxLen-minLen)
	}

	end = start + length
	if end > n {
		end = n
	}

	shift := anomalyShiftSigma * rng.NormFloat64()
	for i := start; i < end; i++ {
		sig[i] += shift
	}

	return start, end
}

// maybeInjectEdgeArtifacts adds edge ramps with probability edgeProbability.
func maybeInjectEdgeArtifacts(rng *rand.Rand, sig []float64) {
	if rng.Float64() < edgeProbability {
		injectEdgeArtifacts(rng, sig)
	}
}

// injectEdgeArtifacts simulates sensor attachment/detachment transients.
// Each edge is hit independently at 50%: the start edge gets a ramp decaying
// from a random-scaled peak to zero, the end edge a ramp growing toward a
// random-scaled negative peak. Only the first and last edgeFrac of samples
// are touched.
func injectEdgeArtifacts(rng *rand.Rand, sig []float64) (startHit, endHit bool) {
	n := len(sig)

	edge := int(edgeFrac * float64(n))
	if edge <= 0 {
		return false, false
	}

	if rng.Float64() < 0.5 {
		startHit = true
		scale := rng.NormFloat64()

		for i, v := range ramp(startEdgePeak, 0, edge) {
			sig[i] += v * scale
		}
	}

	if rng.Float64() < 0.5 {
		endHit = true
		scale := rng.NormFloat64()

		for i, v := range ramp(0, endEdgePeak, edge) {
			sig[n-edge+i] += v * scale
		}
	}

	return startHit, endHit
}

// ramp returns count points evenly spaced from "from" to "to" inclusive.
func ramp(from, to float64, count int) []float64 {
	out := make([]float64, count)
	if count == 1 {
		out[0] = from
		return out
	}

	stepv := (to - from) / float64(count-1)
	for i := range out {
		out[i] = from + stepv*float64(i)
	}

	return out
}
