package synth

import (
	"math/rand"
	"testing"
)

func TestInjectAnomalyBounds(t *testing.T) {
	const n = 10000

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		sig := make([]float64, n)

		start, end := injectAnomaly(rng, sig)

		if start < n/10 || start >= n*8/10 {
			t.Fatalf("seed %d: anomaly start %d outside [10%%, 80%%) of %d", seed, start, n)
		}

		length := end - start
		if length < n/100 || length > n*5/100 {
			t.Fatalf("seed %d: anomaly length %d outside [1%%, 5%%] of %d", seed, length, n)
		}

		// Exactly the reported range is shifted, by one constant value.
		if sig[start] == 0 {
			t.Fatalf("seed %d: anomaly range unchanged", seed)
		}

		for i, v := range sig {
			switch {
			case i < start || i >= end:
				if v != 0 {
					t.Fatalf("seed %d: sample %d outside anomaly range modified", seed, i)
				}
			default:
				if v != sig[start] {
					t.Fatalf("seed %d: anomaly shift not constant at %d", seed, i)
				}
			}
		}
	}
}

func TestInjectEdgeArtifactsTouchOnlyEdges(t *testing.T) {
	const n = 5000
	edge := n * 2 / 100

	// Find a seed where both edges fire, so the test is deterministic.
	var rng *rand.Rand
	var startHit, endHit bool
	sig := make([]float64, n)

	for seed := int64(0); seed < 1000; seed++ {
		rng = rand.New(rand.NewSource(seed))
		for i := range sig {
			sig[i] = 0
		}

		startHit, endHit = injectEdgeArtifacts(rng, sig)
		if startHit && endHit {
			break
		}
	}

	if !startHit || !endHit {
		t.Fatal("no seed in range triggered both edge artifacts")
	}

	for i := edge; i < n-edge; i++ {
		if sig[i] != 0 {
			t.Fatalf("sample %d outside the 2%% edges was modified", i)
		}
	}

	// The start ramp decays toward zero; its last point is exactly zero.
	if sig[0] == 0 {
		t.Fatal("start edge peak unmodified")
	}
	if sig[edge-1] != 0 {
		t.Fatalf("start ramp does not decay to zero: %v", sig[edge-1])
	}

	// The end ramp grows from exactly zero toward the final peak.
	if sig[n-edge] != 0 {
		t.Fatalf("end ramp does not start at zero: %v", sig[n-edge])
	}
	if sig[n-1] == 0 {
		t.Fatal("end edge peak unmodified")
	}
}

func TestInjectEdgeArtifactsTinySignal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sig := make([]float64, 10) // 2% of 10 rounds to zero samples

	startHit, endHit := injectEdgeArtifacts(rng, sig)
	if startHit || endHit {
		t.Fatal("edge artifacts reported on a signal too short for a ramp")
	}

	for i, v := range sig {
		if v != 0 {
			t.Fatalf("sample %d modified: %v", i, v)
		}
	}
}

func TestRamp(t *testing.T) {
	r := ramp(2, 0, 5)

	want := []float64{2, 1.5, 1, 0.5, 0}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("ramp[%d] = %v, want %v", i, r[i], want[i])
		}
	}

	if one := ramp(2, 0, 1); one[0] != 2 {
		t.Fatalf("single-point ramp = %v, want [2]", one)
	}
}
