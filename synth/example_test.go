package synth_test

import (
	"fmt"
	"time"

	"github.com/openshm/vibegen/synth"
)

func ExampleGenerator_Synthesize() {
	g := synth.NewGenerator(synth.WithSeed(1))

	tbl, err := g.Synthesize(synth.Params{
		Sensors:         []string{"s1", "s2"},
		Duration:        time.Minute,
		SampleRate:      10,
		BaseFrequencies: []float64{5, 12},
		NoiseLevel:      0.05,
		TrendAmplitude:  0.02,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(len(tbl.Channels), tbl.Len())

	// Output:
	// 2 600
}
