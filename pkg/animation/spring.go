package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// springFPS is the sample rate used to discretize the spring response.
const springFPS = 60

// springSettleLimit caps simulation length at ten seconds of samples, in
// case an underdamped spring never meets the settle tolerance.
const springSettleLimit = 10 * springFPS

// SpringCurve builds an easing function from a damped harmonic spring.
//
// The spring's unit step response is simulated at 60 FPS until it
// settles, then normalized so the curve maps t in [0, 1] onto the full
// settle. An underdamped spring (dampingRatio < 1) overshoots past 1.0
// before coming to rest, which curves built from beziers cannot express.
//
// angularFrequency controls how stiff the spring is; dampingRatio of 1
// settles without oscillation.
func SpringCurve(angularFrequency, dampingRatio float64) func(float64) float64 {
	spring := harmonica.NewSpring(harmonica.FPS(springFPS), angularFrequency, dampingRatio)

	pos, vel := 0.0, 0.0
	samples := []float64{0}
	for i := 0; i < springSettleLimit; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples = append(samples, pos)
		if math.Abs(pos-1) < 1e-4 && math.Abs(vel) < 1e-4 {
			break
		}
	}
	// Pin the endpoint so the curve always finishes exactly at 1.
	last := len(samples) - 1
	samples[last] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * float64(last)
		i := int(x)
		if i >= last {
			return 1
		}
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}
