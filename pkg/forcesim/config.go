package forcesim

import "math/rand"

// Config holds the tuned simulation constants. The defaults are trial-tuned
// values with no closed-form derivation; override them deliberately, never
// silently.
type Config struct {
	Repulsion  float64 // pairwise push, divided by squared distance
	Spring     float64 // Hooke constant for edge attraction
	RestLength float64 // edge distance at which attraction is zero
	Gravity    float64 // pull toward the surface center
	Damping    float64 // velocity fraction retained per tick, below 1
	Margin     float64 // keep-out band inside the surface bounds
	MinAlpha   float64 // temperature floor
	CoolTicks  int     // ticks for the temperature to fall from 1 to 0
	InitBand   float64 // spawn band around center, fraction of surface size

	// Rand supplies uniform [0,1) samples for initial placement. Tests
	// inject a seeded source; nil means the shared default source.
	Rand func() float64
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		Repulsion:  6000,
		Spring:     0.04,
		RestLength: 100,
		Gravity:    0.004,
		Damping:    0.55,
		Margin:     30,
		MinAlpha:   0.002,
		CoolTicks:  300,
		InitBand:   0.25,
		Rand:       rand.Float64,
	}
}
