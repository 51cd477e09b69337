package agent

import (
	"time"

	"github.com/lox/holdem-core/internal/randutil"
	"math/rand/v2"
)

// randSource wraps a seeded generator so BotPolicy's decision noise and
// delay choices are reproducible given the same seed, independent of the
// deck's own RNG.
type randSource struct {
	r *rand.Rand
}

func newRandSource(seed int64) *randSource {
	return &randSource{r: randutil.New(seed)}
}

// Float64 returns a value in [0, 1).
func (s *randSource) Float64() float64 { return s.r.Float64() }

// chooseDelay picks a simulated thinking delay within the profile's
// min/max bounds, drawn uniformly from [min, max).
func (pol BotPolicy) chooseDelay(profile BotProfile, rng *randSource) time.Duration {
	lo, hi := profile.MinDelayMS, profile.MaxDelayMS
	if hi <= lo {
		return time.Duration(lo) * time.Millisecond
	}
	span := hi - lo
	ms := lo + int(rng.Float64()*float64(span))
	return time.Duration(ms) * time.Millisecond
}
