package series

import (
	"math"
	"math/rand"
	"time"
)

// Source is the random stream every noise term draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a reproducible source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func clockSource() Source {
	return NewSource(time.Now().UnixNano())
}

// Wave is the deterministic part of a field: Base + Amplitude*sin((i+Shift)/Period).
type Wave struct {
	Base      float64
	Amplitude float64
	Period    float64
	Shift     float64
}

// At evaluates the wave at period index i.
func (w Wave) At(i int) float64 {
	if w.Amplitude == 0 || w.Period == 0 {
		return w.Base
	}
	return w.Base + w.Amplitude*math.Sin((float64(i)+w.Shift)/w.Period)
}

// Noise is a uniform draw in [Lo, Hi).
type Noise struct {
	Lo float64
	Hi float64
}

// Draw samples the noise from src.
func (n Noise) Draw(src Source) float64 {
	return n.Lo + src.Float64()*(n.Hi-n.Lo)
}

// Level combines a wave with additive noise.
type Level struct {
	Wave  Wave
	Noise Noise
}

// At evaluates the level for period i, consuming one draw from src.
func (l Level) At(i int, src Source) float64 {
	return l.Wave.At(i) + l.Noise.Draw(src)
}

// flat is a level with no seasonal component.
func flat(base, lo, hi float64) Level {
	return Level{Wave: Wave{Base: base}, Noise: Noise{Lo: lo, Hi: hi}}
}
