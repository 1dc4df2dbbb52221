package rng

import (
	"math/rand"
	"time"
)

// Source is the randomness every synthesis component draws from.
// Injecting it keeps weighted selection, shuffles, and format mixing
// deterministic under test.
type Source interface {
	Float64() float64
	Intn(n int) int
}

type mathSource struct {
	r *rand.Rand
}

func (s mathSource) Float64() float64 { return s.r.Float64() }
func (s mathSource) Intn(n int) int   { return s.r.Intn(n) }

// Default returns a time-seeded source for production use.
func Default() Source {
	return mathSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Seeded returns a deterministic source for tests and reproducible runs.
func Seeded(seed int64) Source {
	return mathSource{r: rand.New(rand.NewSource(seed))}
}

// Shuffle permutes s in place using src.
func Shuffle[T any](src Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
