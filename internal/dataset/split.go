package dataset

import (
	"github.com/jbonatakis/fimgen/internal/record"
	"github.com/jbonatakis/fimgen/internal/rng"
)

// Split shuffles labeled examples and carves off testFraction of them
// as the held-out set. The input slice is not modified. A seeded
// source makes the split reproducible.
func Split(examples []record.LabeledExample, testFraction float64, src rng.Source) (train, test []record.LabeledExample) {
	if testFraction < 0 {
		testFraction = 0
	}
	if testFraction > 1 {
		testFraction = 1
	}
	if src == nil {
		src = rng.Default()
	}

	shuffled := append([]record.LabeledExample(nil), examples...)
	rng.Shuffle(src, shuffled)

	cut := int(float64(len(shuffled)) * testFraction)
	return shuffled[cut:], shuffled[:cut]
}
