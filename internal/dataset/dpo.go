package dataset

import "github.com/jbonatakis/fimgen/internal/record"

// DPOPair is the chosen/rejected preference shape: one prompt with its
// correct completion and a degraded alternative.
type DPOPair struct {
	Prompt            string          `json:"prompt"`
	Chosen            string          `json:"chosen"`
	Rejected          string          `json:"rejected"`
	DegradationMethod string          `json:"degradationMethod"`
	Metadata          record.Metadata `json:"metadata"`
}

// BuildDPOPairs matches positives to negatives by example ID. A
// positive without a paired negative (or the reverse) contributes
// nothing; DPO needs both sides of the preference.
func BuildDPOPairs(labeled []record.LabeledExample) []DPOPair {
	positives := make(map[string]record.LabeledExample)
	for _, ex := range labeled {
		if ex.Label && ex.ID != "" {
			positives[ex.ID] = ex
		}
	}

	var pairs []DPOPair
	for _, ex := range labeled {
		if ex.Label || ex.ID == "" {
			continue
		}
		pos, ok := positives[ex.ID]
		if !ok {
			continue
		}
		pairs = append(pairs, DPOPair{
			Prompt:            pos.Prompt,
			Chosen:            pos.Completion,
			Rejected:          ex.Completion,
			DegradationMethod: ex.Metadata.DegradationMethod,
			Metadata:          pos.Metadata.Metadata,
		})
	}
	return pairs
}
