package assessment

import (
	"math"
	"time"
)

// ScaleScore accumulates the answered questions for one scale of an
// instrument. Average, Severity, Label and Percentage are only populated
// when at least one question on the scale was answered.
type ScaleScore struct {
	Raw        int     `json:"raw"`
	Count      int     `json:"count"`
	Average    float64 `json:"average"`
	Severity   string  `json:"severity,omitempty"`
	Label      string  `json:"label,omitempty"`
	Percentage *int    `json:"percentage,omitempty"`
}

// Result is the scored outcome of a completed (or partially completed)
// instrument, keyed by scale name. Responses are echoed back so the
// stored record is self-contained.
type Result struct {
	AssessmentID   string                `json:"assessment_id"`
	AssessmentName string                `json:"assessment_name"`
	CompletedAt    time.Time             `json:"completed_at"`
	Scores         map[string]ScaleScore `json:"scores"`
	Responses      map[string]int        `json:"responses"`
}

// Calculate scores the given responses against the instrument identified
// by id. Responses map question IDs to the chosen option value; unanswered
// questions are simply absent. Returns nil for an unknown instrument.
//
// Reverse-keyed questions are reflected around the option range before
// accumulation (max + min - value). Clinical tools interpret the raw scale
// total against the instrument's scoring ranges; personality instruments
// report the raw total as a percentage of the maximum attainable for the
// answered questions, rounded half away from zero.
func Calculate(id string, responses map[string]int) *Result {
	a, ok := ByID(id)
	if !ok {
		return nil
	}

	minOpt, maxOpt := a.optionBounds()

	scores := make(map[string]ScaleScore, len(a.Scales))
	for _, scale := range a.Scales {
		scores[scale] = ScaleScore{}
	}

	for _, q := range a.Questions {
		v, answered := responses[q.ID]
		if !answered {
			continue
		}
		if q.Reverse {
			v = maxOpt + minOpt - v
		}
		s := scores[q.Scale]
		s.Raw += v
		s.Count++
		scores[q.Scale] = s
	}

	for _, scale := range a.Scales {
		s := scores[scale]
		if s.Count == 0 {
			continue
		}
		s.Average = float64(s.Raw) / float64(s.Count)

		if a.ClinicalTool && len(a.ScoringRanges) > 0 {
			s.Severity = "unknown"
			s.Label = "Unknown"
			for _, r := range a.ScoringRanges {
				if s.Raw >= r.Min && s.Raw <= r.Max {
					s.Severity = r.Severity
					s.Label = r.Label
					break
				}
			}
		} else {
			maxPossible := s.Count * maxOpt
			pct := int(math.Round(float64(s.Raw) / float64(maxPossible) * 100))
			s.Percentage = &pct
		}
		scores[scale] = s
	}

	return &Result{
		AssessmentID:   id,
		AssessmentName: a.Name,
		CompletedAt:    time.Now().UTC(),
		Scores:         scores,
		Responses:      responses,
	}
}
