package wizard

import (
	"context"
	"fmt"
	"sync"

	"github.com/practicekit/practicekit/internal/assessment"
)

// AssessmentRun collects answers for one assessment step. It keeps its own
// response map: instrument answers never mix with form field responses and
// are only persisted on submission, not autosaved.
type AssessmentRun struct {
	wizard     *Wizard
	assessment *assessment.Assessment

	mu        sync.Mutex
	responses map[string]int
	submitted bool
}

// StartAssessment begins collection for the assessment at step i.
func (w *Wizard) StartAssessment(i int) (*AssessmentRun, error) {
	step, err := w.Step(i)
	if err != nil {
		return nil, err
	}
	if step.Kind != StepAssessment {
		return nil, fmt.Errorf("step %d is not an assessment step", i)
	}
	return &AssessmentRun{
		wizard:     w,
		assessment: step.Assessment,
		responses:  map[string]int{},
	}, nil
}

// Assessment returns the instrument being collected.
func (r *AssessmentRun) Assessment() *assessment.Assessment { return r.assessment }

// Answer records the chosen option for a question. The value must be one
// of the instrument's response options.
func (r *AssessmentRun) Answer(questionID string, value int) error {
	var found bool
	for _, q := range r.assessment.Questions {
		if q.ID == questionID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown question: %s", questionID)
	}
	var valid bool
	for _, opt := range r.assessment.ResponseOptions {
		if opt.Value == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("value %d is not a response option for %s", value, r.assessment.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.submitted {
		return fmt.Errorf("assessment already submitted")
	}
	r.responses[questionID] = value
	return nil
}

// AllAnswered reports whether every question has an answer. Submission is
// gated on it.
func (r *AssessmentRun) AllAnswered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.responses) == len(r.assessment.Questions)
}

// Submit scores the answers, sends them to the backend, and advances the
// outer wizard past this step. It refuses to run until every question is
// answered.
func (r *AssessmentRun) Submit(ctx context.Context) (*assessment.Result, error) {
	r.mu.Lock()
	if r.submitted {
		r.mu.Unlock()
		return nil, fmt.Errorf("assessment already submitted")
	}
	if len(r.responses) != len(r.assessment.Questions) {
		r.mu.Unlock()
		return nil, fmt.Errorf("assessment incomplete: %d of %d questions answered",
			len(r.responses), len(r.assessment.Questions))
	}
	responses := make(map[string]int, len(r.responses))
	for k, v := range r.responses {
		responses[k] = v
	}
	r.mu.Unlock()

	result := assessment.Calculate(r.assessment.ID, responses)
	if err := r.wizard.backend.SubmitAssessment(ctx, r.wizard.token, r.assessment.ID, responses); err != nil {
		return nil, fmt.Errorf("submit assessment: %w", err)
	}
	r.mu.Lock()
	r.submitted = true
	r.mu.Unlock()

	if err := r.wizard.Advance(ctx); err != nil {
		return result, err
	}
	return result, nil
}
