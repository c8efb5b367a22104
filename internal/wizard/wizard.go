// Package wizard drives a multi-step intake flow against an intake backend:
// a welcome step, one step per form section, one per assigned assessment,
// a review step, and a closing thank-you. Field edits autosave on a debounce
// so an abandoned browser tab loses at most the last second of typing.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/practicekit/practicekit/internal/assessment"
	"github.com/practicekit/practicekit/internal/intakeform"
)

// Terminal token states surfaced before any step renders. Backend
// implementations return these for 404 and 410 responses.
var (
	ErrInvalidLink = errors.New("invalid intake link")
	ErrLinkExpired = errors.New("intake link has expired")
)

// FormState is what the backend knows about an intake behind a token.
type FormState struct {
	Token               string            `json:"token"`
	FormType            string            `json:"form_type"`
	IncludedAssessments []string          `json:"included_assessments"`
	ClientName          string            `json:"client_name"`
	Status              string            `json:"status"`
	Responses           intakeform.Values `json:"existing_responses"`
	AutosaveDebounceMS  int               `json:"autosave_debounce_ms"`
}

// Backend is the wizard's view of the intake service.
type Backend interface {
	FetchForm(ctx context.Context, token string) (*FormState, error)
	SaveProgress(ctx context.Context, token string, responses intakeform.Values) error
	SubmitAssessment(ctx context.Context, token, assessmentID string, responses map[string]int) error
	Complete(ctx context.Context, token string) error
}

type StepKind int

const (
	StepWelcome StepKind = iota
	StepSection
	StepAssessment
	StepReview
	StepThankYou
)

// Step describes one position in the flow with the payload needed to
// render it. Section is set for StepSection, Assessment for StepAssessment.
type Step struct {
	Kind       StepKind
	Index      int
	Section    *intakeform.Section
	Assessment *assessment.Assessment
}

// DefaultDebounce is the autosave quiet period applied when Config leaves
// Debounce unset.
const DefaultDebounce = 1000 * time.Millisecond

const autosaveTimeout = 10 * time.Second

type Config struct {
	Backend  Backend
	Logger   zerolog.Logger
	Debounce time.Duration
	Variant  string
}

// Wizard is one client's pass through an intake form. Safe for concurrent
// use; the autosave timer runs on its own goroutine.
type Wizard struct {
	backend     Backend
	log         zerolog.Logger
	token       string
	clientName  string
	template    *intakeform.Template
	assessments []*assessment.Assessment
	debounce    time.Duration

	mu        sync.Mutex
	responses intakeform.Values
	current   int
	completed bool
	closed    bool
	timer     *time.Timer
}

// Load fetches the intake behind the token and positions the wizard at the
// welcome step, resuming any previously saved responses. An already
// completed intake starts at the thank-you step.
func Load(ctx context.Context, cfg Config, token string) (*Wizard, error) {
	if cfg.Backend == nil {
		return nil, fmt.Errorf("backend is required")
	}
	state, err := cfg.Backend.FetchForm(ctx, token)
	if err != nil {
		return nil, err
	}

	// An explicit Debounce wins; otherwise the server-advertised quiet
	// period applies, then the built-in default.
	debounce := cfg.Debounce
	if debounce <= 0 && state.AutosaveDebounceMS > 0 {
		debounce = time.Duration(state.AutosaveDebounceMS) * time.Millisecond
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	variant := cfg.Variant
	if variant == "" {
		variant = intakeform.VariantQuick
	}

	w := &Wizard{
		backend:    cfg.Backend,
		log:        cfg.Logger,
		token:      token,
		clientName: state.ClientName,
		template:   intakeform.ByPracticeType(state.FormType, variant),
		debounce:   debounce,
		responses:  state.Responses.Clone(),
	}
	if w.responses == nil {
		w.responses = intakeform.Values{}
	}
	for _, id := range state.IncludedAssessments {
		a, ok := assessment.ByID(id)
		if !ok {
			w.log.Warn().Str("assessment_id", id).Msg("skipping unknown assessment on intake link")
			continue
		}
		w.assessments = append(w.assessments, a)
	}
	if state.Status == "completed" {
		w.completed = true
		w.current = w.totalSteps() - 1
	}
	return w, nil
}

// TotalSteps is welcome + sections + assessments + review + thank-you.
func (w *Wizard) TotalSteps() int { return w.totalSteps() }

func (w *Wizard) totalSteps() int {
	return 1 + len(w.template.Sections) + len(w.assessments) + 2
}

func (w *Wizard) reviewIndex() int { return w.totalSteps() - 2 }

// Step maps a position to its typed step. Pure: it never changes state.
func (w *Wizard) Step(i int) (Step, error) {
	total := w.totalSteps()
	if i < 0 || i >= total {
		return Step{}, fmt.Errorf("step %d out of range [0,%d)", i, total)
	}
	s := Step{Index: i}
	switch {
	case i == 0:
		s.Kind = StepWelcome
	case i <= len(w.template.Sections):
		s.Kind = StepSection
		s.Section = &w.template.Sections[i-1]
	case i < w.reviewIndex():
		s.Kind = StepAssessment
		s.Assessment = w.assessments[i-1-len(w.template.Sections)]
	case i == w.reviewIndex():
		s.Kind = StepReview
	default:
		s.Kind = StepThankYou
	}
	return s, nil
}

// Current returns the step the wizard is on.
func (w *Wizard) Current() Step {
	w.mu.Lock()
	i := w.current
	w.mu.Unlock()
	s, _ := w.Step(i)
	return s
}

// ClientName returns the addressee from the form link, if any.
func (w *Wizard) ClientName() string { return w.clientName }

// Completed reports whether the intake has been submitted.
func (w *Wizard) Completed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.completed
}

// Advance moves forward one step. Responses are saved best-effort first;
// a failed save is logged and never blocks navigation. Leaving the review
// step submits the intake, and a failed submit does block.
func (w *Wizard) Advance(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return fmt.Errorf("wizard is closed")
	}
	if w.current >= w.totalSteps()-1 {
		w.mu.Unlock()
		return nil
	}
	w.stopTimerLocked()
	snapshot := w.responses.Clone()
	leavingReview := w.current == w.reviewIndex()
	w.mu.Unlock()

	if err := w.backend.SaveProgress(ctx, w.token, snapshot); err != nil {
		w.log.Warn().Err(err).Msg("save on advance failed")
	}
	if leavingReview {
		if err := w.backend.Complete(ctx, w.token); err != nil {
			return fmt.Errorf("complete intake: %w", err)
		}
	}

	w.mu.Lock()
	if leavingReview {
		w.completed = true
	}
	w.current++
	w.mu.Unlock()
	return nil
}

// Retreat moves back one step when allowed.
func (w *Wizard) Retreat() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.canRetreat(w.current) {
		w.current--
	}
}

// CanRetreat reports whether backwards navigation is offered at step i.
// The welcome step and the first content step have nothing to go back to,
// and a submitted intake cannot be reopened from the thank-you step.
func (w *Wizard) CanRetreat(i int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canRetreat(i)
}

func (w *Wizard) canRetreat(i int) bool {
	return i > 1 && i <= w.reviewIndex()
}

// NextLabel returns the forward-navigation caption for step i.
func (w *Wizard) NextLabel(i int) string {
	switch {
	case i == 0:
		return "Get Started"
	case i == w.reviewIndex()-1:
		return "Continue to Review"
	case i == w.reviewIndex():
		return "Submit"
	case i >= w.totalSteps()-1:
		return ""
	default:
		return "Next"
	}
}

// SetField records a response and arms the debounced autosave: each edit
// restarts the quiet period, so a burst of edits produces a single write
// carrying the final values.
func (w *Wizard) SetField(fieldID string, v intakeform.Value) error {
	if _, ok := w.template.FieldByID(fieldID); !ok {
		return fmt.Errorf("unknown field: %s", fieldID)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("wizard is closed")
	}
	if w.completed {
		return fmt.Errorf("intake already completed")
	}
	w.responses[fieldID] = v
	w.stopTimerLocked()
	w.timer = time.AfterFunc(w.debounce, w.autosave)
	return nil
}

// FieldVisible reports whether a field should currently be rendered given
// its conditional and the responses so far.
func (w *Wizard) FieldVisible(fieldID string) bool {
	f, ok := w.template.FieldByID(fieldID)
	if !ok {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return f.Visible(w.responses)
}

// Responses returns a snapshot of the current responses.
func (w *Wizard) Responses() intakeform.Values {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.responses.Clone()
}

// Close cancels any pending autosave. A timer that has not fired yet
// produces no late write.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.stopTimerLocked()
}

func (w *Wizard) stopTimerLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Wizard) autosave() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	snapshot := w.responses.Clone()
	w.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), autosaveTimeout)
	defer cancel()
	if err := w.backend.SaveProgress(ctx, w.token, snapshot); err != nil {
		w.log.Warn().Err(err).Msg("background autosave failed")
	}
}
