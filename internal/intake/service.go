package intake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/practicekit/practicekit/internal/assessment"
	"github.com/practicekit/practicekit/internal/intakeform"
	"github.com/practicekit/practicekit/internal/track"
)

// Sentinel errors for the token boundary. Handlers map these to 404 and 410
// so an unknown token is indistinguishable from a deleted one.
var (
	ErrInvalidToken  = errors.New("invalid intake link")
	ErrLinkExpired   = errors.New("intake link has expired")
	ErrSessionClosed = errors.New("intake is no longer accepting responses")
	ErrNotFound      = errors.New("intake not found")
)

// DefaultLinkTTLDays is the expiry applied when a link request does not set
// its own.
const DefaultLinkTTLDays = 7

// DefaultAutosaveDebounceMS is the autosave quiet period advertised to
// clients when the service is not configured with one.
const DefaultAutosaveDebounceMS = 1000

type Service struct {
	links      FormLinkRepository
	sessions   SessionRepository
	records    AssessmentRecordRepository
	ttlDays    int
	debounceMS int
}

func NewService(links FormLinkRepository, sessions SessionRepository, records AssessmentRecordRepository, ttlDays, debounceMS int) *Service {
	if ttlDays <= 0 {
		ttlDays = DefaultLinkTTLDays
	}
	if debounceMS <= 0 {
		debounceMS = DefaultAutosaveDebounceMS
	}
	return &Service{
		links:      links,
		sessions:   sessions,
		records:    records,
		ttlDays:    ttlDays,
		debounceMS: debounceMS,
	}
}

// CreateLinkRequest carries the therapist's parameters for a new intake link.
type CreateLinkRequest struct {
	ClientEmail         string   `json:"client_email"`
	ClientName          *string  `json:"client_name,omitempty"`
	FormType            string   `json:"form_type"`
	IncludedAssessments []string `json:"included_assessments"`
	ExpiresInDays       int      `json:"expires_in_days"`
}

// CreateLink issues a fresh token, persists the link, and seeds the paired
// intake session in pending state with empty responses.
func (s *Service) CreateLink(ctx context.Context, therapistID string, req CreateLinkRequest) (*FormLink, error) {
	if therapistID == "" {
		return nil, fmt.Errorf("therapist id is required")
	}
	if req.ClientEmail == "" {
		return nil, fmt.Errorf("client_email is required")
	}
	if req.FormType != FormTypeAssessmentOnly && !track.Known(req.FormType) {
		return nil, fmt.Errorf("invalid form_type: %s", req.FormType)
	}
	for _, id := range req.IncludedAssessments {
		if _, ok := assessment.ByID(id); !ok {
			return nil, fmt.Errorf("unknown assessment: %s", id)
		}
	}
	days := req.ExpiresInDays
	if days <= 0 {
		days = s.ttlDays
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)

	link := &FormLink{
		TherapistID:         therapistID,
		ClientEmail:         req.ClientEmail,
		ClientName:          req.ClientName,
		Token:               token,
		FormType:            req.FormType,
		IncludedAssessments: req.IncludedAssessments,
		Status:              LinkStatusCreated,
		ExpiresAt:           expiresAt,
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}

	session := &Session{
		TherapistID: therapistID,
		FormType:    req.FormType,
		Responses:   intakeform.Values{},
		Status:      StatusPending,
		Token:       token,
		ExpiresAt:   expiresAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return link, nil
}

// tokenLookupErr maps a missing row to the public invalid-token sentinel and
// leaves storage failures intact so they surface as 500s, not 404s.
func tokenLookupErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrInvalidToken
	}
	return err
}

// MarkSent records that the link was delivered to the client. Actual email
// delivery is out of process; callers get the addressee back for the
// outbound message.
func (s *Service) MarkSent(ctx context.Context, therapistID, token string) (*FormLink, error) {
	link, err := s.links.GetByToken(ctx, token)
	if err != nil || link.TherapistID != therapistID {
		return nil, ErrNotFound
	}
	now := time.Now().UTC()
	link.SentAt = &now
	link.Status = LinkStatusSent
	if err := s.links.Update(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// FormByToken resolves a token to the form a client should see. The first
// open of a sent link flips it to opened; later opens leave the timestamp
// alone. Previously saved responses ride along so the client can resume.
func (s *Service) FormByToken(ctx context.Context, token string) (*FormView, error) {
	link, err := s.links.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if link.Expired(time.Now().UTC()) {
		return nil, ErrLinkExpired
	}
	if link.Status == LinkStatusSent {
		now := time.Now().UTC()
		link.Status = LinkStatusOpened
		link.OpenedAt = &now
		if err := s.links.Update(ctx, link); err != nil {
			return nil, err
		}
	}

	view := &FormView{
		Token:               token,
		FormType:            link.FormType,
		IncludedAssessments: link.IncludedAssessments,
		ClientName:          link.ClientName,
		Status:              StatusPending,
		ExistingResponses:   intakeform.Values{},
		AutosaveDebounceMS:  s.debounceMS,
	}
	session, err := s.sessions.GetByToken(ctx, token)
	switch {
	case err == nil:
		view.Status = session.Status
		if session.Responses != nil {
			view.ExistingResponses = session.Responses
		}
	case !errors.Is(err, ErrNotFound):
		// A storage failure must not present a returning client with a
		// blank form; only a genuinely absent session does.
		return nil, err
	}
	return view, nil
}

// SaveProgress merges a partial response map into the session. Keys absent
// from the patch keep their saved values. The first save moves the session
// from pending to in_progress and stamps started_at.
func (s *Service) SaveProgress(ctx context.Context, token string, patch intakeform.Values) error {
	link, err := s.links.GetByToken(ctx, token)
	if err != nil {
		return tokenLookupErr(err)
	}
	if link.Expired(time.Now().UTC()) {
		return ErrLinkExpired
	}
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return tokenLookupErr(err)
	}
	if !session.Writable() {
		return ErrSessionClosed
	}

	if session.Responses == nil {
		session.Responses = intakeform.Values{}
	}
	session.Responses.Merge(patch)
	session.Status = StatusInProgress
	if session.StartedAt == nil {
		now := time.Now().UTC()
		session.StartedAt = &now
	}
	return s.sessions.Update(ctx, session)
}

// SubmitAssessment scores the responses server-side and persists both the
// raw answers and the computed result against the session.
func (s *Service) SubmitAssessment(ctx context.Context, token, assessmentID string, responses map[string]int) (*AssessmentRecord, error) {
	link, err := s.links.GetByToken(ctx, token)
	if err != nil {
		return nil, tokenLookupErr(err)
	}
	if link.Expired(time.Now().UTC()) {
		return nil, ErrLinkExpired
	}
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, tokenLookupErr(err)
	}
	if !session.Writable() {
		return nil, ErrSessionClosed
	}

	result := assessment.Calculate(assessmentID, responses)
	if result == nil {
		return nil, fmt.Errorf("unknown assessment: %s", assessmentID)
	}

	record := &AssessmentRecord{
		TherapistID:  session.TherapistID,
		SessionID:    session.ID,
		AssessmentID: assessmentID,
		Responses:    responses,
		Scores:       result,
		CompletedAt:  result.CompletedAt,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Complete marks the intake finished. Completion is terminal for the
// client: repeat calls are no-ops, and an expired link stays expired.
func (s *Service) Complete(ctx context.Context, token string) error {
	link, err := s.links.GetByToken(ctx, token)
	if err != nil {
		return tokenLookupErr(err)
	}
	if link.Expired(time.Now().UTC()) {
		return ErrLinkExpired
	}
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return tokenLookupErr(err)
	}
	switch session.Status {
	case StatusCompleted:
		return nil
	case StatusExpired:
		return ErrLinkExpired
	case StatusReviewed:
		return ErrSessionClosed
	}

	now := time.Now().UTC()
	session.Status = StatusCompleted
	session.CompletedAt = &now
	if err := s.sessions.Update(ctx, session); err != nil {
		return err
	}
	link.Status = LinkStatusCompleted
	return s.links.Update(ctx, link)
}

// ListPending returns the therapist's work queue: sessions a client has
// started or finished but that have not yet been reviewed.
func (s *Service) ListPending(ctx context.Context, therapistID string, limit, offset int) ([]*PendingIntake, int, error) {
	return s.sessions.ListPending(ctx, therapistID, limit, offset)
}

// ForReview loads a session with its assessment results for the owning
// therapist. Sessions belonging to other therapists read as not found.
func (s *Service) ForReview(ctx context.Context, therapistID string, sessionID uuid.UUID) (*Review, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil || session.TherapistID != therapistID {
		return nil, ErrNotFound
	}
	review := &Review{Session: session}
	if link, err := s.links.GetByToken(ctx, session.Token); err == nil {
		review.ClientName = link.ClientName
		review.ClientEmail = link.ClientEmail
	}
	records, err := s.records.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	review.Assessments = records
	return review, nil
}

// Approve marks the intake reviewed and optionally links an existing client
// record to the session and its assessment results.
func (s *Service) Approve(ctx context.Context, therapistID string, sessionID uuid.UUID, clientID *uuid.UUID) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil || session.TherapistID != therapistID {
		return ErrNotFound
	}
	now := time.Now().UTC()
	session.Status = StatusReviewed
	session.ReviewedAt = &now
	if clientID != nil {
		session.ClientID = clientID
	}
	if err := s.sessions.Update(ctx, session); err != nil {
		return err
	}
	if clientID != nil {
		return s.records.AssignClient(ctx, sessionID, *clientID)
	}
	return nil
}
