package intake

import (
	"time"

	"github.com/google/uuid"

	"github.com/practicekit/practicekit/internal/assessment"
	"github.com/practicekit/practicekit/internal/intakeform"
)

// FormTypeAssessmentOnly is the form type for links that carry assessments
// without an intake form. The wizard still renders the fallback template's
// welcome and review steps around the assigned instruments.
const FormTypeAssessmentOnly = "assessment_only"

// Form link statuses.
const (
	LinkStatusCreated   = "created"
	LinkStatusSent      = "sent"
	LinkStatusOpened    = "opened"
	LinkStatusCompleted = "completed"
)

// Intake session statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusExpired    = "expired"
	StatusReviewed   = "reviewed"
)

// FormLink maps to the form_link table. The token is the only credential a
// client needs: whoever holds it may read and fill the linked intake until
// it expires.
type FormLink struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	TherapistID         string     `db:"therapist_id" json:"therapist_id"`
	ClientEmail         string     `db:"client_email" json:"client_email"`
	ClientName          *string    `db:"client_name" json:"client_name,omitempty"`
	Token               string     `db:"link_token" json:"link_token"`
	FormType            string     `db:"form_type" json:"form_type"`
	IncludedAssessments []string   `db:"included_assessments" json:"included_assessments"`
	Status              string     `db:"status" json:"status"`
	ExpiresAt           time.Time  `db:"expires_at" json:"expires_at"`
	SentAt              *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	OpenedAt            *time.Time `db:"opened_at" json:"opened_at,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
}

// Expired reports whether the link is past its expiry at the given instant.
func (l *FormLink) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// Session maps to the intake_session table. Responses accumulate across
// incremental saves until the client completes the intake.
type Session struct {
	ID          uuid.UUID         `db:"id" json:"id"`
	ClientID    *uuid.UUID        `db:"client_id" json:"client_id,omitempty"`
	TherapistID string            `db:"therapist_id" json:"therapist_id"`
	FormType    string            `db:"form_type" json:"form_type"`
	Responses   intakeform.Values `db:"responses" json:"responses"`
	Status      string            `db:"status" json:"status"`
	StartedAt   *time.Time        `db:"started_at" json:"started_at,omitempty"`
	CompletedAt *time.Time        `db:"completed_at" json:"completed_at,omitempty"`
	ReviewedAt  *time.Time        `db:"reviewed_at" json:"reviewed_at,omitempty"`
	Token       string            `db:"link_token" json:"link_token"`
	ExpiresAt   time.Time         `db:"expires_at" json:"expires_at"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
}

// Writable reports whether the session still accepts client input.
func (s *Session) Writable() bool {
	return s.Status == StatusPending || s.Status == StatusInProgress
}

// AssessmentRecord maps to the assessment_record table: one scored
// instrument submitted during an intake session.
type AssessmentRecord struct {
	ID           uuid.UUID          `db:"id" json:"id"`
	ClientID     *uuid.UUID         `db:"client_id" json:"client_id,omitempty"`
	TherapistID  string             `db:"therapist_id" json:"therapist_id"`
	SessionID    uuid.UUID          `db:"session_id" json:"session_id"`
	AssessmentID string             `db:"assessment_id" json:"assessment_id"`
	Responses    map[string]int     `db:"responses" json:"responses"`
	Scores       *assessment.Result `db:"scores" json:"scores"`
	CompletedAt  time.Time          `db:"completed_at" json:"completed_at"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
}

// FormView is the public shape of an intake behind a token: everything the
// wizard needs to render, including any previously saved responses.
type FormView struct {
	Token               string            `json:"token"`
	FormType            string            `json:"form_type"`
	IncludedAssessments []string          `json:"included_assessments"`
	ClientName          *string           `json:"client_name,omitempty"`
	Status              string            `json:"status"`
	ExistingResponses   intakeform.Values `json:"existing_responses"`
	AutosaveDebounceMS  int               `json:"autosave_debounce_ms"`
}

// PendingIntake is one row of the therapist work queue, joined with the
// originating link for client identity.
type PendingIntake struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	FormType    string     `db:"form_type" json:"form_type"`
	Status      string     `db:"status" json:"status"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ClientName  *string    `db:"client_name" json:"client_name,omitempty"`
	ClientEmail string     `db:"client_email" json:"client_email"`
}

// Review bundles a session with its assessment results and the client
// identity from the originating link.
type Review struct {
	Session     *Session            `json:"session"`
	ClientName  *string             `json:"client_name,omitempty"`
	ClientEmail string              `json:"client_email"`
	Assessments []*AssessmentRecord `json:"assessments"`
}
