package intake

import (
	"context"

	"github.com/google/uuid"
)

type FormLinkRepository interface {
	Create(ctx context.Context, l *FormLink) error
	GetByToken(ctx context.Context, token string) (*FormLink, error)
	Update(ctx context.Context, l *FormLink) error
	ListByTherapist(ctx context.Context, therapistID string, limit, offset int) ([]*FormLink, int, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	GetByToken(ctx context.Context, token string) (*Session, error)
	Update(ctx context.Context, s *Session) error
	ListPending(ctx context.Context, therapistID string, limit, offset int) ([]*PendingIntake, int, error)
}

type AssessmentRecordRepository interface {
	Create(ctx context.Context, r *AssessmentRecord) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*AssessmentRecord, error)
	AssignClient(ctx context.Context, sessionID, clientID uuid.UUID) error
}
