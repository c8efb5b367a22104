package intake

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/practicekit/practicekit/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Form Link Repository ===========

type formLinkRepoPG struct{ pool *pgxpool.Pool }

func NewFormLinkRepoPG(pool *pgxpool.Pool) FormLinkRepository {
	return &formLinkRepoPG{pool: pool}
}

func (r *formLinkRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const linkCols = `id, therapist_id, client_email, client_name, link_token, form_type,
	included_assessments, status, expires_at, sent_at, opened_at, created_at`

func (r *formLinkRepoPG) scanLink(row pgx.Row) (*FormLink, error) {
	var l FormLink
	err := row.Scan(&l.ID, &l.TherapistID, &l.ClientEmail, &l.ClientName, &l.Token, &l.FormType,
		&l.IncludedAssessments, &l.Status, &l.ExpiresAt, &l.SentAt, &l.OpenedAt, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &l, err
}

func (r *formLinkRepoPG) Create(ctx context.Context, l *FormLink) error {
	l.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO form_link (id, therapist_id, client_email, client_name, link_token,
			form_type, included_assessments, status, expires_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		l.ID, l.TherapistID, l.ClientEmail, l.ClientName, l.Token,
		l.FormType, l.IncludedAssessments, l.Status, l.ExpiresAt)
	return err
}

func (r *formLinkRepoPG) GetByToken(ctx context.Context, token string) (*FormLink, error) {
	return r.scanLink(r.conn(ctx).QueryRow(ctx, `SELECT `+linkCols+` FROM form_link WHERE link_token = $1`, token))
}

func (r *formLinkRepoPG) Update(ctx context.Context, l *FormLink) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE form_link SET status=$2, sent_at=$3, opened_at=$4
		WHERE id = $1`,
		l.ID, l.Status, l.SentAt, l.OpenedAt)
	return err
}

func (r *formLinkRepoPG) ListByTherapist(ctx context.Context, therapistID string, limit, offset int) ([]*FormLink, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM form_link WHERE therapist_id = $1`, therapistID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+linkCols+` FROM form_link WHERE therapist_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, therapistID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*FormLink
	for rows.Next() {
		l, err := r.scanLink(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, l)
	}
	return items, total, nil
}

// =========== Session Repository ===========

type sessionRepoPG struct{ pool *pgxpool.Pool }

func NewSessionRepoPG(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepoPG{pool: pool}
}

func (r *sessionRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const sessionCols = `id, client_id, therapist_id, form_type, responses, status,
	started_at, completed_at, reviewed_at, link_token, expires_at, created_at`

func (r *sessionRepoPG) scanSession(row pgx.Row) (*Session, error) {
	var s Session
	err := row.Scan(&s.ID, &s.ClientID, &s.TherapistID, &s.FormType, &s.Responses, &s.Status,
		&s.StartedAt, &s.CompletedAt, &s.ReviewedAt, &s.Token, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &s, err
}

func (r *sessionRepoPG) Create(ctx context.Context, s *Session) error {
	s.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO intake_session (id, therapist_id, form_type, responses, status,
			link_token, expires_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.TherapistID, s.FormType, s.Responses, s.Status,
		s.Token, s.ExpiresAt)
	return err
}

func (r *sessionRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	return r.scanSession(r.conn(ctx).QueryRow(ctx, `SELECT `+sessionCols+` FROM intake_session WHERE id = $1`, id))
}

func (r *sessionRepoPG) GetByToken(ctx context.Context, token string) (*Session, error) {
	return r.scanSession(r.conn(ctx).QueryRow(ctx, `SELECT `+sessionCols+` FROM intake_session WHERE link_token = $1`, token))
}

func (r *sessionRepoPG) Update(ctx context.Context, s *Session) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE intake_session SET client_id=$2, responses=$3, status=$4,
			started_at=$5, completed_at=$6, reviewed_at=$7
		WHERE id = $1`,
		s.ID, s.ClientID, s.Responses, s.Status,
		s.StartedAt, s.CompletedAt, s.ReviewedAt)
	return err
}

func (r *sessionRepoPG) ListPending(ctx context.Context, therapistID string, limit, offset int) ([]*PendingIntake, int, error) {
	const where = `WHERE s.therapist_id = $1 AND s.status IN ('in_progress', 'completed')`
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM intake_session s `+where, therapistID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT s.id, s.form_type, s.status, s.completed_at, s.created_at,
			l.client_name, l.client_email
		FROM intake_session s
		LEFT JOIN form_link l ON s.link_token = l.link_token
		`+where+`
		ORDER BY s.created_at DESC LIMIT $2 OFFSET $3`, therapistID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*PendingIntake
	for rows.Next() {
		var p PendingIntake
		if err := rows.Scan(&p.ID, &p.FormType, &p.Status, &p.CompletedAt, &p.CreatedAt,
			&p.ClientName, &p.ClientEmail); err != nil {
			return nil, 0, err
		}
		items = append(items, &p)
	}
	return items, total, nil
}

// =========== Assessment Record Repository ===========

type assessmentRecordRepoPG struct{ pool *pgxpool.Pool }

func NewAssessmentRecordRepoPG(pool *pgxpool.Pool) AssessmentRecordRepository {
	return &assessmentRecordRepoPG{pool: pool}
}

func (r *assessmentRecordRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const recordCols = `id, client_id, therapist_id, session_id, assessment_id,
	responses, scores, completed_at, created_at`

func (r *assessmentRecordRepoPG) Create(ctx context.Context, rec *AssessmentRecord) error {
	rec.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO assessment_record (id, client_id, therapist_id, session_id,
			assessment_id, responses, scores, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		rec.ID, rec.ClientID, rec.TherapistID, rec.SessionID,
		rec.AssessmentID, rec.Responses, rec.Scores, rec.CompletedAt)
	return err
}

func (r *assessmentRecordRepoPG) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*AssessmentRecord, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+recordCols+` FROM assessment_record WHERE session_id = $1 ORDER BY created_at`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*AssessmentRecord
	for rows.Next() {
		var rec AssessmentRecord
		if err := rows.Scan(&rec.ID, &rec.ClientID, &rec.TherapistID, &rec.SessionID, &rec.AssessmentID,
			&rec.Responses, &rec.Scores, &rec.CompletedAt, &rec.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &rec)
	}
	return items, nil
}

func (r *assessmentRecordRepoPG) AssignClient(ctx context.Context, sessionID, clientID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE assessment_record SET client_id = $2 WHERE session_id = $1`, sessionID, clientID)
	return err
}
