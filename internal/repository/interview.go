package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recruitly/talentflow/pkg/apperr"
	"github.com/recruitly/talentflow/pkg/model"
)

// uniqueViolation is the PostgreSQL error code raised when an insert
// collides with the interviews primary key.
const uniqueViolation = "23505"

const interviewColumns = `
	interview_id, candidate_id, job_id, user_id, client_id, client_name,
	interview_date_time, duration, interview_level, zoom_link,
	external_interview_details, client_email, candidate_email_id,
	user_email, contact_number, full_name, status_history, is_placed,
	last_modified`

// InterviewRepository is the concrete record store for interviews. The
// primary key on interview_id is the final arbiter for the
// check-then-act race in the conflict guard.
type InterviewRepository struct {
	db *pgxpool.Pool
}

func (r *InterviewRepository) Insert(ctx context.Context, iv *model.Interview) error {
	const q = `
INSERT INTO interviews (` + interviewColumns + `
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17::jsonb, $18, $19)
`
	_, err := r.db.Exec(ctx, q,
		iv.InterviewID, iv.CandidateID, iv.JobID, iv.UserID, iv.ClientID, iv.ClientName,
		iv.InterviewDateTime, iv.Duration, iv.InterviewLevel, iv.ZoomLink,
		iv.ExternalInterviewDetails, iv.ClientEmail, iv.CandidateEmail,
		iv.UserEmail, iv.ContactNumber, iv.FullName, []byte(iv.StatusHistory), iv.IsPlaced,
		iv.LastModified,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperr.Wrap(apperr.AlreadyScheduled, err, "interview %s already exists", iv.InterviewID)
		}
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

func (r *InterviewRepository) Update(ctx context.Context, iv *model.Interview) error {
	const q = `
UPDATE interviews SET
	interview_date_time = $2, duration = $3, interview_level = $4,
	zoom_link = $5, external_interview_details = $6, client_email = $7,
	status_history = $8::jsonb, last_modified = $9
WHERE interview_id = $1
`
	tag, err := r.db.Exec(ctx, q,
		iv.InterviewID, iv.InterviewDateTime, iv.Duration, iv.InterviewLevel,
		iv.ZoomLink, iv.ExternalInterviewDetails, iv.ClientEmail,
		[]byte(iv.StatusHistory), iv.LastModified,
	)
	if err != nil {
		return fmt.Errorf("update interview: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "interview %s not found", iv.InterviewID)
	}
	return nil
}

// MarkPlaced is called by the placement collaborator once a candidate is
// hired through this interview; the lifecycle engine never sets the flag
// itself.
func (r *InterviewRepository) MarkPlaced(ctx context.Context, candidateID, jobID string) error {
	const q = `UPDATE interviews SET is_placed = TRUE, last_modified = now() WHERE candidate_id = $1 AND job_id = $2`
	tag, err := r.db.Exec(ctx, q, candidateID, jobID)
	if err != nil {
		return fmt.Errorf("mark placed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "no interview for candidate %s and job %s", candidateID, jobID)
	}
	return nil
}

func (r *InterviewRepository) Delete(ctx context.Context, candidateID, jobID string) error {
	const q = `DELETE FROM interviews WHERE candidate_id = $1 AND job_id = $2`
	tag, err := r.db.Exec(ctx, q, candidateID, jobID)
	if err != nil {
		return fmt.Errorf("delete interview: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "no interview for candidate %s and job %s", candidateID, jobID)
	}
	return nil
}

func (r *InterviewRepository) GetByID(ctx context.Context, id string) (*model.Interview, error) {
	const q = `SELECT` + interviewColumns + ` FROM interviews WHERE interview_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, q, id), "interview "+id)
}

func (r *InterviewRepository) GetByCandidateAndJob(ctx context.Context, candidateID, jobID string) (*model.Interview, error) {
	const q = `SELECT` + interviewColumns + ` FROM interviews WHERE candidate_id = $1 AND job_id = $2`
	return r.scanOne(r.db.QueryRow(ctx, q, candidateID, jobID), fmt.Sprintf("interview for candidate %s job %s", candidateID, jobID))
}

func (r *InterviewRepository) ListAll(ctx context.Context) ([]model.Interview, error) {
	const q = `SELECT` + interviewColumns + ` FROM interviews ORDER BY interview_date_time`
	return r.list(ctx, q)
}

func (r *InterviewRepository) ListByCandidate(ctx context.Context, candidateID string) ([]model.Interview, error) {
	const q = `SELECT` + interviewColumns + ` FROM interviews WHERE candidate_id = $1 ORDER BY interview_date_time`
	return r.list(ctx, q, candidateID)
}

func (r *InterviewRepository) ListByUser(ctx context.Context, userID string) ([]model.Interview, error) {
	const q = `SELECT` + interviewColumns + ` FROM interviews WHERE user_id = $1 ORDER BY interview_date_time`
	return r.list(ctx, q, userID)
}

// ListByDateRange matches on the date component of the interview time,
// optionally narrowed to one scheduling user.
func (r *InterviewRepository) ListByDateRange(ctx context.Context, start, end time.Time, userID string) ([]model.Interview, error) {
	q := `SELECT` + interviewColumns + ` FROM interviews
WHERE interview_date_time::date BETWEEN $1::date AND $2::date`
	args := []interface{}{start, end}
	if userID != "" {
		q += ` AND user_id = $3`
		args = append(args, userID)
	}
	q += ` ORDER BY interview_date_time`
	return r.list(ctx, q, args...)
}

func (r *InterviewRepository) ExistsAt(ctx context.Context, candidateID, jobID string, at time.Time) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM interviews WHERE candidate_id = $1 AND job_id = $2 AND interview_date_time = $3)`
	var exists bool
	if err := r.db.QueryRow(ctx, q, candidateID, jobID, at).Scan(&exists); err != nil {
		return false, fmt.Errorf("check interview slot: %w", err)
	}
	return exists, nil
}

func (r *InterviewRepository) ExistsForClient(ctx context.Context, candidateID, userID, clientName, jobID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM interviews WHERE candidate_id = $1 AND user_id = $2 AND client_name = $3 AND job_id = $4)`
	var exists bool
	if err := r.db.QueryRow(ctx, q, candidateID, userID, clientName, jobID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check interview for client: %w", err)
	}
	return exists, nil
}

func (r *InterviewRepository) scanOne(row pgx.Row, what string) (*model.Interview, error) {
	var iv model.Interview
	var history []byte
	err := row.Scan(
		&iv.InterviewID, &iv.CandidateID, &iv.JobID, &iv.UserID, &iv.ClientID, &iv.ClientName,
		&iv.InterviewDateTime, &iv.Duration, &iv.InterviewLevel, &iv.ZoomLink,
		&iv.ExternalInterviewDetails, &iv.ClientEmail, &iv.CandidateEmail,
		&iv.UserEmail, &iv.ContactNumber, &iv.FullName, &history, &iv.IsPlaced,
		&iv.LastModified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.NotFound, err, "%s not found", what)
		}
		return nil, fmt.Errorf("scan interview: %w", err)
	}
	iv.StatusHistory = history
	return &iv, nil
}

func (r *InterviewRepository) list(ctx context.Context, q string, args ...interface{}) ([]model.Interview, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer rows.Close()

	var out []model.Interview
	for rows.Next() {
		var iv model.Interview
		var history []byte
		if err := rows.Scan(
			&iv.InterviewID, &iv.CandidateID, &iv.JobID, &iv.UserID, &iv.ClientID, &iv.ClientName,
			&iv.InterviewDateTime, &iv.Duration, &iv.InterviewLevel, &iv.ZoomLink,
			&iv.ExternalInterviewDetails, &iv.ClientEmail, &iv.CandidateEmail,
			&iv.UserEmail, &iv.ContactNumber, &iv.FullName, &history, &iv.IsPlaced,
			&iv.LastModified,
		); err != nil {
			return nil, fmt.Errorf("scan interview row: %w", err)
		}
		iv.StatusHistory = history
		out = append(out, iv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
