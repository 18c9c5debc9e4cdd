package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recruitly/talentflow/pkg/apperr"
	"github.com/recruitly/talentflow/pkg/model"
)

// CandidateRepository exposes the reads the lifecycle engine needs from
// the candidate/submission records. Candidate writes live elsewhere.
type CandidateRepository struct {
	db *pgxpool.Pool
}

func (r *CandidateRepository) HasApplication(ctx context.Context, candidateID, jobID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM submissions WHERE candidate_id = $1 AND job_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, q, candidateID, jobID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check application: %w", err)
	}
	return exists, nil
}

// IsOwnedBy reports whether the candidate record belongs to the given
// user; a missing candidate is NotFound, distinct from Forbidden.
func (r *CandidateRepository) IsOwnedBy(ctx context.Context, userID, candidateID string) (bool, error) {
	const q = `SELECT user_id FROM candidates WHERE candidate_id = $1`
	var owner string
	if err := r.db.QueryRow(ctx, q, candidateID).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperr.Wrap(apperr.NotFound, err, "candidate %s not found", candidateID)
		}
		return false, fmt.Errorf("scan candidate owner: %w", err)
	}
	return owner == userID, nil
}

func (r *CandidateRepository) ContactSnapshot(ctx context.Context, candidateID string) (model.CandidateContact, error) {
	const q = `SELECT full_name, contact_number, candidate_email_id FROM candidates WHERE candidate_id = $1`
	var c model.CandidateContact
	if err := r.db.QueryRow(ctx, q, candidateID).Scan(&c.FullName, &c.ContactNumber, &c.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CandidateContact{}, apperr.Wrap(apperr.NotFound, err, "candidate %s not found", candidateID)
		}
		return model.CandidateContact{}, fmt.Errorf("scan candidate contact: %w", err)
	}
	return c, nil
}
