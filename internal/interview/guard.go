package interview

import (
	"context"
	"time"

	"github.com/recruitly/talentflow/pkg/apperr"
)

// guard runs the pre-create checks. The checks are read-then-act; the
// composite interview id is unique at the storage layer and acts as the
// final arbiter for the race between check and insert.
type guard struct {
	store      InterviewStore
	candidates CandidateDirectory
}

// ensureOwned fails with Forbidden when the candidate exists but belongs
// to a different user. A missing candidate surfaces as NotFound from the
// directory itself.
func (g guard) ensureOwned(ctx context.Context, userID, candidateID string) error {
	owned, err := g.candidates.IsOwnedBy(ctx, userID, candidateID)
	if err != nil {
		return err
	}
	if !owned {
		return apperr.New(apperr.Forbidden, "candidate %s is not owned by user %s", candidateID, userID)
	}
	return nil
}

func (g guard) ensureApplied(ctx context.Context, candidateID, jobID string) error {
	applied, err := g.candidates.HasApplication(ctx, candidateID, jobID)
	if err != nil {
		return err
	}
	if !applied {
		return apperr.New(apperr.JobNotApplied, "candidate %s has not applied for job %s", candidateID, jobID)
	}
	return nil
}

// ensureFree rejects creation when the composite identity would collide,
// regardless of the requested time, and when an interview already exists
// for the same candidate, job and exact date-time.
func (g guard) ensureFree(ctx context.Context, candidateID, userID, clientName, jobID string, at time.Time) error {
	taken, err := g.store.ExistsForClient(ctx, candidateID, userID, clientName, jobID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.New(apperr.AlreadyScheduled, "interview already scheduled for candidate %s with client %s for job %s", candidateID, clientName, jobID)
	}

	clash, err := g.store.ExistsAt(ctx, candidateID, jobID, at)
	if err != nil {
		return err
	}
	if clash {
		return apperr.New(apperr.AlreadyScheduled, "candidate %s already has an interview for job %s at %s", candidateID, jobID, at.Format(time.RFC3339))
	}
	return nil
}
