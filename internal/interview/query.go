package interview

import (
	"context"
	"time"

	"github.com/recruitly/talentflow/internal/ledger"
	"github.com/recruitly/talentflow/pkg/apperr"
	"github.com/recruitly/talentflow/pkg/model"
)

// maxRangeDays bounds a date-range report to one month of data.
const maxRangeDays = 31

func (e *Engine) GetByID(ctx context.Context, id string) (*model.Interview, error) {
	return e.store.GetByID(ctx, id)
}

func (e *Engine) GetByCandidateAndJob(ctx context.Context, candidateID, jobID string) (*model.Interview, error) {
	return e.store.GetByCandidateAndJob(ctx, candidateID, jobID)
}

func (e *Engine) ListAll(ctx context.Context) ([]model.Interview, error) {
	return e.store.ListAll(ctx)
}

func (e *Engine) ListByCandidate(ctx context.Context, candidateID string) ([]model.Interview, error) {
	return e.store.ListByCandidate(ctx, candidateID)
}

func (e *Engine) ListByUser(ctx context.Context, userID string) ([]model.Interview, error) {
	return e.store.ListByUser(ctx, userID)
}

// CurrentStatus derives the latest status of an interview from its
// ledger; an interview that does not exist reports "Not Scheduled".
func (e *Engine) CurrentStatus(ctx context.Context, candidateID, jobID string) (string, error) {
	iv, err := e.store.GetByCandidateAndJob(ctx, candidateID, jobID)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			return ledger.NotScheduled, nil
		}
		return "", err
	}
	return ledger.Current(iv.StatusHistory), nil
}

// ListByDateRange validates the bounds fully before touching storage:
// start must be within the last month, end must not precede start, and
// the span must not exceed 31 days. userID narrows the result when set.
func (e *Engine) ListByDateRange(ctx context.Context, start, end time.Time, userID string) ([]model.Interview, error) {
	// The floor lives in UTC, matching the UTC-midnight dates the request
	// layer parses; server-local midnight would drift by the zone offset.
	oldest := e.now().UTC().AddDate(0, -1, 0)
	oldest = time.Date(oldest.Year(), oldest.Month(), oldest.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(oldest) {
		return nil, apperr.New(apperr.DateRange, "start_date must not be more than one month before today")
	}
	if end.Before(start) {
		return nil, apperr.New(apperr.DateRange, "end_date must not precede start_date")
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		return nil, apperr.New(apperr.DateRange, "date range must not exceed %d days", maxRangeDays)
	}
	return e.store.ListByDateRange(ctx, start, end, userID)
}
