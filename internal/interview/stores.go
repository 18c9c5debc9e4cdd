package interview

import (
	"context"
	"time"

	"github.com/recruitly/talentflow/pkg/model"
)

// InterviewStore is the keyed record store the engine drives. Insert
// must enforce uniqueness of the composite interview id and report a
// duplicate as apperr.AlreadyScheduled; lookups report a missing record
// as apperr.NotFound.
type InterviewStore interface {
	Insert(ctx context.Context, iv *model.Interview) error
	Update(ctx context.Context, iv *model.Interview) error
	Delete(ctx context.Context, candidateID, jobID string) error
	GetByID(ctx context.Context, id string) (*model.Interview, error)
	GetByCandidateAndJob(ctx context.Context, candidateID, jobID string) (*model.Interview, error)
	ListAll(ctx context.Context) ([]model.Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]model.Interview, error)
	ListByUser(ctx context.Context, userID string) ([]model.Interview, error)
	ListByDateRange(ctx context.Context, start, end time.Time, userID string) ([]model.Interview, error)
	ExistsAt(ctx context.Context, candidateID, jobID string, at time.Time) (bool, error)
	ExistsForClient(ctx context.Context, candidateID, userID, clientName, jobID string) (bool, error)
}

// CandidateDirectory is the candidate/submission collaborator. IsOwnedBy
// reports apperr.NotFound when the candidate record does not exist.
type CandidateDirectory interface {
	HasApplication(ctx context.Context, candidateID, jobID string) (bool, error)
	IsOwnedBy(ctx context.Context, userID, candidateID string) (bool, error)
	ContactSnapshot(ctx context.Context, candidateID string) (model.CandidateContact, error)
}

// ClientDirectory resolves a client name to its identifier, reporting
// apperr.InvalidClient for unknown names.
type ClientDirectory interface {
	Resolve(ctx context.Context, clientName string) (string, error)
}

// Notifier delivers interview emails after the record is persisted.
// Implementations never return an error; delivery problems are logged
// and swallowed so scheduling success is independent of notification
// success.
type Notifier interface {
	InterviewScheduled(ctx context.Context, iv *model.Interview)
	InterviewRescheduled(ctx context.Context, iv *model.Interview)
	InterviewCancelled(ctx context.Context, iv *model.Interview)
}
