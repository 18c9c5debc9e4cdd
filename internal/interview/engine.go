// Package interview implements the interview lifecycle: scheduling with
// conflict detection, the append-only status ledger, internal/external
// invariants and post-persist notification fan-out.
package interview

import (
	"context"
	"strings"
	"time"

	"github.com/recruitly/talentflow/internal/ledger"
	"github.com/recruitly/talentflow/pkg/apperr"
	"github.com/recruitly/talentflow/pkg/model"
	"go.uber.org/zap"
)

// statusInitial is the stage-1 ledger entry every interview starts with.
const statusInitial = "Scheduled"

type statusClass int

const (
	classFull statusClass = iota
	classCancelled
	classStatusOnly
)

// classify buckets a free-form status label into the three classes the
// engine treats specially. Unknown labels take the full-update path so
// the ledger stays open to labels introduced elsewhere.
func classify(status string) statusClass {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "cancelled":
		return classCancelled
	case "placed", "selected", "rejected":
		return classStatusOnly
	default:
		return classFull
	}
}

type Engine struct {
	store      InterviewStore
	candidates CandidateDirectory
	clients    ClientDirectory
	notifier   Notifier
	guard      guard
	log        *zap.SugaredLogger
	now        func() time.Time
}

func NewEngine(store InterviewStore, candidates CandidateDirectory, clients ClientDirectory, notifier Notifier, log *zap.Logger) *Engine {
	return &Engine{
		store:      store,
		candidates: candidates,
		clients:    clients,
		notifier:   notifier,
		guard:      guard{store: store, candidates: candidates},
		log:        log.Sugar(),
		now:        time.Now,
	}
}

// resolveLevel normalizes the requested level to lowercase, inferring it
// when absent: internal when both a client email and a zoom link were
// supplied, external otherwise.
func resolveLevel(level, clientEmail, zoomLink string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		if clientEmail != "" && zoomLink != "" {
			return model.LevelInternal, nil
		}
		return model.LevelExternal, nil
	case model.LevelInternal:
		return model.LevelInternal, nil
	case model.LevelExternal:
		return model.LevelExternal, nil
	default:
		return "", apperr.New(apperr.Validation, "invalid interview_level %q", level)
	}
}

// Schedule creates a new interview for a submitted candidate. The record
// is persisted before any notification goes out, and the composite id
// candidateId_clientId_jobId keeps the (candidate, client, job) triple
// unique at the storage layer.
func (e *Engine) Schedule(ctx context.Context, userID, userEmail string, req model.ScheduleInterviewRequest) (*model.Interview, error) {
	if err := e.guard.ensureOwned(ctx, userID, req.CandidateID); err != nil {
		return nil, err
	}
	if err := e.guard.ensureApplied(ctx, req.CandidateID, req.JobID); err != nil {
		return nil, err
	}

	clientID, err := e.clients.Resolve(ctx, req.ClientName)
	if err != nil {
		return nil, err
	}

	if err := e.guard.ensureFree(ctx, req.CandidateID, userID, req.ClientName, req.JobID, req.InterviewDateTime); err != nil {
		return nil, err
	}

	level, err := resolveLevel(req.InterviewLevel, req.ClientEmail, req.ZoomLink)
	if err != nil {
		return nil, err
	}
	if level == model.LevelInternal && (req.ClientEmail == "" || req.ZoomLink == "") {
		return nil, apperr.New(apperr.Validation, "internal interviews require client_email and zoom_link")
	}

	contact, err := e.candidates.ContactSnapshot(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}

	now := e.now()
	history, err := ledger.Append(nil, statusInitial, now)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "initialize status history")
	}

	iv := &model.Interview{
		InterviewID:              req.CandidateID + "_" + clientID + "_" + req.JobID,
		CandidateID:              req.CandidateID,
		JobID:                    req.JobID,
		UserID:                   userID,
		ClientID:                 clientID,
		ClientName:               req.ClientName,
		InterviewDateTime:        req.InterviewDateTime,
		Duration:                 req.Duration,
		InterviewLevel:           level,
		ZoomLink:                 req.ZoomLink,
		ExternalInterviewDetails: req.ExternalInterviewDetails,
		ClientEmail:              req.ClientEmail,
		CandidateEmail:           contact.Email,
		UserEmail:                userEmail,
		ContactNumber:            contact.ContactNumber,
		FullName:                 contact.FullName,
		StatusHistory:            history,
		LastModified:             now,
	}

	if err := e.store.Insert(ctx, iv); err != nil {
		return nil, err
	}

	e.log.Infow("interview scheduled", "interview_id", iv.InterviewID, "candidate_id", iv.CandidateID, "job_id", iv.JobID)
	e.notifier.InterviewScheduled(ctx, iv)
	return iv, nil
}

// Update handles reschedules and status transitions for an existing
// interview. A new status is appended to the ledger first; the status
// class then decides whether interview fields change and which email, if
// any, goes out.
func (e *Engine) Update(ctx context.Context, req model.UpdateInterviewRequest) (*model.Interview, error) {
	iv, err := e.store.GetByCandidateAndJob(ctx, req.CandidateID, req.JobID)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			return nil, apperr.New(apperr.NotScheduled, "no interview scheduled for candidate %s and job %s", req.CandidateID, req.JobID)
		}
		return nil, err
	}

	now := e.now()
	class := classify(req.NewStatus)

	if req.NewStatus != "" {
		history, err := ledger.Append(iv.StatusHistory, req.NewStatus, now)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "append status history")
		}
		iv.StatusHistory = history
	}

	switch class {
	case classCancelled:
		iv.LastModified = now
		if err := e.store.Update(ctx, iv); err != nil {
			return nil, err
		}
		e.log.Infow("interview cancelled", "interview_id", iv.InterviewID)
		e.notifier.InterviewCancelled(ctx, iv)
		return iv, nil

	case classStatusOnly:
		iv.LastModified = now
		if err := e.store.Update(ctx, iv); err != nil {
			return nil, err
		}
		e.log.Infow("interview status updated", "interview_id", iv.InterviewID, "status", req.NewStatus)
		return iv, nil
	}

	// Full update path: merge the provided fields, then re-evaluate the
	// internal/external branch from the request payload.
	if req.InterviewDateTime != nil {
		iv.InterviewDateTime = *req.InterviewDateTime
	}
	if req.Duration != "" {
		iv.Duration = req.Duration
	}
	if req.ExternalInterviewDetails != "" {
		iv.ExternalInterviewDetails = req.ExternalInterviewDetails
	}

	if req.InterviewLevel != "" {
		if _, err := resolveLevel(req.InterviewLevel, req.ClientEmail, req.ZoomLink); err != nil {
			return nil, err
		}
	}
	internal := strings.EqualFold(req.InterviewLevel, model.LevelInternal) ||
		(req.InterviewLevel == "" && req.ClientEmail != "")
	if internal {
		if req.ClientEmail == "" {
			return nil, apperr.New(apperr.Validation, "client_email is required for internal interviews")
		}
		iv.InterviewLevel = model.LevelInternal
		iv.ClientEmail = req.ClientEmail
		iv.ZoomLink = req.ZoomLink
	} else {
		iv.InterviewLevel = model.LevelExternal
		iv.ClientEmail = ""
		iv.ZoomLink = req.ZoomLink
	}

	iv.LastModified = now
	if err := e.store.Update(ctx, iv); err != nil {
		return nil, err
	}

	e.log.Infow("interview rescheduled", "interview_id", iv.InterviewID)
	e.notifier.InterviewRescheduled(ctx, iv)
	return iv, nil
}

// Delete removes the interview keyed by (candidateId, jobId).
func (e *Engine) Delete(ctx context.Context, candidateID, jobID string) error {
	if err := e.store.Delete(ctx, candidateID, jobID); err != nil {
		return err
	}
	e.log.Infow("interview deleted", "candidate_id", candidateID, "job_id", jobID)
	return nil
}
