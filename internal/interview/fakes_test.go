package interview

import (
	"context"
	"sort"
	"time"

	"github.com/recruitly/talentflow/pkg/apperr"
	"github.com/recruitly/talentflow/pkg/model"
)

// fakeStore is an in-memory record store keyed by the composite
// interview id, duplicating the unique-insert semantics of the real one.
type fakeStore struct {
	records map[string]*model.Interview
	queried bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*model.Interview)}
}

func (s *fakeStore) Insert(_ context.Context, iv *model.Interview) error {
	if _, ok := s.records[iv.InterviewID]; ok {
		return apperr.New(apperr.AlreadyScheduled, "interview %s already exists", iv.InterviewID)
	}
	cp := *iv
	s.records[iv.InterviewID] = &cp
	return nil
}

func (s *fakeStore) Update(_ context.Context, iv *model.Interview) error {
	if _, ok := s.records[iv.InterviewID]; !ok {
		return apperr.New(apperr.NotFound, "interview %s not found", iv.InterviewID)
	}
	cp := *iv
	s.records[iv.InterviewID] = &cp
	return nil
}

func (s *fakeStore) Delete(_ context.Context, candidateID, jobID string) error {
	for id, iv := range s.records {
		if iv.CandidateID == candidateID && iv.JobID == jobID {
			delete(s.records, id)
			return nil
		}
	}
	return apperr.New(apperr.NotFound, "no interview for candidate %s and job %s", candidateID, jobID)
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*model.Interview, error) {
	iv, ok := s.records[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "interview %s not found", id)
	}
	cp := *iv
	return &cp, nil
}

func (s *fakeStore) GetByCandidateAndJob(_ context.Context, candidateID, jobID string) (*model.Interview, error) {
	for _, iv := range s.records {
		if iv.CandidateID == candidateID && iv.JobID == jobID {
			cp := *iv
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "no interview for candidate %s and job %s", candidateID, jobID)
}

func (s *fakeStore) ListAll(_ context.Context) ([]model.Interview, error) {
	s.queried = true
	var out []model.Interview
	for _, iv := range s.records {
		out = append(out, *iv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InterviewDateTime.Before(out[j].InterviewDateTime) })
	return out, nil
}

func (s *fakeStore) ListByCandidate(ctx context.Context, candidateID string) ([]model.Interview, error) {
	all, _ := s.ListAll(ctx)
	var out []model.Interview
	for _, iv := range all {
		if iv.CandidateID == candidateID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (s *fakeStore) ListByUser(ctx context.Context, userID string) ([]model.Interview, error) {
	all, _ := s.ListAll(ctx)
	var out []model.Interview
	for _, iv := range all {
		if iv.UserID == userID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (s *fakeStore) ListByDateRange(ctx context.Context, start, end time.Time, userID string) ([]model.Interview, error) {
	all, _ := s.ListAll(ctx)
	var out []model.Interview
	for _, iv := range all {
		day := iv.InterviewDateTime.Truncate(24 * time.Hour)
		if day.Before(start.Truncate(24*time.Hour)) || day.After(end.Truncate(24*time.Hour)) {
			continue
		}
		if userID != "" && iv.UserID != userID {
			continue
		}
		out = append(out, iv)
	}
	return out, nil
}

func (s *fakeStore) ExistsAt(_ context.Context, candidateID, jobID string, at time.Time) (bool, error) {
	for _, iv := range s.records {
		if iv.CandidateID == candidateID && iv.JobID == jobID && iv.InterviewDateTime.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) ExistsForClient(_ context.Context, candidateID, userID, clientName, jobID string) (bool, error) {
	for _, iv := range s.records {
		if iv.CandidateID == candidateID && iv.UserID == userID && iv.ClientName == clientName && iv.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

type fakeCandidates struct {
	owners       map[string]string // candidate id -> owning user id
	applications map[string]bool   // candidate id + "|" + job id
	contact      model.CandidateContact
}

func (d *fakeCandidates) HasApplication(_ context.Context, candidateID, jobID string) (bool, error) {
	return d.applications[candidateID+"|"+jobID], nil
}

func (d *fakeCandidates) IsOwnedBy(_ context.Context, userID, candidateID string) (bool, error) {
	owner, ok := d.owners[candidateID]
	if !ok {
		return false, apperr.New(apperr.NotFound, "candidate %s not found", candidateID)
	}
	return owner == userID, nil
}

func (d *fakeCandidates) ContactSnapshot(_ context.Context, candidateID string) (model.CandidateContact, error) {
	if _, ok := d.owners[candidateID]; !ok {
		return model.CandidateContact{}, apperr.New(apperr.NotFound, "candidate %s not found", candidateID)
	}
	return d.contact, nil
}

type fakeClients struct {
	ids map[string]string
}

func (d *fakeClients) Resolve(_ context.Context, clientName string) (string, error) {
	id, ok := d.ids[clientName]
	if !ok {
		return "", apperr.New(apperr.InvalidClient, "unknown client %q", clientName)
	}
	return id, nil
}

type fakeNotifier struct {
	scheduled   []*model.Interview
	rescheduled []*model.Interview
	cancelled   []*model.Interview
}

func (n *fakeNotifier) InterviewScheduled(_ context.Context, iv *model.Interview) {
	n.scheduled = append(n.scheduled, iv)
}

func (n *fakeNotifier) InterviewRescheduled(_ context.Context, iv *model.Interview) {
	n.rescheduled = append(n.rescheduled, iv)
}

func (n *fakeNotifier) InterviewCancelled(_ context.Context, iv *model.Interview) {
	n.cancelled = append(n.cancelled, iv)
}
