package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/recruitly/talentflow/internal/interview"
	"github.com/recruitly/talentflow/pkg/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "interview:"

// InterviewStore is a cache-aside decorator over the interview record
// store. Reads by id are served from redis when possible; every mutation
// drops the cached entry. Cache errors are logged and never surfaced so
// a redis outage degrades to plain database reads.
type InterviewStore struct {
	interview.InterviewStore
	rdb *redis.Client
	ttl time.Duration
	log *zap.SugaredLogger
}

func WrapInterviewStore(inner interview.InterviewStore, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *InterviewStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &InterviewStore{InterviewStore: inner, rdb: rdb, ttl: ttl, log: log.Sugar()}
}

func (s *InterviewStore) GetByID(ctx context.Context, id string) (*model.Interview, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if err == nil {
		var iv model.Interview
		if err := json.Unmarshal(raw, &iv); err == nil {
			return &iv, nil
		}
		s.drop(ctx, id)
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warnw("interview cache read failed", "interview_id", id, "err", err)
	}

	iv, err := s.InterviewStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(iv); err == nil {
		if err := s.rdb.Set(ctx, keyPrefix+iv.InterviewID, b, s.ttl).Err(); err != nil {
			s.log.Warnw("interview cache write failed", "interview_id", iv.InterviewID, "err", err)
		}
	}
	return iv, nil
}

func (s *InterviewStore) Insert(ctx context.Context, iv *model.Interview) error {
	if err := s.InterviewStore.Insert(ctx, iv); err != nil {
		return err
	}
	s.drop(ctx, iv.InterviewID)
	return nil
}

func (s *InterviewStore) Update(ctx context.Context, iv *model.Interview) error {
	if err := s.InterviewStore.Update(ctx, iv); err != nil {
		return err
	}
	s.drop(ctx, iv.InterviewID)
	return nil
}

func (s *InterviewStore) Delete(ctx context.Context, candidateID, jobID string) error {
	// Resolve the composite id first so the cached copy goes with the row.
	if iv, err := s.InterviewStore.GetByCandidateAndJob(ctx, candidateID, jobID); err == nil {
		s.drop(ctx, iv.InterviewID)
	}
	return s.InterviewStore.Delete(ctx, candidateID, jobID)
}

func (s *InterviewStore) drop(ctx context.Context, id string) {
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		s.log.Warnw("interview cache invalidation failed", "interview_id", id, "err", err)
	}
}
