package inmemory

import (
	"context"
	"hash/fnv"
	"sort"
	"sync"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

const shardCount = 32

type shard struct {
	mu      sync.RWMutex
	records map[string]domain.Record
}

// RecordStore keeps records in memory, partitioned by id hash. Writers lock
// a single shard.
type RecordStore struct {
	shards [shardCount]*shard
}

func NewRecordStore() *RecordStore {
	s := &RecordStore{}
	for i := range s.shards {
		s.shards[i] = &shard{records: make(map[string]domain.Record)}
	}
	return s
}

func (s *RecordStore) shardFor(id string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return s.shards[h.Sum32()%shardCount]
}

func (s *RecordStore) UpsertOnFailure(ctx context.Context, ev domain.FailureEvent, now time.Time, p domain.Planner) (domain.Record, domain.UpsertResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.Record{}, 0, err
	}
	sh := s.shardFor(ev.PaymentID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	var cur *domain.Record
	if r, ok := sh.records[ev.PaymentID]; ok {
		cur = &r
	}
	next, res := domain.ApplyFailure(cur, ev, now, p)
	if res == domain.UpsertIgnored {
		return next, res, nil
	}
	if cur != nil {
		next.Version = cur.Version
	}
	next.Version++
	sh.records[next.ID] = next.Clone()
	return next, res, nil
}

func (s *RecordStore) MarkRecovered(ctx context.Context, id string, at time.Time) (domain.Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Record{}, false, err
	}
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	r, ok := sh.records[id]
	if !ok {
		return domain.Record{}, false, nil
	}
	r = r.Clone()
	if !r.MarkRecovered(at) {
		return r, false, nil
	}
	r.Version++
	sh.records[id] = r
	return r.Clone(), true, nil
}

func (s *RecordStore) DueForAttempt(ctx context.Context, now time.Time, limit int) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var due []domain.Record
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, r := range sh.records {
			if r.IsDue(now) {
				due = append(due, r.Clone())
			}
		}
		sh.mu.RUnlock()
	}

	sort.Slice(due, func(i, j int) bool {
		a, b := *due[i].NextAttemptAt, *due[j].NextAttemptAt
		if !a.Equal(b) {
			return a.Before(b)
		}
		return due[i].ID < due[j].ID
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (s *RecordStore) ApplyTransition(ctx context.Context, id string, mutate func(*domain.Record) error) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return domain.Record{}, err
	}
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	r, ok := sh.records[id]
	if !ok {
		return domain.Record{}, domain.UnknownRecordError(id)
	}
	r = r.Clone()
	if err := mutate(&r); err != nil {
		return domain.Record{}, err
	}
	r.ID = id
	r.Version++
	sh.records[id] = r
	return r.Clone(), nil
}

// Snapshot read-locks every shard in index order before copying, so the
// result is a single point in time.
func (s *RecordStore) Snapshot(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, sh := range s.shards {
		sh.mu.RLock()
	}
	defer func() {
		for _, sh := range s.shards {
			sh.mu.RUnlock()
		}
	}()

	n := 0
	for _, sh := range s.shards {
		n += len(sh.records)
	}
	out := make([]domain.Record, 0, n)
	for _, sh := range s.shards {
		for _, r := range sh.records {
			out = append(out, r.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *RecordStore) Get(ctx context.Context, id string) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return domain.Record{}, err
	}
	sh := s.shardFor(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	r, ok := sh.records[id]
	if !ok {
		return domain.Record{}, domain.UnknownRecordError(id)
	}
	return r.Clone(), nil
}
