package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/resumatch/resumatch/internal/db"
	"github.com/resumatch/resumatch/internal/domain"
)

const keyPrefix = "resumatch:ledger:"

// lockStripes bounds mutex memory for arbitrarily many identities.
const lockStripes = 64

// store is the consumer interface for the ledger (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Repo is an append-only score history keyed by resume identity. Appends for
// the same identity are serialized so versions stay dense (1, 2, 3, ...)
// under concurrent analyses.
type Repo struct {
	store store
	locks [lockStripes]sync.Mutex
	now   func() time.Time
}

// New creates a ledger repository.
func New(s store) *Repo {
	return &Repo{store: s, now: time.Now}
}

// NewWithClock creates a ledger with an injected clock for tests.
func NewWithClock(s store, now func() time.Time) *Repo {
	return &Repo{store: s, now: now}
}

// Append writes the next version for an identity and returns the stored
// record. The read-modify-write is guarded per identity; records already
// written are never mutated.
func (r *Repo) Append(ctx context.Context, documentID string, snap domain.Snapshot) (domain.VersionRecord, error) {
	lock := r.lockFor(documentID)
	lock.Lock()
	defer lock.Unlock()

	history, err := r.load(ctx, documentID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.VersionRecord{}, err
	}

	record := domain.VersionRecord{
		DocumentID:   documentID,
		Version:      len(history) + 1,
		Timestamp:    r.now().UTC(),
		FinalScore:   snap.FinalScore,
		Role:         snap.Role,
		MatchedCount: snap.MatchedCount,
		MissingCount: snap.MissingCount,
	}
	history = append(history, record)

	data, err := json.Marshal(history)
	if err != nil {
		return domain.VersionRecord{}, fmt.Errorf("marshal ledger %s: %w", documentID, err)
	}
	if err := r.store.Set(ctx, ledgerKey(documentID), data); err != nil {
		return domain.VersionRecord{}, fmt.Errorf("set ledger %s: %w", documentID, err)
	}
	return record, nil
}

// History returns all versions for an identity in ascending version order.
// An identity that was never analyzed yields domain.ErrNotFound.
func (r *Repo) History(ctx context.Context, documentID string) ([]domain.VersionRecord, error) {
	return r.load(ctx, documentID)
}

func (r *Repo) load(ctx context.Context, documentID string) ([]domain.VersionRecord, error) {
	raw, err := r.store.Get(ctx, ledgerKey(documentID))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: resume %q has no score history", domain.ErrNotFound, documentID)
		}
		return nil, fmt.Errorf("get ledger %s: %w", documentID, err)
	}

	var history []domain.VersionRecord
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("unmarshal ledger %s: %w", documentID, err)
	}
	return history, nil
}

func (r *Repo) lockFor(documentID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(documentID))
	return &r.locks[h.Sum32()%lockStripes]
}

func ledgerKey(documentID string) string {
	return keyPrefix + documentID
}
