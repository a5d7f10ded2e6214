package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/GTDGit/fas_dashboard/internal/store"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// collectionRepo serializes read-modify-write cycles on one collection.
// Every access goes through the seed policy first.
type collectionRepo[T store.Record] struct {
	mu     sync.Mutex
	coll   *store.Collection[T]
	seq    *store.Sequence
	seed   func() []T
	prefix string
}

func newCollectionRepo[T store.Record](backend store.Backend, name, prefix string, seed func() []T) *collectionRepo[T] {
	return &collectionRepo[T]{
		coll:   store.NewCollection[T](name, backend),
		seq:    store.NewSequence(backend, name),
		seed:   seed,
		prefix: prefix,
	}
}

func (r *collectionRepo[T]) list(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.coll.EnsureSeeded(ctx, r.seed())
}

// locked runs fn with the collection held. Writers to this collection
// block until fn returns.
func (r *collectionRepo[T]) locked(ctx context.Context, fn func(records []T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	records, err := r.coll.EnsureSeeded(ctx, r.seed())
	if err != nil {
		return err
	}
	return fn(records)
}

func (r *collectionRepo[T]) get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	records, err := r.list(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, rec := range records {
		if rec.RecordID() == id {
			return rec, true, nil
		}
	}
	return zero, false, nil
}

// insert mints a fresh id, builds the record with it, appends and persists.
func (r *collectionRepo[T]) insert(ctx context.Context, build func(id string) T) (T, error) {
	var zero T
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.coll.EnsureSeeded(ctx, r.seed())
	if err != nil {
		return zero, err
	}

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.RecordID()
	}
	n, err := r.seq.Next(ctx, utils.HighestIDNumber(r.prefix, ids))
	if err != nil {
		return zero, err
	}
	id := utils.FormatID(r.prefix, n)
	for _, existing := range ids {
		if existing == id {
			return zero, fmt.Errorf("%w: %s", utils.ErrIDCollision, id)
		}
	}

	rec := build(id)
	if err := rec.Validate(); err != nil {
		return zero, fmt.Errorf("invalid %s record: %w", r.coll.Name(), err)
	}
	if err := r.coll.Save(ctx, append(records, rec)); err != nil {
		return zero, err
	}
	return rec, nil
}

// remove deletes the record with id. found is false when nothing matched;
// the collection is then left untouched.
func (r *collectionRepo[T]) remove(ctx context.Context, id string) (T, bool, error) {
	var zero T
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.coll.EnsureSeeded(ctx, r.seed())
	if err != nil {
		return zero, false, err
	}

	kept := make([]T, 0, len(records))
	var removed T
	found := false
	for _, rec := range records {
		if rec.RecordID() == id {
			removed, found = rec, true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return zero, false, nil
	}
	if err := r.coll.Save(ctx, kept); err != nil {
		return zero, false, err
	}
	return removed, true, nil
}

func (r *collectionRepo[T]) quarantined(ctx context.Context) ([]store.QuarantineEntry, error) {
	return r.coll.Quarantined(ctx)
}
