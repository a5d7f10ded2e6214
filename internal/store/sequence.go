package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// SequenceKey is where the last minted number of a collection is kept.
func SequenceKey(collection string) string {
	return "sequence:" + collection
}

// Sequence is a monotonic counter persisted next to a collection. It is not
// safe for concurrent use; callers hold the collection lock while minting.
type Sequence struct {
	backend Backend
	key     string
}

// NewSequence creates the counter for collection.
func NewSequence(backend Backend, collection string) *Sequence {
	return &Sequence{backend: backend, key: SequenceKey(collection)}
}

// Next returns max(stored, floor)+1 and persists it. floor is the highest
// number already present in the collection, so seeded or imported records
// are never reissued.
func (s *Sequence) Next(ctx context.Context, floor int) (int, error) {
	raw, found, err := s.backend.Read(ctx, s.key)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.key, err)
	}

	current := 0
	if found {
		current, err = strconv.Atoi(strings.TrimSpace(string(raw)))
		if err != nil {
			log.Warn().Err(err).Str("key", s.key).Msg("Sequence value is malformed, restarting from collection floor")
			current = 0
		}
	}
	if floor > current {
		current = floor
	}

	next := current + 1
	if err := s.backend.Write(ctx, s.key, []byte(strconv.Itoa(next))); err != nil {
		return 0, fmt.Errorf("write %s: %w", s.key, err)
	}
	return next, nil
}
