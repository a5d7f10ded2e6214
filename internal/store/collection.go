package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Collection names used as storage keys.
const (
	Products  = "products"
	Scenarios = "scenarios"
)

// Record is implemented by every collection element.
type Record interface {
	RecordID() string
	Validate() error
}

// QuarantineKey is where rejected payloads of a collection are kept.
func QuarantineKey(collection string) string {
	return "quarantine:" + collection
}

// QuarantineEntry is one rejected payload.
type QuarantineEntry struct {
	Collection    string          `json:"collection"`
	Reason        string          `json:"reason"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	RawText       string          `json:"rawText,omitempty"`
	QuarantinedAt time.Time       `json:"quarantinedAt"`
}

// Collection loads and saves one named collection of T.
type Collection[T Record] struct {
	name    string
	backend Backend
	now     func() time.Time
}

// NewCollection binds a collection name to a backend.
func NewCollection[T Record](name string, backend Backend) *Collection[T] {
	return &Collection[T]{name: name, backend: backend, now: time.Now}
}

// Name returns the storage key of the collection.
func (c *Collection[T]) Name() string { return c.name }

// Load returns the stored records and whether the key exists at all.
// Malformed payloads never fail the call: an unparseable value yields an
// empty, present collection and invalid elements are dropped. Both are
// copied to the quarantine key first. Only backend failures return an error.
func (c *Collection[T]) Load(ctx context.Context) ([]T, bool, error) {
	raw, found, err := c.backend.Read(ctx, c.name)
	if err != nil {
		return nil, false, fmt.Errorf("read collection %s: %w", c.name, err)
	}
	if !found {
		return []T{}, false, nil
	}

	records, rejected, err := decodeRecords[T](raw)
	if err != nil {
		log.Warn().Err(err).Str("collection", c.name).Msg("Stored collection is malformed, using empty collection")
		c.quarantine(ctx, []QuarantineEntry{c.entry(err.Error(), raw)})
		return []T{}, true, nil
	}
	if len(rejected) > 0 {
		for i := range rejected {
			rejected[i].Collection = c.name
			rejected[i].QuarantinedAt = c.now().UTC()
		}
		log.Warn().Str("collection", c.name).Int("rejected", len(rejected)).Msg("Dropped invalid records from collection")
		c.quarantine(ctx, rejected)
	}
	return records, true, nil
}

// Save overwrites the whole collection. A nil or empty slice is written as [].
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.name, err)
	}
	if err := c.backend.Write(ctx, c.name, payload); err != nil {
		return fmt.Errorf("write collection %s: %w", c.name, err)
	}
	return nil
}

// EnsureSeeded returns the stored records, or persists and returns seed when
// the collection has never been written. An explicitly saved empty
// collection is returned as is.
func (c *Collection[T]) EnsureSeeded(ctx context.Context, seed []T) ([]T, error) {
	records, present, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	if present {
		return records, nil
	}

	seeded := append([]T{}, seed...)
	if err := c.Save(ctx, seeded); err != nil {
		return nil, err
	}
	log.Info().Str("collection", c.name).Int("records", len(seeded)).Msg("Seeded collection")
	return seeded, nil
}

// Quarantined returns the rejected payloads kept for the collection.
func (c *Collection[T]) Quarantined(ctx context.Context) ([]QuarantineEntry, error) {
	raw, found, err := c.backend.Read(ctx, QuarantineKey(c.name))
	if err != nil {
		return nil, fmt.Errorf("read quarantine %s: %w", c.name, err)
	}
	var entries []QuarantineEntry
	if found {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("decode quarantine %s: %w", c.name, err)
		}
	}
	return entries, nil
}

func (c *Collection[T]) entry(reason string, payload []byte) QuarantineEntry {
	e := QuarantineEntry{Collection: c.name, Reason: reason, QuarantinedAt: c.now().UTC()}
	if json.Valid(payload) {
		e.Payload = json.RawMessage(payload)
	} else {
		e.RawText = string(payload)
	}
	return e
}

// quarantine appends entries that are not already kept. Failures are logged
// only; the caller has already degraded gracefully.
func (c *Collection[T]) quarantine(ctx context.Context, entries []QuarantineEntry) {
	existing, err := c.Quarantined(ctx)
	if err != nil {
		log.Error().Err(err).Str("collection", c.name).Msg("Failed to read quarantine")
		existing = nil
	}

	added := 0
	for _, e := range entries {
		if containsEntry(existing, e) {
			continue
		}
		existing = append(existing, e)
		added++
	}
	if added == 0 {
		return
	}

	payload, err := json.Marshal(existing)
	if err != nil {
		log.Error().Err(err).Str("collection", c.name).Msg("Failed to encode quarantine")
		return
	}
	if err := c.backend.Write(ctx, QuarantineKey(c.name), payload); err != nil {
		log.Error().Err(err).Str("collection", c.name).Msg("Failed to write quarantine")
	}
}

func containsEntry(entries []QuarantineEntry, e QuarantineEntry) bool {
	for _, x := range entries {
		if x.RawText == e.RawText && bytes.Equal(compact(x.Payload), compact(e.Payload)) {
			return true
		}
	}
	return false
}

func compact(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}
