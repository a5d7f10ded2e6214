package store

import (
	"encoding/json"
	"fmt"
)

// decodeRecords parses a JSON array of T. A payload that is not an array is
// an error; elements that fail to decode, fail validation, or repeat an
// earlier id are returned as rejected entries instead.
func decodeRecords[T Record](raw []byte) ([]T, []QuarantineEntry, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, nil, fmt.Errorf("collection is not a JSON array: %w", err)
	}

	records := make([]T, 0, len(elems))
	seen := make(map[string]struct{}, len(elems))
	var rejected []QuarantineEntry
	reject := func(elem json.RawMessage, reason string) {
		rejected = append(rejected, QuarantineEntry{Reason: reason, Payload: elem})
	}

	for i, elem := range elems {
		var rec T
		if err := json.Unmarshal(elem, &rec); err != nil {
			reject(elem, fmt.Sprintf("element %d: %v", i, err))
			continue
		}
		if err := rec.Validate(); err != nil {
			reject(elem, fmt.Sprintf("element %d: %v", i, err))
			continue
		}
		if _, dup := seen[rec.RecordID()]; dup {
			reject(elem, fmt.Sprintf("element %d: duplicate id %q", i, rec.RecordID()))
			continue
		}
		seen[rec.RecordID()] = struct{}{}
		records = append(records, rec)
	}
	return records, rejected, nil
}
