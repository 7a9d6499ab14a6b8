package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"rollout-config/src/models"
	"rollout-config/src/storage"
)

// ParseKeys splits a comma separated key filter. Blank entries are dropped, so an
// empty filter means every key.
func ParseKeys(param string) []string {
	if param == "" {
		return nil
	}

	var keys []string
	for _, key := range strings.Split(param, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// readEntries fetches keys one by one, or every key in the namespace when keys is
// empty. A payload that does not parse becomes a corrupt entry instead of failing
// the read.
func readEntries(ctx context.Context, backend storage.Backend, keys []string) (map[string]models.Entry, error) {
	if len(keys) == 0 {
		all, err := backend.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list keys: %w", err)
		}
		keys = all
	}

	result := make(map[string]models.Entry, len(keys))
	for _, key := range keys {
		raw, err := backend.Get(ctx, key)
		if err != nil {
			if storage.IsKeyNotFoundError(err) {
				result[key] = models.Entry{State: models.EntryMissing}
				continue
			}
			return nil, fmt.Errorf("failed to read key %q: %w", key, err)
		}
		result[key] = parseEntry(key, raw)
	}

	return result, nil
}

func parseEntry(key, raw string) models.Entry {
	if raw == "" {
		return models.Entry{State: models.EntryMissing}
	}
	if !json.Valid([]byte(raw)) {
		return models.Entry{State: models.EntryCorrupt, Err: &ParseError{Key: key}}
	}
	return models.Entry{State: models.EntryOK, Value: json.RawMessage(raw)}
}

// verifyWrite reads key back right after a write. Anything other than a parseable
// value, including a backend error, is reported as a StorageConsistencyError.
// There is no retry.
func verifyWrite(ctx context.Context, backend storage.Backend, key string) (json.RawMessage, error) {
	raw, err := backend.Get(ctx, key)
	if err != nil {
		return nil, &StorageConsistencyError{Key: key, Cause: err}
	}

	entry := parseEntry(key, raw)
	if entry.Corrupt() {
		return nil, &StorageConsistencyError{Key: key, Cause: entry.Err}
	}
	if entry.State != models.EntryOK {
		return nil, &StorageConsistencyError{Key: key}
	}
	return entry.Value, nil
}
