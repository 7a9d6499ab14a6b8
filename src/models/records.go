package models

import (
	"encoding/json"
)

// InvalidJSONSentinel is what a corrupt stored payload renders as in read results.
const InvalidJSONSentinel = "Invalid JSON"

// WhitelistValue is the normalized value of a whitelist entry
type WhitelistValue struct {
	IPv4    string `json:"ipv4"`
	IPv6    string `json:"ipv6"`
	Comment string `json:"comment"`
}

// StoredRecord is a key and the value confirmed by the backend
type StoredRecord struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// EntryState tags the outcome of reading a single key
type EntryState int

const (
	EntryOK EntryState = iota
	EntryCorrupt
	EntryMissing
)

// Entry is the outcome of reading one key. Only EntryOK entries carry a Value.
type Entry struct {
	State EntryState
	Value json.RawMessage
	Err   error
}

// Corrupt reports whether the stored payload could not be parsed
func (e Entry) Corrupt() bool { return e.State == EntryCorrupt }

// MarshalJSON renders ok entries as their value, corrupt entries as the
// "Invalid JSON" sentinel and missing entries as null.
func (e Entry) MarshalJSON() ([]byte, error) {
	switch e.State {
	case EntryOK:
		return e.Value, nil
	case EntryCorrupt:
		return json.Marshal(InvalidJSONSentinel)
	default:
		return []byte("null"), nil
	}
}
