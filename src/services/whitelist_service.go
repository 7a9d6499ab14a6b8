package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"rollout-config/src/models"
	"rollout-config/src/storage"
)

// WhitelistService handles validation, persistence and deletion of IP whitelist entries
type WhitelistService struct {
	backend           storage.Backend
	validationService *ValidationService
	ids               IDGenerator
}

// NewWhitelistService creates a new whitelist service over the whitelist namespace
func NewWhitelistService(backend storage.Backend, validationService *ValidationService, ids IDGenerator) *WhitelistService {
	return &WhitelistService{
		backend:           backend,
		validationService: validationService,
		ids:               ids,
	}
}

// List returns the parsed value of each requested key, or of every key when none
// are given.
func (ws *WhitelistService) List(ctx context.Context, keys ...string) (map[string]models.Entry, error) {
	return readEntries(ctx, ws.backend, keys)
}

// NormalizeWhitelist resolves the key and value of a write request. Each field is
// trimmed and taken from the top level when non-empty, else from the nested value.
func NormalizeWhitelist(req models.WhitelistWriteRequest) (string, models.WhitelistValue) {
	nested := models.WhitelistFields{}
	if req.Value != nil {
		nested = *req.Value
	}

	pick := func(top, fallback string) string {
		if trimmed := strings.TrimSpace(top); trimmed != "" {
			return trimmed
		}
		return strings.TrimSpace(fallback)
	}

	key := req.Key
	if key == "" {
		key = nested.Key
	}

	return key, models.WhitelistValue{
		IPv4:    pick(req.IPv4, nested.IPv4),
		IPv6:    pick(req.IPv6, nested.IPv6),
		Comment: pick(req.Comment, nested.Comment),
	}
}

// Put creates or updates a whitelist entry.
//
// A request without a key creates an entry under a generated key; a request with
// one overwrites that key. Both paths write the full normalized value and read it
// back before returning. The returned bool reports whether the call was an update.
func (ws *WhitelistService) Put(ctx context.Context, req models.WhitelistWriteRequest) (*models.StoredRecord, bool, error) {
	key, value := NormalizeWhitelist(req)

	if err := ws.validationService.ValidateWhitelistValue(value); err != nil {
		return nil, false, err
	}

	updated := key != ""
	if !updated {
		key = ws.ids.NewID()
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode whitelist entry: %w", err)
	}

	if err := ws.backend.Put(ctx, key, string(payload)); err != nil {
		return nil, false, fmt.Errorf("failed to store whitelist entry %q: %w", key, err)
	}

	stored, err := verifyWrite(ctx, ws.backend, key)
	if err != nil {
		return nil, false, err
	}

	return &models.StoredRecord{Key: key, Value: stored}, updated, nil
}

// Delete removes a whitelist entry. Deleting a key that does not exist succeeds.
func (ws *WhitelistService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return &ValidationError{Message: "Missing key"}
	}

	if err := ws.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete whitelist entry %q: %w", key, err)
	}

	return nil
}
