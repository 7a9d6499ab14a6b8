package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"rollout-config/src/models"
	"rollout-config/src/storage"
)

// RolloutService handles validation and persistence of feature-rollout records
type RolloutService struct {
	backend           storage.Backend
	validationService *ValidationService
}

// NewRolloutService creates a new rollout service over the rollout namespace
func NewRolloutService(backend storage.Backend, validationService *ValidationService) *RolloutService {
	return &RolloutService{
		backend:           backend,
		validationService: validationService,
	}
}

// List returns the parsed value of each requested key, or of every key when none
// are given.
func (rs *RolloutService) List(ctx context.Context, keys ...string) (map[string]models.Entry, error) {
	return readEntries(ctx, rs.backend, keys)
}

// Put validates and stores a rollout value under key.
//
// The value must be a JSON object with rollout and comment fields. It is written
// as given, overwriting any previous value, then read back; the read-back value
// is what Put returns.
func (rs *RolloutService) Put(ctx context.Context, key string, value json.RawMessage) (*models.StoredRecord, error) {
	if key == "" || len(value) == 0 {
		return nil, &ValidationError{Message: "Missing key or value"}
	}

	if err := rs.validationService.ValidateRolloutValue(value); err != nil {
		return nil, err
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, value); err != nil {
		return nil, &ValidationError{Message: "Value must be valid JSON"}
	}

	if err := rs.backend.Put(ctx, key, compact.String()); err != nil {
		return nil, fmt.Errorf("failed to store rollout %q: %w", key, err)
	}

	stored, err := verifyWrite(ctx, rs.backend, key)
	if err != nil {
		return nil, err
	}

	return &models.StoredRecord{Key: key, Value: stored}, nil
}
