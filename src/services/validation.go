package services

import (
	"fmt"

	"rollout-config/src/models"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationService handles JSON schema validation for record values
type ValidationService struct {
	rolloutSchema   *gojsonschema.Schema
	whitelistSchema *gojsonschema.Schema
}

// RolloutValueSchema requires rollout and comment as own properties. Their types and
// the rollout range are not checked; values are stored as given.
const RolloutValueSchema = `{
  "type": "object",
  "required": ["rollout", "comment"]
}`

// WhitelistValueSchema requires at least one non-empty address after normalization
const WhitelistValueSchema = `{
  "type": "object",
  "properties": {
    "ipv4": {"type": "string"},
    "ipv6": {"type": "string"},
    "comment": {"type": "string"}
  },
  "required": ["ipv4", "ipv6", "comment"],
  "anyOf": [
    {"properties": {"ipv4": {"minLength": 1}}},
    {"properties": {"ipv6": {"minLength": 1}}}
  ]
}`

// NewValidationService compiles the record schemas
func NewValidationService() (*ValidationService, error) {
	rolloutSchema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(RolloutValueSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to create rollout JSON schema: %w", err)
	}

	whitelistSchema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(WhitelistValueSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to create whitelist JSON schema: %w", err)
	}

	return &ValidationService{
		rolloutSchema:   rolloutSchema,
		whitelistSchema: whitelistSchema,
	}, nil
}

// ValidateRolloutValue checks a raw rollout value
func (vs *ValidationService) ValidateRolloutValue(raw []byte) error {
	return validate(vs.rolloutSchema, gojsonschema.NewBytesLoader(raw),
		"Value must contain rollout and comment fields")
}

// ValidateWhitelistValue checks a normalized whitelist value
func (vs *ValidationService) ValidateWhitelistValue(value models.WhitelistValue) error {
	return validate(vs.whitelistSchema, gojsonschema.NewGoLoader(value), "Missing ipv4 or ipv6")
}

func validate(schema *gojsonschema.Schema, document gojsonschema.JSONLoader, message string) error {
	result, err := schema.Validate(document)
	if err != nil {
		// The document itself could not be loaded, which only happens for malformed JSON.
		return &ValidationError{
			Message: message,
			Errors:  []FieldError{{Field: "(root)", Error: err.Error()}},
		}
	}

	if result.Valid() {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		fieldErrors = append(fieldErrors, FieldError{
			Field: desc.Field(),
			Error: desc.Description(),
		})
	}

	return &ValidationError{
		Message: message,
		Errors:  fieldErrors,
	}
}
