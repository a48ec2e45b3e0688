package logger

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/applicant-filter/internal/candidate"
	"github.com/spigell/applicant-filter/internal/filtering"
)

const (
	// FieldCandidate is the structured log field key for the candidate name.
	FieldCandidate = "candidate"
	// FieldLocation is the structured log field key for the candidate location.
	FieldLocation = "location"
	// FieldLinkedIn is the structured log field key for the candidate profile URL.
	FieldLinkedIn = "linkedin_url"
	// FieldFilter is the structured log field key for a filter name.
	FieldFilter = "filter"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced with a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CandidateFields returns compact fields identifying a candidate. Empty values are skipped.
func CandidateFields(c *candidate.Candidate) []zap.Field {
	if c == nil {
		return nil
	}

	return StringFields(
		StringField{Key: FieldCandidate, Value: c.Name},
		StringField{Key: FieldLocation, Value: c.Location},
		StringField{Key: FieldLinkedIn, Value: c.LinkedInURL},
	)
}

// StatusFields flattens a filter status into zap fields with details sorted by key.
func StatusFields(status filtering.Status) []zap.Field {
	fields := []StringField{{Key: FieldFilter, Value: status.Name}}

	keys := make([]string, 0, len(status.Details))
	for key := range status.Details {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fields = append(fields, StringField{Key: key, Value: status.Details[key]})
	}

	return StringFields(fields...)
}
