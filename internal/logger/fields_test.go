package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/applicant-filter/internal/candidate"
	"github.com/spigell/applicant-filter/internal/filtering"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  candidate  ", Value: "  Emily Chen  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "candidate" || fields[0].String != "Emily Chen" {
		t.Fatalf("unexpected candidate field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestCandidateFields(t *testing.T) {
	fields := CandidateFields(&candidate.Candidate{
		Name:        "Raj Patel",
		LinkedInURL: "https://linkedin.com/in/rajpatel",
	})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldCandidate || fields[0].String != "Raj Patel" {
		t.Fatalf("unexpected candidate field: %+v", fields[0])
	}

	if fields[1].Key != FieldLinkedIn {
		t.Fatalf("expected location to be skipped, got %+v", fields[1])
	}

	if CandidateFields(nil) != nil {
		t.Fatalf("expected no fields for nil candidate")
	}
}

func TestStatusFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	status := filtering.Status{Name: "Age", Details: map[string]string{"min_age": "20", "max_age": "40"}}
	logger.Info("filter", StatusFields(status)...)

	fields := StatusFields(status)
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[1].Key != "max_age" || fields[2].Key != "min_age" {
		t.Fatalf("expected details sorted by key, got %s, %s", fields[1].Key, fields[2].Key)
	}

	ctx := observed.All()[0].ContextMap()
	if ctx[FieldFilter] != "Age" || ctx["min_age"] != "20" {
		t.Fatalf("unexpected context: %v", ctx)
	}
}
