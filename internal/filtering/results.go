package filtering

import (
	"slices"
	"strings"

	"github.com/spigell/applicant-filter/internal/candidate"
)

const (
	// PassedKey is the category holding candidates that failed no filter.
	PassedKey    = "passed"
	failedPrefix = "failed_"
)

// FailedKey returns the category key for candidates failing the named filter.
func FailedKey(name string) string {
	return failedPrefix + name
}

// FilterNameFromKey extracts the filter name from a failure category key.
func FilterNameFromKey(key string) (string, bool) {
	return strings.CutPrefix(key, failedPrefix)
}

// Results partitions candidates by the filters they failed.
type Results struct {
	passed []*candidate.Candidate
	failed map[string][]*candidate.Candidate
	names  []string
}

func newResults(names []string) *Results {
	failed := make(map[string][]*candidate.Candidate, len(names))
	for _, name := range names {
		failed[name] = []*candidate.Candidate{}
	}

	return &Results{
		passed: []*candidate.Candidate{},
		failed: failed,
		names:  slices.Clone(names),
	}
}

// Passed returns candidates that failed no filter.
func (r *Results) Passed() []*candidate.Candidate {
	return r.passed
}

// Failed returns candidates that failed the named filter.
func (r *Results) Failed(name string) []*candidate.Candidate {
	return r.failed[name]
}

// FilterNames returns the evaluated filter names in registry order.
func (r *Results) FilterNames() []string {
	return slices.Clone(r.names)
}

// Get looks a category up by key ("passed" or "failed_<name>").
func (r *Results) Get(key string) ([]*candidate.Candidate, bool) {
	if key == PassedKey {
		return r.passed, true
	}

	name, ok := FilterNameFromKey(key)
	if !ok {
		return nil, false
	}

	list, ok := r.failed[name]
	return list, ok
}

// Categories returns every category keyed as "passed" and "failed_<name>".
func (r *Results) Categories() map[string][]*candidate.Candidate {
	categories := make(map[string][]*candidate.Candidate, len(r.names)+1)
	categories[PassedKey] = r.passed
	for _, name := range r.names {
		categories[FailedKey(name)] = r.failed[name]
	}
	return categories
}
