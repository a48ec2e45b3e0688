package filtering

import (
	"github.com/spigell/applicant-filter/internal/candidate"
)

// DefaultExcludedLocations returns the locations excluded when none are configured.
func DefaultExcludedLocations() []string {
	return []string{"Sydney"}
}

type locationFilter struct {
	excluded candidate.Terms
}

// NewLocation creates a filter rejecting candidates located in one of excluded, ignoring case.
// A nil list falls back to DefaultExcludedLocations.
func NewLocation(excluded []string) Filter {
	if excluded == nil {
		excluded = DefaultExcludedLocations()
	}
	return &locationFilter{excluded: candidate.NewTerms(excluded...)}
}

func (f *locationFilter) Name() string { return NameLocation }

func (f *locationFilter) Apply(c *candidate.Candidate) bool {
	return !f.excluded.MatchesAny(c.Location)
}

func (f *locationFilter) Status() Status {
	return Status{Name: f.Name(), Details: map[string]string{
		"excluded": f.excluded.String(),
	}}
}
