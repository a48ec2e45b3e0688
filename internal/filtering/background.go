package filtering

import (
	"strconv"

	"github.com/spigell/applicant-filter/internal/candidate"
)

// DefaultPreferredBackgrounds returns the countries preferred when none are configured.
func DefaultPreferredBackgrounds() []string {
	return []string{"China", "UK", "United Kingdom", "England"}
}

// DefaultExcludedBackgrounds returns the countries and regions excluded when none are configured.
func DefaultExcludedBackgrounds() []string {
	return []string{
		// South Asia
		"India", "Pakistan", "Bangladesh",
		// Middle East
		"Saudi Arabia", "UAE", "United Arab Emirates", "Qatar", "Kuwait",
		"Bahrain", "Oman", "Iran", "Iraq", "Jordan", "Lebanon", "Syria",
		"Yemen", "Egypt", "Israel", "Palestine",
	}
}

type backgroundFilter struct {
	preferred candidate.Terms
	excluded  candidate.Terms
}

// NewBackground creates a filter over the combined education and work history.
// A candidate passes when no entry is excluded and at least one entry is preferred.
// Nil lists fall back to the defaults.
func NewBackground(preferred, excluded []string) Filter {
	if preferred == nil {
		preferred = DefaultPreferredBackgrounds()
	}
	if excluded == nil {
		excluded = DefaultExcludedBackgrounds()
	}

	return &backgroundFilter{
		preferred: candidate.NewTerms(preferred...),
		excluded:  candidate.NewTerms(excluded...),
	}
}

func (f *backgroundFilter) Name() string { return NameBackground }

func (f *backgroundFilter) Apply(c *candidate.Candidate) bool {
	// Exclusion is decisive.
	if c.HasBackgroundIn(f.excluded) {
		return false
	}

	return c.HasBackgroundIn(f.preferred)
}

func (f *backgroundFilter) Status() Status {
	return Status{Name: f.Name(), Details: map[string]string{
		"preferred":        f.preferred.String(),
		"excluded_regions": strconv.Itoa(f.excluded.Len()),
	}}
}
