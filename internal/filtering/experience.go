package filtering

import (
	"strconv"

	"github.com/spigell/applicant-filter/internal/candidate"
)

const (
	DefaultMinExperienceYears = 1.0
	DefaultMaxExperienceYears = 3.0
)

type experienceFilter struct {
	min float64
	max float64
}

// NewExperience creates a filter passing candidates whose experience lies within [min, max].
// Bounds are compared exactly.
func NewExperience(min, max float64) Filter {
	return &experienceFilter{min: min, max: max}
}

func (f *experienceFilter) Name() string { return NameExperience }

func (f *experienceFilter) Apply(c *candidate.Candidate) bool {
	return f.min <= c.ExperienceYears && c.ExperienceYears <= f.max
}

func (f *experienceFilter) Status() Status {
	return Status{Name: f.Name(), Details: map[string]string{
		"min_years": strconv.FormatFloat(f.min, 'g', -1, 64),
		"max_years": strconv.FormatFloat(f.max, 'g', -1, 64),
	}}
}
