package filtering

import (
	"strconv"

	"github.com/spigell/applicant-filter/internal/candidate"
)

const (
	DefaultMinAge = 20
	DefaultMaxAge = 40
)

type ageFilter struct {
	min int
	max int
}

// NewAge creates a filter passing candidates aged within [min, max].
func NewAge(min, max int) Filter {
	return &ageFilter{min: min, max: max}
}

func (f *ageFilter) Name() string { return NameAge }

func (f *ageFilter) Apply(c *candidate.Candidate) bool {
	return f.min <= c.Age && c.Age <= f.max
}

func (f *ageFilter) Status() Status {
	return Status{Name: f.Name(), Details: map[string]string{
		"min_age": strconv.Itoa(f.min),
		"max_age": strconv.Itoa(f.max),
	}}
}
