package candidate

import (
	"fmt"
	"strings"
)

const separator = "========================================="

// Candidate describes a single applicant. Values are read-only once a source has produced them.
type Candidate struct {
	Name                string   `json:"name" yaml:"name" mapstructure:"name"`
	Age                 int      `json:"age" yaml:"age" mapstructure:"age"`
	ExperienceYears     float64  `json:"experience_years" yaml:"experience_years" mapstructure:"experience_years"`
	Location            string   `json:"location" yaml:"location" mapstructure:"location"`
	Nationality         string   `json:"nationality" yaml:"nationality" mapstructure:"nationality"`
	EducationBackground []string `json:"education_background" yaml:"education_background" mapstructure:"education_background"`
	WorkBackground      []string `json:"work_background" yaml:"work_background" mapstructure:"work_background"`
	LinkedInURL         string   `json:"linkedin_url" yaml:"linkedin_url" mapstructure:"linkedin_url"`
	CurrentPosition     string   `json:"current_position" yaml:"current_position" mapstructure:"current_position"`
	Skills              []string `json:"skills,omitempty" yaml:"skills,omitempty" mapstructure:"skills"`
	Languages           []string `json:"languages,omitempty" yaml:"languages,omitempty" mapstructure:"languages"`
	Email               string   `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`
	Phone               string   `json:"phone,omitempty" yaml:"phone,omitempty" mapstructure:"phone"`
}

// Backgrounds returns education entries followed by work entries.
func (c *Candidate) Backgrounds() []string {
	all := make([]string, 0, len(c.EducationBackground)+len(c.WorkBackground))
	all = append(all, c.EducationBackground...)
	return append(all, c.WorkBackground...)
}

// HasBackgroundIn reports whether any education or work entry is one of terms.
func (c *Candidate) HasBackgroundIn(terms Terms) bool {
	return terms.MatchesAny(c.Backgrounds()...)
}

func (c *Candidate) String() string {
	var b strings.Builder
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Position: %s\n", c.CurrentPosition)
	fmt.Fprintf(&b, "Experience: %.1f years\n", c.ExperienceYears)
	fmt.Fprintf(&b, "Location: %s\n", c.Location)
	fmt.Fprintf(&b, "LinkedIn: %s\n", c.LinkedInURL)
	b.WriteString(separator)
	return b.String()
}
