package filtering

import (
	"slices"

	"go.uber.org/zap"

	"github.com/spigell/applicant-filter/internal/candidate"
)

// Filter represents a single criterion a candidate has to satisfy.
// Apply must be pure: no side effects and no dependency on previous calls.
type Filter interface {
	Name() string
	Apply(c *candidate.Candidate) bool
}

// Names of the built-in filters. They are also the registry keys.
const (
	NameAge        = "Age"
	NameExperience = "Experience"
	NameLocation   = "Location"
	NameBackground = "Background"
)

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Manager holds named filters and applies them conjunctively.
// Names are unique; enumeration follows insertion order.
type Manager struct {
	filters map[string]Filter
	order   []string
	logger  *zap.Logger
}

// NewManager creates an empty registry. A nil logger disables logging.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Manager{
		filters: make(map[string]Filter),
		logger:  logger,
	}
}

// Add registers f under its name, replacing any filter registered with the same name.
// A replaced filter keeps its position in Names.
func (m *Manager) Add(f Filter) {
	name := f.Name()
	if _, ok := m.filters[name]; !ok {
		m.order = append(m.order, name)
	}
	m.filters[name] = f
}

// Remove deregisters the filter with the given name and returns it.
func (m *Manager) Remove(name string) (Filter, bool) {
	f, ok := m.filters[name]
	if !ok {
		return nil, false
	}

	delete(m.filters, name)
	m.order = slices.DeleteFunc(m.order, func(n string) bool { return n == name })

	return f, true
}

// Get returns the filter registered under name.
func (m *Manager) Get(name string) (Filter, bool) {
	f, ok := m.filters[name]
	return f, ok
}

// Names returns registered filter names in insertion order.
func (m *Manager) Names() []string {
	return slices.Clone(m.order)
}

// Filters returns registered filters in insertion order.
func (m *Manager) Filters() []Filter {
	filters := make([]Filter, 0, len(m.order))
	for _, name := range m.order {
		filters = append(filters, m.filters[name])
	}
	return filters
}

// Len returns the number of registered filters.
func (m *Manager) Len() int {
	return len(m.order)
}

// ApplyAll returns the candidates passing every registered filter, in input order.
// With no filters registered the input is returned as is.
func (m *Manager) ApplyAll(candidates []*candidate.Candidate) []*candidate.Candidate {
	if m.Len() == 0 {
		return candidates
	}

	passed := make([]*candidate.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if m.passesAll(c) {
			passed = append(passed, c)
		}
	}

	return passed
}

// ApplyAllWithDetails evaluates every filter against every candidate and records each failure
// under the failing filter. A candidate failing several filters is listed under each of them.
func (m *Manager) ApplyAllWithDetails(candidates []*candidate.Candidate) *Results {
	results := newResults(m.order)

	for _, c := range candidates {
		passedAll := true
		for _, name := range m.order {
			if !m.filters[name].Apply(c) {
				results.failed[name] = append(results.failed[name], c)
				passedAll = false
			}
		}

		if passedAll {
			results.passed = append(results.passed, c)
		}
	}

	for _, name := range m.order {
		m.logger.Debug("filter step",
			zap.String("name", name),
			zap.Int("evaluated", len(candidates)),
			zap.Int("failed", len(results.failed[name])),
		)
	}

	return results
}

func (m *Manager) passesAll(c *candidate.Candidate) bool {
	for _, name := range m.order {
		if !m.filters[name].Apply(c) {
			return false
		}
	}
	return true
}

// Describe returns status entries for the provided filters.
func Describe(filters []Filter) []Status {
	statuses := make([]Status, 0, len(filters))
	for _, f := range filters {
		if reporter, ok := f.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{Name: f.Name()})
	}
	return statuses
}
