package candidate

import (
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/cases"
)

// Terms is a case-insensitive set of locations or countries. The zero value matches nothing.
type Terms struct {
	set mapset.Set[string]
}

// NewTerms folds terms and collects them into a set.
func NewTerms(terms ...string) Terms {
	fold := cases.Fold()
	set := mapset.NewThreadUnsafeSet[string]()
	for _, term := range terms {
		set.Add(fold.String(term))
	}
	return Terms{set: set}
}

// MatchesAny reports whether at least one of values is in the set.
func (t Terms) MatchesAny(values ...string) bool {
	if t.set == nil {
		return false
	}

	fold := cases.Fold()
	for _, v := range values {
		if t.set.Contains(fold.String(v)) {
			return true
		}
	}
	return false
}

func (t Terms) Len() int {
	if t.set == nil {
		return 0
	}
	return t.set.Cardinality()
}

// String lists the folded terms sorted and comma separated.
func (t Terms) String() string {
	if t.set == nil {
		return ""
	}
	terms := t.set.ToSlice()
	slices.Sort(terms)
	return strings.Join(terms, ",")
}
