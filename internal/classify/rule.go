// Package classify implements the generic classification engine shared by
// every exam type. A rule domain is pure data: ordered rule tables, point
// tables or index bands, plus category thresholds and recommendation text.
// The engine evaluates a feature set against a domain and returns a
// category with a recommendation; it holds no state and never errors.
package classify

// FeatureSet is the projection of an observation relevant to one rule
// domain. Absent features are omitted, never present with empty values.
type FeatureSet map[string]string

// Condition is an exact-match predicate on one feature. The condition
// holds when the feature is present and equals any of the listed values.
type Condition struct {
	Key    string
	Values []string
}

func (c Condition) matches(fs FeatureSet) bool {
	v, ok := fs[c.Key]
	if !ok {
		return false
	}
	for _, want := range c.Values {
		if v == want {
			return true
		}
	}
	return false
}

// Is builds a single-value condition.
func Is(key, value string) Condition {
	return Condition{Key: key, Values: []string{value}}
}

// In builds an any-of condition.
func In(key string, values ...string) Condition {
	return Condition{Key: key, Values: values}
}

func allMatch(conds []Condition, fs FeatureSet) bool {
	for _, c := range conds {
		if !c.matches(fs) {
			return false
		}
	}
	return len(conds) > 0
}

// DefinitiveRule short-circuits scoring: some feature combinations are
// pathognomonic and must not be diluted by a point count. Rules are tried
// in table order; the first full conjunction that holds wins.
type DefinitiveRule struct {
	Name     string
	When     []Condition
	Category string
}

// OverridingRule forces a category floor when its predicate holds,
// regardless of the suspicion count.
type OverridingRule struct {
	Name     string
	When     []Condition
	Category string
}

// ScoringRule adds one to the suspicion counter when its predicate holds.
type ScoringRule struct {
	Name string
	When []Condition
}

// CounterThreshold maps a minimum suspicion count to a category.
// Thresholds are listed highest count first.
type CounterThreshold struct {
	MinCount int
	Category string
}

// PointTable assigns per-value points for one feature. Multi-select
// features (Multi=true) carry comma-separated values whose points are
// summed, not maxed.
type PointTable struct {
	Feature string
	Multi   bool
	Points  map[string]int
}

// PointBreak maps a minimum point total to a category, listed highest
// total first.
type PointBreak struct {
	MinTotal int
	Category string
}

// SizedAdvice is a per-category follow-up policy keyed on the lesion's
// largest diameter: biopsy at or above BiopsyMM, imaging follow-up at or
// above FollowMM, otherwise no action beyond routine care.
type SizedAdvice struct {
	BiopsyMM float64
	FollowMM float64
	Biopsy   string
	Follow   string
	None     string
}

// IndexBand maps a derived index at or above Min to a category, listed
// highest band first.
type IndexBand struct {
	Min      float64
	Category string
}

// Domain is one complete rule domain: the ordered category scale, the
// required features, the rule tables, and the recommendation text. Only
// one of the three evaluation modes is populated per domain:
// counter rules, point tables, or index bands.
type Domain struct {
	Name string

	// Categories lists every category the domain can produce in
	// ascending severity order. This total ordering is what makes
	// overrides and monotonicity meaningful.
	Categories []string

	// Required features; any absent one makes the result incomplete.
	Required []string

	// Counter mode.
	Definitive    []DefinitiveRule
	Overriding    []OverridingRule
	Scoring       []ScoringRule
	Thresholds    []CounterThreshold
	BenignPattern []Condition
	ZeroBenign    string // count == 0 and the benign pattern holds
	ZeroFallback  string // count == 0 without the benign pattern

	// Point-sum mode.
	Points []PointTable
	Breaks []PointBreak

	// Index-band mode.
	Bands []IndexBand

	// Recommendation text per category. SizedAdvice, when present for a
	// category, refines the recommendation by lesion size.
	Recommendations map[string]string
	Sized           map[string]SizedAdvice
}

// rank returns the severity rank of a category, -1 for unknown.
func (d *Domain) rank(category string) int {
	for i, c := range d.Categories {
		if c == category {
			return i
		}
	}
	return -1
}

// maxCategory returns the more severe of two categories on the domain's
// scale. An unknown category loses to a known one.
func (d *Domain) maxCategory(a, b string) string {
	if d.rank(b) > d.rank(a) {
		return b
	}
	return a
}
