package classify

import (
	"fmt"
	"strings"

	"github.com/sonoreport/sonoreport/internal/calc"
)

// Confidence states whether a result was computed from a complete
// feature set or withheld because required features were absent.
type Confidence string

const (
	ConfidenceComplete   Confidence = "complete"
	ConfidenceIncomplete Confidence = "incomplete"
)

// Result is the outcome of classifying one entity. Score is nil for
// domains that do not produce a numeric score. An incomplete result
// carries an empty category and must be rendered as "undetermined",
// never as a benign reading.
type Result struct {
	Category       string     `json:"category"`
	Score          *int       `json:"score"`
	Recommendation string     `json:"recommendation"`
	Confidence     Confidence `json:"confidence"`
	Inputs         FeatureSet `json:"inputs"`
}

func incomplete(fs FeatureSet) Result {
	return Result{Confidence: ConfidenceIncomplete, Inputs: fs}
}

// Classify evaluates a feature set against a counter or point-sum domain.
// Definitive rules are tried first in table order and short-circuit with
// a fixed category. Otherwise the domain's mode decides: point tables sum
// into a total mapped through break-points; counter rules tally suspicion
// and threshold it, with overriding rules enforcing a category floor.
func Classify(d *Domain, fs FeatureSet) Result {
	for _, req := range d.Required {
		if _, ok := fs[req]; !ok {
			return incomplete(fs)
		}
	}

	for _, rule := range d.Definitive {
		if allMatch(rule.When, fs) {
			return Result{
				Category:       rule.Category,
				Recommendation: Recommend(d, rule.Category),
				Confidence:     ConfidenceComplete,
				Inputs:         fs,
			}
		}
	}

	if len(d.Points) > 0 {
		return classifyPoints(d, fs)
	}
	return classifyCounter(d, fs)
}

func classifyCounter(d *Domain, fs FeatureSet) Result {
	count := 0
	for _, rule := range d.Scoring {
		if allMatch(rule.When, fs) {
			count++
		}
	}

	category := ""
	if count == 0 {
		if allMatch(d.BenignPattern, fs) {
			category = d.ZeroBenign
		} else {
			category = d.ZeroFallback
		}
	} else {
		for _, th := range d.Thresholds {
			if count >= th.MinCount {
				category = th.Category
				break
			}
		}
	}

	for _, rule := range d.Overriding {
		if allMatch(rule.When, fs) {
			category = d.maxCategory(category, rule.Category)
		}
	}

	score := count
	return Result{
		Category:       category,
		Score:          &score,
		Recommendation: Recommend(d, category),
		Confidence:     ConfidenceComplete,
		Inputs:         fs,
	}
}

func classifyPoints(d *Domain, fs FeatureSet) Result {
	total := 0
	for _, table := range d.Points {
		v, ok := fs[table.Feature]
		if !ok {
			continue
		}
		if table.Multi {
			// Multi-select values are comma-joined; their points sum.
			for _, part := range strings.Split(v, ",") {
				total += table.Points[strings.TrimSpace(part)]
			}
		} else {
			total += table.Points[v]
		}
	}

	category := ""
	for _, br := range d.Breaks {
		if total >= br.MinTotal {
			category = br.Category
			break
		}
	}

	return Result{
		Category:       category,
		Score:          &total,
		Recommendation: Recommend(d, category),
		Confidence:     ConfidenceComplete,
		Inputs:         fs,
	}
}

// ClassifyIndex evaluates a derived index (an ABI, a resistance index)
// against a banded domain. An unavailable index yields an incomplete
// result.
func ClassifyIndex(d *Domain, v calc.Value) Result {
	if !v.OK {
		return incomplete(nil)
	}
	category := ""
	for _, band := range d.Bands {
		if v.Val >= band.Min {
			category = band.Category
			break
		}
	}
	return Result{
		Category:       category,
		Recommendation: Recommend(d, category),
		Confidence:     ConfidenceComplete,
		Inputs:         FeatureSet{"index": v.String()},
	}
}

// Recommend is the table-driven category → recommendation lookup,
// independent of which evaluation path produced the category. An
// unrecognized category yields an empty recommendation; the caller on the
// assembly path is responsible for logging it, since recommendation
// lookup itself stays pure.
func Recommend(d *Domain, category string) string {
	return d.Recommendations[category]
}

// RecommendSized refines the recommendation for domains whose follow-up
// policy keys on lesion size (a point-sum domain's follow-up interval and
// size-threshold table). Falls back to the plain recommendation when the
// category has no sized policy or the size is unavailable.
func RecommendSized(d *Domain, category string, largest calc.Value) string {
	advice, ok := d.Sized[category]
	if !ok {
		return Recommend(d, category)
	}
	if !largest.OK {
		return Recommend(d, category)
	}
	switch {
	case advice.BiopsyMM > 0 && largest.Val >= advice.BiopsyMM:
		return fmt.Sprintf("%s (≥ %.0f mm)", advice.Biopsy, advice.BiopsyMM)
	case advice.FollowMM > 0 && largest.Val >= advice.FollowMM:
		return fmt.Sprintf("%s (≥ %.0f mm)", advice.Follow, advice.FollowMM)
	default:
		return advice.None
	}
}
