// Package exam holds the per-exam-type configuration tables: section
// layouts with suppression defaults, classification rule domains, and
// derived-value bindings. Every exam type is pure data evaluated by the
// shared compose and classify engines; adding an organ means adding a
// table, not a program.
package exam

import (
	"sort"

	"github.com/sonoreport/sonoreport/internal/classify"
	"github.com/sonoreport/sonoreport/internal/compose"
)

// IndexGroup binds the pressure fields of one limb group to the
// ankle-brachial index calculator for banded classification.
type IndexGroup struct {
	Key                string
	Label              compose.Text
	DorsalisPedisKey   string
	PosteriorTibialKey string
	BrachialKey        string
}

// Exam is one exam type's complete configuration.
type Exam struct {
	Type     string
	Title    compose.Text
	Sections []compose.SectionConfig

	// Rules is the exam's classification domain, nil for exams that only
	// compose sections.
	Rules *classify.Domain

	// LesionSection names the section whose list items are classified;
	// FeatureKeys are the item fields projected into the classifier and
	// DiameterKeys the measurements feeding volume and size lookups.
	LesionSection string
	FeatureKeys   []string
	DiameterKeys  []string

	// IndexGroups drive index-band classification (one result per limb).
	IndexGroups []IndexGroup
}

var registry = map[string]*Exam{}

func register(e *Exam) {
	if _, dup := registry[e.Type]; dup {
		panic("exam: duplicate registration of " + e.Type)
	}
	registry[e.Type] = e
}

// Get returns the configuration for an exam type.
func Get(examType string) (*Exam, bool) {
	e, ok := registry[examType]
	return e, ok
}

// Types lists the registered exam types in stable order.
func Types() []string {
	out := make([]string, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Section returns the named section config of an exam, or false.
func (e *Exam) Section(key string) (compose.SectionConfig, bool) {
	for _, s := range e.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return compose.SectionConfig{}, false
}
