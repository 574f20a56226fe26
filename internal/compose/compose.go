// Package compose renders one anatomical section of an exam into an HTML
// fragment. Sections are configured as per-domain tables (labels, units,
// suppression values, sub-entity layout) so each exam type is data, not
// code. Fields that are empty or hold a declared normal/default value are
// suppressed; a section with nothing left to say contributes nothing at
// all — an omitted section means "nothing abnormal recorded", which is
// clinically distinct from an empty heading.
package compose

import (
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sonoreport/sonoreport/internal/obs"
)

// Lang selects a report language for structural labels.
type Lang string

const (
	LangEN Lang = "en"
	LangVI Lang = "vi"
)

// Text is a bilingual structural label. Labels are rendered from these
// tables per language; the service never machine-translates them.
type Text struct {
	EN string
	VI string
}

// For returns the label in the requested language, falling back to
// English when a translation is missing.
func (t Text) For(lang Lang) string {
	if lang == LangVI && t.VI != "" {
		return t.VI
	}
	return t.EN
}

// FieldConfig describes one renderable field of a section.
type FieldConfig struct {
	Key   string
	Label Text
	Unit  string
	// Suppress lists the values that read as "normal/default" for this
	// field. The list is per field by design: near-synonyms used by other
	// fields do not suppress here unless listed.
	Suppress []string
}

func (f FieldConfig) suppressed(value string) bool {
	for _, s := range f.Suppress {
		if value == s {
			return true
		}
	}
	return false
}

// SectionConfig describes one anatomical section as a table.
type SectionConfig struct {
	Key     string
	Title   Text
	Fields  []FieldConfig
	NoteKey string

	// Sub-entity list layout (lesions, vessel segments, reflux events).
	ListKey       string
	ItemTitle     Text
	ItemFields    []FieldConfig
	// EmptyListLine, when set, renders as a single placeholder line for
	// an empty list; when empty, an empty list renders nothing.
	EmptyListLine Text
}

// Fragment is one composed section. Absent fragments carry no markup and
// contribute nothing to the document, not even a heading.
type Fragment struct {
	Key     string
	Present bool
	HTML    string
}

// Absent is the suppressed-section result.
func Absent(key string) Fragment { return Fragment{Key: key} }

func esc(s string) string { return html.EscapeString(s) }

// reflowNote joins multi-line free text with explicit break markers so
// operator line breaks survive into the printed report.
func reflowNote(note string) string {
	lines := strings.Split(strings.ReplaceAll(note, "\r\n", "\n"), "\n")
	escaped := make([]string, 0, len(lines))
	for _, l := range lines {
		escaped = append(escaped, esc(l))
	}
	return strings.Join(escaped, "<br/>")
}

// fieldLine renders one surviving field as a list item, or "" when the
// field is absent or suppressed.
func fieldLine(cfg FieldConfig, node *obs.Node, lang Lang) string {
	value := node.Scalar(cfg.Key)
	if value == "" || cfg.suppressed(value) {
		return ""
	}
	line := fmt.Sprintf("<li><b>%s:</b> %s", esc(cfg.Label.For(lang)), esc(value))
	if cfg.Unit != "" {
		line += " " + esc(cfg.Unit)
	}
	return line + "</li>"
}

// Section composes one section from the observation node it reads.
// Returns an Absent fragment when every field is empty or default and no
// note or sub-entity survives. A node that violates the section's
// expected shape is logged and rendered Absent rather than failing the
// whole document.
func Section(cfg SectionConfig, node *obs.Node, lang Lang, logger zerolog.Logger) Fragment {
	if node == nil {
		return Absent(cfg.Key)
	}

	var lines []string
	for _, fc := range cfg.Fields {
		if line := fieldLine(fc, node, lang); line != "" {
			lines = append(lines, line)
		}
	}

	listHTML := ""
	if cfg.ListKey != "" {
		field := node.Get(cfg.ListKey)
		if field != nil && field.Kind != obs.KindList {
			logger.Warn().
				Str("section", cfg.Key).
				Str("field", cfg.ListKey).
				Str("kind", string(field.Kind)).
				Msg("section list field has wrong shape, rendering section absent")
			return Absent(cfg.Key)
		}
		listHTML = composeItems(cfg, node.Items(cfg.ListKey), lang)
	}

	note := ""
	if cfg.NoteKey != "" {
		note = strings.TrimSpace(node.Note(cfg.NoteKey))
	}

	if len(lines) == 0 && listHTML == "" && note == "" {
		return Absent(cfg.Key)
	}

	var b strings.Builder
	b.WriteString(`<div class="report-section">`)
	b.WriteString("<h3>" + esc(cfg.Title.For(lang)) + "</h3>")
	if len(lines) > 0 {
		b.WriteString(`<ul class="findings-section">`)
		for _, l := range lines {
			b.WriteString(l)
		}
		b.WriteString("</ul>")
	}
	b.WriteString(listHTML)
	if note != "" {
		b.WriteString(`<p class="section-note">` + reflowNote(note) + "</p>")
	}
	b.WriteString("</div>")

	return Fragment{Key: cfg.Key, Present: true, HTML: b.String()}
}

// composeItems renders repeated sub-entities independently, in stable
// creation order. An empty list yields either the configured placeholder
// line or nothing, never both.
func composeItems(cfg SectionConfig, items []*obs.Item, lang Lang) string {
	if len(items) == 0 {
		if cfg.EmptyListLine.EN == "" && cfg.EmptyListLine.VI == "" {
			return ""
		}
		return `<p class="empty-list">` + esc(cfg.EmptyListLine.For(lang)) + "</p>"
	}

	var b strings.Builder
	for i, item := range items {
		var lines []string
		for _, fc := range cfg.ItemFields {
			if line := fieldLine(fc, item.Node, lang); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}
		b.WriteString(`<div class="finding-item">`)
		b.WriteString(fmt.Sprintf("<h4>%s %d</h4>", esc(cfg.ItemTitle.For(lang)), i+1))
		b.WriteString(`<ul class="findings-section">`)
		for _, l := range lines {
			b.WriteString(l)
		}
		b.WriteString("</ul></div>")
	}
	return b.String()
}
