package compose

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sonoreport/sonoreport/internal/obs"
)

var nop = zerolog.Nop()

func liverSection() SectionConfig {
	return SectionConfig{
		Key:   "liver",
		Title: Text{EN: "Liver", VI: "Gan"},
		Fields: []FieldConfig{
			{Key: "size", Label: Text{EN: "Size", VI: "Kích thước"}, Unit: "mm", Suppress: []string{"Normal"}},
			{Key: "echo", Label: Text{EN: "Echotexture", VI: "Cấu trúc hồi âm"}, Suppress: []string{"Homogeneous"}},
			{Key: "surface", Label: Text{EN: "Surface"}, Suppress: []string{"Smooth", "Regular"}},
		},
		NoteKey: "note",
	}
}

func TestAllDefaultSectionIsAbsent(t *testing.T) {
	n := obs.NewNode()
	n.SetScalar("size", "Normal")
	n.SetScalar("echo", "Homogeneous")
	n.SetScalar("surface", "Smooth")

	frag := Section(liverSection(), n, LangEN, nop)
	if frag.Present {
		t.Fatalf("all-default section must be absent, got %q", frag.HTML)
	}
	if frag.HTML != "" {
		t.Error("absent fragment must carry no markup, not even a heading")
	}
}

func TestSingleNonDefaultFieldMakesSectionPresent(t *testing.T) {
	n := obs.NewNode()
	n.SetScalar("size", "Normal")
	n.SetScalar("echo", "Coarse")
	n.SetScalar("surface", "Smooth")

	frag := Section(liverSection(), n, LangEN, nop)
	if !frag.Present {
		t.Fatal("section with one abnormal field must be present")
	}
	if !strings.Contains(frag.HTML, "Coarse") {
		t.Error("abnormal value missing from output")
	}
	if strings.Contains(frag.HTML, "Normal") || strings.Contains(frag.HTML, "Smooth") {
		t.Errorf("default values must stay suppressed: %q", frag.HTML)
	}
}

func TestSuppressionIsPerFieldList(t *testing.T) {
	// "Regular" suppresses surface but not echo: no synonym guessing.
	n := obs.NewNode()
	n.SetScalar("echo", "Regular")
	frag := Section(liverSection(), n, LangEN, nop)
	if !frag.Present || !strings.Contains(frag.HTML, "Regular") {
		t.Error("value not in the field's own suppress list must render")
	}
}

func TestEmptySectionIsAbsent(t *testing.T) {
	frag := Section(liverSection(), obs.NewNode(), LangEN, nop)
	if frag.Present {
		t.Error("empty section must be absent")
	}
	if Section(liverSection(), nil, LangEN, nop).Present {
		t.Error("nil node must be absent")
	}
}

func TestNoteAloneKeepsSectionPresent(t *testing.T) {
	n := obs.NewNode()
	n.SetNote("note", "mild hepatomegaly noted\nre-examine in 3 months")

	frag := Section(liverSection(), n, LangEN, nop)
	if !frag.Present {
		t.Fatal("note alone must keep the section present")
	}
	if !strings.Contains(frag.HTML, "mild hepatomegaly noted<br/>re-examine in 3 months") {
		t.Errorf("multi-line note must reflow with explicit breaks: %q", frag.HTML)
	}
}

func TestBilingualLabels(t *testing.T) {
	n := obs.NewNode()
	n.SetScalar("size", "165")

	en := Section(liverSection(), n, LangEN, nop)
	vi := Section(liverSection(), n, LangVI, nop)
	if !strings.Contains(en.HTML, "<h3>Liver</h3>") || !strings.Contains(en.HTML, "Size") {
		t.Errorf("EN labels wrong: %q", en.HTML)
	}
	if !strings.Contains(vi.HTML, "<h3>Gan</h3>") || !strings.Contains(vi.HTML, "Kích thước") {
		t.Errorf("VI labels wrong: %q", vi.HTML)
	}
	// Surface has no VI label; English is the fallback.
	n.SetScalar("surface", "Nodular")
	vi = Section(liverSection(), n, LangVI, nop)
	if !strings.Contains(vi.HTML, "Surface") {
		t.Error("missing translation must fall back to English")
	}
}

func TestUnitRendering(t *testing.T) {
	n := obs.NewNode()
	n.SetScalar("size", "165")
	frag := Section(liverSection(), n, LangEN, nop)
	if !strings.Contains(frag.HTML, "165 mm") {
		t.Errorf("unit missing: %q", frag.HTML)
	}
}

func TestValueEscaping(t *testing.T) {
	n := obs.NewNode()
	n.SetScalar("size", `<script>alert("x")</script>`)
	frag := Section(liverSection(), n, LangEN, nop)
	if strings.Contains(frag.HTML, "<script>") {
		t.Error("operator input must be HTML-escaped")
	}
}

func lesionSection(placeholder bool) SectionConfig {
	cfg := SectionConfig{
		Key:       "lesions",
		Title:     Text{EN: "Focal lesions", VI: "Tổn thương khu trú"},
		ListKey:   "lesions",
		ItemTitle: Text{EN: "Lesion", VI: "Tổn thương"},
		ItemFields: []FieldConfig{
			{Key: "location", Label: Text{EN: "Location"}},
			{Key: "d1", Label: Text{EN: "Diameter"}, Unit: "mm"},
			{Key: "shape", Label: Text{EN: "Shape"}},
		},
	}
	if placeholder {
		cfg.EmptyListLine = Text{EN: "No discrete focal lesions identified"}
	}
	return cfg
}

func TestSubEntitiesComposeInOrder(t *testing.T) {
	n := obs.NewNode()
	a := n.AddItem("lesions")
	a.Node.SetScalar("location", "Right lobe")
	a.Node.SetScalar("d1", "12")
	b := n.AddItem("lesions")
	b.Node.SetScalar("location", "Isthmus")

	frag := Section(lesionSection(false), n, LangEN, nop)
	if !frag.Present {
		t.Fatal("section with lesions must be present")
	}
	first := strings.Index(frag.HTML, "Right lobe")
	second := strings.Index(frag.HTML, "Isthmus")
	if first < 0 || second < 0 || first > second {
		t.Errorf("lesions out of creation order: %q", frag.HTML)
	}
	if !strings.Contains(frag.HTML, "Lesion 1") || !strings.Contains(frag.HTML, "Lesion 2") {
		t.Errorf("items must be numbered: %q", frag.HTML)
	}
}

func TestEmptyListPlaceholder(t *testing.T) {
	frag := Section(lesionSection(true), obs.NewNode(), LangEN, nop)
	if !frag.Present {
		t.Fatal("configured placeholder must keep the section present")
	}
	if strings.Count(frag.HTML, "No discrete focal lesions identified") != 1 {
		t.Errorf("placeholder must render exactly once: %q", frag.HTML)
	}

	// Without a placeholder an empty list renders nothing.
	frag = Section(lesionSection(false), obs.NewNode(), LangEN, nop)
	if frag.Present {
		t.Errorf("empty list without placeholder must be absent: %q", frag.HTML)
	}
}

func TestMalformedListFieldRendersAbsent(t *testing.T) {
	n := obs.NewNode()
	n.SetScalar("lesions", "oops") // scalar where a list is expected

	frag := Section(lesionSection(true), n, LangEN, nop)
	if frag.Present {
		t.Error("shape violation must render the section absent, not fail")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	n := obs.NewNode()
	n.SetScalar("size", "170")
	n.SetNote("note", "steatosis")
	a := Section(liverSection(), n, LangEN, nop)
	b := Section(liverSection(), n, LangEN, nop)
	if a.HTML != b.HTML {
		t.Error("composing the same node twice must be byte-identical")
	}
}
