package report

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sonoreport/sonoreport/internal/classify"
	"github.com/sonoreport/sonoreport/internal/compose"
)

func sampleInput() Input {
	score := 0
	return Input{
		Title: compose.Text{EN: "Thyroid Ultrasound Report", VI: "Siêu âm tuyến giáp"},
		Header: PatientHeader{
			Name:      "Nguyen Van A",
			PatientID: "BN-001234",
			Age:       "52",
			Sex:       "F",
			ExamDate:  "2026-08-30",
		},
		Sections: []compose.Fragment{
			{Key: "right_lobe", Present: true, HTML: `<div class="report-section"><h3>Right lobe</h3></div>`},
			{Key: "left_lobe", Present: false},
			{Key: "isthmus", Present: true, HTML: `<div class="report-section"><h3>Isthmus</h3></div>`},
		},
		Classifications: []ClassificationSummary{
			{Entity: "Nodule 1", Result: classify.Result{
				Category:       "TR3",
				Score:          &score,
				Recommendation: "follow-up in 12 months",
				Confidence:     classify.ConfidenceComplete,
			}},
		},
		Impression:     "Mildly suspicious nodule in the right lobe.",
		Recommendation: "Follow-up ultrasound in 12 months.",
		Images:         []string{"/img/1.png", "", "/img/2.png"},
		Footer:         Footer{Physician: "Dr. Tran B", Facility: "City Imaging Center"},
		Lang:           compose.LangEN,
	}
}

func TestAssembleIsIdempotent(t *testing.T) {
	a := NewAssembler(zerolog.Nop())
	in := sampleInput()
	first := a.Assemble(in)
	second := a.Assemble(in)
	if first != second {
		t.Fatal("assembling identical input twice must be byte-identical")
	}
}

func TestAssembleFixedOrderAndClasses(t *testing.T) {
	a := NewAssembler(zerolog.Nop())
	out := a.Assemble(sampleInput())

	if !strings.HasPrefix(out, `<div class="sono-report">`) {
		t.Error("outer wrapper class is part of the export contract")
	}
	order := []string{"report-title", "patient-header", "report-findings", "report-impression", "report-recommendation", "image-gallery", "signature-footer"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		if idx < 0 {
			t.Fatalf("marker %q missing", marker)
		}
		if idx < last {
			t.Errorf("marker %q out of order", marker)
		}
		last = idx
	}
}

func TestAbsentSectionsContributeNothing(t *testing.T) {
	a := NewAssembler(zerolog.Nop())
	out := a.Assemble(sampleInput())
	if strings.Contains(out, "left_lobe") {
		t.Error("absent section leaked into the document")
	}
	if !strings.Contains(out, "Right lobe") || !strings.Contains(out, "Isthmus") {
		t.Error("present sections missing")
	}
}

func TestEmptyBlocksAreOmitted(t *testing.T) {
	a := NewAssembler(zerolog.Nop())
	in := sampleInput()
	in.Recommendation = "  "
	in.Images = []string{"", "   "}
	out := a.Assemble(in)

	if strings.Contains(out, "report-recommendation") {
		t.Error("empty recommendation must be omitted")
	}
	if strings.Contains(out, "image-gallery") {
		t.Error("gallery with no valid images must be omitted")
	}
}

func TestIncompleteClassificationRendersUndetermined(t *testing.T) {
	a := NewAssembler(zerolog.Nop())
	in := sampleInput()
	in.Classifications = []ClassificationSummary{
		{Entity: "Nodule 1", Result: classify.Result{Confidence: classify.ConfidenceIncomplete}},
	}
	out := a.Assemble(in)
	if !strings.Contains(out, "Undetermined") {
		t.Error("incomplete classification must render as undetermined")
	}
	if strings.Contains(out, "Nodule 1:</b> </li>") {
		t.Error("incomplete classification must never render as an empty category")
	}
}

func TestSecondaryLanguageUsesOwnLabelTables(t *testing.T) {
	a := NewAssembler(zerolog.Nop())
	in := sampleInput()
	in.Lang = compose.LangVI
	// Pre-translated narrative from the external translation collaborator.
	in.Impression = "Nhân giáp nghi ngờ nhẹ ở thùy phải."
	out := a.Assemble(in)

	if !strings.Contains(out, "Siêu âm tuyến giáp") {
		t.Error("title must come from the VI label table")
	}
	for _, label := range []string{"Bệnh nhân", "Kết luận", "Đề nghị", "Bác sĩ siêu âm"} {
		if !strings.Contains(out, label) {
			t.Errorf("structural label %q missing from VI rendering", label)
		}
	}
	if !strings.Contains(out, "Nhân giáp nghi ngờ nhẹ ở thùy phải.") {
		t.Error("supplied translated narrative must be rendered verbatim")
	}
}

func TestHeaderOmitsBlankRows(t *testing.T) {
	a := NewAssembler(zerolog.Nop())
	in := sampleInput()
	in.Header.Indication = ""
	out := a.Assemble(in)
	if strings.Contains(out, "Indication") {
		t.Error("blank header rows must be omitted")
	}
}

func TestNarrativeIsEscaped(t *testing.T) {
	a := NewAssembler(zerolog.Nop())
	in := sampleInput()
	in.Impression = `<img src=x onerror="x">`
	out := a.Assemble(in)
	if strings.Contains(out, `<img src=x`) {
		t.Error("narrative text must be HTML-escaped")
	}
}
