// Package report assembles composed sections into the final print-ready
// document. The output is an HTML fragment with a fixed wrapper class and
// fixed section/list class names; the print and export pipeline selects
// on those classes, so they are part of the external contract.
package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sonoreport/sonoreport/internal/classify"
	"github.com/sonoreport/sonoreport/internal/compose"
)

// PatientHeader carries the demographic block printed at the top of every
// report.
type PatientHeader struct {
	Name       string `json:"name"`
	PatientID  string `json:"patient_id"`
	Age        string `json:"age"`
	Sex        string `json:"sex"`
	ExamDate   string `json:"exam_date"`
	Indication string `json:"indication"`
}

// Footer is the signature block.
type Footer struct {
	Physician string `json:"physician"`
	Facility  string `json:"facility"`
}

// ClassificationSummary pairs a classified entity's display name with its
// result for the impression block.
type ClassificationSummary struct {
	Entity string
	Result classify.Result
}

// Input is everything the assembler needs, already resolved. Translated
// narrative (impression, recommendation) for the secondary language is
// supplied by the caller; the assembler never translates narrative text
// itself.
type Input struct {
	Title           compose.Text
	Header          PatientHeader
	Sections        []compose.Fragment
	Classifications []ClassificationSummary
	Impression      string
	Recommendation  string
	Images          []string
	Footer          Footer
	Lang            compose.Lang
}

// Assembler builds documents. The logger records degraded renderings
// (unrecognized categories, skipped images); no input may abort assembly.
type Assembler struct {
	logger zerolog.Logger
}

func NewAssembler(logger zerolog.Logger) *Assembler {
	return &Assembler{logger: logger}
}

func esc(s string) string { return html.EscapeString(s) }

// Assemble renders the document in the fixed order: title, patient
// header, findings, impression, recommendation, image gallery, signature
// footer. Empty blocks are omitted entirely. Assembling the same input
// twice produces byte-identical output.
func (a *Assembler) Assemble(in Input) string {
	var b strings.Builder
	b.WriteString(`<div class="sono-report">`)

	if in.Title.EN != "" || in.Title.VI != "" {
		b.WriteString(`<h2 class="report-title">` + esc(in.Title.For(in.Lang)) + "</h2>")
	}

	a.writeHeader(&b, in)
	a.writeFindings(&b, in)
	a.writeImpression(&b, in)

	if rec := strings.TrimSpace(in.Recommendation); rec != "" {
		b.WriteString(`<div class="report-recommendation">`)
		b.WriteString("<h3>" + esc(labelRecommend.For(in.Lang)) + "</h3>")
		b.WriteString("<p>" + esc(rec) + "</p>")
		b.WriteString("</div>")
	}

	a.writeGallery(&b, in)
	a.writeFooter(&b, in)

	b.WriteString("</div>")
	return b.String()
}

func (a *Assembler) writeHeader(b *strings.Builder, in Input) {
	h := in.Header
	rows := []struct {
		label compose.Text
		value string
	}{
		{labelPatient, h.Name},
		{labelPatientID, h.PatientID},
		{labelAge, h.Age},
		{labelSex, h.Sex},
		{labelExamDate, h.ExamDate},
		{labelIndication, h.Indication},
	}

	b.WriteString(`<table class="patient-header">`)
	for _, row := range rows {
		if strings.TrimSpace(row.value) == "" {
			continue
		}
		b.WriteString("<tr><td>" + esc(row.label.For(in.Lang)) + "</td><td>" + esc(row.value) + "</td></tr>")
	}
	b.WriteString("</table>")
}

func (a *Assembler) writeFindings(b *strings.Builder, in Input) {
	var present []compose.Fragment
	for _, frag := range in.Sections {
		if frag.Present {
			present = append(present, frag)
		}
	}
	if len(present) == 0 {
		return
	}

	b.WriteString(`<div class="report-findings">`)
	b.WriteString("<h3>" + esc(labelFindings.For(in.Lang)) + "</h3>")
	for _, frag := range present {
		b.WriteString(frag.HTML)
	}
	b.WriteString("</div>")
}

func (a *Assembler) writeImpression(b *strings.Builder, in Input) {
	impression := strings.TrimSpace(in.Impression)
	if impression == "" && len(in.Classifications) == 0 {
		return
	}

	b.WriteString(`<div class="report-impression">`)
	b.WriteString("<h3>" + esc(labelImpression.For(in.Lang)) + "</h3>")

	if len(in.Classifications) > 0 {
		b.WriteString(`<ul class="classification-summary">`)
		for _, cs := range in.Classifications {
			b.WriteString("<li><b>" + esc(cs.Entity) + ":</b> ")
			if cs.Result.Confidence == classify.ConfidenceIncomplete {
				b.WriteString(esc(labelUndetermined.For(in.Lang)))
			} else {
				category := cs.Result.Category
				if category == "" {
					// Unreachable with well-formed domain tables; degrade
					// to a visible gap rather than failing assembly.
					a.logger.Warn().Str("entity", cs.Entity).Msg("classification produced no category")
					category = labelUndetermined.For(in.Lang)
				}
				b.WriteString(esc(category))
				if cs.Result.Recommendation != "" {
					b.WriteString(" — " + esc(cs.Result.Recommendation))
				}
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}

	if impression != "" {
		b.WriteString("<p>" + esc(impression) + "</p>")
	}
	b.WriteString("</div>")
}

func (a *Assembler) writeGallery(b *strings.Builder, in Input) {
	var valid []string
	for _, url := range in.Images {
		if strings.TrimSpace(url) == "" {
			a.logger.Warn().Msg("skipping empty image URL")
			continue
		}
		valid = append(valid, url)
	}
	if len(valid) == 0 {
		return
	}

	b.WriteString(`<div class="image-gallery">`)
	b.WriteString("<h3>" + esc(labelImages.For(in.Lang)) + "</h3>")
	for i, url := range valid {
		caption := fmt.Sprintf("%s %d", labelImageCaption.For(in.Lang), i+1)
		b.WriteString(fmt.Sprintf(`<figure><img src="%s" alt="%s"/><figcaption>%s</figcaption></figure>`,
			esc(url), esc(caption), esc(caption)))
	}
	b.WriteString("</div>")
}

func (a *Assembler) writeFooter(b *strings.Builder, in Input) {
	b.WriteString(`<div class="signature-footer">`)
	if in.Footer.Facility != "" {
		b.WriteString(`<p class="facility">` + esc(in.Footer.Facility) + "</p>")
	}
	b.WriteString("<p>" + esc(labelPhysician.For(in.Lang)) + ": " + esc(in.Footer.Physician) + "</p>")
	b.WriteString("</div>")
}
