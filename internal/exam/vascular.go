package exam

import (
	"github.com/sonoreport/sonoreport/internal/classify"
	"github.com/sonoreport/sonoreport/internal/compose"
)

func init() { register(vascularExam()) }

// vascularExam covers the lower-extremity arterial study. Each limb's
// ankle-brachial index is derived from its pressures and graded against
// fixed bands; reflux events and stenotic segments are repeated
// sub-entities of the findings sections.
func vascularExam() *Exam {
	limbFields := []compose.FieldConfig{
		{Key: "brachial_pressure", Label: compose.Text{EN: "Brachial pressure", VI: "Huyết áp cánh tay"}, Unit: "mmHg"},
		{Key: "dp_pressure", Label: compose.Text{EN: "Dorsalis pedis pressure", VI: "Huyết áp ĐM mu chân"}, Unit: "mmHg"},
		{Key: "pt_pressure", Label: compose.Text{EN: "Posterior tibial pressure", VI: "Huyết áp ĐM chày sau"}, Unit: "mmHg"},
		{Key: "abi", Label: compose.Text{EN: "Ankle-brachial index", VI: "Chỉ số cổ chân-cánh tay"}},
	}

	segmentFields := []compose.FieldConfig{
		{Key: "vessel", Label: compose.Text{EN: "Vessel", VI: "Mạch máu"}},
		{Key: "psv", Label: compose.Text{EN: "Peak systolic velocity", VI: "Vận tốc tâm thu đỉnh"}, Unit: "cm/s"},
		{Key: "waveform", Label: compose.Text{EN: "Waveform", VI: "Dạng sóng"}, Suppress: []string{"Triphasic", "Triphasic / Ba pha"}},
		{Key: "plaque", Label: compose.Text{EN: "Plaque", VI: "Mảng xơ vữa"}, Suppress: []string{"None", "None / Không"}},
		{Key: "stenosis", Label: compose.Text{EN: "Stenosis", VI: "Hẹp"}, Suppress: []string{"None", "None / Không"}},
	}

	return &Exam{
		Type:  "vascular",
		Title: compose.Text{EN: "Lower Extremity Arterial Ultrasound Report", VI: "Siêu âm động mạch chi dưới"},
		Sections: []compose.SectionConfig{
			{
				Key:     "right_limb",
				Title:   compose.Text{EN: "Right lower extremity", VI: "Chi dưới phải"},
				Fields:  limbFields,
				NoteKey: "right_note",
			},
			{
				Key:     "left_limb",
				Title:   compose.Text{EN: "Left lower extremity", VI: "Chi dưới trái"},
				Fields:  limbFields,
				NoteKey: "left_note",
			},
			{
				Key:           "segments",
				Title:         compose.Text{EN: "Vessel segments", VI: "Các đoạn mạch"},
				ListKey:       "segments",
				ItemTitle:     compose.Text{EN: "Segment", VI: "Đoạn"},
				ItemFields:    segmentFields,
				EmptyListLine: compose.Text{EN: "No hemodynamically significant lesions identified", VI: "Không thấy tổn thương có ý nghĩa huyết động"},
			},
		},
		Rules: vascularRules(),
		IndexGroups: []IndexGroup{
			{
				Key:                "right_limb",
				Label:              compose.Text{EN: "Right limb", VI: "Chi phải"},
				DorsalisPedisKey:   "dp_pressure",
				PosteriorTibialKey: "pt_pressure",
				BrachialKey:        "brachial_pressure",
			},
			{
				Key:                "left_limb",
				Label:              compose.Text{EN: "Left limb", VI: "Chi trái"},
				DorsalisPedisKey:   "dp_pressure",
				PosteriorTibialKey: "pt_pressure",
				BrachialKey:        "brachial_pressure",
			},
		},
	}
}

// vascularRules grades the ankle-brachial index. Bands are listed highest
// first; a value at or above 1.4 reads as non-compressible vessels rather
// than a clean result.
func vascularRules() *classify.Domain {
	return &classify.Domain{
		Name: "vascular-limb",
		Categories: []string{
			"Severe PAD",
			"Moderate PAD",
			"Mild PAD",
			"Borderline",
			"Normal",
			"Non-compressible",
		},
		Bands: []classify.IndexBand{
			{Min: 1.4, Category: "Non-compressible"},
			{Min: 1.0, Category: "Normal"},
			{Min: 0.91, Category: "Borderline"},
			{Min: 0.70, Category: "Mild PAD"},
			{Min: 0.40, Category: "Moderate PAD"},
			{Min: 0, Category: "Severe PAD"},
		},
		Recommendations: map[string]string{
			"Non-compressible": "Index unreliable due to calcified vessels. Toe-brachial index recommended.",
			"Normal":           "No evidence of peripheral arterial disease.",
			"Borderline":       "Borderline result. Clinical correlation and risk factor management.",
			"Mild PAD":         "Mild peripheral arterial disease. Risk factor modification and surveillance.",
			"Moderate PAD":     "Moderate peripheral arterial disease. Vascular consultation recommended.",
			"Severe PAD":       "Severe peripheral arterial disease. Urgent vascular referral.",
		},
	}
}
