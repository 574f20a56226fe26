package exam

import (
	"github.com/sonoreport/sonoreport/internal/classify"
	"github.com/sonoreport/sonoreport/internal/compose"
)

func init() { register(breastExam()) }

// breastExam scores lesions with a BI-RADS-style suspicion counter:
// pathognomonic patterns short-circuit, a spiculated non-parallel mass
// forces the highest category, and everything else tallies suspicious
// descriptors against the threshold table.
func breastExam() *Exam {
	lesionFields := []compose.FieldConfig{
		{Key: "location", Label: compose.Text{EN: "Location", VI: "Vị trí"}},
		{Key: "d1", Label: compose.Text{EN: "Diameter 1", VI: "Đường kính 1"}, Unit: "mm"},
		{Key: "d2", Label: compose.Text{EN: "Diameter 2", VI: "Đường kính 2"}, Unit: "mm"},
		{Key: "d3", Label: compose.Text{EN: "Diameter 3", VI: "Đường kính 3"}, Unit: "mm"},
		{Key: "shape", Label: compose.Text{EN: "Shape", VI: "Hình dạng"}},
		{Key: "margin", Label: compose.Text{EN: "Margin", VI: "Đường bờ"}},
		{Key: "orientation", Label: compose.Text{EN: "Orientation", VI: "Hướng"}},
		{Key: "echo_pattern", Label: compose.Text{EN: "Echo pattern", VI: "Cấu trúc hồi âm"}},
		{Key: "posterior", Label: compose.Text{EN: "Posterior features", VI: "Đặc điểm phía sau"}, Suppress: []string{"None", "None / Không"}},
		{Key: "calcifications", Label: compose.Text{EN: "Calcifications", VI: "Vôi hóa"}, Suppress: []string{"None", "None / Không"}},
	}

	return &Exam{
		Type:  "breast",
		Title: compose.Text{EN: "Breast Ultrasound Report", VI: "Siêu âm tuyến vú"},
		Sections: []compose.SectionConfig{
			{
				Key:   "parenchyma",
				Title: compose.Text{EN: "Breast parenchyma", VI: "Mô tuyến vú"},
				Fields: []compose.FieldConfig{
					{Key: "composition", Label: compose.Text{EN: "Tissue composition", VI: "Thành phần mô"}, Suppress: []string{"Homogeneous fibroglandular", "Homogeneous fibroglandular / Mô sợi tuyến đồng nhất"}},
					{Key: "ducts", Label: compose.Text{EN: "Ducts", VI: "Ống tuyến"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
					{Key: "skin", Label: compose.Text{EN: "Skin", VI: "Da"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
				},
				NoteKey: "parenchyma_note",
			},
			{
				Key:           "lesions",
				Title:         compose.Text{EN: "Focal lesions", VI: "Tổn thương khu trú"},
				ListKey:       "lesions",
				ItemTitle:     compose.Text{EN: "Lesion", VI: "Tổn thương"},
				ItemFields:    lesionFields,
				EmptyListLine: compose.Text{EN: "No discrete focal lesions identified", VI: "Không thấy tổn thương khu trú"},
			},
			{
				Key:   "axilla",
				Title: compose.Text{EN: "Axillary regions", VI: "Vùng nách"},
				Fields: []compose.FieldConfig{
					{Key: "right_nodes", Label: compose.Text{EN: "Right axillary nodes", VI: "Hạch nách phải"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
					{Key: "left_nodes", Label: compose.Text{EN: "Left axillary nodes", VI: "Hạch nách trái"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
				},
				NoteKey: "axilla_note",
			},
		},
		Rules:         breastRules(),
		LesionSection: "lesions",
		FeatureKeys:   []string{"shape", "margin", "orientation", "echo_pattern", "posterior", "calcifications"},
		DiameterKeys:  []string{"d1", "d2", "d3"},
	}
}

func breastRules() *classify.Domain {
	return &classify.Domain{
		Name:       "breast-lesion",
		Categories: []string{"BI-RADS 2", "BI-RADS 3", "BI-RADS 4A", "BI-RADS 4B", "BI-RADS 4C", "BI-RADS 5"},
		Required:   []string{"shape", "margin", "orientation", "echo_pattern"},
		Definitive: []classify.DefinitiveRule{
			{
				Name: "simple cyst",
				When: []classify.Condition{
					classify.Is("echo_pattern", "Anechoic"),
					classify.Is("margin", "Circumscribed"),
					classify.In("posterior", "None", "Enhancement"),
				},
				Category: "BI-RADS 2",
			},
			{
				Name: "intramammary node",
				When: []classify.Condition{
					classify.Is("echo_pattern", "Fatty hilum"),
					classify.Is("margin", "Circumscribed"),
				},
				Category: "BI-RADS 2",
			},
		},
		Overriding: []classify.OverridingRule{
			{
				Name: "spiculated non-parallel mass",
				When: []classify.Condition{
					classify.Is("margin", "Spiculated"),
					classify.Is("orientation", "Not parallel"),
				},
				Category: "BI-RADS 5",
			},
		},
		Scoring: []classify.ScoringRule{
			{Name: "irregular shape", When: []classify.Condition{classify.Is("shape", "Irregular")}},
			{Name: "suspicious margin", When: []classify.Condition{classify.In("margin", "Indistinct", "Angular", "Microlobulated", "Spiculated")}},
			{Name: "non-parallel orientation", When: []classify.Condition{classify.Is("orientation", "Not parallel")}},
			{Name: "posterior shadowing", When: []classify.Condition{classify.In("posterior", "Shadowing", "Combined")}},
			{Name: "microcalcifications", When: []classify.Condition{classify.Is("calcifications", "Microcalcifications")}},
		},
		Thresholds: []classify.CounterThreshold{
			{MinCount: 3, Category: "BI-RADS 4C"},
			{MinCount: 2, Category: "BI-RADS 4B"},
			{MinCount: 1, Category: "BI-RADS 4A"},
		},
		BenignPattern: []classify.Condition{
			classify.In("shape", "Oval", "Round"),
			classify.Is("margin", "Circumscribed"),
			classify.Is("orientation", "Parallel"),
		},
		ZeroBenign:   "BI-RADS 3",
		ZeroFallback: "BI-RADS 2",
		Recommendations: map[string]string{
			"BI-RADS 2":  "Benign finding. Routine screening as appropriate for age.",
			"BI-RADS 3":  "Probably benign. Short-interval follow-up ultrasound in 6 months.",
			"BI-RADS 4A": "Low suspicion. Tissue diagnosis recommended (core biopsy).",
			"BI-RADS 4B": "Moderate suspicion. Tissue diagnosis recommended (core biopsy).",
			"BI-RADS 4C": "High suspicion. Tissue diagnosis recommended (core biopsy).",
			"BI-RADS 5":  "Highly suggestive of malignancy. Biopsy and surgical consultation.",
		},
	}
}
