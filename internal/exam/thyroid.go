package exam

import (
	"github.com/sonoreport/sonoreport/internal/classify"
	"github.com/sonoreport/sonoreport/internal/compose"
)

func init() { register(thyroidExam()) }

// thyroidExam grades nodules with ACR TI-RADS point sums. Echogenic foci
// are multi-select and their points sum; the follow-up recommendation
// keys on the category and the nodule's largest diameter.
func thyroidExam() *Exam {
	noduleFields := []compose.FieldConfig{
		{Key: "location", Label: compose.Text{EN: "Location", VI: "Vị trí"}},
		{Key: "d1", Label: compose.Text{EN: "Diameter 1", VI: "Đường kính 1"}, Unit: "mm"},
		{Key: "d2", Label: compose.Text{EN: "Diameter 2", VI: "Đường kính 2"}, Unit: "mm"},
		{Key: "d3", Label: compose.Text{EN: "Diameter 3", VI: "Đường kính 3"}, Unit: "mm"},
		{Key: "composition", Label: compose.Text{EN: "Composition", VI: "Thành phần"}},
		{Key: "echogenicity", Label: compose.Text{EN: "Echogenicity", VI: "Độ hồi âm"}},
		{Key: "shape", Label: compose.Text{EN: "Shape", VI: "Hình dạng"}},
		{Key: "margin", Label: compose.Text{EN: "Margin", VI: "Đường bờ"}},
		{Key: "echogenic_foci", Label: compose.Text{EN: "Echogenic foci", VI: "Ổ tăng âm"}, Suppress: []string{"None", "None / Không"}},
	}

	lobeFields := func(side compose.Text) []compose.FieldConfig {
		return []compose.FieldConfig{
			{Key: "d1", Label: compose.Text{EN: "Length", VI: "Chiều dài"}, Unit: "mm"},
			{Key: "d2", Label: compose.Text{EN: "Width", VI: "Chiều rộng"}, Unit: "mm"},
			{Key: "d3", Label: compose.Text{EN: "Depth", VI: "Chiều dày"}, Unit: "mm"},
			{Key: "volume", Label: compose.Text{EN: "Volume", VI: "Thể tích"}, Unit: "mL"},
			{Key: "echo_structure", Label: side, Suppress: []string{"Homogeneous", "Homogeneous / Đồng nhất"}},
			{Key: "vascularity", Label: compose.Text{EN: "Vascularity", VI: "Tưới máu"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
		}
	}

	return &Exam{
		Type:  "thyroid",
		Title: compose.Text{EN: "Thyroid Ultrasound Report", VI: "Siêu âm tuyến giáp"},
		Sections: []compose.SectionConfig{
			{
				Key:     "right_lobe",
				Title:   compose.Text{EN: "Right lobe", VI: "Thùy phải"},
				Fields:  lobeFields(compose.Text{EN: "Echo structure", VI: "Cấu trúc hồi âm"}),
				NoteKey: "right_lobe_note",
			},
			{
				Key:     "left_lobe",
				Title:   compose.Text{EN: "Left lobe", VI: "Thùy trái"},
				Fields:  lobeFields(compose.Text{EN: "Echo structure", VI: "Cấu trúc hồi âm"}),
				NoteKey: "left_lobe_note",
			},
			{
				Key:   "isthmus",
				Title: compose.Text{EN: "Isthmus", VI: "Eo giáp"},
				Fields: []compose.FieldConfig{
					{Key: "thickness", Label: compose.Text{EN: "Thickness", VI: "Bề dày"}, Unit: "mm"},
					{Key: "echo_structure", Label: compose.Text{EN: "Echo structure", VI: "Cấu trúc hồi âm"}, Suppress: []string{"Homogeneous", "Homogeneous / Đồng nhất"}},
				},
			},
			{
				Key:           "nodules",
				Title:         compose.Text{EN: "Nodules", VI: "Nhân giáp"},
				ListKey:       "nodules",
				ItemTitle:     compose.Text{EN: "Nodule", VI: "Nhân"},
				ItemFields:    noduleFields,
				EmptyListLine: compose.Text{EN: "No discrete nodules identified", VI: "Không thấy nhân giáp"},
			},
			{
				Key:   "neck_nodes",
				Title: compose.Text{EN: "Cervical lymph nodes", VI: "Hạch cổ"},
				Fields: []compose.FieldConfig{
					{Key: "appearance", Label: compose.Text{EN: "Appearance", VI: "Hình thái"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
				},
				NoteKey: "nodes_note",
			},
		},
		Rules:         thyroidRules(),
		LesionSection: "nodules",
		FeatureKeys:   []string{"composition", "echogenicity", "shape", "margin", "echogenic_foci"},
		DiameterKeys:  []string{"d1", "d2", "d3"},
	}
}

func thyroidRules() *classify.Domain {
	return &classify.Domain{
		Name:       "thyroid-nodule",
		Categories: []string{"TR1", "TR2", "TR3", "TR4", "TR5"},
		Required:   []string{"composition", "echogenicity", "shape", "margin"},
		Points: []classify.PointTable{
			{Feature: "composition", Points: map[string]int{
				"Cystic":                0,
				"Spongiform":            0,
				"Mixed cystic and solid": 1,
				"Solid":                 2,
			}},
			{Feature: "echogenicity", Points: map[string]int{
				"Anechoic":        0,
				"Hyperechoic":     1,
				"Isoechoic":       1,
				"Hypoechoic":      2,
				"Very hypoechoic": 3,
			}},
			{Feature: "shape", Points: map[string]int{
				"Wider-than-tall": 0,
				"Taller-than-wide": 3,
			}},
			{Feature: "margin", Points: map[string]int{
				"Smooth":                      0,
				"Ill-defined":                 0,
				"Lobulated":                   2,
				"Irregular":                   2,
				"Extra-thyroidal extension":   3,
			}},
			// Foci are multi-select; points sum, not max.
			{Feature: "echogenic_foci", Multi: true, Points: map[string]int{
				"None":                          0,
				"Comet-tail artifacts":          0,
				"Macrocalcifications":           1,
				"Peripheral calcifications":     2,
				"Punctate echogenic foci":       3,
			}},
		},
		Breaks: []classify.PointBreak{
			{MinTotal: 7, Category: "TR5"},
			{MinTotal: 4, Category: "TR4"},
			{MinTotal: 3, Category: "TR3"},
			{MinTotal: 2, Category: "TR2"},
			{MinTotal: 0, Category: "TR1"},
		},
		Recommendations: map[string]string{
			"TR1": "Benign. No follow-up required.",
			"TR2": "Not suspicious. No follow-up required.",
			"TR3": "Mildly suspicious.",
			"TR4": "Moderately suspicious.",
			"TR5": "Highly suspicious.",
		},
		Sized: map[string]classify.SizedAdvice{
			"TR3": {
				BiopsyMM: 25, FollowMM: 15,
				Biopsy: "Mildly suspicious. FNA recommended",
				Follow: "Mildly suspicious. Follow-up ultrasound at 1, 3 and 5 years",
				None:   "Mildly suspicious. No follow-up required at this size.",
			},
			"TR4": {
				BiopsyMM: 15, FollowMM: 10,
				Biopsy: "Moderately suspicious. FNA recommended",
				Follow: "Moderately suspicious. Follow-up ultrasound at 1, 2, 3 and 5 years",
				None:   "Moderately suspicious. No follow-up required at this size.",
			},
			"TR5": {
				BiopsyMM: 10, FollowMM: 5,
				Biopsy: "Highly suspicious. FNA recommended",
				Follow: "Highly suspicious. Annual follow-up ultrasound for up to 5 years",
				None:   "Highly suspicious. No follow-up required at this size.",
			},
		},
	}
}
