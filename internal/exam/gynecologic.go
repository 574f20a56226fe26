package exam

import "github.com/sonoreport/sonoreport/internal/compose"

func init() { register(gynecologicExam()) }

func gynecologicExam() *Exam {
	return &Exam{
		Type:  "gynecologic",
		Title: compose.Text{EN: "Gynecologic Ultrasound Report", VI: "Siêu âm phụ khoa"},
		Sections: []compose.SectionConfig{
			{
				Key:   "uterus",
				Title: compose.Text{EN: "Uterus", VI: "Tử cung"},
				Fields: []compose.FieldConfig{
					{Key: "position", Label: compose.Text{EN: "Position", VI: "Tư thế"}, Suppress: []string{"Anteverted", "Anteverted / Ngả trước"}},
					{Key: "d1", Label: compose.Text{EN: "Length", VI: "Chiều dài"}, Unit: "mm"},
					{Key: "d2", Label: compose.Text{EN: "Width", VI: "Chiều rộng"}, Unit: "mm"},
					{Key: "d3", Label: compose.Text{EN: "AP diameter", VI: "Đường kính trước sau"}, Unit: "mm"},
					{Key: "myometrium", Label: compose.Text{EN: "Myometrium", VI: "Cơ tử cung"}, Suppress: []string{"Homogeneous", "Homogeneous / Đồng nhất"}},
					{Key: "endometrium", Label: compose.Text{EN: "Endometrial thickness", VI: "Nội mạc tử cung"}, Unit: "mm"},
				},
				NoteKey: "uterus_note",
			},
			{
				Key:   "right_ovary",
				Title: compose.Text{EN: "Right ovary", VI: "Buồng trứng phải"},
				Fields: []compose.FieldConfig{
					{Key: "d1", Label: compose.Text{EN: "Length", VI: "Chiều dài"}, Unit: "mm"},
					{Key: "d2", Label: compose.Text{EN: "Width", VI: "Chiều rộng"}, Unit: "mm"},
					{Key: "appearance", Label: compose.Text{EN: "Appearance", VI: "Hình thái"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
				},
			},
			{
				Key:   "left_ovary",
				Title: compose.Text{EN: "Left ovary", VI: "Buồng trứng trái"},
				Fields: []compose.FieldConfig{
					{Key: "d1", Label: compose.Text{EN: "Length", VI: "Chiều dài"}, Unit: "mm"},
					{Key: "d2", Label: compose.Text{EN: "Width", VI: "Chiều rộng"}, Unit: "mm"},
					{Key: "appearance", Label: compose.Text{EN: "Appearance", VI: "Hình thái"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
				},
			},
			{
				Key:           "masses",
				Title:         compose.Text{EN: "Adnexal masses", VI: "Khối phần phụ"},
				ListKey:       "masses",
				ItemTitle:     compose.Text{EN: "Mass", VI: "Khối"},
				ItemFields: []compose.FieldConfig{
					{Key: "location", Label: compose.Text{EN: "Location", VI: "Vị trí"}},
					{Key: "d1", Label: compose.Text{EN: "Diameter", VI: "Đường kính"}, Unit: "mm"},
					{Key: "echo_pattern", Label: compose.Text{EN: "Echo pattern", VI: "Cấu trúc hồi âm"}},
					{Key: "septations", Label: compose.Text{EN: "Septations", VI: "Vách ngăn"}, Suppress: []string{"None", "None / Không"}},
				},
				EmptyListLine: compose.Text{EN: "No adnexal masses identified", VI: "Không thấy khối phần phụ"},
			},
			{
				Key:   "cul_de_sac",
				Title: compose.Text{EN: "Cul-de-sac", VI: "Túi cùng Douglas"},
				Fields: []compose.FieldConfig{
					{Key: "fluid", Label: compose.Text{EN: "Free fluid", VI: "Dịch"}, Suppress: []string{"None", "None / Không"}},
				},
			},
		},
	}
}
