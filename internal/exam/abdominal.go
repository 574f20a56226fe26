package exam

import "github.com/sonoreport/sonoreport/internal/compose"

func init() { register(abdominalExam()) }

func abdominalExam() *Exam {
	organ := func(key string, title compose.Text, extra ...compose.FieldConfig) compose.SectionConfig {
		fields := []compose.FieldConfig{
			{Key: "size", Label: compose.Text{EN: "Size", VI: "Kích thước"}, Unit: "mm", Suppress: []string{"Normal", "Normal / Bình thường"}},
			{Key: "echo_structure", Label: compose.Text{EN: "Echo structure", VI: "Cấu trúc hồi âm"}, Suppress: []string{"Homogeneous", "Homogeneous / Đồng nhất"}},
		}
		fields = append(fields, extra...)
		return compose.SectionConfig{Key: key, Title: title, Fields: fields, NoteKey: key + "_note"}
	}

	return &Exam{
		Type:  "abdominal",
		Title: compose.Text{EN: "Abdominal Ultrasound Report", VI: "Siêu âm ổ bụng"},
		Sections: []compose.SectionConfig{
			organ("liver", compose.Text{EN: "Liver", VI: "Gan"},
				compose.FieldConfig{Key: "surface", Label: compose.Text{EN: "Surface", VI: "Bề mặt"}, Suppress: []string{"Smooth", "Smooth / Nhẵn"}},
				compose.FieldConfig{Key: "portal_vein", Label: compose.Text{EN: "Portal vein", VI: "Tĩnh mạch cửa"}, Unit: "mm", Suppress: []string{"Normal", "Normal / Bình thường"}},
			),
			organ("gallbladder", compose.Text{EN: "Gallbladder", VI: "Túi mật"},
				compose.FieldConfig{Key: "wall", Label: compose.Text{EN: "Wall", VI: "Thành"}, Unit: "mm", Suppress: []string{"Normal", "Normal / Bình thường"}},
				compose.FieldConfig{Key: "stones", Label: compose.Text{EN: "Stones", VI: "Sỏi"}, Suppress: []string{"None", "None / Không"}},
			),
			organ("pancreas", compose.Text{EN: "Pancreas", VI: "Tụy"}),
			organ("spleen", compose.Text{EN: "Spleen", VI: "Lách"}),
			organ("right_kidney", compose.Text{EN: "Right kidney", VI: "Thận phải"},
				compose.FieldConfig{Key: "stones", Label: compose.Text{EN: "Stones", VI: "Sỏi"}, Suppress: []string{"None", "None / Không"}},
				compose.FieldConfig{Key: "hydronephrosis", Label: compose.Text{EN: "Hydronephrosis", VI: "Ứ nước"}, Suppress: []string{"None", "None / Không"}},
			),
			organ("left_kidney", compose.Text{EN: "Left kidney", VI: "Thận trái"},
				compose.FieldConfig{Key: "stones", Label: compose.Text{EN: "Stones", VI: "Sỏi"}, Suppress: []string{"None", "None / Không"}},
				compose.FieldConfig{Key: "hydronephrosis", Label: compose.Text{EN: "Hydronephrosis", VI: "Ứ nước"}, Suppress: []string{"None", "None / Không"}},
			),
			organ("bladder", compose.Text{EN: "Urinary bladder", VI: "Bàng quang"}),
			{
				Key:   "ascites",
				Title: compose.Text{EN: "Free fluid", VI: "Dịch tự do"},
				Fields: []compose.FieldConfig{
					{Key: "amount", Label: compose.Text{EN: "Amount", VI: "Lượng"}, Suppress: []string{"None", "None / Không"}},
				},
			},
			{
				Key:           "lesions",
				Title:         compose.Text{EN: "Focal lesions", VI: "Tổn thương khu trú"},
				ListKey:       "lesions",
				ItemTitle:     compose.Text{EN: "Lesion", VI: "Tổn thương"},
				ItemFields: []compose.FieldConfig{
					{Key: "organ", Label: compose.Text{EN: "Organ", VI: "Cơ quan"}},
					{Key: "location", Label: compose.Text{EN: "Location", VI: "Vị trí"}},
					{Key: "d1", Label: compose.Text{EN: "Diameter", VI: "Đường kính"}, Unit: "mm"},
					{Key: "echo_pattern", Label: compose.Text{EN: "Echo pattern", VI: "Cấu trúc hồi âm"}},
				},
			},
		},
	}
}
