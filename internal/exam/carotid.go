package exam

import "github.com/sonoreport/sonoreport/internal/compose"

func init() { register(carotidExam()) }

func carotidExam() *Exam {
	side := func(key string, title compose.Text) compose.SectionConfig {
		return compose.SectionConfig{
			Key:   key,
			Title: title,
			Fields: []compose.FieldConfig{
				{Key: "imt", Label: compose.Text{EN: "Intima-media thickness", VI: "Độ dày nội trung mạc"}, Unit: "mm", Suppress: []string{"Normal", "Normal / Bình thường"}},
				{Key: "cca_psv", Label: compose.Text{EN: "CCA peak systolic velocity", VI: "Vận tốc tâm thu ĐM cảnh chung"}, Unit: "cm/s"},
				{Key: "ica_psv", Label: compose.Text{EN: "ICA peak systolic velocity", VI: "Vận tốc tâm thu ĐM cảnh trong"}, Unit: "cm/s"},
				{Key: "ica_edv", Label: compose.Text{EN: "ICA end diastolic velocity", VI: "Vận tốc cuối tâm trương ĐM cảnh trong"}, Unit: "cm/s"},
				{Key: "vertebral_flow", Label: compose.Text{EN: "Vertebral artery flow", VI: "Dòng chảy ĐM đốt sống"}, Suppress: []string{"Antegrade", "Antegrade / Xuôi dòng"}},
			},
			NoteKey: key + "_note",
		}
	}

	return &Exam{
		Type:  "carotid",
		Title: compose.Text{EN: "Carotid Duplex Ultrasound Report", VI: "Siêu âm động mạch cảnh"},
		Sections: []compose.SectionConfig{
			side("right_carotid", compose.Text{EN: "Right carotid system", VI: "Hệ cảnh phải"}),
			side("left_carotid", compose.Text{EN: "Left carotid system", VI: "Hệ cảnh trái"}),
			{
				Key:           "plaques",
				Title:         compose.Text{EN: "Plaques", VI: "Mảng xơ vữa"},
				ListKey:       "plaques",
				ItemTitle:     compose.Text{EN: "Plaque", VI: "Mảng"},
				ItemFields: []compose.FieldConfig{
					{Key: "vessel", Label: compose.Text{EN: "Vessel", VI: "Mạch máu"}},
					{Key: "thickness", Label: compose.Text{EN: "Thickness", VI: "Bề dày"}, Unit: "mm"},
					{Key: "surface", Label: compose.Text{EN: "Surface", VI: "Bề mặt"}},
					{Key: "stenosis_pct", Label: compose.Text{EN: "Stenosis", VI: "Hẹp"}, Unit: "%"},
				},
				EmptyListLine: compose.Text{EN: "No plaque identified", VI: "Không thấy mảng xơ vữa"},
			},
		},
	}
}
