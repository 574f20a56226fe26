package exam

import "github.com/sonoreport/sonoreport/internal/compose"

func init() { register(echocardiogramExam()) }

func echocardiogramExam() *Exam {
	valve := func(key string, title compose.Text) compose.FieldConfig {
		return compose.FieldConfig{
			Key:      key,
			Label:    title,
			Suppress: []string{"Normal", "Normal / Bình thường"},
		}
	}

	return &Exam{
		Type:  "echocardiogram",
		Title: compose.Text{EN: "Echocardiogram Report", VI: "Siêu âm tim"},
		Sections: []compose.SectionConfig{
			{
				Key:   "dimensions",
				Title: compose.Text{EN: "Chamber dimensions", VI: "Kích thước buồng tim"},
				Fields: []compose.FieldConfig{
					{Key: "lvedd", Label: compose.Text{EN: "LV end-diastolic diameter", VI: "Đường kính thất trái cuối tâm trương"}, Unit: "mm"},
					{Key: "lvesd", Label: compose.Text{EN: "LV end-systolic diameter", VI: "Đường kính thất trái cuối tâm thu"}, Unit: "mm"},
					{Key: "ivs", Label: compose.Text{EN: "Interventricular septum", VI: "Vách liên thất"}, Unit: "mm"},
					{Key: "la", Label: compose.Text{EN: "Left atrium", VI: "Nhĩ trái"}, Unit: "mm"},
					{Key: "ao", Label: compose.Text{EN: "Aortic root", VI: "Gốc động mạch chủ"}, Unit: "mm"},
				},
			},
			{
				Key:   "function",
				Title: compose.Text{EN: "Ventricular function", VI: "Chức năng thất"},
				Fields: []compose.FieldConfig{
					{Key: "ef", Label: compose.Text{EN: "Ejection fraction", VI: "Phân suất tống máu"}, Unit: "%"},
					{Key: "wall_motion", Label: compose.Text{EN: "Wall motion", VI: "Vận động thành"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
					{Key: "diastolic", Label: compose.Text{EN: "Diastolic function", VI: "Chức năng tâm trương"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
				},
				NoteKey: "function_note",
			},
			{
				Key:   "valves",
				Title: compose.Text{EN: "Valves", VI: "Van tim"},
				Fields: []compose.FieldConfig{
					valve("mitral", compose.Text{EN: "Mitral valve", VI: "Van hai lá"}),
					valve("aortic", compose.Text{EN: "Aortic valve", VI: "Van động mạch chủ"}),
					valve("tricuspid", compose.Text{EN: "Tricuspid valve", VI: "Van ba lá"}),
					valve("pulmonic", compose.Text{EN: "Pulmonic valve", VI: "Van động mạch phổi"}),
				},
				NoteKey: "valves_note",
			},
			{
				Key:   "pericardium",
				Title: compose.Text{EN: "Pericardium", VI: "Màng ngoài tim"},
				Fields: []compose.FieldConfig{
					{Key: "effusion", Label: compose.Text{EN: "Effusion", VI: "Tràn dịch"}, Suppress: []string{"None", "None / Không"}},
				},
			},
		},
	}
}
