package exam

import "github.com/sonoreport/sonoreport/internal/compose"

func init() { register(obstetricExam()) }

func obstetricExam() *Exam {
	return &Exam{
		Type:  "obstetric",
		Title: compose.Text{EN: "Obstetric Ultrasound Report", VI: "Siêu âm thai"},
		Sections: []compose.SectionConfig{
			{
				Key:   "fetus",
				Title: compose.Text{EN: "Fetus", VI: "Thai nhi"},
				Fields: []compose.FieldConfig{
					{Key: "presentation", Label: compose.Text{EN: "Presentation", VI: "Ngôi thai"}},
					{Key: "heart_rate", Label: compose.Text{EN: "Fetal heart rate", VI: "Nhịp tim thai"}, Unit: "bpm"},
					{Key: "movements", Label: compose.Text{EN: "Movements", VI: "Cử động thai"}, Suppress: []string{"Present", "Present / Có"}},
				},
				NoteKey: "fetus_note",
			},
			{
				Key:   "biometry",
				Title: compose.Text{EN: "Biometry", VI: "Sinh trắc học thai"},
				Fields: []compose.FieldConfig{
					{Key: "bpd", Label: compose.Text{EN: "Biparietal diameter", VI: "Đường kính lưỡng đỉnh"}, Unit: "mm"},
					{Key: "hc", Label: compose.Text{EN: "Head circumference", VI: "Chu vi đầu"}, Unit: "mm"},
					{Key: "ac", Label: compose.Text{EN: "Abdominal circumference", VI: "Chu vi bụng"}, Unit: "mm"},
					{Key: "fl", Label: compose.Text{EN: "Femur length", VI: "Chiều dài xương đùi"}, Unit: "mm"},
					{Key: "efw", Label: compose.Text{EN: "Estimated fetal weight", VI: "Cân nặng ước tính"}, Unit: "g"},
					{Key: "ga", Label: compose.Text{EN: "Gestational age", VI: "Tuổi thai"}},
				},
			},
			{
				Key:   "placenta",
				Title: compose.Text{EN: "Placenta", VI: "Nhau thai"},
				Fields: []compose.FieldConfig{
					{Key: "position", Label: compose.Text{EN: "Position", VI: "Vị trí"}},
					{Key: "grade", Label: compose.Text{EN: "Grade", VI: "Độ trưởng thành"}},
					{Key: "previa", Label: compose.Text{EN: "Previa", VI: "Nhau tiền đạo"}, Suppress: []string{"None", "None / Không"}},
				},
			},
			{
				Key:   "amniotic_fluid",
				Title: compose.Text{EN: "Amniotic fluid", VI: "Nước ối"},
				Fields: []compose.FieldConfig{
					{Key: "afi", Label: compose.Text{EN: "Amniotic fluid index", VI: "Chỉ số ối"}, Unit: "mm"},
					{Key: "appearance", Label: compose.Text{EN: "Appearance", VI: "Tính chất"}, Suppress: []string{"Clear", "Clear / Trong"}},
				},
			},
			{
				Key:   "cervix",
				Title: compose.Text{EN: "Cervix", VI: "Cổ tử cung"},
				Fields: []compose.FieldConfig{
					{Key: "length", Label: compose.Text{EN: "Length", VI: "Chiều dài"}, Unit: "mm"},
					{Key: "os", Label: compose.Text{EN: "Internal os", VI: "Lỗ trong"}, Suppress: []string{"Closed", "Closed / Đóng"}},
				},
				NoteKey: "cervix_note",
			},
		},
	}
}
