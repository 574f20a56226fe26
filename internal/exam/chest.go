package exam

import "github.com/sonoreport/sonoreport/internal/compose"

func init() { register(chestExam()) }

func chestExam() *Exam {
	return &Exam{
		Type:  "chest",
		Title: compose.Text{EN: "Chest X-ray Report", VI: "X-quang ngực"},
		Sections: []compose.SectionConfig{
			{
				Key:   "technique",
				Title: compose.Text{EN: "Technique", VI: "Kỹ thuật"},
				Fields: []compose.FieldConfig{
					{Key: "projection", Label: compose.Text{EN: "Projection", VI: "Tư thế chụp"}, Suppress: []string{"PA", "PA erect"}},
					{Key: "quality", Label: compose.Text{EN: "Image quality", VI: "Chất lượng phim"}, Suppress: []string{"Adequate", "Adequate / Đủ"}},
				},
			},
			{
				Key:   "lungs",
				Title: compose.Text{EN: "Lungs", VI: "Phổi"},
				Fields: []compose.FieldConfig{
					{Key: "right_lung", Label: compose.Text{EN: "Right lung", VI: "Phổi phải"}, Suppress: []string{"Clear", "Clear / Sáng đều"}},
					{Key: "left_lung", Label: compose.Text{EN: "Left lung", VI: "Phổi trái"}, Suppress: []string{"Clear", "Clear / Sáng đều"}},
					{Key: "hila", Label: compose.Text{EN: "Hila", VI: "Rốn phổi"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
				},
				NoteKey: "lungs_note",
			},
			{
				Key:   "pleura",
				Title: compose.Text{EN: "Pleura", VI: "Màng phổi"},
				Fields: []compose.FieldConfig{
					{Key: "effusion", Label: compose.Text{EN: "Effusion", VI: "Tràn dịch"}, Suppress: []string{"None", "None / Không"}},
					{Key: "pneumothorax", Label: compose.Text{EN: "Pneumothorax", VI: "Tràn khí"}, Suppress: []string{"None", "None / Không"}},
				},
			},
			{
				Key:   "cardiomediastinum",
				Title: compose.Text{EN: "Heart and mediastinum", VI: "Tim và trung thất"},
				Fields: []compose.FieldConfig{
					{Key: "ctr", Label: compose.Text{EN: "Cardiothoracic ratio", VI: "Chỉ số tim-ngực"}},
					{Key: "mediastinum", Label: compose.Text{EN: "Mediastinum", VI: "Trung thất"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
				},
			},
			{
				Key:   "bones",
				Title: compose.Text{EN: "Bones and soft tissues", VI: "Xương và mô mềm"},
				Fields: []compose.FieldConfig{
					{Key: "findings", Label: compose.Text{EN: "Findings", VI: "Tổn thương"}, Suppress: []string{"Normal", "Normal / Bình thường"}},
				},
				NoteKey: "bones_note",
			},
		},
	}
}
