package report

import "github.com/sonoreport/sonoreport/internal/compose"

// Structural labels for both report languages. The assembler renders
// these from its own tables; translated narrative text for findings and
// impression arrives pre-resolved from the caller and is substituted, not
// produced here.
var (
	labelPatient      = compose.Text{EN: "Patient", VI: "Bệnh nhân"}
	labelPatientID    = compose.Text{EN: "Patient ID", VI: "Mã bệnh nhân"}
	labelAge          = compose.Text{EN: "Age", VI: "Tuổi"}
	labelSex          = compose.Text{EN: "Sex", VI: "Giới tính"}
	labelExamDate     = compose.Text{EN: "Exam date", VI: "Ngày siêu âm"}
	labelIndication   = compose.Text{EN: "Indication", VI: "Chỉ định"}
	labelFindings     = compose.Text{EN: "Findings", VI: "Mô tả hình ảnh"}
	labelImpression   = compose.Text{EN: "Impression", VI: "Kết luận"}
	labelRecommend    = compose.Text{EN: "Recommendation", VI: "Đề nghị"}
	labelImages       = compose.Text{EN: "Images", VI: "Hình ảnh"}
	labelPhysician    = compose.Text{EN: "Reporting physician", VI: "Bác sĩ siêu âm"}
	labelUndetermined = compose.Text{EN: "Undetermined (incomplete data)", VI: "Chưa xác định (thiếu dữ liệu)"}
	labelImageCaption = compose.Text{EN: "Image", VI: "Hình"}
)
