package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/sonoreport/sonoreport/internal/obs"
	"github.com/sonoreport/sonoreport/internal/report"
)

// Session is one in-progress exam: the patient header, the growing
// Observation, and a revision counter. Sessions live in memory for the
// duration of the exam and are only persisted when explicitly exported
// as a template snapshot.
type Session struct {
	ID        uuid.UUID            `json:"id"`
	ExamType  string               `json:"exam_type"`
	Header    report.PatientHeader `json:"header"`
	Footer    report.Footer        `json:"footer"`
	Obs       *obs.Observation     `json:"-"`
	Rev       int                  `json:"rev"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
