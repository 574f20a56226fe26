package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sonoreport/sonoreport/internal/platform/auth"
	"github.com/sonoreport/sonoreport/internal/report"
)

func newTestServer() (*echo.Echo, *Service) {
	logger := zerolog.Nop()
	svc := NewService(NewStore(), report.NewAssembler(logger), Defaults{}, logger)
	e := echo.New()
	api := e.Group("/api/v1", auth.DevAuthMiddleware())
	NewHandler(svc).RegisterRoutes(api)
	return e, svc
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListExamTypes(t *testing.T) {
	e, _ := newTestServer()
	rec := doJSON(e, http.MethodGet, "/api/v1/exams", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(body["exam_types"]) != 9 {
		t.Errorf("got %d exam types, want 9", len(body["exam_types"]))
	}
}

func TestCreateSessionEndpoint(t *testing.T) {
	e, _ := newTestServer()
	rec := doJSON(e, http.MethodPost, "/api/v1/sessions",
		`{"exam_type":"breast","header":{"name":"Jane Doe"}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var sess Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if sess.ExamType != "breast" || sess.ID == uuid.Nil {
		t.Errorf("session = %+v", sess)
	}
}

func TestCreateSessionRejectsUnknownType(t *testing.T) {
	e, _ := newTestServer()
	rec := doJSON(e, http.MethodPost, "/api/v1/sessions", `{"exam_type":"phrenology"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	e, _ := newTestServer()
	rec := doJSON(e, http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSetFieldEndpoint(t *testing.T) {
	e, svc := newTestServer()
	sess, _ := svc.Create("breast", report.PatientHeader{}, report.Footer{})

	rec := doJSON(e, http.MethodPut, "/api/v1/sessions/"+sess.ID.String()+"/fields",
		`{"path":"parenchyma.composition","value":"Heterogeneous"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	got, _ := svc.Get(sess.ID)
	if got.Rev != 1 {
		t.Errorf("rev = %d, want 1", got.Rev)
	}
}

func TestSetFieldRequiresPath(t *testing.T) {
	e, svc := newTestServer()
	sess, _ := svc.Create("breast", report.PatientHeader{}, report.Footer{})
	rec := doJSON(e, http.MethodPut, "/api/v1/sessions/"+sess.ID.String()+"/fields",
		`{"value":"Heterogeneous"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestItemLifecycleEndpoints(t *testing.T) {
	e, svc := newTestServer()
	sess, _ := svc.Create("breast", report.PatientHeader{}, report.Footer{})

	rec := doJSON(e, http.MethodPost, "/api/v1/sessions/"+sess.ID.String()+"/items",
		`{"list_path":"lesions"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add item status = %d", rec.Code)
	}
	var added addItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &added); err != nil {
		t.Fatalf("decoding: %v", err)
	}

	rec = doJSON(e, http.MethodPut,
		"/api/v1/sessions/"+sess.ID.String()+"/items/"+added.ItemID.String(),
		`{"list_path":"lesions","key":"shape","value":"Oval"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set item field status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodDelete,
		"/api/v1/sessions/"+sess.ID.String()+"/items/"+added.ItemID.String()+"?list_path=lesions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove item status = %d", rec.Code)
	}
	got, _ := svc.Get(sess.ID)
	if len(got.Obs.Root.Items("lesions")) != 0 {
		t.Error("item must be removed")
	}
}

func TestClassifyItemEndpoint(t *testing.T) {
	e, svc := newTestServer()
	sess, _ := svc.Create("breast", report.PatientHeader{}, report.Footer{})
	_, item, _ := svc.AddItem(sess.ID, "lesions")
	svc.SetItemField(sess.ID, "lesions", item.ID, "shape", "Oval")
	svc.SetItemField(sess.ID, "lesions", item.ID, "margin", "Circumscribed")
	svc.SetItemField(sess.ID, "lesions", item.ID, "orientation", "Parallel")
	svc.SetItemField(sess.ID, "lesions", item.ID, "echo_pattern", "Hypoechoic")

	rec := doJSON(e, http.MethodPost,
		"/api/v1/sessions/"+sess.ID.String()+"/items/"+item.ID.String()+"/classify", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var result struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if result.Category != "BI-RADS 3" {
		t.Errorf("category = %q, want BI-RADS 3", result.Category)
	}
}

func TestGenerateReportEndpoint(t *testing.T) {
	e, svc := newTestServer()
	sess, _ := svc.Create("breast", report.PatientHeader{Name: "Jane Doe"}, report.Footer{Physician: "Dr. Tran"})
	svc.SetField(sess.ID, "parenchyma.composition", "Heterogeneous")

	rec := doJSON(e, http.MethodPost, "/api/v1/sessions/"+sess.ID.String()+"/report",
		`{"language":"vi","impression":"Mô vú không đồng nhất."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp reportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if !strings.Contains(resp.HTML, "Kết luận") {
		t.Error("Vietnamese report must use Vietnamese structural labels")
	}
	if !strings.Contains(resp.HTML, "Mô vú không đồng nhất.") {
		t.Error("translated impression must appear verbatim")
	}
}

func TestGenerateReportRejectsUnknownLanguage(t *testing.T) {
	e, svc := newTestServer()
	sess, _ := svc.Create("breast", report.PatientHeader{}, report.Footer{})
	rec := doJSON(e, http.MethodPost, "/api/v1/sessions/"+sess.ID.String()+"/report",
		`{"language":"fr"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSnapshotEndpoints(t *testing.T) {
	e, svc := newTestServer()
	sess, _ := svc.Create("breast", report.PatientHeader{}, report.Footer{})
	svc.SetField(sess.ID, "parenchyma.composition", "Heterogeneous")

	rec := doJSON(e, http.MethodGet,
		"/api/v1/sessions/"+sess.ID.String()+"/snapshot?name=baseline", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d", rec.Code)
	}
	snapJSON := rec.Body.String()

	fresh, _ := svc.Create("breast", report.PatientHeader{}, report.Footer{})
	rec = doJSON(e, http.MethodPut, "/api/v1/sessions/"+fresh.ID.String()+"/snapshot", snapJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("load status = %d, body = %s", rec.Code, rec.Body.String())
	}
	got, _ := svc.Get(fresh.ID)
	if got.Obs.Root.ScalarAt("parenchyma.composition") != "Heterogeneous" {
		t.Error("loaded snapshot must restore the field")
	}
}
