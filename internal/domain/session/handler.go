package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sonoreport/sonoreport/internal/compose"
	"github.com/sonoreport/sonoreport/internal/exam"
	"github.com/sonoreport/sonoreport/internal/obs"
	"github.com/sonoreport/sonoreport/internal/platform/auth"
	"github.com/sonoreport/sonoreport/internal/report"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Read endpoints – physician, technician
	readGroup := api.Group("", auth.RequireRole("physician", "technician"))
	readGroup.GET("/exams", h.ListExamTypes)
	readGroup.GET("/sessions/:id", h.GetSession)
	readGroup.GET("/sessions/:id/classifications", h.GetClassifications)
	readGroup.GET("/sessions/:id/snapshot", h.ExportSnapshot)

	// Write endpoints – physician only
	writeGroup := api.Group("", auth.RequireRole("physician"))
	writeGroup.POST("/sessions", h.CreateSession)
	writeGroup.PUT("/sessions/:id/fields", h.SetField)
	writeGroup.PUT("/sessions/:id/notes", h.SetNote)
	writeGroup.POST("/sessions/:id/items", h.AddItem)
	writeGroup.PUT("/sessions/:id/items/:item_id", h.SetItemField)
	writeGroup.DELETE("/sessions/:id/items/:item_id", h.RemoveItem)
	writeGroup.POST("/sessions/:id/items/:item_id/classify", h.ClassifyItem)
	writeGroup.POST("/sessions/:id/report", h.GenerateReport)
	writeGroup.PUT("/sessions/:id/snapshot", h.LoadSnapshot)
}

func (h *Handler) ListExamTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"exam_types": exam.Types()})
}

type createSessionRequest struct {
	ExamType string               `json:"exam_type"`
	Header   report.PatientHeader `json:"header"`
	Footer   report.Footer        `json:"footer"`
}

func (h *Handler) CreateSession(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.Create(req.ExamType, req.Header, req.Footer)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, sess)
}

func (h *Handler) GetSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sess, err := h.svc.Get(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return c.JSON(http.StatusOK, sess)
}

type setFieldRequest struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

func (h *Handler) SetField(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req setFieldRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}
	sess, err := h.svc.SetField(id, req.Path, req.Value)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) SetNote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req setFieldRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}
	sess, err := h.svc.SetNote(id, req.Path, req.Value)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

type addItemRequest struct {
	ListPath string `json:"list_path"`
}

type addItemResponse struct {
	ItemID uuid.UUID `json:"item_id"`
	Rev    int       `json:"rev"`
}

func (h *Handler) AddItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ListPath == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "list_path is required")
	}
	sess, item, err := h.svc.AddItem(id, req.ListPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusCreated, addItemResponse{ItemID: item.ID, Rev: sess.Rev})
}

type setItemFieldRequest struct {
	ListPath string `json:"list_path"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

func (h *Handler) SetItemField(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	var req setItemFieldRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ListPath == "" || req.Key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "list_path and key are required")
	}
	sess, err := h.svc.SetItemField(id, req.ListPath, itemID, req.Key, req.Value)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) RemoveItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	listPath := c.QueryParam("list_path")
	if listPath == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "list_path is required")
	}
	sess, err := h.svc.RemoveItem(id, listPath, itemID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) ClassifyItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	result, err := h.svc.ClassifyItem(id, itemID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetClassifications(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sess, err := h.svc.Get(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	summaries := h.svc.Classifications(sess)
	out := make([]map[string]interface{}, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, map[string]interface{}{
			"entity": s.Entity,
			"result": s.Result,
		})
	}
	return c.JSON(http.StatusOK, out)
}

type reportResponse struct {
	HTML string `json:"html"`
	Rev  int    `json:"rev"`
}

func (h *Handler) GenerateReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req ReportInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Language != "" && req.Language != compose.LangEN && req.Language != compose.LangVI {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported language")
	}
	html, rev, err := h.svc.GenerateReport(id, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, reportResponse{HTML: html, Rev: rev})
}

func (h *Handler) ExportSnapshot(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	name := c.QueryParam("name")
	if name == "" {
		name = "export"
	}
	snap, err := h.svc.ExportSnapshot(id, name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *Handler) LoadSnapshot(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var snap obs.Snapshot
	if err := c.Bind(&snap); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.LoadSnapshot(id, &snap)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}
