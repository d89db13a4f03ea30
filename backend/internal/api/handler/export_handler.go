package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Shadomax/Elearning/backend/internal/service"
	"github.com/Shadomax/Elearning/backend/pkg/response"
)

const (
	mimeXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCalendar = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportCourse 导出课程为 Excel
// GET /api/v1/courses/:id/export
func (h *ExportHandler) ExportCourse(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportCourse(c.Request.Context(), id, role)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	response.Attachment(c, filename, mimeXLSX, buf.Bytes())
}

// ExportCalendar 导出课程周次为 iCalendar
// GET /api/v1/courses/:id/calendar.ics
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.exportSvc.ExportCalendar(c.Request.Context(), id, role)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	response.Attachment(c, filename, mimeCalendar, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 13001, "课程不存在")
	default:
		response.InternalError(c)
	}
}
