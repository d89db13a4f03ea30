package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shadomax/Elearning/backend/internal/dto"
	"github.com/Shadomax/Elearning/backend/internal/service"
	"github.com/Shadomax/Elearning/backend/pkg/response"
	"github.com/Shadomax/Elearning/backend/pkg/validation"
)

// courseListPath 表单提交成功后的跳转目标
const courseListPath = "/api/v1/courses"

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// List 课程列表（按角色过滤停用课程）
// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	list, err := h.courseSvc.List(c.Request.Context(), role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// GetByID 课程详情（含周记录）
// GET /api/v1/courses/:id
func (h *CourseHandler) GetByID(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.courseSvc.GetByID(c.Request.Context(), id, role)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, result)
}

// NewForm 新建课程表单
// GET /api/v1/courses/new
func (h *CourseHandler) NewForm(c *gin.Context) {
	response.OK(c, h.courseSvc.NewForm())
}

// EditForm 编辑课程表单（预填当前值）
// GET /api/v1/courses/:id/edit
func (h *CourseHandler) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := h.courseSvc.EditForm(c.Request.Context(), id)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, form)
}

// Create 创建课程并生成周记录
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "参数校验失败", validation.Describe(err))
		return
	}

	result, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	if isFormPost(c) {
		response.SeeOther(c, courseListPath)
		return
	}
	response.Created(c, result)
}

// Update 更新课程名称、描述与状态
// PUT /api/v1/courses/:id
// POST /api/v1/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "参数校验失败", validation.Describe(err))
		return
	}

	result, err := h.courseSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	if isFormPost(c) {
		response.SeeOther(c, courseListPath)
		return
	}
	response.OK(c, result)
}

// ── 内部方法 ──

func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 13001, "课程不存在")
	case errors.Is(err, service.ErrCourseDateInvalid):
		response.BadRequest(c, 13002, "课程日期无效")
	default:
		response.InternalError(c)
	}
}

// isFormPost 请求是否来自 HTML 表单
func isFormPost(c *gin.Context) bool {
	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		return true
	}
	return false
}
