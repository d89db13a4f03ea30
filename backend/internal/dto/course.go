package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求（JSON 与 HTML 表单字段名一致）
type CreateCourseRequest struct {
	Name        string `json:"name"         form:"name"         binding:"required,notblank,max=30"`
	InitialDate string `json:"initial_date" form:"initial_date" binding:"required,isodate"` // "2024-01-01"
	FinalDate   string `json:"final_date"   form:"final_date"   binding:"required,isodate"` // "2024-01-15"
	Description string `json:"description"  form:"description"  binding:"required,notblank,max=2000"`
}

// UpdateCourseRequest 更新课程请求：只覆盖提供的字段
// State: 1 启用 / 0 停用
type UpdateCourseRequest struct {
	Name        *string `json:"name"        form:"name"        binding:"omitempty,notblank,max=30"`
	Description *string `json:"description" form:"description" binding:"omitempty,notblank,max=2000"`
	State       *int    `json:"state"       form:"state"       binding:"omitempty,oneof=0 1"`
}

// WeekResponse 课程周
type WeekResponse struct {
	ID      uint   `json:"id"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Visible bool   `json:"visible"`
	Active  bool   `json:"active"`
}

// CourseResponse 课程信息
type CourseResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	InitialDate string `json:"initial_date"`
	FinalDate   string `json:"final_date"`
	Duration    int    `json:"duration"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CourseDetailResponse 课程详情（含周列表）
type CourseDetailResponse struct {
	CourseResponse
	Weeks []WeekResponse `json:"weeks"`
}

// FormField 表单字段约束
type FormField struct {
	Name      string `json:"name"`
	Type      string `json:"type"` // text | date | textarea | select
	Required  bool   `json:"required"`
	MaxLength int    `json:"max_length,omitempty"`
	Value     string `json:"value"`
}

// CourseForm 新建 / 编辑课程表单
type CourseForm struct {
	Action   string      `json:"action"`
	Method   string      `json:"method"`
	CourseID uint        `json:"course_id,omitempty"`
	Fields   []FormField `json:"fields"`
}
