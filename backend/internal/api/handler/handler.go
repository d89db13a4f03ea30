package handler

import "github.com/Shadomax/Elearning/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth    *AuthHandler
	Course  *CourseHandler
	History *HistoryHandler
	Export  *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Course:  NewCourseHandler(svc.Course),
		History: NewHistoryHandler(svc.History),
		Export:  NewExportHandler(svc.Export),
	}
}
