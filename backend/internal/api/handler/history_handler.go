package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Shadomax/Elearning/backend/internal/dto"
	"github.com/Shadomax/Elearning/backend/internal/service"
	"github.com/Shadomax/Elearning/backend/pkg/response"
)

// HistoryHandler 登录历史 HTTP 处理器
type HistoryHandler struct {
	historySvc service.HistoryService
}

// NewHistoryHandler 创建 HistoryHandler
func NewHistoryHandler(historySvc service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historySvc: historySvc}
}

// Mine 当前用户的登录历史
// GET /api/v1/auth/history?page=1&page_size=20
func (h *HistoryHandler) Mine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	h.list(c, userID)
}

// ByUser 指定用户的登录历史（管理员）
// GET /api/v1/users/:id/login-history
func (h *HistoryHandler) ByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	h.list(c, userID)
}

func (h *HistoryHandler) list(c *gin.Context, userID uint) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "分页参数无效")
		return
	}

	list, total, err := h.historySvc.ListByUser(c.Request.Context(), userID, &page)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}
