package dto

// ── 登录历史 DTO ──

// LoginHistoryResponse 登录历史条目
type LoginHistoryResponse struct {
	ID            uint   `json:"id"`
	UserID        uint   `json:"user_id"`
	LastLoginDate string `json:"last_login_date"`
	IP            string `json:"ip"`
	OS            string `json:"os"`
	Browser       string `json:"browser"`
}
