package model

import "time"

// 登录历史各列长度上限（与迁移脚本保持一致）
const (
	LoginHistoryIPMaxLen      = 12
	LoginHistoryOSMaxLen      = 10
	LoginHistoryBrowserMaxLen = 20
)

// LoginHistory 登录历史表 — 对应 login_history
type LoginHistory struct {
	LoginHistoryID uint      `gorm:"primaryKey;autoIncrement"  json:"login_history_id"`
	UserID         uint      `gorm:"not null;index"            json:"user_id"`
	LastLoginDate  time.Time `gorm:"type:date;not null"        json:"last_login_date"`
	IP             string    `gorm:"type:varchar(12);not null" json:"ip"`
	OS             string    `gorm:"type:varchar(10);not null" json:"os"`
	Browser        string    `gorm:"type:varchar(20);not null" json:"browser"`

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (LoginHistory) TableName() string { return "login_history" }
