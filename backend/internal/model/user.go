package model

// User 用户表 — 对应 users
type User struct {
	UserID       uint   `gorm:"primaryKey;autoIncrement"        json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"      json:"name"`
	Email        string `gorm:"type:varchar(255);not null"      json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"      json:"-"`
	Role         Role   `gorm:"type:smallint;not null;default:1" json:"role"`
	Active       bool   `gorm:"not null"                        json:"active"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
