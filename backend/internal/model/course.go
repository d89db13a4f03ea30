package model

import "time"

// Course 课程表 — 对应 courses
// Duration 为派生字段（整周数），创建后不再变更
// 布尔列不设 gorm default，否则写入 false 时会被替换为默认值；库端默认值由迁移脚本维护
type Course struct {
	CourseID    uint      `gorm:"primaryKey;autoIncrement"      json:"course_id"`
	Name        string    `gorm:"type:varchar(30);not null"     json:"name"`
	Description string    `gorm:"type:varchar(2000);not null"   json:"description"`
	StartDate   time.Time `gorm:"type:date;not null"            json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null"            json:"end_date"`
	Duration    int       `gorm:"not null;default:0"            json:"duration"`
	Active      bool      `gorm:"not null"                      json:"active"`
	BaseModel

	// 关联
	Weeks []Week `gorm:"foreignKey:CourseID;references:CourseID" json:"weeks,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
