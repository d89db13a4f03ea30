package model

// Week 课程周表 — 对应 weeks
type Week struct {
	WeekID   uint   `gorm:"primaryKey;autoIncrement"   json:"week_id"`
	Title    string `gorm:"type:varchar(100);not null" json:"title"`
	Visible  bool   `gorm:"not null"                   json:"visible"`
	Active   bool   `gorm:"not null"                   json:"active"`
	CourseID uint   `gorm:"not null;index"             json:"course_id"`
	BaseModel
}

// TableName 指定表名
func (Week) TableName() string { return "weeks" }
