package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Shadomax/Elearning/backend/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id uint) (*model.Course, error)
	List(ctx context.Context, onlyActive bool) ([]model.Course, error)
	// Update 仅覆盖 name / description / active，日期与周数不可修改
	Update(ctx context.Context, course *model.Course) error
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	// 周记录由 WeekRepository 在同一事务中批量写入，这里跳过关联
	return r.db.WithContext(ctx).Omit("Weeks").Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context, onlyActive bool) ([]model.Course, error) {
	var courses []model.Course
	db := r.db.WithContext(ctx)
	if onlyActive {
		db = db.Where("active = ?", true)
	}
	err := db.Order("course_id ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	result := r.db.WithContext(ctx).
		Model(course).
		Select("name", "description", "active", "updated_at").
		Updates(course)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
