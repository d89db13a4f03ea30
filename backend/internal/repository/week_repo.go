package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Shadomax/Elearning/backend/internal/model"
)

// WeekRepository 课程周数据访问接口
type WeekRepository interface {
	CreateBatch(ctx context.Context, weeks []model.Week) error
	ListByCourse(ctx context.Context, courseID uint) ([]model.Week, error)
}

type weekRepo struct {
	db *gorm.DB
}

// NewWeekRepo 创建 WeekRepository 实例
func NewWeekRepo(db *gorm.DB) WeekRepository {
	return &weekRepo{db: db}
}

// 单条 INSERT 的行数上限，PostgreSQL 每条语句最多 65535 个绑定参数
const weekInsertBatchSize = 1000

// CreateBatch 分批写入，空切片不产生任何写操作
// 插入顺序即周序号顺序，自增主键保证 week_id 递增
func (r *weekRepo) CreateBatch(ctx context.Context, weeks []model.Week) error {
	if len(weeks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&weeks, weekInsertBatchSize).Error
}

func (r *weekRepo) ListByCourse(ctx context.Context, courseID uint) ([]model.Week, error) {
	var weeks []model.Week
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("week_id ASC").
		Find(&weeks).Error
	return weeks, err
}
