package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Shadomax/Elearning/backend/internal/model"
)

// LoginHistoryRepository 登录历史数据访问接口
type LoginHistoryRepository interface {
	Create(ctx context.Context, entry *model.LoginHistory) error
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]model.LoginHistory, int64, error)
	// DeleteBefore 删除 last_login_date 早于 before 的记录，返回删除条数
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

type loginHistoryRepo struct {
	db *gorm.DB
}

// NewLoginHistoryRepo 创建 LoginHistoryRepository 实例
func NewLoginHistoryRepo(db *gorm.DB) LoginHistoryRepository {
	return &loginHistoryRepo{db: db}
}

func (r *loginHistoryRepo) Create(ctx context.Context, entry *model.LoginHistory) error {
	return r.db.WithContext(ctx).Omit("User").Create(entry).Error
}

func (r *loginHistoryRepo) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]model.LoginHistory, int64, error) {
	var entries []model.LoginHistory
	var total int64

	db := r.db.WithContext(ctx).Model(&model.LoginHistory{}).Where("user_id = ?", userID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("last_login_date DESC, login_history_id DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *loginHistoryRepo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("last_login_date < ?", before.Format("2006-01-02")).
		Delete(&model.LoginHistory{})
	return result.RowsAffected, result.Error
}
