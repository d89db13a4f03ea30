package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Shadomax/Elearning/backend/internal/dto"
	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/internal/repository"
	"github.com/Shadomax/Elearning/backend/pkg/validation"
)

// HistoryService 登录历史业务接口
type HistoryService interface {
	// Record 写入一条登录记录，超出列宽的字段会被截断
	Record(ctx context.Context, userID uint, meta dto.LoginMeta) error
	ListByUser(ctx context.Context, userID uint, page *dto.PaginationRequest) ([]dto.LoginHistoryResponse, int64, error)
	// Prune 删除 retentionDays 天之前的记录；retentionDays <= 0 时不做任何事
	Prune(ctx context.Context, retentionDays int) (int64, error)
}

type historyService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewHistoryService 创建 HistoryService 实例
func NewHistoryService(repo *repository.Repository, logger *zap.Logger) HistoryService {
	return &historyService{repo: repo, logger: logger, now: time.Now}
}

func (s *historyService) Record(ctx context.Context, userID uint, meta dto.LoginMeta) error {
	client := ParseClientInfo(meta.UserAgent)
	ip := meta.IP
	if ip == "" {
		ip = unknownClient
	}

	entry := &model.LoginHistory{
		UserID:        userID,
		LastLoginDate: calendarDay(s.now()),
		IP:            truncateRunes(ip, model.LoginHistoryIPMaxLen),
		OS:            truncateRunes(client.OS, model.LoginHistoryOSMaxLen),
		Browser:       truncateRunes(client.Browser, model.LoginHistoryBrowserMaxLen),
	}

	if err := s.repo.LoginHistory.Create(ctx, entry); err != nil {
		s.logger.Error("写入登录历史失败", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *historyService) ListByUser(ctx context.Context, userID uint, page *dto.PaginationRequest) ([]dto.LoginHistoryResponse, int64, error) {
	entries, total, err := s.repo.LoginHistory.ListByUser(ctx, userID, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("查询登录历史失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.LoginHistoryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, dto.LoginHistoryResponse{
			ID:            e.LoginHistoryID,
			UserID:        e.UserID,
			LastLoginDate: e.LastLoginDate.Format(validation.DateLayout),
			IP:            e.IP,
			OS:            e.OS,
			Browser:       e.Browser,
		})
	}
	return result, total, nil
}

func (s *historyService) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := calendarDay(s.now()).AddDate(0, 0, -retentionDays)

	n, err := s.repo.LoginHistory.DeleteBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("清理登录历史失败", zap.Time("cutoff", cutoff), zap.Error(err))
		return 0, err
	}
	s.logger.Info("登录历史清理完成", zap.Time("cutoff", cutoff), zap.Int64("deleted", n))
	return n, nil
}
