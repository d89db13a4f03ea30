package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Shadomax/Elearning/backend/config"
	"github.com/Shadomax/Elearning/backend/internal/service"
)

// pruneTimeout 单次清理的最长执行时间
const pruneTimeout = 5 * time.Minute

// Manager 定时任务管理器（秒级 cron 表达式）
type Manager struct {
	cron    *cron.Cron
	cfg     *config.HistoryConfig
	history service.HistoryService
	logger  *zap.Logger
}

// NewManager 创建定时任务管理器
func NewManager(cfg *config.HistoryConfig, history service.HistoryService, logger *zap.Logger) *Manager {
	return &Manager{
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DiscardLogger))),
		cfg:     cfg,
		history: history,
		logger:  logger,
	}
}

// Start 注册全部任务并启动调度
func (m *Manager) Start() error {
	if err := m.registerJobs(); err != nil {
		return err
	}
	m.cron.Start()
	m.logger.Info("定时任务已启动", zap.Int("jobs", len(m.cron.Entries())))
	return nil
}

// Stop 停止调度并等待正在执行的任务结束
func (m *Manager) Stop() {
	<-m.cron.Stop().Done()
	m.logger.Info("定时任务已停止")
}

func (m *Manager) registerJobs() error {
	// 登录历史清理；保留天数为 0 时不注册
	if m.cfg.RetentionDays <= 0 {
		m.logger.Info("登录历史永久保留，跳过清理任务")
		return nil
	}
	if _, err := m.cron.AddFunc(m.cfg.CleanupCron, m.PruneLoginHistory); err != nil {
		return fmt.Errorf("注册登录历史清理任务失败 (%s): %w", m.cfg.CleanupCron, err)
	}
	return nil
}

// PruneLoginHistory 删除超出保留期的登录历史
func (m *Manager) PruneLoginHistory() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	m.logger.Info("开始执行任务", zap.String("job", "prune_login_history"))
	if _, err := m.history.Prune(ctx, m.cfg.RetentionDays); err != nil {
		m.logger.Error("任务执行失败", zap.String("job", "prune_login_history"), zap.Error(err))
	}
}
