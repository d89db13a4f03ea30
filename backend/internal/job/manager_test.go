package job

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Shadomax/Elearning/backend/config"
	"github.com/Shadomax/Elearning/backend/internal/dto"
)

type mockHistoryService struct {
	pruneCalls []int
	pruneErr   error
}

func (m *mockHistoryService) Record(_ context.Context, _ uint, _ dto.LoginMeta) error { return nil }
func (m *mockHistoryService) ListByUser(_ context.Context, _ uint, _ *dto.PaginationRequest) ([]dto.LoginHistoryResponse, int64, error) {
	return nil, 0, nil
}
func (m *mockHistoryService) Prune(_ context.Context, days int) (int64, error) {
	m.pruneCalls = append(m.pruneCalls, days)
	return 3, m.pruneErr
}

func TestManager_StartRegistersPruneJob(t *testing.T) {
	svc := &mockHistoryService{}
	m := NewManager(&config.HistoryConfig{RetentionDays: 30, CleanupCron: "0 30 3 * * *"}, svc, zap.NewNop())

	if err := m.Start(); err != nil {
		t.Fatalf("Start 应成功: %v", err)
	}
	defer m.Stop()

	if n := len(m.cron.Entries()); n != 1 {
		t.Errorf("期望注册 1 个任务，实际 %d", n)
	}
}

func TestManager_RetentionDisabled(t *testing.T) {
	m := NewManager(&config.HistoryConfig{RetentionDays: 0, CleanupCron: "0 30 3 * * *"}, &mockHistoryService{}, zap.NewNop())

	if err := m.Start(); err != nil {
		t.Fatalf("Start 应成功: %v", err)
	}
	defer m.Stop()

	if n := len(m.cron.Entries()); n != 0 {
		t.Errorf("保留天数为 0 时不应注册任务，实际 %d", n)
	}
}

func TestManager_InvalidSpec(t *testing.T) {
	m := NewManager(&config.HistoryConfig{RetentionDays: 30, CleanupCron: "every night"}, &mockHistoryService{}, zap.NewNop())

	if err := m.Start(); err == nil {
		m.Stop()
		t.Error("非法 cron 表达式应返回错误")
	}
}

func TestManager_PruneLoginHistory(t *testing.T) {
	svc := &mockHistoryService{pruneErr: errors.New("db down")}
	m := NewManager(&config.HistoryConfig{RetentionDays: 90}, svc, zap.NewNop())

	// 失败只记日志，不 panic
	m.PruneLoginHistory()

	if len(svc.pruneCalls) != 1 || svc.pruneCalls[0] != 90 {
		t.Errorf("期望以 90 天调用 Prune，实际 %v", svc.pruneCalls)
	}
}
