package service

import (
	"go.uber.org/zap"

	"github.com/Shadomax/Elearning/backend/internal/repository"
	"github.com/Shadomax/Elearning/backend/pkg/jwt"
	"github.com/Shadomax/Elearning/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth    AuthService
	User    UserService
	Course  CourseService
	History HistoryService
	Export  ExportService
}

// NewService 创建 Service 聚合；rdb 为 nil 时登出不写黑名单
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	history := NewHistoryService(repo, logger)

	// 避免把 nil 指针包装成非 nil 接口
	var blacklist TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}

	return &Service{
		Auth:    NewAuthService(repo, jwtMgr, history, blacklist, logger),
		User:    NewUserService(repo, logger),
		Course:  NewCourseService(repo, logger),
		History: history,
		Export:  NewExportService(repo, logger),
	}
}
