package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Shadomax/Elearning/backend/internal/dto"
	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/internal/repository"
)

// ── 用户模块业务错误 ──

var (
	ErrEmailExists     = errors.New("邮箱已被使用")
	ErrRoleInvalid     = errors.New("角色等级无效")
	ErrPasswordTooWeak = errors.New("密码长度不能少于 8 位")
)

const minPasswordLen = 8

// CreateUserInput 创建用户参数（命令行引导管理员时使用）
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// UserService 用户业务接口
type UserService interface {
	Create(ctx context.Context, in *CreateUserInput) (*dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, in *CreateUserInput) (*dto.UserResponse, error) {
	if !in.Role.Valid() {
		return nil, ErrRoleInvalid
	}
	if len(in.Password) < minPasswordLen {
		return nil, ErrPasswordTooWeak
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	// 检查邮箱唯一性
	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       true,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户已创建", zap.Uint("user_id", user.UserID), zap.String("role", user.Role.String()))

	return &dto.UserResponse{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
		Role:  int(user.Role),
	}, nil
}
