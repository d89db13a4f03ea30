package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Shadomax/Elearning/backend/internal/dto"
	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/internal/repository"
	"github.com/Shadomax/Elearning/backend/pkg/validation"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound    = errors.New("课程不存在")
	ErrCourseDateInvalid = errors.New("课程日期无效")
)

// 课程字段长度上限（与迁移脚本、请求校验保持一致）
const (
	courseNameMaxLen        = 30
	courseDescriptionMaxLen = 2000
)

// CourseService 课程业务接口
type CourseService interface {
	// List 按角色返回课程列表：可查看停用课程的角色返回全部，否则仅返回启用课程
	List(ctx context.Context, role model.Role) ([]dto.CourseResponse, error)
	GetByID(ctx context.Context, id uint, role model.Role) (*dto.CourseDetailResponse, error)
	NewForm() *dto.CourseForm
	EditForm(ctx context.Context, id uint) (*dto.CourseForm, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseDetailResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context, role model.Role) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx, !role.CanSeeInactiveCourses())
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, toCourseResponse(&courses[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *courseService) GetByID(ctx context.Context, id uint, role model.Role) (*dto.CourseDetailResponse, error) {
	course, weeks, err := findVisibleCourse(ctx, s.repo, id, role)
	if err != nil {
		if !errors.Is(err, ErrCourseNotFound) {
			s.logger.Error("查询课程失败", zap.Uint("id", id), zap.Error(err))
		}
		return nil, err
	}

	return toCourseDetailResponse(course, weeks), nil
}

// ────────────────────── Forms ──────────────────────

func (s *courseService) NewForm() *dto.CourseForm {
	return &dto.CourseForm{
		Action: "/api/v1/courses",
		Method: "POST",
		Fields: []dto.FormField{
			{Name: "name", Type: "text", Required: true, MaxLength: courseNameMaxLen},
			{Name: "initial_date", Type: "date", Required: true},
			{Name: "final_date", Type: "date", Required: true},
			{Name: "description", Type: "textarea", Required: true, MaxLength: courseDescriptionMaxLen},
		},
	}
}

func (s *courseService) EditForm(ctx context.Context, id uint) (*dto.CourseForm, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	state := "0"
	if course.Active {
		state = "1"
	}
	return &dto.CourseForm{
		Action:   "/api/v1/courses/" + strconv.FormatUint(uint64(course.CourseID), 10),
		Method:   "PUT",
		CourseID: course.CourseID,
		Fields: []dto.FormField{
			{Name: "name", Type: "text", Required: true, MaxLength: courseNameMaxLen, Value: course.Name},
			{Name: "description", Type: "textarea", Required: true, MaxLength: courseDescriptionMaxLen, Value: course.Description},
			{Name: "state", Type: "select", Required: true, Value: state},
		},
	}, nil
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseDetailResponse, error) {
	startDate, err := time.Parse(validation.DateLayout, req.InitialDate)
	if err != nil {
		return nil, ErrCourseDateInvalid
	}
	endDate, err := time.Parse(validation.DateLayout, req.FinalDate)
	if err != nil {
		return nil, ErrCourseDateInvalid
	}

	course := &model.Course{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		StartDate:   startDate,
		EndDate:     endDate,
		Duration:    ComputeDurationWeeks(startDate, endDate),
		Active:      true,
	}

	// 课程与周记录同进同退
	var weeks []model.Week
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Course.Create(ctx, course); err != nil {
			return err
		}
		generated, err := GenerateWeeks(ctx, txRepo.Week, course.CourseID, course.Duration)
		if err != nil {
			return err
		}
		weeks = generated
		return nil
	})
	if err != nil {
		s.logger.Error("创建课程失败，事务已回滚", zap.String("name", course.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("课程已创建",
		zap.Uint("course_id", course.CourseID),
		zap.Int("duration", course.Duration),
	)

	return toCourseDetailResponse(course, weeks), nil
}

// ────────────────────── Update ──────────────────────

func (s *courseService) Update(ctx context.Context, id uint, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	// 仅覆盖提供的字段；日期与周数在创建后固定
	if req.Name != nil {
		course.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		course.Description = strings.TrimSpace(*req.Description)
	}
	if req.State != nil {
		course.Active = *req.State == 1
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("更新课程失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := toCourseResponse(course)
	return &resp, nil
}

// ── 内部辅助方法 ──

// findVisibleCourse 读取课程及其周记录
// 调用方无权查看停用课程时，停用课程按不存在处理
func findVisibleCourse(ctx context.Context, repo *repository.Repository, id uint, role model.Role) (*model.Course, []model.Week, error) {
	course, err := repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCourseNotFound
		}
		return nil, nil, err
	}
	if !course.Active && !role.CanSeeInactiveCourses() {
		return nil, nil, ErrCourseNotFound
	}

	weeks, err := repo.Week.ListByCourse(ctx, course.CourseID)
	if err != nil {
		return nil, nil, err
	}
	return course, weeks, nil
}

func toCourseResponse(course *model.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:          course.CourseID,
		Name:        course.Name,
		Description: course.Description,
		InitialDate: course.StartDate.Format(validation.DateLayout),
		FinalDate:   course.EndDate.Format(validation.DateLayout),
		Duration:    course.Duration,
		Active:      course.Active,
		CreatedAt:   course.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   course.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toCourseDetailResponse(course *model.Course, weeks []model.Week) *dto.CourseDetailResponse {
	items := make([]dto.WeekResponse, 0, len(weeks))
	for i, w := range weeks {
		items = append(items, dto.WeekResponse{
			ID:      w.WeekID,
			Number:  i + 1,
			Title:   w.Title,
			Visible: w.Visible,
			Active:  w.Active,
		})
	}
	return &dto.CourseDetailResponse{
		CourseResponse: toCourseResponse(course),
		Weeks:          items,
	}
}
