package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/internal/repository"
)

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[uint]*model.Course
	nextID  uint
	// createErr / updateErr 用于注入失败
	createErr error
	updateErr error
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[uint]*model.Course), nextID: 1}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if m.createErr != nil {
		return m.createErr
	}
	course.CourseID = m.nextID
	m.nextID++
	cp := *course
	m.courses[course.CourseID] = &cp
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context, onlyActive bool) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		if onlyActive && !c.Active {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseID < result[j].CourseID })
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	stored, ok := m.courses[course.CourseID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	// 与 GORM 实现一致：只写可变列
	stored.Name = course.Name
	stored.Description = course.Description
	stored.Active = course.Active
	return nil
}

// ── Mock WeekRepository ──

type mockWeekRepo struct {
	weeks    []model.Week
	nextID   uint
	batchErr error
	batches  int
}

func newMockWeekRepo() *mockWeekRepo {
	return &mockWeekRepo{nextID: 1}
}

func (m *mockWeekRepo) CreateBatch(_ context.Context, weeks []model.Week) error {
	if m.batchErr != nil {
		return m.batchErr
	}
	if len(weeks) == 0 {
		return nil
	}
	m.batches++
	for i := range weeks {
		weeks[i].WeekID = m.nextID
		m.nextID++
		m.weeks = append(m.weeks, weeks[i])
	}
	return nil
}

func (m *mockWeekRepo) ListByCourse(_ context.Context, courseID uint) ([]model.Week, error) {
	var result []model.Week
	for _, w := range m.weeks {
		if w.CourseID == courseID {
			result = append(result, w)
		}
	}
	return result, nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	user.UserID = m.nextID
	m.nextID++
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		if strings.ToLower(u.Email) == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock LoginHistoryRepository ──

type mockLoginHistoryRepo struct {
	entries   []model.LoginHistory
	nextID    uint
	createErr error
}

func newMockLoginHistoryRepo() *mockLoginHistoryRepo {
	return &mockLoginHistoryRepo{nextID: 1}
}

func (m *mockLoginHistoryRepo) Create(_ context.Context, entry *model.LoginHistory) error {
	if m.createErr != nil {
		return m.createErr
	}
	entry.LoginHistoryID = m.nextID
	m.nextID++
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockLoginHistoryRepo) ListByUser(_ context.Context, userID uint, offset, limit int) ([]model.LoginHistory, int64, error) {
	var matched []model.LoginHistory
	for _, e := range m.entries {
		if e.UserID == userID {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].LastLoginDate.Equal(matched[j].LastLoginDate) {
			return matched[i].LastLoginDate.After(matched[j].LastLoginDate)
		}
		return matched[i].LoginHistoryID > matched[j].LoginHistoryID
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []model.LoginHistory{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockLoginHistoryRepo) DeleteBefore(_ context.Context, before time.Time) (int64, error) {
	kept := m.entries[:0]
	var n int64
	for _, e := range m.entries {
		if e.LastLoginDate.Before(before) {
			n++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return n, nil
}

// ── 测试辅助 ──

type mockRepos struct {
	course  *mockCourseRepo
	week    *mockWeekRepo
	user    *mockUserRepo
	history *mockLoginHistoryRepo
}

// newMockRepository 组装不带数据库连接的 Repository，Transaction 直接执行回调
func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		course:  newMockCourseRepo(),
		week:    newMockWeekRepo(),
		user:    newMockUserRepo(),
		history: newMockLoginHistoryRepo(),
	}
	repo := &repository.Repository{
		Course:       m.course,
		Week:         m.week,
		User:         m.user,
		LoginHistory: m.history,
	}
	return repo, m
}

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
