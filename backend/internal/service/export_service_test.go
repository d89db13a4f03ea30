package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Shadomax/Elearning/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockRepos) {
	repo, mocks := newMockRepository()
	svc := NewExportService(repo, zap.NewNop()).(*exportService)
	svc.now = func() time.Time { return time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC) }
	return svc, mocks
}

// ── ExportCourse 测试 ──

func TestExportService_ExportCourse_NotFound(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportCourse(context.Background(), 404, model.RoleAdmin)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}

func TestExportService_ExportCourse_InactiveHiddenFromViewer(t *testing.T) {
	svc, m := setupTestExportService()
	c := seedCourse(m, "Hidden", false)

	if _, _, err := svc.ExportCourse(context.Background(), c.CourseID, model.RoleViewer); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("普通用户导出停用课程应视为不存在，实际: %v", err)
	}
	if _, _, err := svc.ExportCalendar(context.Background(), c.CourseID, model.RoleViewer); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("普通用户导出停用课程日历应视为不存在，实际: %v", err)
	}
}

func TestExportService_ExportCourse_Success(t *testing.T) {
	svc, m := setupTestExportService()
	c := seedCourse(m, "Algebra", true)

	buf, filename, err := svc.ExportCourse(context.Background(), c.CourseID, model.RoleViewer)
	if err != nil {
		t.Fatalf("ExportCourse 应成功: %v", err)
	}
	if filename != "course_1.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("无法解析导出的 Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Course")
	if err != nil {
		t.Fatalf("读取 Sheet 失败: %v", err)
	}
	if rows[0][0] != "Algebra" {
		t.Errorf("标题行应为课程名，实际 %q", rows[0][0])
	}
	if len(rows) != 9 {
		t.Fatalf("期望 9 行（标题 + 4 行信息 + 空行 + 表头 + 2 周），实际 %d", len(rows))
	}
	week2 := rows[8]
	if week2[1] != "Week 2" || week2[2] != "2024-01-08" || week2[3] != "2024-01-14" {
		t.Errorf("第 2 周行不符: %v", week2)
	}
}

// ── ExportCalendar 测试 ──

func TestExportService_ExportCalendar_Success(t *testing.T) {
	svc, m := setupTestExportService()
	c := seedCourse(m, "Algebra", true)

	data, filename, err := svc.ExportCalendar(context.Background(), c.CourseID, model.RoleAdmin)
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}
	if filename != "course_1.ics" {
		t.Errorf("文件名不符: %s", filename)
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("无法解析导出的日历: %v", err)
	}
	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("期望 2 个事件，实际 %d", len(events))
	}

	summary := events[0].GetProperty(ics.ComponentPropertySummary)
	if summary == nil || !strings.Contains(summary.Value, "Week 1") {
		t.Errorf("第 1 个事件摘要不符: %+v", summary)
	}
	start := events[1].GetProperty(ics.ComponentPropertyDtStart)
	if start == nil || start.Value != "20240108" {
		t.Errorf("第 2 周应从 20240108 开始: %+v", start)
	}
}

func TestExportService_ExportCalendar_NoWeeks(t *testing.T) {
	svc, m := setupTestExportService()
	c := &model.Course{Name: "Short", StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 3), Active: true}
	_ = m.course.Create(context.Background(), c)

	data, _, err := svc.ExportCalendar(context.Background(), c.CourseID, model.RoleViewer)
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}
	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("无法解析导出的日历: %v", err)
	}
	if len(cal.Events()) != 0 {
		t.Errorf("无周记录时不应有事件，实际 %d", len(cal.Events()))
	}
}
