package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/internal/repository"
	"github.com/Shadomax/Elearning/backend/pkg/validation"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成导出文件失败")

const calendarProductID = "-//Elearning//Course Calendar//EN"

// ExportService 导出业务接口
//
// 导出与课程详情使用同一可见性规则：无权查看停用课程的角色导出停用课程时返回 ErrCourseNotFound。
// 每一周的日期区间由课程起止日期中较早的一天起算，每 7 天一周。
type ExportService interface {
	// ExportCourse 导出课程与周次为 Excel
	ExportCourse(ctx context.Context, courseID uint, role model.Role) (*bytes.Buffer, string, error)
	// ExportCalendar 导出课程周次为 iCalendar，每周一个全天事件
	ExportCalendar(ctx context.Context, courseID uint, role model.Role) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ExportCourse — 导出课程为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Course"
//   - 第 1 行：课程名称（合并单元格）
//   - 第 2~5 行：起止日期、周数、状态
//   - 第 7 行起：周次表（序号 / 标题 / 开始 / 结束 / 可见 / 启用）

func (s *exportService) ExportCourse(ctx context.Context, courseID uint, role model.Role) (*bytes.Buffer, string, error) {
	course, weeks, err := findVisibleCourse(ctx, s.repo, courseID, role)
	if err != nil {
		if !errors.Is(err, ErrCourseNotFound) {
			s.logger.Error("查询课程失败", zap.Uint("course_id", courseID), zap.Error(err))
		}
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Course"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "C", "D", 14)
	f.SetColWidth(sheetName, "E", "F", 10)

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", course.Name)
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 课程信息
	state := "inactive"
	if course.Active {
		state = "active"
	}
	info := [][2]any{
		{"Start", course.StartDate.Format(validation.DateLayout)},
		{"End", course.EndDate.Format(validation.DateLayout)},
		{"Weeks", course.Duration},
		{"State", state},
	}
	for i, kv := range info {
		row := 2 + i
		f.SetCellValue(sheetName, cell("A", row), kv[0])
		f.SetCellValue(sheetName, cell("B", row), kv[1])
	}

	// 周次表头
	row := 7
	headers := []string{"#", "Title", "From", "To", "Visible", "Active"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), row), h)
	}
	f.SetCellStyle(sheetName, cell("A", row), cell(colName(len(headers)-1), row), headerStyle)

	// 数据行
	for i, w := range weeks {
		row++
		from, to := WeekRange(course.StartDate, course.EndDate, i+1)
		f.SetCellValue(sheetName, cell("A", row), i+1)
		f.SetCellValue(sheetName, cell("B", row), w.Title)
		f.SetCellValue(sheetName, cell("C", row), from.Format(validation.DateLayout))
		// 结束日为区间最后一天（含）
		f.SetCellValue(sheetName, cell("D", row), to.AddDate(0, 0, -1).Format(validation.DateLayout))
		f.SetCellValue(sheetName, cell("E", row), yesNo(w.Visible))
		f.SetCellValue(sheetName, cell("F", row), yesNo(w.Active))
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Uint("course_id", courseID), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("course_%d.xlsx", course.CourseID)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar — 导出课程周次为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportCalendar(ctx context.Context, courseID uint, role model.Role) ([]byte, string, error) {
	course, weeks, err := findVisibleCourse(ctx, s.repo, courseID, role)
	if err != nil {
		if !errors.Is(err, ErrCourseNotFound) {
			s.logger.Error("查询课程失败", zap.Uint("course_id", courseID), zap.Error(err))
		}
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetName(course.Name)

	stamp := s.now().UTC()
	for i, w := range weeks {
		from, to := WeekRange(course.StartDate, course.EndDate, i+1)

		event := cal.AddEvent(fmt.Sprintf("course-%d-week-%d@elearning", course.CourseID, w.WeekID))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(from)
		event.SetAllDayEndAt(to)
		event.SetSummary(fmt.Sprintf("%s: %s", course.Name, w.Title))
		if course.Description != "" {
			event.SetDescription(course.Description)
		}
	}

	filename := fmt.Sprintf("course_%d.ics", course.CourseID)
	return []byte(cal.Serialize()), filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
