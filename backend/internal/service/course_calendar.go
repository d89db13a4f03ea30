package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/internal/repository"
)

// ── 课程周数计算与周记录生成 ──────────────────────────────────
//
//   - 周数 = floor(|end − start| / 7 天)，与参数顺序无关，不足一周不进位
//   - 日期先截断到 UTC 自然日，避免时区 / 夏令时导致的 23h、25h 误差
//   - 周记录标题为 "Week N"（N 从 1 开始），默认可见、启用
// ─────────────────────────────────────────────────────────────

// 按 Unix 秒换算天数，time.Duration 仅能表示约 292 年
const (
	secondsPerDay = 24 * 60 * 60
	daysPerWeek   = 7
)

// WeekTitle 第 n 周的默认标题
func WeekTitle(n int) string {
	return fmt.Sprintf("Week %d", n)
}

// ComputeDurationWeeks 计算两个日期之间的整周数
func ComputeDurationWeeks(start, end time.Time) int {
	from, to := calendarDay(start), calendarDay(end)
	if to.Before(from) {
		from, to = to, from
	}
	days := (to.Unix() - from.Unix()) / secondsPerDay
	return int(days / daysPerWeek)
}

// BuildWeeks 为课程构造 weekCount 条周记录（未持久化）
func BuildWeeks(courseID uint, weekCount int) []model.Week {
	if weekCount <= 0 {
		return nil
	}
	weeks := make([]model.Week, 0, weekCount)
	for i := 1; i <= weekCount; i++ {
		weeks = append(weeks, model.Week{
			Title:    WeekTitle(i),
			Visible:  true,
			Active:   true,
			CourseID: courseID,
		})
	}
	return weeks
}

// GenerateWeeks 构造并持久化周记录；weekCount 为 0 时不产生写操作
func GenerateWeeks(ctx context.Context, weekRepo repository.WeekRepository, courseID uint, weekCount int) ([]model.Week, error) {
	weeks := BuildWeeks(courseID, weekCount)
	if len(weeks) == 0 {
		return weeks, nil
	}
	if err := weekRepo.CreateBatch(ctx, weeks); err != nil {
		return nil, err
	}
	return weeks, nil
}

// WeekRange 第 n 周（从 1 开始）的起止日期，区间为 [start, end)
// 以两个日期中较早的一个作为第 1 周的起点
func WeekRange(courseStart, courseEnd time.Time, n int) (time.Time, time.Time) {
	origin := calendarDay(courseStart)
	if other := calendarDay(courseEnd); other.Before(origin) {
		origin = other
	}
	from := origin.AddDate(0, 0, 7*(n-1))
	return from, from.AddDate(0, 0, 7)
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
