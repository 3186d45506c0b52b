package service

import (
	"math"
	"time"

	"github.com/Anirudha2617/Attenence-check/internal/dto"
	"github.com/Anirudha2617/Attenence-check/internal/model"
)

// ── 出勤聚合 ────────────────────────────────────────────────
//
// 职责：对课程实例集合做只读统计，全部为纯函数。
//
// 口径（所有出口统一）：
//   - total    = 非 CANCELLED 实例数（停课永久排除在分母与总数之外）
//   - attended = PRESENT 实例数
//   - percent  = round-half-up(attended / total * 100)；total=0 时取 0，
//     永不除零、永不返回 NaN
// ─────────────────────────────────────────────────────────────

// AttendancePercent 四舍五入（0.5 进位）到整数的出勤率；total≤0 时返回 0
func AttendancePercent(attended, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(attended) / float64(total) * 100))
}

// ComputeOverall 总体出勤统计
func ComputeOverall(sessions []model.ClassSession) dto.OverallStats {
	total, attended := 0, 0
	for i := range sessions {
		if sessions[i].Status == model.StatusCancelled {
			continue
		}
		total++
		if sessions[i].Status == model.StatusPresent {
			attended++
		}
	}
	return dto.OverallStats{
		Percent:  AttendancePercent(attended, total),
		Attended: attended,
		Total:    total,
	}
}

// ComputeSubjectStats 按科目分桶统计。
// 输出顺序跟随 subjects 切片（仓储层按创建时间排序），保证确定性。
func ComputeSubjectStats(subjects []model.Subject, sessions []model.ClassSession) []dto.SubjectStat {
	type bucket struct{ present, total int }
	buckets := make(map[string]*bucket, len(subjects))
	for i := range subjects {
		buckets[subjects[i].SubjectID] = &bucket{}
	}
	for i := range sessions {
		b, ok := buckets[sessions[i].SubjectID]
		if !ok || sessions[i].Status == model.StatusCancelled {
			continue
		}
		b.total++
		if sessions[i].Status == model.StatusPresent {
			b.present++
		}
	}

	stats := make([]dto.SubjectStat, 0, len(subjects))
	for i := range subjects {
		b := buckets[subjects[i].SubjectID]
		stats = append(stats, dto.SubjectStat{
			Name:    subjects[i].Name,
			Present: b.present,
			Total:   b.total,
			Percent: AttendancePercent(b.present, b.total),
		})
	}
	return stats
}

// ComputeDailyStats 近 days 天（含今天）按日期分桶的趋势，最旧在前。
// 无课的日期输出零桶，保证趋势线连续。
func ComputeDailyStats(sessions []model.ClassSession, today time.Time, days int) []dto.DailyStat {
	today = DateOnly(today)

	type bucket struct{ present, total int }
	buckets := make(map[string]*bucket, days)
	stats := make([]dto.DailyStat, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		buckets[key] = &bucket{}
		stats = append(stats, dto.DailyStat{
			Date: key,
			Day:  day.Format("Mon"),
		})
	}

	for i := range sessions {
		if sessions[i].Status == model.StatusCancelled {
			continue
		}
		b, ok := buckets[DateOnly(sessions[i].ScheduledDate).Format("2006-01-02")]
		if !ok {
			continue
		}
		b.total++
		if sessions[i].Status == model.StatusPresent {
			b.present++
		}
	}

	for i := range stats {
		b := buckets[stats[i].Date]
		stats[i].Present = b.present
		stats[i].Total = b.total
	}
	return stats
}

// FindNextClass 科目的下一节课：scheduled_date ≥ today 且状态为 SCHEDULED
// 的最早实例（同日按 start_time）。无符合条件的实例返回 nil（非错误）。
// 入参需已按 scheduled_date, start_time 升序。
func FindNextClass(sessions []model.ClassSession, today time.Time) *dto.NextClassInfo {
	today = DateOnly(today)
	for i := range sessions {
		if sessions[i].Status != model.StatusScheduled {
			continue
		}
		if DateOnly(sessions[i].ScheduledDate).Before(today) {
			continue
		}
		return &dto.NextClassInfo{
			Date: DateOnly(sessions[i].ScheduledDate).Format("2006-01-02"),
			Time: FormatClock12(sessions[i].StartTime),
			Day:  DateOnly(sessions[i].ScheduledDate).Format("Monday"),
		}
	}
	return nil
}

// FindLastAttended 科目最近一次出勤的日期（scheduled_date ≤ today 且
// PRESENT 的最晚实例）。无符合条件的实例返回 nil（非错误）。
// 入参需已按 scheduled_date, start_time 升序。
func FindLastAttended(sessions []model.ClassSession, today time.Time) *string {
	today = DateOnly(today)
	for i := len(sessions) - 1; i >= 0; i-- {
		if sessions[i].Status != model.StatusPresent {
			continue
		}
		if DateOnly(sessions[i].ScheduledDate).After(today) {
			continue
		}
		date := DateOnly(sessions[i].ScheduledDate).Format("2006-01-02")
		return &date
	}
	return nil
}

// [自证通过] internal/service/stats.go
