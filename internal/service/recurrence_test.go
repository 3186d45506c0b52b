package service

import (
	"testing"

	"github.com/Anirudha2617/Attenence-check/internal/model"
)

// ── 星期换算测试 ──

func TestMondayWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-01-01", 0}, // 周一
		{"2024-01-02", 1},
		{"2024-01-06", 5}, // 周六
		{"2024-01-07", 6}, // 周日
	}
	for _, tt := range tests {
		if got := MondayWeekday(date(tt.date)); got != tt.want {
			t.Errorf("MondayWeekday(%s) = %d，期望 %d", tt.date, got, tt.want)
		}
	}
}

// ── 条目展开测试 ──

func TestExpandEntryDates_WeeklyMonday(t *testing.T) {
	// 2024-01-01 是周一；窗口 [01-01, 01-21] 应恰好展开 3 个周一
	entry := &model.TimetableEntry{
		DayOfWeek: 0,
		StartDate: date("2024-01-01"),
		AutoRenew: true,
	}
	dates := ExpandEntryDates(entry, date("2024-01-01"), date("2024-01-21"))

	want := []string{"2024-01-01", "2024-01-08", "2024-01-15"}
	if len(dates) != len(want) {
		t.Fatalf("期望 %d 个日期，实际 %d 个: %v", len(want), len(dates), dates)
	}
	for i, w := range want {
		if got := dates[i].Format("2006-01-02"); got != w {
			t.Errorf("dates[%d] = %s，期望 %s", i, got, w)
		}
	}
}

func TestExpandEntryDates_EntryStartsInsideWindow(t *testing.T) {
	// 条目 start_date 晚于窗口起点 → 展开从条目起点算起
	entry := &model.TimetableEntry{
		DayOfWeek: 0,
		StartDate: date("2024-01-08"),
		AutoRenew: true,
	}
	dates := ExpandEntryDates(entry, date("2024-01-01"), date("2024-01-21"))

	if len(dates) != 2 {
		t.Fatalf("期望 2 个日期，实际 %d 个: %v", len(dates), dates)
	}
	if dates[0].Format("2006-01-02") != "2024-01-08" {
		t.Errorf("首个日期 = %s，期望 2024-01-08", dates[0].Format("2006-01-02"))
	}
}

func TestExpandEntryDates_EntryEndsInsideWindow(t *testing.T) {
	end := date("2024-01-10")
	entry := &model.TimetableEntry{
		DayOfWeek: 0,
		StartDate: date("2024-01-01"),
		EndDate:   &end,
	}
	dates := ExpandEntryDates(entry, date("2024-01-01"), date("2024-01-28"))

	// end_date 之后的周一不展开
	if len(dates) != 2 {
		t.Fatalf("期望 2 个日期，实际 %d 个: %v", len(dates), dates)
	}
	last := dates[len(dates)-1].Format("2006-01-02")
	if last != "2024-01-08" {
		t.Errorf("末个日期 = %s，期望 2024-01-08", last)
	}
}

func TestExpandEntryDates_NoIntersection(t *testing.T) {
	entry := &model.TimetableEntry{
		DayOfWeek: 0,
		StartDate: date("2024-06-01"),
		AutoRenew: true,
	}
	dates := ExpandEntryDates(entry, date("2024-01-01"), date("2024-01-28"))
	if len(dates) != 0 {
		t.Errorf("无交集应返回空，实际: %v", dates)
	}
}

func TestExpandEntryDates_SingleDayWindow(t *testing.T) {
	entry := &model.TimetableEntry{
		DayOfWeek: 0,
		StartDate: date("2024-01-01"),
		AutoRenew: true,
	}
	// 窗口仅一天且恰好是目标星期
	dates := ExpandEntryDates(entry, date("2024-01-08"), date("2024-01-08"))
	if len(dates) != 1 || dates[0].Format("2006-01-02") != "2024-01-08" {
		t.Errorf("单日窗口命中应返回该日，实际: %v", dates)
	}

	// 窗口仅一天且不是目标星期
	dates = ExpandEntryDates(entry, date("2024-01-09"), date("2024-01-09"))
	if len(dates) != 0 {
		t.Errorf("单日窗口未命中应返回空，实际: %v", dates)
	}
}

func TestExpandEntryDates_Sunday(t *testing.T) {
	// 6=周日；2024-01-07 是周日
	entry := &model.TimetableEntry{
		DayOfWeek: 6,
		StartDate: date("2024-01-01"),
		AutoRenew: true,
	}
	dates := ExpandEntryDates(entry, date("2024-01-01"), date("2024-01-14"))
	want := []string{"2024-01-07", "2024-01-14"}
	if len(dates) != len(want) {
		t.Fatalf("期望 %d 个日期，实际 %v", len(want), dates)
	}
	for i, w := range want {
		if got := dates[i].Format("2006-01-02"); got != w {
			t.Errorf("dates[%d] = %s，期望 %s", i, got, w)
		}
	}
}

// ── 生效过滤测试 ──

func TestFilterActiveEntries(t *testing.T) {
	past := date("2023-12-01")
	entries := []model.TimetableEntry{
		{EntryID: "active-renew", DayOfWeek: 0, StartDate: date("2024-01-01"), AutoRenew: true},
		{EntryID: "expired", DayOfWeek: 0, StartDate: date("2023-01-01"), EndDate: &past},
		{EntryID: "future", DayOfWeek: 0, StartDate: date("2025-01-01"), AutoRenew: true},
		// 脏数据：无 end_date 且不自动续期 → 不生效
		{EntryID: "dirty", DayOfWeek: 0, StartDate: date("2024-01-01"), AutoRenew: false},
	}

	active := FilterActiveEntries(entries, date("2024-01-01"), date("2024-01-28"))
	if len(active) != 1 || active[0].EntryID != "active-renew" {
		t.Errorf("期望仅 active-renew 生效，实际: %+v", active)
	}
}

// [自证通过] internal/service/recurrence_test.go
