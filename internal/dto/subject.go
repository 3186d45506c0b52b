package dto

import "time"

// ── 科目 ──

// CreateSubjectRequest 创建科目请求
type CreateSubjectRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	ColorHex string `json:"color_hex" binding:"omitempty,hexcolor"`
}

// NextClassInfo 下一节课信息（无符合条件的实例时整体为 null）
type NextClassInfo struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // hh:mm AM/PM
	Day  string `json:"day"`  // Monday …
}

// SubjectResponse 科目列表项（含出勤统计）
type SubjectResponse struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	ColorHex             string         `json:"color_hex"`
	CreatedAt            time.Time      `json:"created_at"`
	TotalClasses         int            `json:"total_classes"`
	AttendancePercentage int            `json:"attendance_percentage"`
	NextClass            *NextClassInfo `json:"next_class"`
	LastAttended         *string        `json:"last_attended"` // YYYY-MM-DD
}

// SubjectDetailResponse 科目详情（列表项字段 + 全量课程实例）
type SubjectDetailResponse struct {
	SubjectResponse
	Sessions []SessionResponse `json:"sessions"`
}

// [自证通过] internal/dto/subject.go
