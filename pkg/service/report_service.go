package service

import (
	"context"
	"fmt"

	"emotion-analysis-log/config"
	"emotion-analysis-log/pkg/db"
	"emotion-analysis-log/pkg/excel"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportService 将结果表导入 DuckDB 并统计标签分布
type ReportService struct {
	cfg *config.AnalysisConfig
}

func NewReportService(cfg *config.AnalysisConfig) *ReportService {
	return &ReportService{cfg: cfg}
}

// Report 读取结果文件，写入 DuckDB 的 emotion_report 表，输出各标签数量
func (s *ReportService) Report(ctx context.Context) error {
	result, err := excel.LoadTable(s.cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("读取结果文件失败: %v", err)
	}

	if err := s.createReportTable(ctx); err != nil {
		return fmt.Errorf("创建 DuckDB 表失败: %v", err)
	}

	duckDB := db.GetDuckDBWithContext(ctx)
	if duckDB == nil {
		return fmt.Errorf("DuckDB 连接未初始化")
	}

	insertSQL := `
		INSERT INTO emotion_report (id, record_id, emotion_result)
		VALUES (?, ?, ?)
	`
	inserted := 0
	for _, record := range result.Records {
		var recordID interface{}
		if record.ID != nil {
			recordID = *record.ID
		}
		var label interface{}
		if record.EmotionResult != nil {
			label = *record.EmotionResult
		}
		if _, err := duckDB.ExecContext(ctx, insertSQL, uuid.NewString(), recordID, label); err != nil {
			zap.S().Warnf("插入记录 %s 失败: %v", describeID(record.ID), err)
			continue
		}
		inserted++
	}

	rows, err := duckDB.QueryContext(ctx, `
		SELECT COALESCE(emotion_result, '<空>') AS label, COUNT(*) AS cnt
		FROM emotion_report
		GROUP BY label
		ORDER BY cnt DESC
	`)
	if err != nil {
		return fmt.Errorf("统计标签分布失败: %v", err)
	}
	defer rows.Close()

	zap.S().Infof("结果表共 %d 条记录, 成功导入 %d 条", len(result.Records), inserted)
	for rows.Next() {
		var label string
		var count int64
		if err := rows.Scan(&label, &count); err != nil {
			return fmt.Errorf("读取统计结果失败: %v", err)
		}
		zap.S().Infof("标签 %-10s: %d 条", label, count)
	}
	return rows.Err()
}

// createReportTable 重建 DuckDB 报表，保证每次统计基于最新结果
func (s *ReportService) createReportTable(ctx context.Context) error {
	duckDB := db.GetDuckDBWithContext(ctx)
	if duckDB == nil {
		return fmt.Errorf("DuckDB 连接未初始化")
	}

	if _, err := duckDB.ExecContext(ctx, "DROP TABLE IF EXISTS emotion_report"); err != nil {
		return fmt.Errorf("删除旧表失败: %v", err)
	}

	createTableSQL := `
		CREATE TABLE emotion_report (
			id TEXT PRIMARY KEY,
			record_id INTEGER,
			emotion_result TEXT
		)
	`
	if _, err := duckDB.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("创建表失败: %v", err)
	}

	zap.S().Debug("DuckDB 报表创建成功")
	return nil
}
