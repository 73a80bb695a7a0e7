package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"emotion-analysis-log/config"
	"emotion-analysis-log/pkg/excel"

	"go.uber.org/zap"
)

// EmotionClassifier 情感分析客户端接口
type EmotionClassifier interface {
	AnalyzeEmotion(ctx context.Context, text string) (string, error)
}

// EmotionAnalysisService 驱动逐条分析与断点续跑
// 结果文件本身就是检查点：每分析一条记录就全量重写一次
type EmotionAnalysisService struct {
	classifier EmotionClassifier
	cfg        *config.AnalysisConfig
}

func NewEmotionAnalysisService(classifier EmotionClassifier, cfg *config.AnalysisConfig) *EmotionAnalysisService {
	return &EmotionAnalysisService{
		classifier: classifier,
		cfg:        cfg,
	}
}

// Run 执行一次批量情感分析
// 已出现在结果文件中的 id 一律跳过，包括结果为空的记录
func (s *EmotionAnalysisService) Run(ctx context.Context) error {
	// 确保结果目录存在
	if err := os.MkdirAll(filepath.Dir(s.cfg.OutputPath), 0755); err != nil {
		return fmt.Errorf("创建结果目录失败: %v", err)
	}

	// 读取原始数据，失败则整体终止
	source, err := excel.LoadTable(s.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("读取原始数据失败: %v", err)
	}

	// 读取已有结果；读取失败时降级为空表，从头开始
	result := s.loadExistingResult()
	processed := result.ProcessedIDs()

	startTime := time.Now()
	analyzed := 0
	skipped := 0
	failed := 0

	for _, record := range source.Records {
		select {
		case <-ctx.Done():
			zap.S().Warnf("收到终止信号, 已分析 %d 条, 下次运行将从断点继续", analyzed)
			return ctx.Err()
		default:
		}

		// 已处理过的 id 直接跳过，不重新分析也不覆盖
		if record.ID != nil {
			if _, exists := processed[*record.ID]; exists {
				skipped++
				continue
			}
		}

		// body 为空时不调用分析接口，结果记为空
		if !record.HasBody() {
			record.EmotionResult = nil
		} else {
			label, err := s.classifier.AnalyzeEmotion(ctx, record.Body)
			if err != nil {
				zap.S().Warnf("记录 %s 情感分析失败: %v", describeID(record.ID), err)
				failed++
				record.EmotionResult = nil
			} else {
				record.EmotionResult = &label
			}
		}

		// 追加后立即全量落盘；写入失败不终止，下一次成功写入会带上这条记录
		result.Append(record)
		if err := excel.SaveTable(s.cfg.OutputPath, result); err != nil {
			zap.S().Warnf("中间保存失败: %v", err)
		}
		analyzed++
	}

	zap.S().Infof("分析完成: 新增 %d 条, 跳过 %d 条, 失败 %d 条", analyzed, skipped, failed)
	zap.S().Infof("耗时：%s", time.Since(startTime))
	zap.S().Infof("情感分析结果已保存到 '%s'", s.cfg.OutputPath)
	return nil
}

// loadExistingResult 读取已有的结果表，文件不存在或不可读时返回空表
func (s *EmotionAnalysisService) loadExistingResult() *excel.Table {
	if _, err := os.Stat(s.cfg.OutputPath); err != nil {
		return excel.NewResultTable()
	}
	result, err := excel.LoadTable(s.cfg.OutputPath)
	if err != nil {
		zap.S().Warnf("读取已有结果文件(%s)失败: %v, 将从空结果开始", s.cfg.OutputPath, err)
		return excel.NewResultTable()
	}
	return result
}

func describeID(id *int) string {
	if id == nil {
		return "<无id>"
	}
	return fmt.Sprintf("%d", *id)
}
