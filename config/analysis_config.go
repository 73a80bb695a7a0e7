package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// AnalysisConfig 情感分析任务的输入/输出文件路径
type AnalysisConfig struct {
	InputPath  string `json:"inputPath" yaml:"inputPath"`   // 原始数据 Excel 路径
	OutputPath string `json:"outputPath" yaml:"outputPath"` // 分析结果 Excel 路径
}

func (a *AnalysisConfig) Validate() []error {
	var errs = make([]error, 0)
	if a.InputPath == "" {
		errs = append(errs, errors.Errorf("输入文件路径不能为空"))
	}
	if a.OutputPath == "" {
		errs = append(errs, errors.Errorf("输出文件路径不能为空"))
		return errs
	}

	// 确保结果目录存在
	dir := filepath.Dir(a.OutputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		errs = append(errs, errors.Errorf("创建结果目录失败: %v", err))
	}

	return errs
}

func NewDefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		InputPath:  filepath.Join("data", "school.xlsx"),
		OutputPath: filepath.Join("result", "emotion_analysis_result.xlsx"),
	}
}
