package cmd

import (
	"errors"

	"emotion-analysis-log/config"
	"emotion-analysis-log/pkg/db"
	"emotion-analysis-log/pkg/service"
	"emotion-analysis-log/pkg/signals"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewReportCommand() *cobra.Command {
	var configFilePath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "统计情感分析结果",
		Long:  "将结果 Excel 导入 DuckDB 的 emotion_report 表，输出各标签的数量分布",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.TryLoadFromDisk(configFilePath)
			if err != nil {
				zap.S().Errorf("读取本地配置文件错误:%s", err.Error())
				return
			}
			if errs := cfg.Validate(); len(errs) > 0 {
				zap.S().Errorf("本地配置文件验证错误:%s", errors.Join(errs...))
				return
			}

			if cfg.DuckDBConfig == nil {
				zap.S().Error("DuckDB 配置未设置")
				return
			}

			ctx := signals.SetupSignalHandler()

			// 初始化 DuckDB
			if err := db.InitDuckDB(cfg.DuckDBConfig); err != nil {
				zap.S().Errorf("DuckDB 连接错误:%s", err.Error())
				return
			}

			// 生成报表
			reportService := service.NewReportService(cfg.AnalysisConfig)
			if err := reportService.Report(ctx); err != nil {
				zap.S().Errorf("统计失败:%s", err.Error())
				return
			}
		},
	}

	cmd.Flags().StringVarP(&configFilePath, "config", "c", "./etc/config.yaml", "配置文件路径")
	return cmd
}
