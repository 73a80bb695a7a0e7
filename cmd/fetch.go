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

func NewFetchCommand() *cobra.Command {
	var configFilePath string
	var batchSize int

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "从论坛数据库导出帖子",
		Long:  "从 MySQL 的 tbl_school_post 表分批读取帖子，生成情感分析的输入 Excel 文件",
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

			if cfg.MySQLConfig == nil {
				zap.S().Error("MySQL 配置未设置")
				return
			}

			ctx := signals.SetupSignalHandler()

			// 初始化 MySQL
			if err := db.InitTiDB(cfg); err != nil {
				zap.S().Errorf("MySQL 数据库连接错误:%s", err.Error())
				return
			}

			// 执行导出
			fetchService := service.NewFetchService(db.GetTiDB(), cfg.AnalysisConfig)
			if err := fetchService.FetchToExcel(ctx, batchSize); err != nil {
				zap.S().Errorf("导出失败:%s", err.Error())
				return
			}
		},
	}

	cmd.Flags().StringVarP(&configFilePath, "config", "c", "./etc/config.yaml", "配置文件路径")
	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", 100, "批量读取大小")
	return cmd
}
