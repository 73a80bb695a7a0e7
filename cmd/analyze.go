package cmd

import (
	"errors"

	"emotion-analysis-log/config"
	"emotion-analysis-log/pkg/gemini"
	"emotion-analysis-log/pkg/service"
	"emotion-analysis-log/pkg/signals"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewAnalyzeCommand() *cobra.Command {
	var configFilePath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "对帖子正文逐条做情感分析",
		Long:  "读取输入 Excel 的 body 列，调用 Gemini 判定 Positive/Negative/Neutral，每条记录分析后立即全量保存结果文件，可随时中断后续跑",
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

			if cfg.AnalysisConfig == nil {
				zap.S().Error("分析任务配置未设置")
				return
			}

			ctx := signals.SetupSignalHandler()

			// 初始化 Gemini 客户端
			classifier, err := gemini.NewClient(ctx, cfg.GeminiConfig)
			if err != nil {
				zap.S().Errorf("Gemini 客户端初始化错误:%s", err.Error())
				return
			}
			defer classifier.Close()

			// 执行批量分析
			analysisService := service.NewEmotionAnalysisService(classifier, cfg.AnalysisConfig)
			if err := analysisService.Run(ctx); err != nil {
				zap.S().Errorf("情感分析失败:%s", err.Error())
				return
			}
		},
	}

	cmd.Flags().StringVarP(&configFilePath, "config", "c", "./etc/config.yaml", "配置文件路径")
	return cmd
}
