package cmd

import (
	"emotion-analysis-log/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "emotion-analysis-log",
		Short: "学校论坛帖子情感分析工具",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableNoDescFlag:   true,
			DisableDescriptions: true,
			HiddenDefaultCmd:    true,
		},
	}

	rootCmd.AddCommand(NewAnalyzeCommand())
	rootCmd.AddCommand(NewFetchCommand())
	rootCmd.AddCommand(NewReportCommand())

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		zap.S().Info("使用 'analyze' 子命令进行情感分析")
		cmd.Help()
	}
	rootCmd.Version = util.GetVersion().Version
	return rootCmd
}
