package main

import (
	"os"

	"emotion-analysis-log/cmd"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := cmd.NewRootCommand().Execute(); err != nil {
		zap.S().Errorf("命令执行错误:%s", err.Error())
		os.Exit(1)
	}
}
