package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var onlyOneSignalHandler = make(chan struct{})

// SetupSignalHandler 注册 SIGINT/SIGTERM 处理器，返回收到信号时取消的 context
// 收到第二个信号时直接退出进程
func SetupSignalHandler() context.Context {
	close(onlyOneSignalHandler) // 只允许调用一次

	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
		<-c
		os.Exit(1)
	}()

	return ctx
}
