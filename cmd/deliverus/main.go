// Package main запускает командный клиент владельца ресторанов DeliverUS.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mmeshcher/deliverus-owner/internal/cli"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.New(sugar)

	// Прерывание отменяет контекст: результат запроса в полёте отбрасывается.
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
