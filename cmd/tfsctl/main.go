package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/twentyfourseven/internal/cli"
	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/config"
)

func main() {
	cfg, err := config.Load("./configs/.env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	service.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = cli.NewRootCommand(cfg).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "tfsctl:", err)
		os.Exit(1)
	}
}
