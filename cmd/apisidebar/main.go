package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pinglow/apisidebar/cmd/apisidebar/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
