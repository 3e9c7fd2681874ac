package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-fixtures/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.RunInspect(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
