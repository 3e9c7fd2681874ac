package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-fixtures/internal/app"
	"github.com/MKhiriev/go-pass-fixtures/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.RunGenerate(ctx, os.Args, os.Stdout, os.Stderr,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	stop()
	os.Exit(code)
}
