package main

import (
	"context"
	"time"

	functionsapp "github.com/10Narratives/streamcheck/internal/app/functions"
	configutils "github.com/10Narratives/streamcheck/pkg/config"
	errorutils "github.com/10Narratives/streamcheck/pkg/errors"
	logutils "github.com/10Narratives/streamcheck/pkg/logging"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	cfg := errorutils.Must(configutils.ReadFromEnv[functionsapp.Config]())
	log := errorutils.Must(logutils.NewLogger(cfg.Env))

	app, err := functionsapp.NewApp(context.Background(), cfg, log)
	errorutils.Tryf(err, "cannot start %s function", "event-generator")

	log.Info("starting event-generator function")
	lambda.StartWithOptions(app.GeneratorHandler(), lambda.WithEnableSIGTERM(func() {
		log.Info("stopping event-generator function")

		shutdownContext, shutdownCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer shutdownCancel()

		if err := app.Shutdown(shutdownContext); err != nil {
			log.Warn("shutdown failed", zap.Error(err))
		}
		_ = log.Sync()
	}))
}
