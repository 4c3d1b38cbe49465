package commands

import (
	"context"
	"fmt"

	functionsapp "github.com/10Narratives/streamcheck/internal/app/functions"
	configutils "github.com/10Narratives/streamcheck/pkg/config"
	logutils "github.com/10Narratives/streamcheck/pkg/logging"
	"go.uber.org/zap"
)

type GlobalOptions struct {
	ConfigPath string
	Env        string
}

type session struct {
	cfg *functionsapp.Config
	log *zap.Logger
	app *functionsapp.App
}

func (o *GlobalOptions) load(ctx context.Context) (*session, error) {
	cfg, err := configutils.Read[functionsapp.Config](o.ConfigPath)
	if err != nil {
		return nil, err
	}

	env := o.Env
	if env == "" {
		env = cfg.Env
	}
	log, err := logutils.NewLogger(env)
	if err != nil {
		return nil, fmt.Errorf("cannot create logger: %w", err)
	}

	app, err := functionsapp.NewApp(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, log: log, app: app}, nil
}

func (s *session) close(ctx context.Context) {
	if err := s.app.Shutdown(ctx); err != nil {
		s.log.Warn("shutdown failed", zap.Error(err))
	}
	_ = s.log.Sync()
}
