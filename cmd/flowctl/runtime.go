package main

import (
	"fmt"

	"github.com/JaimeStill/file-flow/internal/config"
	"github.com/JaimeStill/file-flow/internal/infrastructure"
)

// session is an infrastructure with a connected database. Close releases it.
type session struct {
	cfg   *config.Config
	infra *infrastructure.Infrastructure
}

func openSession() (*session, error) {
	cfg, err := config.LoadFrom(configDir)
	if err != nil {
		return nil, err
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	if err := infra.Database.Start(infra.Lifecycle); err != nil {
		return nil, fmt.Errorf("database start failed: %w", err)
	}

	return &session{cfg: cfg, infra: infra}, nil
}

func (s *session) Close() error {
	return s.infra.Lifecycle.Shutdown(s.cfg.ShutdownTimeoutDuration())
}
