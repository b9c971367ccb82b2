package main

import (
	"context"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) migrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	ctx := context.Background()
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)

	if err := entity.Migrate(ctx); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
