package entity

import (
	"context"

	"github.com/famquest-app/backend/pkg/xcontext"
)

func Migrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Member{},
		&Stat{},
		&Activity{},
		&Streak{},
	)
}
