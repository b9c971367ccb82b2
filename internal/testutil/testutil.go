package testutil

import (
	"context"

	"github.com/famquest-app/backend/config"
	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/internal/repository"
	"github.com/famquest-app/backend/pkg/logger"
	"github.com/famquest-app/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	Member1 = &entity.Member{
		Base:   entity.Base{ID: "member1"},
		Name:   "Avery",
		Avatar: "🦊",
		Role:   entity.RoleChild,
	}

	Member2 = &entity.Member{
		Base:   entity.Base{ID: "member2"},
		Name:   "Jordan",
		Avatar: "🦉",
		Role:   entity.RoleParent,
	}
)

// MockContext builds a context backed by an in-memory sqlite database with
// the schema migrated, the way every domain test starts.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "test",
		ApiServer: config.ServerConfigs{
			MaxLimit:     50,
			DefaultLimit: 20,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.Migrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

// CreateFixtureDb inserts the fixture members into the context's database.
func CreateFixtureDb(ctx context.Context) {
	memberRepo := repository.NewMemberRepository()

	if err := memberRepo.Create(ctx, Member1); err != nil {
		panic(err)
	}

	if err := memberRepo.Create(ctx, Member2); err != nil {
		panic(err)
	}
}
