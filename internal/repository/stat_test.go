package repository_test

import (
	"testing"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/internal/progression"
	"github.com/famquest-app/backend/internal/repository"
	"github.com/famquest-app/backend/internal/testutil"
	"github.com/stretchr/testify/require"
)

func Test_statRepository_GrantXP(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	statRepo := repository.NewStatRepository()

	// First grant creates the ledger row.
	stat, err := statRepo.GrantXP(ctx, testutil.Member1.ID, entity.StatGrit, 25)
	require.NoError(t, err)
	require.Equal(t, 25, stat.CurrentXP)
	require.Equal(t, 1, stat.Level)

	// Later grants add up and recompute the level in the same write.
	stat, err = statRepo.GrantXP(ctx, testutil.Member1.ID, entity.StatGrit, 120)
	require.NoError(t, err)
	require.Equal(t, 145, stat.CurrentXP)
	require.Equal(t, 2, stat.Level)

	// The cached level always matches the curve.
	fresh, err := statRepo.Get(ctx, testutil.Member1.ID, entity.StatGrit)
	require.NoError(t, err)
	require.Equal(t, progression.LevelFromXP(fresh.CurrentXP), fresh.Level)

	// Grants to different stats of the same member stay independent.
	stat, err = statRepo.GrantXP(ctx, testutil.Member1.ID, entity.StatHeart, 10)
	require.NoError(t, err)
	require.Equal(t, 10, stat.CurrentXP)

	all, err := statRepo.GetByMemberID(ctx, testutil.Member1.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
