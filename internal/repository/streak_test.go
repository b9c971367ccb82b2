package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/internal/repository"
	"github.com/famquest-app/backend/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_streakRepository_UpdateDayTransition(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	streakRepo := repository.NewStreakRepository()

	yesterday := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	today := yesterday.AddDate(0, 0, 1)

	err := streakRepo.Create(ctx, &entity.Streak{
		MemberID:       testutil.Member1.ID,
		CurrentStreak:  3,
		BestStreak:     3,
		LastActiveDate: repository.NullTime(yesterday),
		WeekStartDate:  repository.NullTime(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	current, err := streakRepo.Get(ctx, testutil.Member1.ID)
	require.NoError(t, err)

	next := &entity.Streak{
		MemberID:       testutil.Member1.ID,
		CurrentStreak:  4,
		BestStreak:     4,
		LastActiveDate: repository.NullTime(today),
		WeekStartDate:  current.WeekStartDate,
	}

	// The guarded write succeeds exactly once per day: a second attempt
	// computed from the stale last_active_date must fail.
	require.NoError(t, streakRepo.UpdateDayTransition(ctx, testutil.Member1.ID, current.LastActiveDate, next))

	err = streakRepo.UpdateDayTransition(ctx, testutil.Member1.ID, current.LastActiveDate, next)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	updated, err := streakRepo.Get(ctx, testutil.Member1.ID)
	require.NoError(t, err)
	require.Equal(t, 4, updated.CurrentStreak)
	require.Equal(t, 4, updated.BestStreak)
}
