package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type StreakRepository interface {
	Get(ctx context.Context, memberID string) (*entity.Streak, error)
	Create(ctx context.Context, streak *entity.Streak) error
	// UpdateDayTransition writes the new streak state, guarded on the
	// last_active_date the transition was computed from. It returns
	// gorm.ErrRecordNotFound when another request already performed today's
	// transition, so exactly one caller per member per day wins.
	UpdateDayTransition(ctx context.Context, memberID string, prevLastActive sql.NullTime, next *entity.Streak) error
}

type streakRepository struct{}

func NewStreakRepository() *streakRepository {
	return &streakRepository{}
}

func (r *streakRepository) Get(ctx context.Context, memberID string) (*entity.Streak, error) {
	var result entity.Streak
	if err := xcontext.DB(ctx).Take(&result, "member_id=?", memberID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *streakRepository) Create(ctx context.Context, streak *entity.Streak) error {
	return xcontext.DB(ctx).Create(streak).Error
}

func (r *streakRepository) UpdateDayTransition(
	ctx context.Context, memberID string, prevLastActive sql.NullTime, next *entity.Streak,
) error {
	guard := xcontext.DB(ctx).Model(&entity.Streak{}).Where("member_id=?", memberID)
	if prevLastActive.Valid {
		guard = guard.Where("last_active_date=?", prevLastActive.Time)
	} else {
		guard = guard.Where("last_active_date IS NULL")
	}

	tx := guard.Updates(map[string]any{
		"current_streak":           next.CurrentStreak,
		"best_streak":              next.BestStreak,
		"comeback_count":           next.ComebackCount,
		"last_active_date":         nullTimeValue(next.LastActiveDate),
		"rest_days_used_this_week": next.RestDaysUsedThisWeek,
		"week_start_date":          nullTimeValue(next.WeekStartDate),
	})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of rows effected is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func nullTimeValue(t sql.NullTime) any {
	if !t.Valid {
		return nil
	}
	return t.Time
}

// NullTime wraps a time into its nullable column form.
func NullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
