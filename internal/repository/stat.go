package repository

import (
	"context"
	"errors"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/internal/progression"
	"github.com/famquest-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// grantRetryLimit bounds the optimistic-concurrency loop in GrantXP. Losing
// the race this many times in a row means something is systematically wrong.
const grantRetryLimit = 5

var ErrGrantContention = errors.New("xp grant did not settle after retries")

type StatRepository interface {
	Get(ctx context.Context, memberID string, statType entity.StatType) (*entity.Stat, error)
	GetByMemberID(ctx context.Context, memberID string) ([]entity.Stat, error)
	Create(ctx context.Context, stat *entity.Stat) error
	GrantXP(ctx context.Context, memberID string, statType entity.StatType, amount int) (*entity.Stat, error)
}

type statRepository struct{}

func NewStatRepository() *statRepository {
	return &statRepository{}
}

func (r *statRepository) Get(
	ctx context.Context, memberID string, statType entity.StatType,
) (*entity.Stat, error) {
	var result entity.Stat
	err := xcontext.DB(ctx).
		Where("member_id=? AND stat_type=?", memberID, statType).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *statRepository) GetByMemberID(ctx context.Context, memberID string) ([]entity.Stat, error) {
	var result []entity.Stat
	if err := xcontext.DB(ctx).Where("member_id=?", memberID).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *statRepository) Create(ctx context.Context, stat *entity.Stat) error {
	return xcontext.DB(ctx).Create(stat).Error
}

// GrantXP adds amount to a ledger entry and recomputes its level, creating
// the entry on first use. XP and level always change in the same UPDATE; the
// write is guarded on the XP value it was computed from, so two concurrent
// grants to the same stat serialize instead of losing one increment.
func (r *statRepository) GrantXP(
	ctx context.Context, memberID string, statType entity.StatType, amount int,
) (*entity.Stat, error) {
	for i := 0; i < grantRetryLimit; i++ {
		current, err := r.Get(ctx, memberID, statType)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}

			stat := &entity.Stat{
				MemberID:  memberID,
				StatType:  statType,
				CurrentXP: amount,
				Level:     progression.LevelFromXP(amount),
			}
			createErr := r.Create(ctx, stat)
			if createErr == nil {
				return stat, nil
			}

			// A concurrent grant may have created the row first; if so, go
			// around and take the update path.
			if _, getErr := r.Get(ctx, memberID, statType); getErr == nil {
				continue
			}
			return nil, createErr
		}

		newXP := current.CurrentXP + amount
		newLevel := progression.LevelFromXP(newXP)

		tx := xcontext.DB(ctx).
			Model(&entity.Stat{}).
			Where("member_id=? AND stat_type=? AND current_xp=?", memberID, statType, current.CurrentXP).
			Updates(map[string]any{
				"current_xp": newXP,
				"level":      newLevel,
			})

		if tx.Error != nil {
			return nil, tx.Error
		}

		if tx.RowsAffected > 1 {
			return nil, errors.New("the number of rows effected is invalid")
		}

		// Lost the race against another grant; re-read and retry.
		if tx.RowsAffected == 0 {
			continue
		}

		current.CurrentXP = newXP
		current.Level = newLevel
		return current, nil
	}

	return nil, ErrGrantContention
}
