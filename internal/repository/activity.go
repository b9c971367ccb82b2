package repository

import (
	"context"
	"time"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/pkg/xcontext"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	GetListByMemberID(ctx context.Context, memberID string, limit int) ([]entity.Activity, error)
	GetLastCheckInSince(ctx context.Context, memberID string, since time.Time) (*entity.Activity, error)
}

type activityRepository struct{}

func NewActivityRepository() *activityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return xcontext.DB(ctx).Create(activity).Error
}

func (r *activityRepository) GetListByMemberID(
	ctx context.Context, memberID string, limit int,
) ([]entity.Activity, error) {
	var result []entity.Activity
	err := xcontext.DB(ctx).
		Where("member_id=?", memberID).
		Order("created_at DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) GetLastCheckInSince(
	ctx context.Context, memberID string, since time.Time,
) (*entity.Activity, error) {
	var result entity.Activity
	err := xcontext.DB(ctx).
		Where("member_id=? AND activity_type=? AND created_at >= ?",
			memberID, entity.ActivityCheckIn, since).
		Order("created_at DESC").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
