package repository

import (
	"context"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	GetByID(ctx context.Context, id string) (*entity.Member, error)
	DeleteByID(ctx context.Context, id string) error
}

type memberRepository struct{}

func NewMemberRepository() *memberRepository {
	return &memberRepository{}
}

func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	return xcontext.DB(ctx).Create(member).Error
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	var result entity.Member
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteByID removes a member together with its ledger, streak and activity
// rows. Activity rows are the audit trail and only go away with the member.
func (r *memberRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id=?", id).Delete(&entity.Stat{}).Error; err != nil {
			return err
		}

		if err := tx.Where("member_id=?", id).Delete(&entity.Streak{}).Error; err != nil {
			return err
		}

		if err := tx.Where("member_id=?", id).Delete(&entity.Activity{}).Error; err != nil {
			return err
		}

		return tx.Delete(&entity.Member{}, "id=?", id).Error
	})
}
