package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/internal/model"
	"github.com/famquest-app/backend/internal/progression"
	"github.com/famquest-app/backend/internal/repository"
	"github.com/famquest-app/backend/pkg/dateutil"
	"github.com/famquest-app/backend/pkg/enum"
	"github.com/famquest-app/backend/pkg/errorx"
	"github.com/famquest-app/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 20

type ActivityDomain interface {
	Log(ctx context.Context, req *model.LogActivityRequest) (*model.LogActivityResponse, error)
	GetStats(ctx context.Context, req *model.GetStatsRequest) (*model.GetStatsResponse, error)
	GetHistory(ctx context.Context, req *model.GetHistoryRequest) (*model.GetHistoryResponse, error)
	GetSelfReportPresets(ctx context.Context, req *model.GetSelfReportPresetsRequest) (*model.GetSelfReportPresetsResponse, error)
}

type activityDomain struct {
	memberRepo   repository.MemberRepository
	statRepo     repository.StatRepository
	activityRepo repository.ActivityRepository
	streakRepo   repository.StreakRepository

	now func() time.Time
}

func NewActivityDomain(
	memberRepo repository.MemberRepository,
	statRepo repository.StatRepository,
	activityRepo repository.ActivityRepository,
	streakRepo repository.StreakRepository,
) *activityDomain {
	return &activityDomain{
		memberRepo:   memberRepo,
		statRepo:     statRepo,
		activityRepo: activityRepo,
		streakRepo:   streakRepo,
		now:          time.Now,
	}
}

func (d *activityDomain) Log(
	ctx context.Context, req *model.LogActivityRequest,
) (*model.LogActivityResponse, error) {
	return d.logAt(ctx, req, d.now())
}

// logAt is Log with the activity date passed in, so tests can pin the day
// instead of depending on the wall clock.
func (d *activityDomain) logAt(
	ctx context.Context, req *model.LogActivityRequest, asOf time.Time,
) (*model.LogActivityResponse, error) {
	statType, err := enum.ToEnum[entity.StatType](req.StatAffected)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid stat %s", req.StatAffected)
	}

	activityType, err := enum.ToEnum[entity.ActivityType](req.ActivityType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid activity type %s", req.ActivityType)
	}

	if _, err := d.memberRepo.GetByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found member")
		}

		xcontext.Logger(ctx).Errorf("Cannot get member: %v", err)
		return nil, errorx.Unknown
	}

	xpGained, err := progression.XPForActivity(activityType, progression.ActivityOptions{
		WasHard:     req.WasHard,
		Description: req.Description,
		Metadata:    entity.Map(req.Metadata),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot compute xp: %v", err)
		return nil, errorx.Unknown
	}

	var (
		activity    *entity.Activity
		updatedStat *entity.Stat
	)

	// The activity row, the ledger update, the streak transition and the
	// comeback bonus land together or not at all.
	err = xcontext.DB(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := xcontext.WithDB(ctx, tx)

		activity = &entity.Activity{
			Base:         entity.Base{ID: uuid.NewString()},
			MemberID:     req.MemberID,
			Type:         activityType,
			StatAffected: statType,
			XPGained:     xpGained,
			Description:  req.Description,
			Metadata:     entity.Map(req.Metadata),
		}
		if err := d.activityRepo.Create(txCtx, activity); err != nil {
			return err
		}

		updatedStat, err = d.statRepo.GrantXP(txCtx, req.MemberID, statType, xpGained)
		if err != nil {
			return err
		}

		isComeback, err := d.advanceStreak(
			txCtx, req.MemberID, asOf, activityType == entity.ActivityBounceBack)
		if err != nil {
			return err
		}

		// A comeback earns a bonus grit grant, unless this activity is
		// already the bounce-back itself. The bonus is a side effect: the
		// response still reports the primary grant only, and the bonus shows
		// up in history.
		if isComeback && activityType != entity.ActivityBounceBack {
			if err := d.grantBounceBackBonus(txCtx, req.MemberID, activityType); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot log activity: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LogActivityResponse{
		Activity: convertActivity(activity),
		Stat:     convertStat(updatedStat),
		XPGained: xpGained,
		Message:  fmt.Sprintf("+%d %s XP", xpGained, strings.ToUpper(string(statType))),
	}, nil
}

// grantBounceBackBonus appends the bonus activity row and credits grit.
// GrantXP always reads the freshest grit row, so when the triggering
// activity also touched grit the bonus stacks on top of that grant instead
// of clobbering it.
func (d *activityDomain) grantBounceBackBonus(
	ctx context.Context, memberID string, triggeredBy entity.ActivityType,
) error {
	bonus := &entity.Activity{
		Base:         entity.Base{ID: uuid.NewString()},
		MemberID:     memberID,
		Type:         entity.ActivityBounceBack,
		StatAffected: entity.StatGrit,
		XPGained:     progression.BounceBackXP,
		Description:  "Bounced back after a break!",
		Metadata:     entity.Map{"triggered_by": string(triggeredBy)},
	}
	if err := d.activityRepo.Create(ctx, bonus); err != nil {
		return err
	}

	_, err := d.statRepo.GrantXP(ctx, memberID, entity.StatGrit, progression.BounceBackXP)
	return err
}

// advanceStreak performs at most one day transition per member per day. The
// write is guarded on the last_active_date the transition was computed from;
// the loser of a same-day race re-reads and lands in the no-op branch.
func (d *activityDomain) advanceStreak(
	ctx context.Context, memberID string, asOf time.Time, isBounceBack bool,
) (bool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		current, err := d.streakRepo.Get(ctx, memberID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return false, err
			}

			first, isComeback := progression.Advance(nil, asOf, isBounceBack)
			if err := d.streakRepo.Create(ctx, streakToEntity(memberID, first)); err != nil {
				// A concurrent first activity created the row; take the
				// update path instead.
				if _, getErr := d.streakRepo.Get(ctx, memberID); getErr == nil {
					continue
				}
				return false, err
			}
			return isComeback, nil
		}

		state := streakToState(current)
		next, isComeback := progression.Advance(&state, asOf, isBounceBack)
		if next.LastActiveDate.Equal(state.LastActiveDate) {
			// Already active today.
			return false, nil
		}

		err = d.streakRepo.UpdateDayTransition(
			ctx, memberID, current.LastActiveDate, streakToEntity(memberID, next))
		if err == nil {
			return isComeback, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Another request performed today's transition first.
			continue
		}
		return false, err
	}

	return false, nil
}

func (d *activityDomain) GetStats(
	ctx context.Context, req *model.GetStatsRequest,
) (*model.GetStatsResponse, error) {
	member, err := d.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found member")
		}

		xcontext.Logger(ctx).Errorf("Cannot get member: %v", err)
		return nil, errorx.Unknown
	}

	stats, err := d.getOrInitStats(ctx, req.MemberID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load stats: %v", err)
		return nil, errorx.Unknown
	}

	streak, err := d.getOrInitStreak(ctx, req.MemberID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load streak: %v", err)
		return nil, errorx.Unknown
	}

	statsMap := map[string]model.Stat{}
	levels := make([]int, 0, len(stats))
	totalXP := 0
	for i := range stats {
		statsMap[string(stats[i].StatType)] = convertStat(&stats[i])
		levels = append(levels, stats[i].Level)
		totalXP += stats[i].CurrentXP
	}

	highest, secondHighest := rankStats(stats)

	resp := &model.GetStatsResponse{
		MemberID:          member.ID,
		MemberName:        member.Name,
		Stats:             statsMap,
		OverallLevel:      progression.OverallLevel(levels),
		TotalXP:           totalXP,
		HighestStat:       string(highest),
		SecondHighestStat: string(secondHighest),
		Streak:            convertStreak(streak),
	}

	checkIn, err := d.activityRepo.GetLastCheckInSince(
		ctx, req.MemberID, dateutil.StartOfDay(d.now()))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot load today check-in: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		resp.TodayCheckIn = convertCheckIn(checkIn)
	}

	return resp, nil
}

func (d *activityDomain) GetHistory(
	ctx context.Context, req *model.GetHistoryRequest,
) (*model.GetHistoryResponse, error) {
	member, err := d.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found member")
		}

		xcontext.Logger(ctx).Errorf("Cannot get member: %v", err)
		return nil, errorx.Unknown
	}

	cfg := xcontext.Configs(ctx).ApiServer

	limit := req.Limit
	if limit == 0 {
		limit = cfg.DefaultLimit
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if cfg.MaxLimit > 0 && limit > cfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceeded the maximum limit of %d", cfg.MaxLimit)
	}

	activities, err := d.activityRepo.GetListByMemberID(ctx, req.MemberID, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load activities: %v", err)
		return nil, errorx.Unknown
	}

	converted := make([]model.Activity, 0, len(activities))
	for i := range activities {
		converted = append(converted, convertActivity(&activities[i]))
	}

	return &model.GetHistoryResponse{
		MemberID:   member.ID,
		MemberName: member.Name,
		Activities: converted,
		Count:      len(converted),
	}, nil
}

func (d *activityDomain) GetSelfReportPresets(
	ctx context.Context, req *model.GetSelfReportPresetsRequest,
) (*model.GetSelfReportPresetsResponse, error) {
	presets := make([]model.SelfReportPreset, 0, len(entity.SelfReportPresets))
	for _, p := range entity.SelfReportPresets {
		presets = append(presets, model.SelfReportPreset{
			ID:    p.ID,
			Label: p.Label,
			Stat:  string(p.Stat),
		})
	}

	return &model.GetSelfReportPresetsResponse{Presets: presets}, nil
}

// getOrInitStats returns the full five-stat ledger, creating default rows
// for stats the member has never touched. Callers always see a complete set.
func (d *activityDomain) getOrInitStats(ctx context.Context, memberID string) ([]entity.Stat, error) {
	existing, err := d.statRepo.GetByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	byType := map[entity.StatType]entity.Stat{}
	for _, s := range existing {
		byType[s.StatType] = s
	}

	result := make([]entity.Stat, 0, 5)
	for _, statType := range entity.StatTypeList() {
		stat, ok := byType[statType]
		if !ok {
			stat = entity.Stat{
				MemberID: memberID,
				StatType: statType,
				Level:    1,
			}
			if err := d.statRepo.Create(ctx, &stat); err != nil {
				// A concurrent request may have initialized it first.
				fresh, getErr := d.statRepo.Get(ctx, memberID, statType)
				if getErr != nil {
					return nil, err
				}
				stat = *fresh
			}
		}
		result = append(result, stat)
	}

	return result, nil
}

func (d *activityDomain) getOrInitStreak(ctx context.Context, memberID string) (*entity.Streak, error) {
	streak, err := d.streakRepo.Get(ctx, memberID)
	if err == nil {
		return streak, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &entity.Streak{MemberID: memberID}
	if err := d.streakRepo.Create(ctx, fresh); err != nil {
		if existing, getErr := d.streakRepo.Get(ctx, memberID); getErr == nil {
			return existing, nil
		}
		return nil, err
	}

	return fresh, nil
}
