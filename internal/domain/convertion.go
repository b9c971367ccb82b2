package domain

import (
	"fmt"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/internal/model"
	"github.com/famquest-app/backend/internal/progression"
	"github.com/famquest-app/backend/internal/repository"
	"golang.org/x/exp/slices"
)

func convertStat(stat *entity.Stat) model.Stat {
	info := entity.InfoOfStat(stat.StatType)
	return model.Stat{
		StatType:  string(stat.StatType),
		CurrentXP: stat.CurrentXP,
		Level:     stat.Level,
		Progress:  progression.LevelProgress(stat.CurrentXP),
		Info: model.StatInfo{
			Emoji:       info.Emoji,
			Name:        info.Name,
			Description: info.Description,
			Color:       info.Color,
		},
	}
}

func convertActivity(activity *entity.Activity) model.Activity {
	info := entity.InfoOfStat(activity.StatAffected)
	return model.Activity{
		ID:           activity.ID,
		ActivityType: string(activity.Type),
		StatAffected: string(activity.StatAffected),
		StatEmoji:    info.Emoji,
		StatName:     info.Name,
		XPGained:     activity.XPGained,
		Description:  activity.Description,
		Metadata:     map[string]any(activity.Metadata),
		CreatedAt:    activity.CreatedAt,
		DisplayText:  displayTextOf(activity, info),
	}
}

func displayTextOf(activity *entity.Activity, info entity.StatInfo) string {
	switch activity.Type {
	case entity.ActivitySelfReport:
		if activity.Description != "" {
			return fmt.Sprintf("+%d %s %s", activity.XPGained, info.Emoji, activity.Description)
		}
		return fmt.Sprintf("+%d %s Self-reported activity", activity.XPGained, info.Emoji)

	case entity.ActivityCheckIn:
		return fmt.Sprintf("+%d %s Daily check-in", activity.XPGained, info.Emoji)

	case entity.ActivityMicroApp:
		return fmt.Sprintf("+%d %s %s", activity.XPGained, info.Emoji, microAppNameOf(activity.Metadata))

	case entity.ActivityBounceBack:
		return fmt.Sprintf("+%d %s Welcome back! Returned after a break", activity.XPGained, info.Emoji)
	}

	return fmt.Sprintf("+%d %s Activity", activity.XPGained, info.Emoji)
}

func microAppNameOf(metadata entity.Map) string {
	app, ok := metadata["app"].(string)
	if !ok || app == "" {
		return "activity"
	}

	switch entity.MicroApp(app) {
	case entity.MicroAppChoreSpinner:
		return "Chore Spinner"
	case entity.MicroAppDinnerPicker:
		return "Dinner Picker"
	}

	return app
}

func convertStreak(streak *entity.Streak) model.Streak {
	result := model.Streak{
		Current:   streak.CurrentStreak,
		Best:      streak.BestStreak,
		Comebacks: streak.ComebackCount,
	}

	if streak.LastActiveDate.Valid {
		t := streak.LastActiveDate.Time
		result.LastActiveDate = &t
	}

	return result
}

func convertCheckIn(activity *entity.Activity) *model.CheckIn {
	return &model.CheckIn{
		ID:          activity.ID,
		Mood:        moodOf(activity.Metadata),
		Description: activity.Description,
		XPGained:    activity.XPGained,
		CreatedAt:   activity.CreatedAt,
	}
}

// moodOf digs the optional mood score out of check-in metadata. Values come
// back from the JSON column as float64.
func moodOf(metadata entity.Map) int {
	switch v := metadata["mood"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// rankStats returns the highest and second-highest stats by XP, used by the
// presentation layer for avatar colors. Ties keep display order.
func rankStats(stats []entity.Stat) (entity.StatType, entity.StatType) {
	if len(stats) == 0 {
		return entity.StatGrit, entity.StatGrit
	}

	sorted := make([]entity.Stat, len(stats))
	copy(sorted, stats)
	slices.SortStableFunc(sorted, func(a, b entity.Stat) bool {
		return a.CurrentXP > b.CurrentXP
	})

	if len(sorted) == 1 {
		return sorted[0].StatType, sorted[0].StatType
	}

	return sorted[0].StatType, sorted[1].StatType
}

func streakToState(streak *entity.Streak) progression.StreakState {
	state := progression.StreakState{
		CurrentStreak:        streak.CurrentStreak,
		BestStreak:           streak.BestStreak,
		ComebackCount:        streak.ComebackCount,
		RestDaysUsedThisWeek: streak.RestDaysUsedThisWeek,
	}

	if streak.LastActiveDate.Valid {
		state.LastActiveDate = streak.LastActiveDate.Time
	}
	if streak.WeekStartDate.Valid {
		state.WeekStartDate = streak.WeekStartDate.Time
	}

	return state
}

func streakToEntity(memberID string, state progression.StreakState) *entity.Streak {
	return &entity.Streak{
		MemberID:             memberID,
		CurrentStreak:        state.CurrentStreak,
		BestStreak:           state.BestStreak,
		ComebackCount:        state.ComebackCount,
		LastActiveDate:       repository.NullTime(state.LastActiveDate),
		RestDaysUsedThisWeek: state.RestDaysUsedThisWeek,
		WeekStartDate:        repository.NullTime(state.WeekStartDate),
	}
}
