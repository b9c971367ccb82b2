package progression

import (
	"time"

	"github.com/famquest-app/backend/pkg/dateutil"
)

const (
	// maxForgivableGapDays is the largest gap in days that rest days can
	// bridge. A gap of 2 or 3 days costs 1 or 2 rest days; anything longer
	// always breaks the streak.
	maxForgivableGapDays = 3

	// weeklyRestDayBudget caps how many rest days a member can spend per
	// calendar week (Sunday to Saturday).
	weeklyRestDayBudget = 2
)

// StreakState is the pure-value form of a member's streak tracker. A zero
// LastActiveDate means the member has never logged an activity.
type StreakState struct {
	CurrentStreak int
	BestStreak    int
	ComebackCount int

	LastActiveDate       time.Time
	RestDaysUsedThisWeek int
	WeekStartDate        time.Time
}

// dayPhase names the branch the transition takes for a given day, instead of
// encoding it in null checks and date comparisons.
type dayPhase int

const (
	phaseUninitialized dayPhase = iota
	phaseActiveToday
	phaseLapsed
)

func classify(state *StreakState, today time.Time) dayPhase {
	switch {
	case state == nil || state.LastActiveDate.IsZero():
		return phaseUninitialized
	case dateutil.SameDay(state.LastActiveDate, today):
		return phaseActiveToday
	default:
		return phaseLapsed
	}
}

// Advance evaluates one streak transition for an activity happening at asOf.
// It is a pure function: asOf is passed in rather than read from the clock,
// and the caller persists the returned state. Calling it again on the same
// day returns the input unchanged, so at most one transition happens per
// member per day no matter how many activities are logged.
//
// The comeback flag is true only when the gap since the last active day was
// too long for the remaining rest-day budget and the streak reset.
func Advance(state *StreakState, asOf time.Time, isBounceBack bool) (StreakState, bool) {
	today := dateutil.StartOfDay(asOf)

	switch classify(state, today) {
	case phaseUninitialized:
		first := StreakState{
			CurrentStreak:  1,
			BestStreak:     1,
			LastActiveDate: today,
			WeekStartDate:  dateutil.StartOfWeek(today),
		}
		// The very first activity is never a comeback, but a bounce_back
		// submission still counts toward the comeback tally.
		if isBounceBack {
			first.ComebackCount = 1
		}
		return first, false

	case phaseActiveToday:
		return *state, false
	}

	next := *state

	// Rest days renew at the Sunday week boundary, before the gap check.
	weekStart := dateutil.StartOfWeek(today)
	if !dateutil.SameDay(weekStart, next.WeekStartDate) {
		next.RestDaysUsedThisWeek = 0
		next.WeekStartDate = weekStart
	}

	isComeback := false
	daysSince := dateutil.DaysBetween(next.LastActiveDate, today)
	restDaysNeeded := daysSince - 1

	switch {
	case daysSince == 1:
		next.CurrentStreak++
	case daysSince <= maxForgivableGapDays &&
		next.RestDaysUsedThisWeek+restDaysNeeded <= weeklyRestDayBudget:
		next.RestDaysUsedThisWeek += restDaysNeeded
		next.CurrentStreak++
	default:
		next.CurrentStreak = 1
		next.ComebackCount++
		isComeback = true
	}

	if next.CurrentStreak > next.BestStreak {
		next.BestStreak = next.CurrentStreak
	}

	next.LastActiveDate = today
	return next, isComeback
}
