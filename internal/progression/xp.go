package progression

import (
	"fmt"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/famquest-app/backend/pkg/enum"
	"github.com/mitchellh/mapstructure"
)

const (
	selfReportBaseXP        = 15
	selfReportHardBonusXP   = 5
	selfReportDescriptionXP = 5

	checkInXP = 10

	// BounceBackXP is the bonus granted to grit when a member returns after
	// a broken streak.
	BounceBackXP = 15

	microAppFallbackXP = 10
)

var microAppXP = map[entity.MicroApp]int{
	entity.MicroAppChoreSpinner: 20,
	entity.MicroAppDinnerPicker: 10,
}

// ActivityOptions carries the XP modifiers of a logged activity.
type ActivityOptions struct {
	WasHard     bool
	Description string
	Metadata    entity.Map
}

type microAppMetadata struct {
	App string `mapstructure:"app"`
}

// XPForActivity maps an activity to the XP it earns. Activity types must be
// validated before this point; an unregistered type is a programming error
// and is reported instead of silently rewarded.
func XPForActivity(activityType entity.ActivityType, opts ActivityOptions) (int, error) {
	switch activityType {
	case entity.ActivitySelfReport:
		xp := selfReportBaseXP
		if opts.WasHard {
			xp += selfReportHardBonusXP
		}
		if opts.Description != "" {
			xp += selfReportDescriptionXP
		}
		return xp, nil

	case entity.ActivityCheckIn:
		return checkInXP, nil

	case entity.ActivityMicroApp:
		return microAppXPFor(opts.Metadata), nil

	case entity.ActivityBounceBack:
		return BounceBackXP, nil
	}

	return 0, fmt.Errorf("no xp rule for activity type %s", activityType)
}

// microAppXPFor reads the app id out of the activity metadata. Unknown or
// missing app ids earn the fallback amount; app ids are an open product
// surface, unlike the closed activity-type enum.
func microAppXPFor(metadata entity.Map) int {
	if metadata == nil {
		return microAppFallbackXP
	}

	var decoded microAppMetadata
	if err := mapstructure.Decode(map[string]any(metadata), &decoded); err != nil {
		return microAppFallbackXP
	}

	app, err := enum.ToEnum[entity.MicroApp](decoded.App)
	if err != nil {
		return microAppFallbackXP
	}

	return microAppXP[app]
}
