package entity

import "github.com/famquest-app/backend/pkg/enum"

type ActivityType string

var (
	ActivitySelfReport = enum.New(ActivityType("self_report"))
	ActivityCheckIn    = enum.New(ActivityType("check_in"))
	ActivityMicroApp   = enum.New(ActivityType("micro_app"))
	ActivityBounceBack = enum.New(ActivityType("bounce_back"))
)

type MicroApp string

var (
	MicroAppChoreSpinner = enum.New(MicroApp("chore_spinner"))
	MicroAppDinnerPicker = enum.New(MicroApp("dinner_picker"))
)

// Activity is the append-only audit record of every XP grant. Rows are never
// updated after creation; XP totals are reconstructible from them.
type Activity struct {
	Base

	MemberID string `gorm:"index"`
	Member   Member `gorm:"foreignKey:MemberID"`

	Type         ActivityType `gorm:"column:activity_type"`
	StatAffected StatType
	XPGained     int `gorm:"column:xp_gained"`
	Description  string
	Metadata     Map
}

// SelfReportPreset is one of the fixed quick-log choices offered to members,
// each mapped to a default stat.
type SelfReportPreset struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Stat  StatType `json:"stat"`
}

var SelfReportPresets = []SelfReportPreset{
	{ID: "helped_someone", Label: "I helped someone", Stat: StatHeart},
	{ID: "without_asking", Label: "I did something without being asked", Stat: StatInitiative},
	{ID: "saved_money", Label: "I saved money / didn't buy something", Stat: StatTemperance},
	{ID: "told_truth", Label: "I told the truth about something hard", Stat: StatGrit},
	{ID: "stayed_calm", Label: "I stayed calm when upset", Stat: StatTemperance},
	{ID: "finished_hard", Label: "I finished something I didn't want to", Stat: StatGrit},
}
