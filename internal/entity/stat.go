package entity

import (
	"time"

	"github.com/famquest-app/backend/pkg/enum"
)

type StatType string

var (
	StatGrit       = enum.New(StatType("grit"))
	StatWisdom     = enum.New(StatType("wisdom"))
	StatHeart      = enum.New(StatType("heart"))
	StatInitiative = enum.New(StatType("initiative"))
	StatTemperance = enum.New(StatType("temperance"))
)

// StatTypeList returns the five stat types in display order. The set is
// closed; anything else must be rejected by enum.ToEnum.
func StatTypeList() []StatType {
	return []StatType{StatGrit, StatWisdom, StatHeart, StatInitiative, StatTemperance}
}

// StatInfo is the presentation metadata attached to each stat type.
type StatInfo struct {
	Emoji       string `json:"emoji"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var statInfoMap = map[StatType]StatInfo{
	StatGrit: {
		Emoji:       "💪",
		Name:        "Grit",
		Description: "Doing hard things, resilience, bouncing back",
		Color:       "orange",
	},
	StatWisdom: {
		Emoji:       "🧠",
		Name:        "Wisdom",
		Description: "Self-awareness, reflection, learning from mistakes",
		Color:       "purple",
	},
	StatHeart: {
		Emoji:       "❤️",
		Name:        "Heart",
		Description: "Kindness, helping others, empathy",
		Color:       "pink",
	},
	StatInitiative: {
		Emoji:       "⚡",
		Name:        "Initiative",
		Description: "Acting without being asked, noticing needs",
		Color:       "yellow",
	},
	StatTemperance: {
		Emoji:       "⚖️",
		Name:        "Temperance",
		Description: "Self-control, delayed gratification, patience",
		Color:       "blue",
	},
}

func InfoOfStat(t StatType) StatInfo {
	return statInfoMap[t]
}

// Stat is one row of the per-member ledger. Level is a cached projection of
// CurrentXP and must only change in the same write as CurrentXP.
type Stat struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	MemberID string `gorm:"primaryKey"`
	Member   Member `gorm:"foreignKey:MemberID"`

	StatType StatType `gorm:"primaryKey"`

	CurrentXP int `gorm:"column:current_xp"`
	Level     int
}
