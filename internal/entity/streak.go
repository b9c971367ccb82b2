package entity

import (
	"database/sql"
	"time"
)

// Streak is the per-member engagement tracker. It is mutated at most once
// per calendar day; same-day activities after the first leave it untouched.
type Streak struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	MemberID string `gorm:"primaryKey"`
	Member   Member `gorm:"foreignKey:MemberID"`

	CurrentStreak int
	BestStreak    int
	ComebackCount int

	LastActiveDate       sql.NullTime
	RestDaysUsedThisWeek int
	WeekStartDate        sql.NullTime
}
