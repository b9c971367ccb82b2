package model

import "time"

type Stat struct {
	StatType  string   `json:"stat_type"`
	CurrentXP int      `json:"current_xp"`
	Level     int      `json:"level"`
	Progress  int      `json:"progress"`
	Info      StatInfo `json:"info"`
}

type StatInfo struct {
	Emoji       string `json:"emoji"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type Activity struct {
	ID           string         `json:"id"`
	ActivityType string         `json:"activity_type"`
	StatAffected string         `json:"stat_affected"`
	StatEmoji    string         `json:"stat_emoji"`
	StatName     string         `json:"stat_name"`
	XPGained     int            `json:"xp_gained"`
	Description  string         `json:"description,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	DisplayText  string         `json:"display_text"`
}

type Streak struct {
	Current        int        `json:"current"`
	Best           int        `json:"best"`
	Comebacks      int        `json:"comebacks"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
}

type CheckIn struct {
	ID          string    `json:"id"`
	Mood        int       `json:"mood,omitempty"`
	Description string    `json:"description,omitempty"`
	XPGained    int       `json:"xp_gained"`
	CreatedAt   time.Time `json:"created_at"`
}

type SelfReportPreset struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Stat  string `json:"stat"`
}

type LogActivityRequest struct {
	MemberID     string         `json:"member_id"`
	ActivityType string         `json:"activity_type"`
	StatAffected string         `json:"stat_affected"`
	Description  string         `json:"description"`
	Metadata     map[string]any `json:"metadata"`
	WasHard      bool           `json:"was_hard"`
}

type LogActivityResponse struct {
	Activity Activity `json:"activity"`
	Stat     Stat     `json:"stat"`
	XPGained int      `json:"xp_gained"`
	Message  string   `json:"message"`
}

type GetStatsRequest struct {
	MemberID string `json:"member_id"`
}

type GetStatsResponse struct {
	MemberID          string          `json:"member_id"`
	MemberName        string          `json:"member_name"`
	Stats             map[string]Stat `json:"stats"`
	OverallLevel      int             `json:"overall_level"`
	TotalXP           int             `json:"total_xp"`
	HighestStat       string          `json:"highest_stat"`
	SecondHighestStat string          `json:"second_highest_stat"`
	Streak            Streak          `json:"streak"`
	TodayCheckIn      *CheckIn        `json:"today_check_in,omitempty"`
}

type GetHistoryRequest struct {
	MemberID string `json:"member_id"`
	Limit    int    `json:"limit"`
}

type GetHistoryResponse struct {
	MemberID   string     `json:"member_id"`
	MemberName string     `json:"member_name"`
	Activities []Activity `json:"activities"`
	Count      int        `json:"count"`
}

type GetSelfReportPresetsRequest struct{}

type GetSelfReportPresetsResponse struct {
	Presets []SelfReportPreset `json:"presets"`
}
