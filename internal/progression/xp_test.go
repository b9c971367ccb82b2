package progression

import (
	"testing"

	"github.com/famquest-app/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestXPForActivitySelfReport(t *testing.T) {
	testcases := []struct {
		name       string
		opts       ActivityOptions
		expectedXP int
	}{
		{name: "plain report", opts: ActivityOptions{}, expectedXP: 15},
		{name: "hard only", opts: ActivityOptions{WasHard: true}, expectedXP: 20},
		{name: "description only", opts: ActivityOptions{Description: "cleaned my room"}, expectedXP: 20},
		{name: "hard with description", opts: ActivityOptions{WasHard: true, Description: "cleaned my room"}, expectedXP: 25},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			xp, err := XPForActivity(entity.ActivitySelfReport, tc.opts)
			require.NoError(t, err)
			require.Equal(t, tc.expectedXP, xp)
		})
	}
}

func TestXPForActivityCheckIn(t *testing.T) {
	xp, err := XPForActivity(entity.ActivityCheckIn, ActivityOptions{})
	require.NoError(t, err)
	require.Equal(t, 10, xp)

	// Check-in modifiers do not change the amount.
	xp, err = XPForActivity(entity.ActivityCheckIn, ActivityOptions{WasHard: true, Description: "good day"})
	require.NoError(t, err)
	require.Equal(t, 10, xp)
}

func TestXPForActivityMicroApp(t *testing.T) {
	xp, err := XPForActivity(entity.ActivityMicroApp, ActivityOptions{
		Metadata: entity.Map{"app": "chore_spinner"},
	})
	require.NoError(t, err)
	require.Equal(t, 20, xp)

	xp, err = XPForActivity(entity.ActivityMicroApp, ActivityOptions{
		Metadata: entity.Map{"app": "dinner_picker"},
	})
	require.NoError(t, err)
	require.Equal(t, 10, xp)

	// Unknown and missing app ids earn the fallback amount.
	xp, err = XPForActivity(entity.ActivityMicroApp, ActivityOptions{
		Metadata: entity.Map{"app": "homework_helper"},
	})
	require.NoError(t, err)
	require.Equal(t, 10, xp)

	xp, err = XPForActivity(entity.ActivityMicroApp, ActivityOptions{})
	require.NoError(t, err)
	require.Equal(t, 10, xp)
}

func TestXPForActivityBounceBack(t *testing.T) {
	xp, err := XPForActivity(entity.ActivityBounceBack, ActivityOptions{})
	require.NoError(t, err)
	require.Equal(t, 15, xp)
}

func TestXPForActivityUnknownType(t *testing.T) {
	_, err := XPForActivity(entity.ActivityType("chore_marathon"), ActivityOptions{})
	require.Error(t, err)
}
