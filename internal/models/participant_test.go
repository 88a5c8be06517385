package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAwardMarks(t *testing.T) {
	cases := []struct {
		award Award
		marks int
	}{
		{AwardFirst, 10},
		{AwardSecond, 7},
		{AwardThird, 5},
		{AwardParticipation, 2},
	}
	for _, tc := range cases {
		marks, ok := tc.award.Marks()
		assert.True(t, ok, tc.award)
		assert.Equal(t, tc.marks, marks, tc.award)
	}
}

func TestAwardMarksRejectsUnknownAwards(t *testing.T) {
	for _, award := range []Award{"", "1st place", "Winner", "4th Place"} {
		marks, ok := award.Marks()
		assert.False(t, ok, award)
		assert.Zero(t, marks, award)
	}
}

func TestWinnerApplyDefaults(t *testing.T) {
	w := Winner{}
	w.ApplyDefaults()
	assert.Equal(t, DefaultActivityType, w.ActivityType)

	w = Winner{ActivityType: "Hackathon"}
	w.ApplyDefaults()
	assert.Equal(t, "Hackathon", w.ActivityType)
}
