package program_test

import (
	"testing"

	"github.com/2beens/programtracker/internal/program"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPhases(t *testing.T) {
	phases := program.DefaultPhases(84)
	assert.Equal(t, []program.PhaseBand{
		{Name: "foundation", FirstDay: 1, LastDay: 28},
		{Name: "build", FirstDay: 29, LastDay: 56},
		{Name: "peak", FirstDay: 57, LastDay: 77},
		{Name: "deload", FirstDay: 78, LastDay: 84, Deload: true},
	}, phases)

	assert.Equal(t, []program.PhaseBand{
		{Name: "foundation", FirstDay: 1, LastDay: 7},
	}, program.DefaultPhases(7))

	twoWeeks := program.DefaultPhases(14)
	require.Len(t, twoWeeks, 2)
	assert.Equal(t, "foundation", twoWeeks[0].Name)
	assert.Equal(t, "deload", twoWeeks[1].Name)
	assert.Equal(t, 8, twoWeeks[1].FirstDay)
}

func TestSchedule_ResolveDay(t *testing.T) {
	s := program.DefaultSchedule(84)
	require.NoError(t, s.Validate())

	tests := []struct {
		day      int
		template string
		phase    string
		week     int
		isRest   bool
	}{
		{day: 1, template: "push", phase: "foundation", week: 1},
		{day: 6, template: "full_body", phase: "foundation", week: 1},
		{day: 7, template: "", phase: "foundation", week: 1, isRest: true},
		{day: 8, template: "push", phase: "foundation", week: 2},
		{day: 28, template: "", phase: "foundation", week: 4, isRest: true},
		{day: 29, template: "push", phase: "build", week: 5},
		{day: 57, template: "push", phase: "peak", week: 9},
		{day: 78, template: "push", phase: "deload", week: 12},
		{day: 84, template: "", phase: "deload", week: 12, isRest: true},
	}
	for _, tt := range tests {
		resolved, err := s.ResolveDay(tt.day)
		require.NoError(t, err, "day %d", tt.day)
		assert.Equal(t, tt.day, resolved.DayNumber)
		assert.Equal(t, (tt.day-1)%7, resolved.DayInCycle)
		assert.Equal(t, tt.template, resolved.TemplateKey, "day %d", tt.day)
		assert.Equal(t, tt.phase, resolved.Phase, "day %d", tt.day)
		assert.Equal(t, tt.week, resolved.WeekNumber, "day %d", tt.day)
		assert.Equal(t, tt.isRest, resolved.IsRest, "day %d", tt.day)
	}
}

func TestSchedule_ResolveDay_OutsideEveryBand(t *testing.T) {
	s := program.DefaultSchedule(84)

	resolved, err := s.ResolveDay(85)
	require.NoError(t, err)
	assert.Equal(t, "foundation", resolved.Phase)
	assert.Equal(t, 13, resolved.WeekNumber)
	assert.Equal(t, "push", resolved.TemplateKey)

	resolved, err = s.ResolveDay(200)
	require.NoError(t, err)
	assert.Equal(t, "foundation", resolved.Phase)
	assert.Equal(t, 29, resolved.WeekNumber)
}

func TestSchedule_ResolveDay_BandsShortOfProgramEnd(t *testing.T) {
	// four week program whose bands stop after week two
	s := program.Schedule{
		Slots: []string{"push", "pull", "legs", "upper", "lower", "full_body", ""},
		Phases: []program.PhaseBand{
			{Name: "intro", FirstDay: 1, LastDay: 7},
			{Name: "ramp", FirstDay: 8, LastDay: 14},
		},
	}
	require.NoError(t, s.Validate())

	tests := []struct {
		day   int
		phase string
		week  int
	}{
		{day: 7, phase: "intro", week: 1},
		{day: 14, phase: "ramp", week: 2},
		{day: 15, phase: "intro", week: 3},
		{day: 28, phase: "intro", week: 4},
	}
	for _, tt := range tests {
		resolved, err := s.ResolveDay(tt.day)
		require.NoError(t, err, "day %d", tt.day)
		assert.Equal(t, tt.phase, resolved.Phase, "day %d", tt.day)
		assert.Equal(t, tt.week, resolved.WeekNumber, "day %d", tt.day)
	}
}

func TestSchedule_ResolveDay_InvalidDay(t *testing.T) {
	s := program.DefaultSchedule(84)
	_, err := s.ResolveDay(0)
	require.ErrorIs(t, err, program.ErrInvalidDayNumber)
	_, err = s.ResolveDay(-4)
	require.ErrorIs(t, err, program.ErrInvalidDayNumber)
}

func TestSchedule_Validate(t *testing.T) {
	valid := program.DefaultSchedule(28)
	require.NoError(t, valid.Validate())

	noRest := program.DefaultSchedule(28)
	noRest.Slots[6] = "push"
	assert.Error(t, noRest.Validate())

	emptyWorkout := program.DefaultSchedule(28)
	emptyWorkout.Slots[2] = ""
	assert.Error(t, emptyWorkout.Validate())

	shortCycle := program.DefaultSchedule(28)
	shortCycle.Slots = shortCycle.Slots[:5]
	assert.Error(t, shortCycle.Validate())

	gap := program.DefaultSchedule(28)
	gap.Phases = []program.PhaseBand{
		{Name: "a", FirstDay: 1, LastDay: 10},
		{Name: "b", FirstDay: 12, LastDay: 28},
	}
	assert.Error(t, gap.Validate())

	noPhases := program.DefaultSchedule(28)
	noPhases.Phases = nil
	assert.Error(t, noPhases.Validate())
}
