package program_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/2beens/programtracker/internal/program"
	"github.com/2beens/programtracker/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
programs:
  - id: hybrid-12
    name: Hybrid 12
    description: twelve week hybrid block
    durationWeeks: 12
  - id: custom-2
    name: Custom 2
    durationWeeks: 2
    schedule:
      slots: [push, pull, push, pull, push, pull, ""]
      phases:
        - name: intro
          firstDay: 1
          lastDay: 14
templates:
  push:
    - exercise: overhead_press
      order: 2
      sets: 3
      reps: 8
    - exercise: bench_press
      order: 1
      sets: 4
      reps: 6
  pull:
    - exercise: row
      order: 1
      sets: 4
      reps: 8
  legs:
    - exercise: squat
      order: 1
      sets: 5
      reps: 5
  upper:
    - exercise: bench_press
      order: 1
  lower:
    - exercise: deadlift
      order: 1
  full_body:
    - exercise: clean
      order: 1
`

func testCatalog(t *testing.T) *program.Catalog {
	t.Helper()
	c, err := program.ParseCatalog([]byte(testCatalogYAML))
	require.NoError(t, err)
	return c
}

func TestParseCatalog(t *testing.T) {
	c := testCatalog(t)
	ctx := context.Background()

	programs := c.Programs()
	require.Len(t, programs, 2)
	assert.Equal(t, "custom-2", programs[0].ID)
	assert.Equal(t, "hybrid-12", programs[1].ID)

	hybrid, err := c.GetProgram(ctx, "hybrid-12")
	require.NoError(t, err)
	assert.Equal(t, 84, hybrid.TotalDays())
	assert.Equal(t, []string{"push", "pull", "legs", "upper", "lower", "full_body", ""}, hybrid.Schedule.Slots)
	require.Len(t, hybrid.Schedule.Phases, 4)

	push, err := c.Template(ctx, "push")
	require.NoError(t, err)
	require.Len(t, push, 2)
	assert.Equal(t, "bench_press", push[0].ExerciseID)
	assert.Equal(t, "push_1", push[0].ID)
	assert.Equal(t, "overhead_press", push[1].ExerciseID)

	_, err = c.GetProgram(ctx, "nope")
	assert.ErrorIs(t, err, program.ErrProgramNotFound)
	_, err = c.Template(ctx, "nope")
	assert.ErrorIs(t, err, program.ErrTemplateNotFound)
}

func TestCatalog_GetProgramReturnsCopy(t *testing.T) {
	c := testCatalog(t)
	p, err := c.GetProgram(context.Background(), "hybrid-12")
	require.NoError(t, err)
	p.Name = "changed"

	again, err := c.GetProgram(context.Background(), "hybrid-12")
	require.NoError(t, err)
	assert.Equal(t, "Hybrid 12", again.Name)
}

func TestParseCatalog_MissingTemplate(t *testing.T) {
	_, err := program.ParseCatalog([]byte(`
programs:
  - id: broken
    durationWeeks: 1
templates:
  push:
    - exercise: bench_press
`))
	require.ErrorIs(t, err, program.ErrTemplateNotFound)
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := program.ParseCatalog([]byte("programs: [:"))
	assert.Error(t, err)

	_, err = program.ParseCatalog([]byte(`
programs:
  - id: zero
    durationWeeks: 0
`))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "programs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0o600))

	c, err := program.LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, c.Programs(), 2)

	_, err = program.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCatalog_GenerateDays(t *testing.T) {
	c := testCatalog(t)

	days, err := c.GenerateDays("hybrid-12")
	require.NoError(t, err)
	require.Len(t, days, 84)

	assert.Equal(t, 1, days[0].DayNumber)
	assert.Equal(t, "Week 1: Push", days[0].Name)
	assert.Equal(t, program.DayTypeWorkout, days[0].DayType)
	assert.Equal(t, "push", days[0].TemplateKey)
	assert.Equal(t, "foundation", days[0].Description)

	assert.Equal(t, "Week 1: Full Body", days[5].Name)

	assert.Equal(t, program.DayTypeRest, days[6].DayType)
	assert.Equal(t, "Week 1: Rest", days[6].Name)
	assert.False(t, days[6].HasTemplate())

	assert.Equal(t, program.DayTypeDeload, days[77].DayType)
	assert.Equal(t, "Week 12: Push (deload)", days[77].Name)
	assert.Equal(t, program.DayTypeRest, days[83].DayType)

	_, err = c.GenerateDays("nope")
	assert.ErrorIs(t, err, program.ErrProgramNotFound)
}

func TestCatalog_Seed(t *testing.T) {
	c := testCatalog(t)
	store := memory.NewProgramDayRepo()
	ctx := context.Background()

	require.NoError(t, c.Seed(ctx, store))

	count, err := store.GetTotalDayCount(ctx, "hybrid-12")
	require.NoError(t, err)
	assert.Equal(t, 84, count)
	count, err = store.GetTotalDayCount(ctx, "custom-2")
	require.NoError(t, err)
	assert.Equal(t, 14, count)

	// seeding again leaves existing programs alone
	require.NoError(t, c.Seed(ctx, store))
	count, err = store.GetTotalDayCount(ctx, "hybrid-12")
	require.NoError(t, err)
	assert.Equal(t, 84, count)

	day, err := store.GetByProgramAndDay(ctx, "custom-2", 3)
	require.NoError(t, err)
	assert.Equal(t, "push", day.TemplateKey)
	assert.Equal(t, "intro", day.Description)
}
