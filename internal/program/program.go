package program

import (
	"errors"
	"fmt"
)

var (
	ErrProgramNotFound     = errors.New("program not found")
	ErrDayNotFound         = errors.New("program day not found")
	ErrTemplateNotFound    = errors.New("template not found")
	ErrInvalidDayNumber    = errors.New("invalid day number")
	ErrInvalidSubstitution = errors.New("invalid substitution")
)

// DayType can be one of:
//   - WORKOUT
//   - REST
//   - ACTIVE_RECOVERY
//   - OPTIONAL
//   - DELOAD
type DayType string

const (
	DayTypeWorkout        DayType = "WORKOUT"
	DayTypeRest           DayType = "REST"
	DayTypeActiveRecovery DayType = "ACTIVE_RECOVERY"
	DayTypeOptional       DayType = "OPTIONAL"
	DayTypeDeload         DayType = "DELOAD"
)

func (dt DayType) String() string {
	return string(dt)
}

func (dt DayType) IsValid() bool {
	switch dt {
	case DayTypeWorkout,
		DayTypeRest,
		DayTypeActiveRecovery,
		DayTypeOptional,
		DayTypeDeload:
		return true
	default:
		return false
	}
}

type Program struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	DurationWeeks int      `json:"durationWeeks" yaml:"durationWeeks"`
	Schedule      Schedule `json:"schedule" yaml:"schedule"`
}

func (p *Program) TotalDays() int {
	return p.DurationWeeks * CycleLength
}

func (p *Program) Validate() error {
	if p.ID == "" {
		return errors.New("program id empty")
	}
	if p.DurationWeeks < 1 {
		return fmt.Errorf("program %s: duration must be at least one week", p.ID)
	}
	if err := p.Schedule.Validate(); err != nil {
		return fmt.Errorf("program %s: %w", p.ID, err)
	}
	return nil
}

// ProgramDay is one authored slot of a program. Read-only to the engine.
type ProgramDay struct {
	ID          int64   `json:"id"`
	ProgramID   string  `json:"programId"`
	DayNumber   int     `json:"dayNumber"`
	Name        string  `json:"name"`
	DayType     DayType `json:"dayType"`
	TemplateKey string  `json:"templateKey,omitempty"`
	Description string  `json:"description,omitempty"`
}

func (d ProgramDay) HasTemplate() bool {
	return d.TemplateKey != ""
}

// TemplateExercise is one row of a template's base exercise list.
type TemplateExercise struct {
	ID         string `json:"id" yaml:"id"`
	ExerciseID string `json:"exerciseId" yaml:"exercise"`
	OrderIndex int    `json:"orderIndex" yaml:"order"`
	Sets       int    `json:"sets" yaml:"sets"`
	Reps       int    `json:"reps" yaml:"reps"`
}

// ExerciseRef is a template row after substitutions were applied for a given day.
type ExerciseRef struct {
	ID                 string `json:"id"`
	TemplateKey        string `json:"templateKey"`
	ExerciseID         string `json:"exerciseId"`
	OrderIndex         int    `json:"orderIndex"`
	Sets               int    `json:"sets"`
	Reps               int    `json:"reps"`
	Substituted        bool   `json:"substituted"`
	OriginalExerciseID string `json:"originalExerciseId,omitempty"`
}
