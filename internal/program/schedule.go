package program

import (
	"errors"
	"fmt"
)

const CycleLength = 7

// restSlot is the index of the rest day inside a cycle
const restSlot = CycleLength - 1

type PhaseBand struct {
	Name     string `json:"name" yaml:"name"`
	FirstDay int    `json:"firstDay" yaml:"firstDay"`
	LastDay  int    `json:"lastDay" yaml:"lastDay"`
	Deload   bool   `json:"deload" yaml:"deload"`
}

func (b PhaseBand) Contains(dayNumber int) bool {
	return dayNumber >= b.FirstDay && dayNumber <= b.LastDay
}

// Schedule maps program days onto template slots and training phases.
// Slots holds one template key per day of the cycle; the last slot is always
// the rest day and must be empty.
type Schedule struct {
	Slots  []string    `json:"slots" yaml:"slots"`
	Phases []PhaseBand `json:"phases" yaml:"phases"`
}

type ResolvedDay struct {
	DayNumber   int    `json:"dayNumber"`
	DayInCycle  int    `json:"dayInCycle"`
	TemplateKey string `json:"templateKey,omitempty"`
	Phase       string `json:"phase"`
	WeekNumber  int    `json:"weekNumber"`
	IsRest      bool   `json:"isRest"`
}

var defaultSlots = []string{"push", "pull", "legs", "upper", "lower", "full_body", ""}

// DefaultSchedule returns the six-on/one-off rotation with phase bands
// laid out over totalDays.
func DefaultSchedule(totalDays int) Schedule {
	slots := make([]string, len(defaultSlots))
	copy(slots, defaultSlots)
	return Schedule{
		Slots:  slots,
		Phases: DefaultPhases(totalDays),
	}
}

// DefaultPhases splits the program into foundation, build and peak bands
// followed by a one week deload tail. For 84 days: 1-28, 29-56, 57-77, 78-84.
func DefaultPhases(totalDays int) []PhaseBand {
	weeks := totalDays/CycleLength - 1
	if weeks <= 0 {
		return []PhaseBand{{Name: "foundation", FirstDay: 1, LastDay: totalDays}}
	}

	foundation := (weeks + 2) / 3
	build := (weeks + 1) / 3
	peak := weeks - foundation - build

	var bands []PhaseBand
	day := 1
	for _, b := range []struct {
		name  string
		weeks int
	}{
		{"foundation", foundation},
		{"build", build},
		{"peak", peak},
	} {
		if b.weeks == 0 {
			continue
		}
		last := day + b.weeks*CycleLength - 1
		bands = append(bands, PhaseBand{Name: b.name, FirstDay: day, LastDay: last})
		day = last + 1
	}
	bands = append(bands, PhaseBand{Name: "deload", FirstDay: day, LastDay: totalDays, Deload: true})

	return bands
}

func (s Schedule) Validate() error {
	if len(s.Slots) != CycleLength {
		return fmt.Errorf("schedule must have %d slots, got %d", CycleLength, len(s.Slots))
	}
	for i, slot := range s.Slots {
		if i == restSlot && slot != "" {
			return fmt.Errorf("slot %d is the rest day and must be empty", i)
		}
		if i != restSlot && slot == "" {
			return fmt.Errorf("workout slot %d empty", i)
		}
	}
	if len(s.Phases) == 0 {
		return errors.New("schedule has no phases")
	}
	prevLast := 0
	for _, p := range s.Phases {
		if p.Name == "" {
			return errors.New("phase name empty")
		}
		if p.FirstDay != prevLast+1 || p.LastDay < p.FirstDay {
			return fmt.Errorf("phase %s: bands must be contiguous and start at day 1", p.Name)
		}
		prevLast = p.LastDay
	}
	return nil
}

// ResolveDay maps a 1-based program day onto its slot, week and phase.
func (s Schedule) ResolveDay(dayNumber int) (ResolvedDay, error) {
	if dayNumber < 1 {
		return ResolvedDay{}, fmt.Errorf("%w: %d", ErrInvalidDayNumber, dayNumber)
	}
	if len(s.Slots) != CycleLength {
		return ResolvedDay{}, fmt.Errorf("schedule must have %d slots, got %d", CycleLength, len(s.Slots))
	}

	dayInCycle := (dayNumber - 1) % CycleLength
	templateKey := s.Slots[dayInCycle]
	phase := s.phaseBand(dayNumber)

	return ResolvedDay{
		DayNumber:   dayNumber,
		DayInCycle:  dayInCycle,
		TemplateKey: templateKey,
		Phase:       phase.Name,
		WeekNumber:  (dayNumber-1)/CycleLength + 1,
		IsRest:      templateKey == "",
	}, nil
}

// phaseBand returns the band holding dayNumber. Days outside every band fall back
// to the first band; callers must not rely on that past the program's end.
func (s Schedule) phaseBand(dayNumber int) PhaseBand {
	for _, p := range s.Phases {
		if p.Contains(dayNumber) {
			return p
		}
	}
	if len(s.Phases) == 0 {
		return PhaseBand{}
	}
	return s.Phases[0]
}
