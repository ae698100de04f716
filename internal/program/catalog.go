package program

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Programs  []Program                     `yaml:"programs"`
	Templates map[string][]TemplateExercise `yaml:"templates"`
}

// Catalog holds program definitions and the templates they reference.
// It is immutable after load.
type Catalog struct {
	programs  map[string]*Program
	templates map[string][]TemplateExercise
}

func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	log.Debugf("loaded %d programs and %d templates from %s", len(c.programs), len(c.templates), path)
	return c, nil
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return NewCatalog(f.Programs, f.Templates)
}

// NewCatalog validates programs and templates. Programs without a schedule get
// the default rotation; programs without phases get the default bands.
func NewCatalog(programs []Program, templates map[string][]TemplateExercise) (*Catalog, error) {
	c := &Catalog{
		programs:  make(map[string]*Program, len(programs)),
		templates: make(map[string][]TemplateExercise, len(templates)),
	}

	for key, exercises := range templates {
		if key == "" {
			return nil, errors.New("template key empty")
		}
		sorted := make([]TemplateExercise, len(exercises))
		copy(sorted, exercises)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].OrderIndex < sorted[j].OrderIndex
		})
		for i := range sorted {
			if sorted[i].ExerciseID == "" {
				return nil, fmt.Errorf("template %s: exercise %d has no id", key, i)
			}
			if sorted[i].ID == "" {
				sorted[i].ID = fmt.Sprintf("%s_%d", key, sorted[i].OrderIndex)
			}
		}
		c.templates[key] = sorted
	}

	for i := range programs {
		p := programs[i]
		if len(p.Schedule.Slots) == 0 {
			p.Schedule.Slots = DefaultSchedule(p.TotalDays()).Slots
		}
		if len(p.Schedule.Phases) == 0 {
			p.Schedule.Phases = DefaultPhases(p.TotalDays())
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.programs[p.ID]; exists {
			return nil, fmt.Errorf("duplicate program %s", p.ID)
		}
		for _, slot := range p.Schedule.Slots {
			if slot == "" {
				continue
			}
			if _, ok := c.templates[slot]; !ok {
				return nil, fmt.Errorf("program %s: %w: %s", p.ID, ErrTemplateNotFound, slot)
			}
		}
		c.programs[p.ID] = &p
	}

	return c, nil
}

func (c *Catalog) GetProgram(_ context.Context, id string) (*Program, error) {
	p, ok := c.programs[id]
	if !ok {
		return nil, ErrProgramNotFound
	}
	cp := *p
	return &cp, nil
}

func (c *Catalog) Programs() []Program {
	programs := make([]Program, 0, len(c.programs))
	for _, p := range c.programs {
		programs = append(programs, *p)
	}
	sort.Slice(programs, func(i, j int) bool {
		return programs[i].ID < programs[j].ID
	})
	return programs
}

// Template returns a copy of the base exercise list, ordered by order index.
func (c *Catalog) Template(_ context.Context, key string) ([]TemplateExercise, error) {
	exercises, ok := c.templates[key]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	cp := make([]TemplateExercise, len(exercises))
	copy(cp, exercises)
	return cp, nil
}

// GenerateDays authors the full day sequence of a program from its schedule.
func (c *Catalog) GenerateDays(programID string) ([]ProgramDay, error) {
	p, ok := c.programs[programID]
	if !ok {
		return nil, ErrProgramNotFound
	}

	total := p.TotalDays()
	days := make([]ProgramDay, 0, total)
	for d := 1; d <= total; d++ {
		resolved, err := p.Schedule.ResolveDay(d)
		if err != nil {
			return nil, err
		}

		day := ProgramDay{
			ProgramID:   p.ID,
			DayNumber:   d,
			TemplateKey: resolved.TemplateKey,
			Description: resolved.Phase,
		}
		switch {
		case resolved.IsRest:
			day.DayType = DayTypeRest
			day.Name = fmt.Sprintf("Week %d: Rest", resolved.WeekNumber)
		case p.Schedule.phaseBand(d).Deload:
			day.DayType = DayTypeDeload
			day.Name = fmt.Sprintf("Week %d: %s (deload)", resolved.WeekNumber, displayName(resolved.TemplateKey))
		default:
			day.DayType = DayTypeWorkout
			day.Name = fmt.Sprintf("Week %d: %s", resolved.WeekNumber, displayName(resolved.TemplateKey))
		}
		days = append(days, day)
	}

	return days, nil
}

type daySeeder interface {
	GetTotalDayCount(ctx context.Context, programID string) (int, error)
	InsertDays(ctx context.Context, days []ProgramDay) error
}

// Seed writes the generated days of every program the store does not know yet.
func (c *Catalog) Seed(ctx context.Context, store daySeeder) error {
	for _, p := range c.Programs() {
		count, err := store.GetTotalDayCount(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("count days of %s: %w", p.ID, err)
		}
		if count > 0 {
			log.Tracef("program %s already has %d days, skipping seed", p.ID, count)
			continue
		}

		days, err := c.GenerateDays(p.ID)
		if err != nil {
			return fmt.Errorf("generate days of %s: %w", p.ID, err)
		}
		if err := store.InsertDays(ctx, days); err != nil {
			return fmt.Errorf("insert days of %s: %w", p.ID, err)
		}
		log.Infof("seeded program %s with %d days", p.ID, len(days))
	}
	return nil
}

func displayName(templateKey string) string {
	words := strings.Split(templateKey, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
