package story

import (
	"fmt"
	"strings"

	"fablecraft/internal/config"
)

type Stage struct {
	Title   string
	Summary string
}

// Character tracks one cast member through an ordered personal arc.
// The stage index only moves forward, one stage at a time, and stops
// at the final stage.
type Character struct {
	Name   string
	ID     string
	Role   string
	Desire string
	Fear   string
	Secret string

	arc        []Stage
	stageIndex int
}

func NewCharacter(cfg config.Character) (*Character, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, fmt.Errorf("character name is required")
	}
	if len(cfg.Arc) == 0 {
		return nil, fmt.Errorf("character %s: arc must have at least one stage", cfg.Name)
	}

	arc := make([]Stage, 0, len(cfg.Arc))
	for _, stage := range cfg.Arc {
		arc = append(arc, Stage{Title: stage.Title, Summary: stage.Summary})
	}

	return &Character{
		Name:   cfg.Name,
		ID:     Slug(cfg.Name),
		Role:   cfg.Role,
		Desire: cfg.Desire,
		Fear:   cfg.Fear,
		Secret: cfg.Secret,
		arc:    arc,
	}, nil
}

// Slug derives the stable lowercase-hyphenated identifier used in choice ids.
func Slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

func (c *Character) CurrentStage() Stage {
	return c.arc[c.stageIndex]
}

func (c *Character) StageIndex() int {
	return c.stageIndex
}

func (c *Character) StageCount() int {
	return len(c.arc)
}

// AdvanceArc moves the character one stage forward. It reports false,
// leaving the index unchanged, once the final stage has been reached.
func (c *Character) AdvanceArc() bool {
	if c.stageIndex >= len(c.arc)-1 {
		return false
	}
	c.stageIndex++
	return true
}

func (c *Character) ArcStatusLine() string {
	stage := c.CurrentStage()
	return fmt.Sprintf("%s is at %q (stage %d of %d): %s", c.Name, stage.Title, c.stageIndex+1, len(c.arc), stage.Summary)
}

func (c *Character) PitchLine() string {
	return fmt.Sprintf("%s, %s, who wants %s but fears %s.", c.Name, c.Role, c.Desire, c.Fear)
}
