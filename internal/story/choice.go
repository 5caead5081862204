package story

import "strings"

const (
	choiceIDWorld         = "world"
	choiceIDTwist         = "twist"
	characterChoicePrefix = "character:"
)

// Choice is one offered narrative branch. The ID round-trips through
// GeneratePassage; the label is for display only.
type Choice struct {
	ID    string
	Label string
}

type choiceKind int

const (
	choiceUnknown choiceKind = iota
	choiceWorld
	choiceTwist
	choiceCharacter
)

// resolveChoice classifies a choice id once, at the engine boundary.
// A character id only resolves if the slug matches a cast member;
// everything else is unknown and handled by the hesitation fallback.
func (e *Engine) resolveChoice(id string) (choiceKind, *Character) {
	switch {
	case id == choiceIDWorld:
		return choiceWorld, nil
	case id == choiceIDTwist:
		return choiceTwist, nil
	case strings.HasPrefix(id, characterChoicePrefix):
		slug := strings.TrimPrefix(id, characterChoicePrefix)
		for _, character := range e.cast {
			if character.ID == slug {
				return choiceCharacter, character
			}
		}
	}
	return choiceUnknown, nil
}
