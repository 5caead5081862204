package story

import "fmt"

const hesitationText = "The story hesitates, circling a moment it cannot yet name, and the chapter passes before anyone speaks."

var sensoryDetails = []string{
	"salt drying in white rings on the stones",
	"a bell tolling somewhere under the water",
	"lamplight pooling in a doorway that no longer has a door",
	"the smell of wet paper and old rope",
	"a cold current threading through the warm air",
	"gulls wheeling over something only they can see",
}

var catalysts = []string{
	"a letter that should have drowned years ago",
	"a stranger who knows a name nobody has spoken aloud",
	"a door unlocked that was always kept sealed",
	"a debt called in at the worst possible hour",
	"a confession overheard through a thin wall",
}

var atmospheres = []string{
	"the light going green at the edges of the day",
	"water finding its level in the dark",
	"a horizon that refuses to stay still",
	"the hush after a bell has stopped",
	"rain beginning somewhere out of sight",
}

// worldPassage turns a chapter over to the setting itself: three
// paragraphs of place, theme, and one sensory detail, witnessed by a
// randomly chosen cast member.
func (e *Engine) worldPassage() []string {
	detail := sensoryDetails[e.pick(len(sensoryDetails))]
	witness := e.cast[e.pick(len(e.cast))]

	first := fmt.Sprintf("The story widens to take in %s. Nothing here is idle; every surface carries some argument about %s.", e.Setting, e.Theme)
	second := fmt.Sprintf("What lingers is %s. %s notices it and says nothing, filing it away the way people here file everything they cannot afford to feel yet.", detail, witness.Name)
	third := fmt.Sprintf("The place holds its breath, and the chapter closes on %s, patient as ever, keeping its own account of %s.", e.Setting, e.Theme)
	return []string{first, second, third}
}

// twistPassage throws two cast members together around a random
// catalyst. With a single-character cast the same character plays both
// parts; the story folds the confrontation inward.
func (e *Engine) twistPassage() []string {
	first := e.cast[e.pick(len(e.cast))]
	second := first
	if len(e.cast) > 1 {
		rest := make([]*Character, 0, len(e.cast)-1)
		for _, character := range e.cast {
			if character != first {
				rest = append(rest, character)
			}
		}
		second = rest[e.pick(len(rest))]
	}

	catalyst := catalysts[e.pick(len(catalysts))]
	tone := acts[e.actIndex].Tone

	opening := fmt.Sprintf("Without warning, %s surfaces, and it lands squarely between %s and %s.", catalyst, first.Name, second.Name)
	middle := fmt.Sprintf("The air takes on the act's %s. %s speaks first; %s answers with something that cannot be taken back.", tone, first.Name, second.Name)
	closing := fmt.Sprintf("Neither of them names %s, but it is the only thing either of them is talking about.", e.Theme)
	return []string{opening, middle, closing}
}

// characterPassage follows one cast member through their current stage,
// advancing the arc when there is anywhere left to go.
func (e *Engine) characterPassage(character *Character) []string {
	before := character.CurrentStage()
	tone := acts[e.actIndex].Tone
	progressed := character.AdvanceArc()

	reflection := fmt.Sprintf("%s sits with what %q has made of them: %s The act's %s colors every small decision.", character.Name, before.Title, before.Summary, tone)

	var turn string
	if progressed {
		after := character.CurrentStage()
		turn = fmt.Sprintf("Something gives way. %s crosses into %q, and the old excuses stop fitting. %s", character.Name, after.Title, after.Summary)
	} else {
		turn = fmt.Sprintf("%s stands at the far edge of their own story. There is no further stage to reach, only the work of holding %q against the current.", character.Name, before.Title)
	}

	atmosphere := atmospheres[e.pick(len(atmospheres))]
	closure := fmt.Sprintf("Outside, %s. It reads like a verdict on %s, though nobody says so.", atmosphere, e.Theme)

	return []string{reflection, turn, closure}
}
