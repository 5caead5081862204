package story

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"

	"fablecraft/internal/config"
)

// Act is one of the three fixed narrative phases. The table below is the
// only source of act names and tones; it is indexed by act number and
// never mutated.
type Act struct {
	Name string
	Tone string
}

var acts = [3]Act{
	{Name: "Setup", Tone: "quiet unease"},
	{Name: "Confrontation", Tone: "rising pressure"},
	{Name: "Resolution", Tone: "hard-won clarity"},
}

const alreadyFinishedText = "The book is closed. Its last page has already been written."

// Entry is one generated passage as recorded in the engine's history.
type Entry struct {
	Act     int // 1-based
	ActName string
	Chapter int
	Choice  string
	Text    string
}

// Engine drives a single story session: it owns the cast, walks the
// act/chapter state machine, and assembles passages from the chosen
// narrative threads. It is not safe for concurrent use; a session
// processes one choice at a time.
type Engine struct {
	Title     string
	Theme     string
	Setting   string
	Mood      string
	SessionID string

	// Epilogue stays empty until the final chapter of the final act
	// has been written, then holds the closing text.
	Epilogue string

	chaptersPerAct int
	cast           []*Character
	actIndex       int
	chapter        int
	history        []Entry
	completed      bool

	// pick returns a value in [0, n). Swapped for a deterministic
	// picker in tests.
	pick func(n int) int
}

func NewEngine(cfg *config.Story) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("story configuration is required")
	}
	if len(cfg.Characters) == 0 {
		return nil, fmt.Errorf("story needs at least one character")
	}
	if cfg.ChaptersPerAct < 1 {
		return nil, fmt.Errorf("chapters per act must be positive, got %d", cfg.ChaptersPerAct)
	}

	cast := make([]*Character, 0, len(cfg.Characters))
	seen := make(map[string]struct{})
	for _, characterCfg := range cfg.Characters {
		character, err := NewCharacter(characterCfg)
		if err != nil {
			return nil, err
		}
		if _, exists := seen[character.ID]; exists {
			return nil, fmt.Errorf("duplicate character id: %s", character.ID)
		}
		seen[character.ID] = struct{}{}
		cast = append(cast, character)
	}

	return &Engine{
		Title:          cfg.Title,
		Theme:          cfg.Theme,
		Setting:        cfg.Setting,
		Mood:           cfg.Mood,
		SessionID:      uuid.NewString(),
		chaptersPerAct: cfg.ChaptersPerAct,
		cast:           cast,
		chapter:        1,
		pick:           rand.Intn,
	}, nil
}

func (e *Engine) Complete() bool {
	return e.completed
}

func (e *Engine) CurrentAct() Act {
	return acts[e.actIndex]
}

// Introduction renders the opening header: premise, cast pitches, and
// how to play. It never mutates the engine.
func (e *Engine) Introduction() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.Title)
	fmt.Fprintf(&b, "A story of %s, set in %s. The mood is %s.\n\n", e.Theme, e.Setting, e.Mood)
	b.WriteString("The cast:\n")
	for _, character := range e.cast {
		fmt.Fprintf(&b, "  - %s\n", character.PitchLine())
	}
	fmt.Fprintf(&b, "\nEach chapter offers a handful of threads. Pick one and the story follows it.\n")
	fmt.Fprintf(&b, "The book runs three acts of %d chapters each, then closes with an epilogue.\n", e.chaptersPerAct)
	return b.String()
}

// Choices builds the option menu for the current chapter: up to two
// character threads (the characters whose arcs have progressed least,
// roster order breaking ties), one world thread, and one twist thread.
// Once the book is complete there is nothing left to choose.
func (e *Engine) Choices() []Choice {
	if e.completed {
		return nil
	}

	choices := make([]Choice, 0, 4)

	trailing := make([]*Character, len(e.cast))
	copy(trailing, e.cast)
	sort.SliceStable(trailing, func(i, j int) bool {
		return trailing[i].StageIndex() < trailing[j].StageIndex()
	})
	if len(trailing) > 2 {
		trailing = trailing[:2]
	}
	for _, character := range trailing {
		choices = append(choices, Choice{
			ID:    characterChoicePrefix + character.ID,
			Label: e.characterLabel(character),
		})
	}

	choices = append(choices, Choice{ID: choiceIDWorld, Label: e.worldLabel()})
	choices = append(choices, Choice{ID: choiceIDTwist, Label: e.twistLabel()})
	return choices
}

func (e *Engine) characterLabel(character *Character) string {
	return fmt.Sprintf("Follow %s through %s", character.Name, strings.ToLower(character.CurrentStage().Title))
}

func (e *Engine) worldLabel() string {
	return fmt.Sprintf("Wander deeper into %s", e.Setting)
}

func (e *Engine) twistLabel() string {
	if e.actIndex == len(acts)-1 {
		return "Force the final reckoning"
	}
	return "Let something unexpected turn the story"
}

// GeneratePassage consumes one choice and writes one chapter. The choice
// id is resolved into a thread kind; unrecognized ids fall back to a
// hesitation passage that still occupies the chapter. Every accepted
// call appends exactly one history entry and advances the act/chapter
// state machine exactly once. Requests after completion return the
// closed-book sentinel and change nothing.
func (e *Engine) GeneratePassage(choiceID string) string {
	if e.completed {
		return alreadyFinishedText
	}

	var label string
	var paragraphs []string

	kind, character := e.resolveChoice(choiceID)
	switch kind {
	case choiceWorld:
		label = e.worldLabel()
		paragraphs = e.worldPassage()
	case choiceTwist:
		label = e.twistLabel()
		paragraphs = e.twistPassage()
	case choiceCharacter:
		label = e.characterLabel(character)
		paragraphs = e.characterPassage(character)
	default:
		label = choiceID
		paragraphs = []string{hesitationText}
	}

	text := strings.Join(paragraphs, "\n\n")
	e.history = append(e.history, Entry{
		Act:     e.actIndex + 1,
		ActName: acts[e.actIndex].Name,
		Chapter: e.chapter,
		Choice:  label,
		Text:    text,
	})
	e.advance()
	return text
}

// advance runs the single state-machine transition that follows an
// accepted passage: next chapter, else next act, else completion. The
// terminal transition also fixes the epilogue, exactly once.
func (e *Engine) advance() {
	switch {
	case e.chapter < e.chaptersPerAct:
		e.chapter++
	case e.actIndex < len(acts)-1:
		e.actIndex++
		e.chapter = 1
	default:
		e.completed = true
		e.Epilogue = e.buildEpilogue()
	}
}

func (e *Engine) buildEpilogue() string {
	var b strings.Builder
	for _, character := range e.cast {
		stage := character.CurrentStage()
		fmt.Fprintf(&b, "%s ends at %q, %s ", character.Name, stage.Title, lowerFirst(stage.Summary))
	}
	fmt.Fprintf(&b, "Whatever else is forgotten, %s stays written.", e.Theme)
	return b.String()
}

// Summary reports the session position and every character's arc status.
func (e *Engine) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session %s\n", e.SessionID)
	if e.completed {
		fmt.Fprintf(&b, "%s is complete.\n", e.Title)
	} else {
		act := acts[e.actIndex]
		fmt.Fprintf(&b, "Act %d: %s (%s), chapter %d of %d.\n", e.actIndex+1, act.Name, act.Tone, e.chapter, e.chaptersPerAct)
	}
	for _, character := range e.cast {
		fmt.Fprintf(&b, "  %s\n", character.ArcStatusLine())
	}
	return b.String()
}

const historyDivider = "----------------------------------------"

// History formats the most recent limit entries, oldest first. A
// non-positive limit uses the default of 3.
func (e *Engine) History(limit int) string {
	if len(e.history) == 0 {
		return "Nothing has been written yet."
	}
	if limit <= 0 {
		limit = 3
	}

	start := len(e.history) - limit
	if start < 0 {
		start = 0
	}

	parts := make([]string, 0, limit)
	for _, entry := range e.history[start:] {
		parts = append(parts, fmt.Sprintf("Act %d: %s, chapter %d. Thread: %s\n\n%s", entry.Act, entry.ActName, entry.Chapter, entry.Choice, entry.Text))
	}
	return strings.Join(parts, "\n"+historyDivider+"\n")
}

// HistoryLen reports how many passages have been written so far.
func (e *Engine) HistoryLen() int {
	return len(e.history)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
