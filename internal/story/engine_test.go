package story

import (
	"strings"
	"testing"

	"fablecraft/internal/config"
)

func testStory(t *testing.T, chaptersPerAct int, characters ...config.Character) *config.Story {
	t.Helper()
	return &config.Story{
		Title:          "The Drowned Almanac",
		Theme:          "memory",
		Setting:        "the half-sunken city of Veles",
		Mood:           "elegiac",
		ChaptersPerAct: chaptersPerAct,
		Characters:     characters,
	}
}

func testEngine(t *testing.T, chaptersPerAct int, characters ...config.Character) *Engine {
	t.Helper()
	engine, err := NewEngine(testStory(t, chaptersPerAct, characters...))
	if err != nil {
		t.Fatalf("building engine: %v", err)
	}
	engine.pick = func(n int) int { return 0 }
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("nil configuration rejected", func(t *testing.T) {
		if _, err := NewEngine(nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty roster rejected", func(t *testing.T) {
		if _, err := NewEngine(testStory(t, 3)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("non-positive chapters rejected", func(t *testing.T) {
		if _, err := NewEngine(testStory(t, 0, testCharacterConfig("A", 1))); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("duplicate slugs rejected", func(t *testing.T) {
		if _, err := NewEngine(testStory(t, 3, testCharacterConfig("Mira  Solace", 1), testCharacterConfig("Mira Solace", 1))); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("session id assigned", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("A", 1))
		if engine.SessionID == "" {
			t.Fatalf("expected session id")
		}
	})
}

func TestChoices(t *testing.T) {
	t.Run("at most four, fixed order", func(t *testing.T) {
		engine := testEngine(t, 3,
			testCharacterConfig("Mira Solace", 3),
			testCharacterConfig("Ezra Thorn", 3),
			testCharacterConfig("Calla Wren", 3),
		)
		choices := engine.Choices()
		if len(choices) != 4 {
			t.Fatalf("expected 4 choices, got %d", len(choices))
		}
		if choices[0].ID != "character:mira-solace" || choices[1].ID != "character:ezra-thorn" {
			t.Fatalf("expected roster-order character slots, got %q and %q", choices[0].ID, choices[1].ID)
		}
		if choices[2].ID != "world" || choices[3].ID != "twist" {
			t.Fatalf("expected world then twist, got %q and %q", choices[2].ID, choices[3].ID)
		}
	})

	t.Run("character slots favor least-advanced arcs", func(t *testing.T) {
		engine := testEngine(t, 3,
			testCharacterConfig("Mira Solace", 3),
			testCharacterConfig("Ezra Thorn", 3),
			testCharacterConfig("Calla Wren", 3),
		)
		engine.cast[0].AdvanceArc()
		engine.cast[1].AdvanceArc()

		choices := engine.Choices()
		if choices[0].ID != "character:calla-wren" {
			t.Fatalf("expected calla-wren first, got %q", choices[0].ID)
		}
		// Mira and Ezra tie at stage 1; roster order breaks the tie.
		if choices[1].ID != "character:mira-solace" {
			t.Fatalf("expected mira-solace second, got %q", choices[1].ID)
		}
	})

	t.Run("single character roster yields three options", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 2))
		choices := engine.Choices()
		if len(choices) != 3 {
			t.Fatalf("expected 3 choices, got %d", len(choices))
		}
	})

	t.Run("twist label shifts in the final act", func(t *testing.T) {
		engine := testEngine(t, 1, testCharacterConfig("Mira Solace", 2))
		early := engine.Choices()[2].Label

		engine.GeneratePassage("world")
		engine.GeneratePassage("world")
		late := engine.Choices()[2].Label

		if early == late {
			t.Fatalf("expected twist label to change in final act: %q", late)
		}
	})

	t.Run("empty once complete", func(t *testing.T) {
		engine := testEngine(t, 1, testCharacterConfig("Mira Solace", 2))
		for i := 0; i < 3; i++ {
			engine.GeneratePassage("world")
		}
		if choices := engine.Choices(); len(choices) != 0 {
			t.Fatalf("expected no choices, got %d", len(choices))
		}
	})
}

func TestGeneratePassage(t *testing.T) {
	t.Run("character choice advances the arc", func(t *testing.T) {
		engine := testEngine(t, 3,
			testCharacterConfig("Mira Solace", 3),
			testCharacterConfig("Ezra Thorn", 3),
		)
		mira := engine.cast[0]
		firstSummary := mira.CurrentStage().Summary
		nextTitle := mira.arc[1].Title

		text := engine.GeneratePassage("character:mira-solace")
		if !strings.Contains(text, firstSummary) {
			t.Fatalf("passage missing stage summary: %q", text)
		}
		if !strings.Contains(text, nextTitle) {
			t.Fatalf("passage missing next stage title: %q", text)
		}
		if mira.StageIndex() != 1 {
			t.Fatalf("expected stage index 1, got %d", mira.StageIndex())
		}
		if len(strings.Split(text, "\n\n")) != 3 {
			t.Fatalf("expected three paragraphs")
		}
	})

	t.Run("character at final stage stalls", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 1), testCharacterConfig("Ezra Thorn", 1))
		text := engine.GeneratePassage("character:mira-solace")
		if !strings.Contains(text, "no further stage") {
			t.Fatalf("expected stalled paragraph, got %q", text)
		}
		if engine.cast[0].StageIndex() != 0 {
			t.Fatalf("stage index moved: %d", engine.cast[0].StageIndex())
		}
	})

	t.Run("world passage names setting, theme, and a witness", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 2))
		text := engine.GeneratePassage("world")
		for _, want := range []string{"the half-sunken city of Veles", "memory", "Mira Solace"} {
			if !strings.Contains(text, want) {
				t.Fatalf("world passage missing %q: %q", want, text)
			}
		}
		if len(strings.Split(text, "\n\n")) != 3 {
			t.Fatalf("expected three paragraphs")
		}
	})

	t.Run("twist with single character reuses them", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 2))
		text := engine.GeneratePassage("twist")
		if strings.Count(text, "Mira Solace") < 2 {
			t.Fatalf("expected the lone character on both sides of the twist: %q", text)
		}
	})

	t.Run("twist names two distinct characters", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 2), testCharacterConfig("Ezra Thorn", 2))
		text := engine.GeneratePassage("twist")
		if !strings.Contains(text, "Mira Solace") || !strings.Contains(text, "Ezra Thorn") {
			t.Fatalf("expected both characters named: %q", text)
		}
	})

	t.Run("unrecognized id falls back but consumes the chapter", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 2))
		text := engine.GeneratePassage("bogus")
		if text != hesitationText {
			t.Fatalf("expected hesitation passage, got %q", text)
		}
		if engine.HistoryLen() != 1 {
			t.Fatalf("expected one history entry, got %d", engine.HistoryLen())
		}
		if engine.chapter != 2 {
			t.Fatalf("expected chapter to advance, got %d", engine.chapter)
		}
	})

	t.Run("unknown character slug is unrecognized", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 2))
		if text := engine.GeneratePassage("character:nobody-here"); text != hesitationText {
			t.Fatalf("expected hesitation passage, got %q", text)
		}
	})

	t.Run("after completion nothing changes", func(t *testing.T) {
		engine := testEngine(t, 1, testCharacterConfig("Mira Solace", 2))
		for i := 0; i < 3; i++ {
			engine.GeneratePassage("world")
		}
		epilogue := engine.Epilogue
		text := engine.GeneratePassage("world")
		if text != alreadyFinishedText {
			t.Fatalf("expected closed-book sentinel, got %q", text)
		}
		if engine.HistoryLen() != 3 {
			t.Fatalf("history grew after completion: %d", engine.HistoryLen())
		}
		if engine.Epilogue != epilogue {
			t.Fatalf("epilogue changed after completion")
		}
	})
}

func TestStateMachine(t *testing.T) {
	t.Run("completes after three acts of chapters", func(t *testing.T) {
		engine := testEngine(t, 3,
			testCharacterConfig("Mira Solace", 3),
			testCharacterConfig("Ezra Thorn", 3),
			testCharacterConfig("Calla Wren", 3),
		)
		for i := 0; i < 9; i++ {
			if engine.Complete() {
				t.Fatalf("completed early after %d passages", i)
			}
			if engine.Epilogue != "" {
				t.Fatalf("epilogue set early")
			}
			if len(engine.Choices()) == 0 {
				t.Fatalf("expected choices before passage %d", i+1)
			}
			choices := engine.Choices()
			engine.GeneratePassage(choices[i%len(choices)].ID)
		}
		if !engine.Complete() {
			t.Fatalf("expected completion after 9 passages")
		}
		if engine.Epilogue == "" {
			t.Fatalf("expected epilogue")
		}
		for _, name := range []string{"Mira Solace", "Ezra Thorn", "Calla Wren"} {
			if !strings.Contains(engine.Epilogue, name) {
				t.Fatalf("epilogue missing %q: %q", name, engine.Epilogue)
			}
		}
	})

	t.Run("acts roll over in order", func(t *testing.T) {
		engine := testEngine(t, 2, testCharacterConfig("Mira Solace", 2))
		wantStates := [][2]int{{0, 2}, {1, 1}, {1, 2}, {2, 1}, {2, 2}}
		for _, want := range wantStates {
			engine.GeneratePassage("world")
			if engine.actIndex != want[0] || engine.chapter != want[1] {
				t.Fatalf("expected act %d chapter %d, got act %d chapter %d", want[0], want[1], engine.actIndex, engine.chapter)
			}
		}
		engine.GeneratePassage("world")
		if !engine.Complete() {
			t.Fatalf("expected completion")
		}
	})

	t.Run("epilogue names final stages", func(t *testing.T) {
		engine := testEngine(t, 1, testCharacterConfig("Mira Solace", 2))
		for i := 0; i < 3; i++ {
			engine.GeneratePassage("character:mira-solace")
		}
		finalTitle := engine.cast[0].CurrentStage().Title
		if !strings.Contains(engine.Epilogue, finalTitle) {
			t.Fatalf("epilogue missing final stage %q: %q", finalTitle, engine.Epilogue)
		}
	})
}

func TestHistory(t *testing.T) {
	t.Run("empty history message", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 2))
		if got := engine.History(3); got != "Nothing has been written yet." {
			t.Fatalf("unexpected empty history: %q", got)
		}
	})

	t.Run("entries preserve order and default to three", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 4), testCharacterConfig("Ezra Thorn", 4))
		for i := 0; i < 5; i++ {
			engine.GeneratePassage("world")
		}
		if engine.HistoryLen() != 5 {
			t.Fatalf("expected 5 entries, got %d", engine.HistoryLen())
		}

		formatted := engine.History(0)
		if strings.Count(formatted, historyDivider) != 2 {
			t.Fatalf("expected 3 entries in default view: %q", formatted)
		}
		first := engine.history[0]
		if first.Act != 1 || first.ActName != "Setup" || first.Chapter != 1 {
			t.Fatalf("unexpected first entry: %+v", first)
		}
		last := engine.history[4]
		if last.Act != 2 || last.Chapter != 2 {
			t.Fatalf("unexpected last entry: %+v", last)
		}
	})

	t.Run("limit larger than history shows everything", func(t *testing.T) {
		engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 2))
		engine.GeneratePassage("world")
		formatted := engine.History(10)
		if strings.Contains(formatted, historyDivider) {
			t.Fatalf("expected a single entry: %q", formatted)
		}
	})
}

func TestSummaryAndIntroduction(t *testing.T) {
	engine := testEngine(t, 3, testCharacterConfig("Mira Solace", 2), testCharacterConfig("Ezra Thorn", 2))

	intro := engine.Introduction()
	for _, want := range []string{"The Drowned Almanac", "memory", "Veles", "elegiac", "Mira Solace", "Ezra Thorn"} {
		if !strings.Contains(intro, want) {
			t.Fatalf("introduction missing %q", want)
		}
	}

	summary := engine.Summary()
	if !strings.Contains(summary, "Act 1: Setup") {
		t.Fatalf("summary missing act position: %q", summary)
	}
	if !strings.Contains(summary, engine.SessionID) {
		t.Fatalf("summary missing session id: %q", summary)
	}
	if !strings.Contains(summary, "Mira Solace") || !strings.Contains(summary, "Ezra Thorn") {
		t.Fatalf("summary missing arc status lines: %q", summary)
	}
}
