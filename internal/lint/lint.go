package lint

import (
	"fmt"
	"strings"

	"fablecraft/internal/config"
	"fablecraft/internal/story"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeDuplicateID  = "duplicate_character_id"
	codeSingleStage  = "single_stage_arc"
	codeArcTooLong   = "arc_exceeds_chapters"
	codeBlankSecret  = "blank_secret"
	codeSharedDesire = "shared_desire"
)

type Issue struct {
	Severity  Severity
	Code      string
	Message   string
	Character string
}

type Report struct {
	Issues []Issue
}

func (r *Report) Errors() []Issue {
	return r.bySeverity(SeverityError)
}

func (r *Report) Warnings() []Issue {
	return r.bySeverity(SeverityWarn)
}

func (r *Report) bySeverity(severity Severity) []Issue {
	issues := make([]Issue, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			issues = append(issues, issue)
		}
	}
	return issues
}

// Run checks a loaded story for problems the configuration schema cannot
// express. Errors make the story unplayable; warnings flag arcs and cast
// details that tend to read poorly at the table.
func Run(s *config.Story) *Report {
	report := &Report{Issues: make([]Issue, 0)}

	totalChapters := 3 * s.ChaptersPerAct
	seen := make(map[string]string)
	desires := make(map[string]string)

	for _, character := range s.Characters {
		slug := story.Slug(character.Name)

		if other, exists := seen[slug]; exists {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityError,
				Code:      codeDuplicateID,
				Message:   fmt.Sprintf("%q and %q both resolve to the id %q", other, character.Name, slug),
				Character: character.Name,
			})
		} else {
			seen[slug] = character.Name
		}

		if len(character.Arc) == 1 {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityWarn,
				Code:      codeSingleStage,
				Message:   "arc has a single stage, so this character can never visibly progress",
				Character: character.Name,
			})
		}

		if len(character.Arc) > totalChapters {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityWarn,
				Code:      codeArcTooLong,
				Message:   fmt.Sprintf("arc has %d stages but the book only runs %d chapters", len(character.Arc), totalChapters),
				Character: character.Name,
			})
		}

		if strings.TrimSpace(character.Secret) == "" {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityWarn,
				Code:      codeBlankSecret,
				Message:   "character has no secret; twists involving them will carry less weight",
				Character: character.Name,
			})
		}

		desire := strings.ToLower(strings.TrimSpace(character.Desire))
		if other, exists := desires[desire]; exists && desire != "" {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityWarn,
				Code:      codeSharedDesire,
				Message:   fmt.Sprintf("desire duplicates %s's; consider sharpening one of them", other),
				Character: character.Name,
			})
		} else if desire != "" {
			desires[desire] = character.Name
		}
	}

	return report
}
