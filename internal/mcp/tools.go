package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type GetIntroductionInput struct{}

type GetChoicesInput struct{}

type GeneratePassageInput struct {
	ChoiceID string `json:"choice_id" jsonschema:"identifier of the chosen narrative thread"`
}

type GetSummaryInput struct{}

type GetHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of recent passages to include"`
}

type TextOutput struct {
	Text string `json:"text"`
}

type ChoiceOutput struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type GetChoicesOutput struct {
	Choices  []ChoiceOutput `json:"choices"`
	Complete bool           `json:"complete"`
}

type GeneratePassageOutput struct {
	Passage  string `json:"passage"`
	Complete bool   `json:"complete"`
	Epilogue string `json:"epilogue,omitempty"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_introduction",
		Description: "Return the story's opening header and cast pitches",
	}, s.handleGetIntroduction)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_choices",
		Description: "List the narrative threads available this chapter",
	}, s.handleGetChoices)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "generate_passage",
		Description: "Follow a chosen thread and write the next chapter",
	}, s.handleGeneratePassage)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_summary",
		Description: "Report the current act, chapter, and character arcs",
	}, s.handleGetSummary)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_history",
		Description: "Return the most recently written passages",
	}, s.handleGetHistory)
}

func (s *Server) handleGetIntroduction(ctx context.Context, req *sdk.CallToolRequest, input GetIntroductionInput) (*sdk.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Text: s.engine.Introduction()}, nil
}

func (s *Server) handleGetChoices(ctx context.Context, req *sdk.CallToolRequest, input GetChoicesInput) (*sdk.CallToolResult, GetChoicesOutput, error) {
	choices := s.engine.Choices()
	output := make([]ChoiceOutput, 0, len(choices))
	for _, choice := range choices {
		output = append(output, ChoiceOutput{ID: choice.ID, Label: choice.Label})
	}
	return nil, GetChoicesOutput{Choices: output, Complete: s.engine.Complete()}, nil
}

func (s *Server) handleGeneratePassage(ctx context.Context, req *sdk.CallToolRequest, input GeneratePassageInput) (*sdk.CallToolResult, GeneratePassageOutput, error) {
	if input.ChoiceID == "" {
		return nil, GeneratePassageOutput{}, fmt.Errorf("choice_id is required")
	}
	passage := s.engine.GeneratePassage(input.ChoiceID)
	return nil, GeneratePassageOutput{
		Passage:  passage,
		Complete: s.engine.Complete(),
		Epilogue: s.engine.Epilogue,
	}, nil
}

func (s *Server) handleGetSummary(ctx context.Context, req *sdk.CallToolRequest, input GetSummaryInput) (*sdk.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Text: s.engine.Summary()}, nil
}

func (s *Server) handleGetHistory(ctx context.Context, req *sdk.CallToolRequest, input GetHistoryInput) (*sdk.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Text: s.engine.History(input.Limit)}, nil
}
