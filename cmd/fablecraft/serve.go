package main

import (
	"context"

	"github.com/spf13/cobra"

	"fablecraft/internal/mcp"
	"fablecraft/internal/story"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	var storyPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(storyPath)
		},
	}
	cmd.Flags().StringVar(&storyPath, "story", "", "Story file (defaults to $FABLECRAFT_STORY, then story.yaml, then the built-in story)")
	return cmd
}

func runServe(storyPath string) error {
	ctx := context.Background()

	cfg, err := loadStory(storyPath)
	if err != nil {
		return err
	}

	engine, err := story.NewEngine(cfg)
	if err != nil {
		return err
	}

	server := mcp.NewServer(engine, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
