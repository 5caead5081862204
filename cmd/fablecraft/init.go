package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fablecraft/internal/config"
)

func initCmd() *cobra.Command {
	var storyPath string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a story file from the built-in story",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, storyPath)
		},
	}
	cmd.Flags().StringVar(&storyPath, "story", "story.yaml", "Destination story file")
	return cmd
}

func runInit(cmd *cobra.Command, storyPath string) error {
	if _, err := os.Stat(storyPath); err == nil {
		return fmt.Errorf("%s already exists", storyPath)
	}

	if err := os.WriteFile(storyPath, []byte(config.DefaultStoryYAML), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", storyPath, err)
	}

	cmd.Printf("Wrote %s. Edit it, then run fablecraft play --story %s\n", storyPath, storyPath)
	return nil
}
