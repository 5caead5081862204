package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fablecraft/internal/config"
	"fablecraft/internal/story"
)

func playCmd() *cobra.Command {
	var storyPath string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive story in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, storyPath)
		},
	}
	cmd.Flags().StringVar(&storyPath, "story", "", "Story file (defaults to $FABLECRAFT_STORY, then story.yaml, then the built-in story)")
	return cmd
}

func loadStory(path string) (*config.Story, error) {
	_ = godotenv.Load()
	if path == "" {
		path = os.Getenv("FABLECRAFT_STORY")
	}
	if path == "" {
		path = "story.yaml"
		if _, err := os.Stat(path); err != nil {
			return config.Default()
		}
	}
	return config.Load(path)
}

func runPlay(cmd *cobra.Command, storyPath string) error {
	cfg, err := loadStory(storyPath)
	if err != nil {
		return err
	}

	engine, err := story.NewEngine(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, engine.Introduction())
	fmt.Fprintln(out, `Type a number to pick a thread. "summary", "history", and "quit" also work.`)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for !engine.Complete() {
		choices := engine.Choices()
		fmt.Fprintln(out)
		for i, choice := range choices {
			fmt.Fprintf(out, "  %d. %s\n", i+1, choice.Label)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "q":
			return nil
		case "summary":
			fmt.Fprintln(out, engine.Summary())
			continue
		case "history":
			fmt.Fprintln(out, engine.History(0))
			continue
		}

		id := line
		if n, convErr := strconv.Atoi(line); convErr == nil {
			if n < 1 || n > len(choices) {
				fmt.Fprintf(out, "Pick a number between 1 and %d.\n", len(choices))
				continue
			}
			id = choices[n-1].ID
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, engine.GeneratePassage(id))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Epilogue:")
	fmt.Fprintln(out, engine.Epilogue)
	return nil
}
