package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const defaultChaptersPerAct = 3

type Story struct {
	Title          string      `yaml:"title" validate:"required"`
	Theme          string      `yaml:"theme" validate:"required"`
	Setting        string      `yaml:"setting" validate:"required"`
	Mood           string      `yaml:"mood" validate:"required"`
	ChaptersPerAct int         `yaml:"chapters_per_act" validate:"min=1"`
	Characters     []Character `yaml:"characters" validate:"required,min=1,dive"`
}

type Character struct {
	Name   string  `yaml:"name" validate:"required"`
	Role   string  `yaml:"role" validate:"required"`
	Desire string  `yaml:"desire" validate:"required"`
	Fear   string  `yaml:"fear" validate:"required"`
	Secret string  `yaml:"secret"`
	Arc    []Stage `yaml:"arc" validate:"required,min=1,dive"`
}

type Stage struct {
	Title   string `yaml:"title" validate:"required"`
	Summary string `yaml:"summary" validate:"required"`
}

func Load(path string) (*Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading story: %w", err)
	}

	story, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading story: %w", err)
	}

	return story, nil
}

func Parse(data []byte) (*Story, error) {
	var story Story
	if err := yaml.Unmarshal(data, &story); err != nil {
		return nil, fmt.Errorf("parsing story: %w", err)
	}

	if story.ChaptersPerAct == 0 {
		story.ChaptersPerAct = defaultChaptersPerAct
	}

	if err := validateStory(&story); err != nil {
		return nil, err
	}

	return &story, nil
}

func validateStory(story *Story) error {
	validate := validator.New()
	if err := validate.Struct(story); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return fmt.Errorf("invalid story: %s failed %q", errs[0].Namespace(), errs[0].Tag())
		}
		return fmt.Errorf("invalid story: %w", err)
	}
	return nil
}
