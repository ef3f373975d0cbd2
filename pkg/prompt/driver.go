package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// NoneIndex is returned by Driver.Select when the caller offered a NoneOption
// and the user picked it.
const NoneIndex = -1

// InputConfig configures a single line text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single choice prompt. A non-empty NoneOption is
// listed after Options and maps to NoneIndex. DefaultIndex may be NoneIndex
// to preselect it.
type SelectConfig struct {
	Message      string
	Options      []string
	NoneOption   string
	DefaultIndex int
	Help         string
	PageSize     int
}

// Driver abstracts the terminal so collection logic can be tested without a
// real TTY and callers can swap implementations.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

// SurveyDriver returns the default Driver backed by survey.
func SurveyDriver() Driver {
	return surveyDriver{}
}

type surveyDriver struct{}

func (surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out, inputOpts(cfg)...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	if err := survey.AskOne(selectPrompt(cfg), &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return selectedIndex(cfg, out)
}

// inputOpts adapts the string validator to survey's untyped answer.
func inputOpts(cfg InputConfig) []survey.AskOpt {
	if cfg.Validator == nil {
		return nil
	}
	validate := cfg.Validator
	return []survey.AskOpt{survey.WithValidator(func(ans interface{}) error {
		text, ok := ans.(string)
		if !ok {
			return fmt.Errorf("prompt: unexpected answer type %T", ans)
		}
		return validate(text)
	})}
}

func selectPrompt(cfg SelectConfig) *survey.Select {
	options := append([]string(nil), cfg.Options...)
	if cfg.NoneOption != "" {
		options = append(options, cfg.NoneOption)
	}
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	switch {
	case cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options):
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	case cfg.DefaultIndex == NoneIndex && cfg.NoneOption != "":
		prompt.Default = cfg.NoneOption
	}
	return prompt
}

// selectedIndex maps the chosen label back to its position in cfg.Options.
// Real options win over a NoneOption that shares their label.
func selectedIndex(cfg SelectConfig, answer string) (int, error) {
	for i, option := range cfg.Options {
		if option == answer {
			return i, nil
		}
	}
	if cfg.NoneOption != "" && answer == cfg.NoneOption {
		return NoneIndex, nil
	}
	return 0, fmt.Errorf("prompt: %s: unknown selection %q", cfg.Message, answer)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
