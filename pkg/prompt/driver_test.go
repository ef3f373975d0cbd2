package prompt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"
)

func TestSelectPrompt_AppendsNoneOption(t *testing.T) {
	cfg := SelectConfig{
		Message:      "level",
		Options:      []string{"MEMBER", "ADMIN"},
		NoneOption:   "(none)",
		DefaultIndex: 1,
		PageSize:     5,
	}
	prompt := selectPrompt(cfg)
	if diff := cmp.Diff([]string{"MEMBER", "ADMIN", "(none)"}, prompt.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if prompt.Default != "ADMIN" {
		t.Fatalf("expected ADMIN default, got %v", prompt.Default)
	}
	if prompt.PageSize != 5 {
		t.Fatalf("expected page size 5, got %d", prompt.PageSize)
	}
	if len(cfg.Options) != 2 {
		t.Fatalf("caller options mutated: %v", cfg.Options)
	}
}

func TestSelectPrompt_Defaults(t *testing.T) {
	cases := []struct {
		name string
		cfg  SelectConfig
		want any
	}{
		{"none preselected", SelectConfig{Options: []string{"A"}, NoneOption: "(none)", DefaultIndex: NoneIndex}, "(none)"},
		{"no none option", SelectConfig{Options: []string{"A"}, DefaultIndex: NoneIndex}, nil},
		{"out of range", SelectConfig{Options: []string{"A"}, DefaultIndex: 3}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := selectPrompt(tc.cfg).Default; got != tc.want {
				t.Fatalf("expected default %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSelectedIndex(t *testing.T) {
	cfg := SelectConfig{Message: "level", Options: []string{"A", "B"}, NoneOption: "(none)"}
	cases := []struct {
		answer string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"(none)", NoneIndex},
	}
	for _, tc := range cases {
		got, err := selectedIndex(cfg, tc.answer)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.answer, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.answer, tc.want, got)
		}
	}

	if _, err := selectedIndex(cfg, "C"); err == nil {
		t.Fatal("expected error for unknown answer")
	}
	if _, err := selectedIndex(SelectConfig{Options: []string{"A"}}, "(none)"); err == nil {
		t.Fatal("expected error when no none option is offered")
	}
}

func TestSelectedIndex_OptionShadowsNone(t *testing.T) {
	cfg := SelectConfig{Options: []string{"(none)"}, NoneOption: "(none)"}
	got, err := selectedIndex(cfg, "(none)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected real option index 0, got %d", got)
	}
}

func TestInputOpts_Validator(t *testing.T) {
	if opts := inputOpts(InputConfig{}); opts != nil {
		t.Fatalf("expected no options, got %d", len(opts))
	}
	opts := inputOpts(InputConfig{Validator: func(string) error { return nil }})
	if len(opts) != 1 {
		t.Fatalf("expected one option, got %d", len(opts))
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	wrapped := fmt.Errorf("ask: %w", terminal.InterruptErr)
	if err := translateSurveyErr(wrapped); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted for wrapped interrupt, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("expected passthrough, got %v", err)
	}
}
