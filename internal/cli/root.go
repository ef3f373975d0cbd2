// Package cli implements the fieldkit command line: exporting mappings and
// OpenAPI documents, validating instances and prompting for new ones.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-fieldkit/pkg/prompt"
)

// Version is reported by --version.
const Version = "0.1.0"

// EnvPrefix prefixes environment overrides, e.g. FIELDKIT_FILE.
const EnvPrefix = "FIELDKIT"

// Configuration keys shared by flags, config files and the environment.
const (
	keyConfig     = "config"
	keyFile       = "file"
	keyModel      = "model"
	keyFormat     = "format"
	keyInstance   = "instance"
	keyTitle      = "title"
	keyAPIVersion = "api-version"
	keyVerbose    = "verbose"
	keyOpenAPI    = "openapi"
)

// ErrInvalid is returned by the validate command when the instance has issues.
var ErrInvalid = errors.New("instance is invalid")

// Option customises the root command.
type Option func(*app)

// WithPromptDriver replaces the terminal driver used by the prompt command.
func WithPromptDriver(driver prompt.Driver) Option {
	return func(a *app) {
		if driver != nil {
			a.driver = driver
		}
	}
}

type app struct {
	v      *viper.Viper
	logger *slog.Logger
	driver prompt.Driver
}

// RootCmd creates the fieldkit root command with every subcommand attached.
func RootCmd(options ...Option) *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	cmd := &cobra.Command{
		Use:   "fieldkit",
		Short: "Declarative field types, validation and index mappings",
		Long: `fieldkit loads model definitions from JSON or YAML documents and
exports their index mappings and OpenAPI schemas, validates instances against
them, or prompts for new instances.

Settings come from flags, a fieldkit.yaml file in the working directory (or
--config) and FIELDKIT_* environment variables, in that order of precedence.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(keyConfig, "", "config file (default ./fieldkit.yaml)")
	flags.StringP(keyFile, "f", "", "definition file or directory")
	flags.BoolP(keyVerbose, "v", false, "enable debug logging")

	cmd.AddCommand(a.mappingCmd())
	cmd.AddCommand(a.validateCmd())
	cmd.AddCommand(a.openapiCmd())
	cmd.AddCommand(a.promptCmd())
	return cmd
}

func envKeyReplacer() *strings.Replacer {
	return strings.NewReplacer("-", "_", ".", "_")
}
