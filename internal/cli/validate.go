package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldkit/pkg/openapi"
	"github.com/goliatone/go-fieldkit/pkg/validation"
)

func (a *app) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON instance against a model",
		Long: `Validate a JSON object against a model. Issues are printed as JSON and the
command exits non-zero when any are found. With --openapi the instance is also
checked against the exported OpenAPI schema.`,
		Example: `  fieldkit validate -f models.yaml --model user --instance user.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			def, err := a.requireModel(store)
			if err != nil {
				return err
			}
			data, err := readInstance(a.v.GetString(keyInstance))
			if err != nil {
				return err
			}
			values, err := def.DecodeJSON(data)
			if err != nil {
				return err
			}

			result := validation.Check(def, values)
			if a.v.GetBool(keyOpenAPI) {
				if issues := openapi.Issues(openapi.ValidateValue(def, values)); len(issues) > 0 {
					result.Issues = append(result.Issues, issues...)
					result.Valid = false
				}
			}
			a.logger.Debug("instance checked", "model", def.Name(), "issues", len(result.Issues))

			if err := write(cmd.OutOrStdout(), a.v.GetString(keyFormat), result); err != nil {
				return err
			}
			if !result.Valid {
				return ErrInvalid
			}
			return nil
		},
	}
	cmd.Flags().String(keyModel, "", "model name")
	cmd.Flags().String(keyInstance, "", "JSON instance file (- for stdin)")
	cmd.Flags().String(keyFormat, formatJSON, "output format: json or yaml")
	cmd.Flags().Bool(keyOpenAPI, false, "also validate against the OpenAPI schema")
	return cmd
}

func readInstance(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("--instance is required")
	}
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read instance: %w", err)
	}
	return data, nil
}
