package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldkit/pkg/prompt"
)

func (a *app) promptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prompt",
		Short:   "Interactively enter an instance of a model",
		Example: `  fieldkit prompt -f models.yaml --model user > user.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			def, err := a.requireModel(store)
			if err != nil {
				return err
			}
			var opts []prompt.Option
			if a.driver != nil {
				opts = append(opts, prompt.WithDriver(a.driver))
			}
			values, err := prompt.New(opts...).Collect(cmd.Context(), def)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), a.v.GetString(keyFormat), values)
		},
	}
	cmd.Flags().String(keyModel, "", "model name")
	cmd.Flags().String(keyFormat, formatJSON, "output format: json or yaml")
	return cmd
}
