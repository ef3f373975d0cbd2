package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldkit/pkg/fields"
)

func (a *app) mappingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Print the index mapping of one or all models",
		Example: `  fieldkit mapping -f models.yaml
  fieldkit mapping -f models/ --model user --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			defs, err := a.selectModels(store)
			if err != nil {
				return err
			}
			out := fields.Fragment{}
			for _, def := range defs {
				for name, body := range def.Mapping() {
					out[name] = body
				}
			}
			return write(cmd.OutOrStdout(), a.v.GetString(keyFormat), out)
		},
	}
	cmd.Flags().String(keyModel, "", "model name (default all models)")
	cmd.Flags().String(keyFormat, formatJSON, "output format: json or yaml")
	return cmd
}
