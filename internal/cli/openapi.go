package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldkit/pkg/openapi"
)

func (a *app) openapiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "openapi",
		Short:   "Print an OpenAPI document with one component schema per model",
		Example: `  fieldkit openapi -f models/ --title Catalog --api-version 2.0.0 --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			defs, err := a.selectModels(store)
			if err != nil {
				return err
			}
			doc, err := openapi.Document(cmd.Context(), a.v.GetString(keyTitle), a.v.GetString(keyAPIVersion), defs...)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), a.v.GetString(keyFormat), doc)
		},
	}
	cmd.Flags().String(keyModel, "", "model name (default all models)")
	cmd.Flags().String(keyTitle, "fieldkit models", "document title")
	cmd.Flags().String(keyAPIVersion, "1.0.0", "document version")
	cmd.Flags().String(keyFormat, formatJSON, "output format: json or yaml")
	return cmd
}
