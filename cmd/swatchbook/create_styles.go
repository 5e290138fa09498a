package main

import (
	"github.com/spf13/cobra"
)

func newCreateStylesCmd(root *rootFlags) *cobra.Command {
	opts := createStylesOptions{}

	cmd := &cobra.Command{
		Use:     "create-styles <hex>...",
		Aliases: []string{"create-color-styles"},
		Short:   "Create one style per hex color under a palette name",
		Example: `  swatchbook create-styles --name Demo FF0000 00FF00`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			opts.Colors = args
			if err := validateCreateStylesOptions(opts); err != nil {
				return err
			}
			if err := checkHexes(opts.Colors); err != nil {
				return err
			}

			app, err := loadApp(cmd, root, false)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := app.Close(); err == nil {
					err = closeErr
				}
			}()

			ctx, logger := app.CommandContext(cmd, "command.create_styles")
			created, err := app.Materializer.CreateColorStyles(ctx, opts.Name, opts.Colors)
			if err != nil {
				return &reportedError{err: err}
			}

			app.Console.Success("%d styles created", created)
			logger.Info(ctx, "styles created", "palette", opts.Name, "styles", created)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Palette name used as the style prefix")
	cmd.MarkFlagRequired("name") //nolint:errcheck

	return cmd
}
