package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchbook/internal/application/importer"
	"github.com/alexisbeaulieu97/swatchbook/internal/application/styles"
)

func newImportCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <url>",
		Short: "Import a Lospec palette into the style document",
		Example: `  swatchbook import https://lospec.com/palette-list/slso8
  swatchbook import --dry-run https://lospec.com/palette-list/pico-8.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			app, err := loadApp(cmd, root, false)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := app.Close(); err == nil {
					err = closeErr
				}
			}()

			ctx, logger := app.CommandContext(cmd, "command.import")
			logger.Debug(ctx, "importing palette", "url", args[0], "dry_run", root.dryRun)

			out, err := app.Pipeline.Import(ctx, args[0])
			if err != nil {
				var matErr *styles.MaterializationError
				if errors.As(err, &matErr) {
					// The notifier already printed the generic failure.
					app.Console.Summary(out.Palette)
					return &reportedError{err: err}
				}
				app.Console.Failure("%s", importer.UserMessage(err))
				return &reportedError{err: err}
			}

			app.Console.Summary(out.Palette)
			app.Console.Success("%d styles created", out.Created)
			logger.Info(ctx, "palette imported", "slug", out.Source.Slug, "styles", out.Created)
			return nil
		},
	}

	return cmd
}
