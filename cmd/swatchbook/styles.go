package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStylesCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the styles in the style document",
		Args:  cobra.NoArgs,
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

			ctx, _ := app.CommandContext(cmd, "command.styles")
			records, err := app.Document.ListStyles(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No styles yet.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOLOR\tSWATCH")
			for _, rec := range records {
				hex := rec.Color.Hex()
				fmt.Fprintf(w, "%s\t#%s\t%s\n", rec.Name, hex, app.Console.Swatch([]string{hex}))
			}
			return w.Flush()
		},
	}

	return cmd
}
