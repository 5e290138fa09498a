package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/swatchbook/internal/tui"
)

type rootFlags struct {
	configPath string
	verbose    bool
	dryRun     bool
}

// isInteractive is swapped in tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatchbook",
		Short:         "Swatchbook imports Lospec palettes as named color styles",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 || !isInteractive() {
				return cmd.Help()
			}
			return runPanel(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Record styles in memory instead of writing the document")

	cmd.AddCommand(newImportCmd(flags))
	cmd.AddCommand(newCreateStylesCmd(flags))
	cmd.AddCommand(newStylesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runPanel(cmd *cobra.Command, flags *rootFlags) (err error) {
	app, err := loadApp(cmd, flags, true)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); err == nil {
			err = closeErr
		}
	}()

	ctx, logger := app.CommandContext(cmd, "command.panel")
	orch, err := app.NewOrchestrator()
	if err != nil {
		return err
	}
	defer orch.Close()

	sub, err := app.Bridge.Subscribe(app.Events)
	if err != nil {
		return fmt.Errorf("subscribe panel to style events: %w", err)
	}
	defer sub.Unsubscribe()

	logger.Info(ctx, "launching import panel")
	if err := tui.Run(ctx, orch, app.Bridge, nil, nil); err != nil {
		logger.Error(ctx, "import panel failed", "error", err)
		return err
	}
	return nil
}
