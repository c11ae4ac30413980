package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/prettiprint/internal/version"
	"github.com/arthur-debert/prettiprint/pkg/console"
	"github.com/arthur-debert/prettiprint/pkg/logging"
	"github.com/arthur-debert/prettiprint/pkg/theme"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		themeName    string
		verbosity    int
		noEmoji      bool
		noTimestamps bool
	)

	rootCmd := &cobra.Command{
		Use:   "prettiprint",
		Short: "Themed, verbosity-gated terminal output",
		Long: `prettiprint is a terminal output toolkit for CLI and operational
tooling: themed messages and events, panels, tables, trees, progress
bars and prompts, all behind one verbosity dial.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			logger := logging.WithFields(map[string]interface{}{
				"command": cmd.Name(),
				"theme":   themeName,
			})
			logger.Debug().Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&themeName, "theme", console.DefaultTheme, "Theme preset (dark, light, mono)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v shows events, -vv adds DEBUG)")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "Disable emoji prefixes on message lines")
	rootCmd.PersistentFlags().BoolVar(&noTimestamps, "no-timestamps", false, "Drop timestamps from event lines")

	newConsole := func() (*console.Console, error) {
		opts := []console.Option{
			console.WithTheme(themeName),
			// -v counts on top of the default message level.
			console.WithVerbosity(1 + verbosity),
		}
		if noEmoji {
			opts = append(opts, console.WithoutEmoji())
		}
		if noTimestamps {
			opts = append(opts, console.WithoutTimestamps())
		}
		return console.New(opts...)
	}

	rootCmd.AddCommand(newDemoCmd(newConsole))
	rootCmd.AddCommand(newThemesCmd(newConsole))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("prettiprint version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

// newThemesCmd lists the built-in presets and their role styles.
func newThemesCmd(newConsole func() (*console.Console, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available theme presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole()
			if err != nil {
				return err
			}
			for _, name := range theme.Names() {
				c.KeyValue("theme", name, console.KeyValueOptions{})
			}
			return nil
		},
	}
}
