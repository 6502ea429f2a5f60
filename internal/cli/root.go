package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/app"
)

var appInstance *app.App

// memoryMode is bound to the persistent --memory flag
var memoryMode bool

// annotation marking commands that run without the app container
const skipAppAnnotation = "skip-app"

var rootCmd = &cobra.Command{
	Use:   "restaurant",
	Short: "Keep a restaurant's staff roster and menu",
	Long: `Restaurant manages employees, dishes, weekly payroll and the open-late flag
of a single restaurant, stored in an encrypted SQLite database.

By default, running restaurant without arguments launches the interactive TUI.
Use subcommands for CLI operations, or "restaurant console" for the numbered menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return ensureApp(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI
		return launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

// Close releases the app instance built during Execute, if any
func Close() error {
	if appInstance == nil {
		return nil
	}
	return appInstance.Close()
}

// ensureApp builds the app container unless one was set already or the
// command does not need it
func ensureApp(cmd *cobra.Command) error {
	if appInstance != nil {
		return nil
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipAppAnnotation] == "true" {
			return nil
		}
	}

	a, err := app.New(context.Background(), app.Options{Memory: memoryMode})
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	appInstance = a
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&memoryMode, "memory", false, "Keep records in memory only (nothing is saved)")

	// Add all subcommands
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(dishesCmd)
	rootCmd.AddCommand(payrollCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
}
