package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all employees and dishes",
	Long: `Delete every employee and dish and set the restaurant back to closing early.

Examples:
  restaurant reset          # asks for confirmation
  restaurant reset --yes    # no questions asked`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirmPrompt(cmd.InOrStdin(), out, "This will delete ALL employees and dishes. Continue?") {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}

		if err := appInstance.Restaurant.Reset(context.Background()); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}

		fmt.Fprintln(out, "All employees and dishes have been deleted.")
		return nil
	},
}

func confirmPrompt(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N] ", message)
	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
