package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/service"
)

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Show or change whether the restaurant is open late",
	RunE:  showHours,
}

var hoursShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the restaurant's operating hours",
	RunE:  showHours,
}

func showHours(cmd *cobra.Command, args []string) error {
	printStatus(cmd.OutOrStdout(), appInstance.Restaurant.Snapshot())
	return nil
}

var hoursToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the open-late flag",
	RunE: func(cmd *cobra.Command, args []string) error {
		openLate, err := appInstance.Restaurant.ToggleOpenLate(context.Background())
		if err != nil {
			return fmt.Errorf("failed to toggle open late: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Open late is now set to: "+checkMark(openLate))
		return nil
	},
}

var hoursSetCmd = &cobra.Command{
	Use:       "set [on|off]",
	Short:     "Set the open-late flag",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		openLate := args[0] == "on"
		if err := appInstance.Restaurant.SetOpenLate(context.Background(), openLate); err != nil {
			return fmt.Errorf("failed to set open late: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Open late is now set to: "+checkMark(openLate))
		return nil
	},
}

func printStatus(out io.Writer, snap service.Snapshot) {
	fmt.Fprintf(out, "Restaurant: %s\n", snap.Name)
	fmt.Fprintf(out, "Status: %s %s\n", snap.Status, checkMark(snap.Status == domain.OpenLate))
}

func checkMark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

func init() {
	hoursCmd.AddCommand(hoursShowCmd)
	hoursCmd.AddCommand(hoursToggleCmd)
	hoursCmd.AddCommand(hoursSetCmd)
}
