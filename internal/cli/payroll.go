package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Calculate the total weekly payroll",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		report := appInstance.Restaurant.Payroll()

		detail, _ := cmd.Flags().GetBool("detail")
		if detail {
			for _, line := range report.Lines {
				fmt.Fprintln(out, line.String())
			}
			if len(report.Lines) > 0 {
				fmt.Fprintln(out)
			}
		}

		fmt.Fprintf(out, "Total weekly payroll: $%.2f\n", report.Total)
		return nil
	},
}

func init() {
	payrollCmd.Flags().BoolP("detail", "d", false, "Show each employee's pay")
}
