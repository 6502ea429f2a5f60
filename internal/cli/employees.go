package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/repository"
)

var employeesCmd = &cobra.Command{
	Use:     "employees",
	Aliases: []string{"staff"},
	Short:   "Manage employees",
	Long:    `List, add, update, edit, and remove employees.`,
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		snap := appInstance.Restaurant.Snapshot()

		if len(snap.Employees) == 0 {
			fmt.Fprintln(out, "No employees to display.")
			return nil
		}

		fmt.Fprintln(out, "Name            | Rate     | Hours | Weekly Pay")
		fmt.Fprintln(out, "----------------|----------|-------|------------")
		for _, e := range snap.Employees {
			fmt.Fprintln(out, e.Display)
		}

		fmt.Fprintf(out, "\nTotal: %d employee(s)\n", len(snap.Employees))
		return nil
	},
}

var employeesAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, _ := cmd.Flags().GetFloat64("rate")
		hours, _ := cmd.Flags().GetFloat64("hours")

		res, err := appInstance.Restaurant.AddEmployee(context.Background(), args[0], rate, hours)
		if err != nil {
			return fmt.Errorf("failed to add employee: %w", err)
		}
		if !res.OK {
			return fmt.Errorf("failed to add employee: %w", res.Err())
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Employee added successfully.")
		return nil
	},
}

var employeesRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove an employee by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := appInstance.Restaurant.RemoveEmployee(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to remove employee: %w", err)
		}
		if !res.OK {
			return res.Err()
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

var employeesUpdateCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Set an employee's hourly rate and hours worked",
	Long: `Set an employee's hourly rate and hours worked.

Each value is applied on its own: if one of them is invalid the other is still
saved and the command reports the validation error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, _ := cmd.Flags().GetFloat64("rate")
		hours, _ := cmd.Flags().GetFloat64("hours")

		res, err := appInstance.Restaurant.UpdateEmployee(context.Background(), args[0], rate, hours)
		if err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		if !res.OK {
			return res.Err()
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

var employeesEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit single fields of a stored employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid employee ID: %w", err)
		}

		changes := changedFields(cmd, map[string]string{
			"name":  repository.FieldName,
			"rate":  repository.FieldHourlyRate,
			"hours": repository.FieldHoursWorked,
		})
		if len(changes) == 0 {
			return fmt.Errorf("nothing to change: pass --name, --rate or --hours")
		}

		for _, c := range changes {
			if err := appInstance.Restaurant.EditEmployee(ctx, id, c.field, c.value); err != nil {
				return fmt.Errorf("failed to update %s: %w", c.field, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Employee %d updated\n", id)
		return nil
	},
}

type fieldChange struct {
	field string
	value string
}

// changedFields maps every flag the user set to its column, in flag order
func changedFields(cmd *cobra.Command, columns map[string]string) []fieldChange {
	var changes []fieldChange
	for _, flag := range []string{"name", "rate", "hours", "price"} {
		column, ok := columns[flag]
		if !ok || !cmd.Flags().Changed(flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(flag)
		changes = append(changes, fieldChange{field: column, value: value})
	}
	return changes
}

func init() {
	employeesCmd.AddCommand(employeesListCmd)
	employeesCmd.AddCommand(employeesAddCmd)
	employeesCmd.AddCommand(employeesRemoveCmd)
	employeesCmd.AddCommand(employeesUpdateCmd)
	employeesCmd.AddCommand(employeesEditCmd)

	// Add flags
	employeesAddCmd.Flags().Float64("rate", 0, "Hourly rate (required)")
	employeesAddCmd.Flags().Float64("hours", 0, "Hours worked this week (required)")
	employeesAddCmd.MarkFlagRequired("rate")
	employeesAddCmd.MarkFlagRequired("hours")

	// Update flags
	employeesUpdateCmd.Flags().Float64("rate", 0, "New hourly rate (required)")
	employeesUpdateCmd.Flags().Float64("hours", 0, "New hours worked (required)")
	employeesUpdateCmd.MarkFlagRequired("rate")
	employeesUpdateCmd.MarkFlagRequired("hours")

	// Edit flags are strings so the stored row validates them
	employeesEditCmd.Flags().String("name", "", "New name")
	employeesEditCmd.Flags().String("rate", "", "New hourly rate")
	employeesEditCmd.Flags().String("hours", "", "New hours worked")
}
