package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/repository"
)

var dishesCmd = &cobra.Command{
	Use:     "dishes",
	Aliases: []string{"menu"},
	Short:   "Manage the menu",
	Long:    `List, add, reprice, edit, and remove dishes.`,
}

var dishesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		snap := appInstance.Restaurant.Snapshot()

		if len(snap.Dishes) == 0 {
			fmt.Fprintln(out, "Menu is empty.")
			return nil
		}

		fmt.Fprintln(out, "Dish Name           | Price")
		fmt.Fprintln(out, "--------------------|--------")
		for _, d := range snap.Dishes {
			fmt.Fprintln(out, d.Display)
		}

		fmt.Fprintf(out, "\nTotal: %d dish(es)\n", len(snap.Dishes))
		return nil
	},
}

var dishesAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a dish to the menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, _ := cmd.Flags().GetFloat64("price")

		res, err := appInstance.Restaurant.AddDish(context.Background(), args[0], price)
		if err != nil {
			return fmt.Errorf("failed to add dish: %w", err)
		}
		if !res.OK {
			return fmt.Errorf("failed to add dish: %w", res.Err())
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Dish added successfully.")
		return nil
	},
}

var dishesRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a dish by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := appInstance.Restaurant.RemoveDish(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to remove dish: %w", err)
		}
		if !res.OK {
			return res.Err()
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

var dishesUpdateCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Change the price of a dish",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, _ := cmd.Flags().GetFloat64("price")

		res, err := appInstance.Restaurant.UpdateDish(context.Background(), args[0], price)
		if err != nil {
			return fmt.Errorf("failed to update dish: %w", err)
		}
		if !res.OK {
			return res.Err()
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

var dishesEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Rename or reprice a stored dish",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid dish ID: %w", err)
		}

		changes := changedFields(cmd, map[string]string{
			"name":  repository.FieldName,
			"price": repository.FieldPrice,
		})
		if len(changes) == 0 {
			return fmt.Errorf("nothing to change: pass --name or --price")
		}

		for _, c := range changes {
			if err := appInstance.Restaurant.EditDish(ctx, id, c.field, c.value); err != nil {
				return fmt.Errorf("failed to update %s: %w", c.field, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Dish %d updated\n", id)
		return nil
	},
}

func init() {
	dishesCmd.AddCommand(dishesListCmd)
	dishesCmd.AddCommand(dishesAddCmd)
	dishesCmd.AddCommand(dishesRemoveCmd)
	dishesCmd.AddCommand(dishesUpdateCmd)
	dishesCmd.AddCommand(dishesEditCmd)

	dishesAddCmd.Flags().Float64("price", 0, "Menu price (required)")
	dishesAddCmd.MarkFlagRequired("price")

	dishesUpdateCmd.Flags().Float64("price", 0, "New price (required)")
	dishesUpdateCmd.MarkFlagRequired("price")

	dishesEditCmd.Flags().String("name", "", "New name")
	dishesEditCmd.Flags().String("price", "", "New price")
}
