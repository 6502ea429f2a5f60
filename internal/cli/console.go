package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the numbered text menu",
	Long:  `Run the numbered text menu on standard input and output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := console.New(appInstance.Restaurant, os.Stdin, cmd.OutOrStdout(), appInstance.Log)
		return c.Run(context.Background())
	},
}
