package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Load employees and dishes from a text file",
	Long: `Load employees and dishes from a comma separated text file.

Each line holds one record:
  name,hourly rate,hours worked   an employee
  name,price                      a dish

Blank lines are skipped. Lines that cannot be read or that fail validation are
reported and counted as errors; the rest are added.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		summary, err := importer.ImportFile(context.Background(), args[0], appInstance.Restaurant)
		switch {
		case errors.Is(err, importer.ErrEmptyFilename):
			return errors.New("filename cannot be empty")
		case errors.Is(err, importer.ErrFileNotFound):
			return fmt.Errorf("file not found: %s", args[0])
		case err != nil:
			return fmt.Errorf("import stopped after %d entries: %w", summary.Added, err)
		}

		for _, problem := range summary.Problems {
			fmt.Fprintln(out, "⚠️ "+problem)
		}
		fmt.Fprintln(out, "✅ "+summary.Message())
		return nil
	},
}
