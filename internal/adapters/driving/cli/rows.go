package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// fallbackStep is the window size used when neither --step nor the
// configuration sets one.
const fallbackStep = 5

var (
	rowsCity  string
	rowsStart int
	rowsStep  int
	rowsPages int
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Print raw trip rows for a city",
	Long: `Print consecutive windows of raw trip rows.

Each window holds --step rows, starting at --start. Printing stops at the
first window that would run past the end of the data.`,
	Args: cobra.NoArgs,
	RunE: runRows,
}

func init() {
	rowsCmd.Flags().StringVarP(&rowsCity, "city", "c", "", "city: chicago, new_york_city, washington or 1-3")
	rowsCmd.Flags().IntVar(&rowsStart, "start", 0, "index of the first row")
	rowsCmd.Flags().IntVarP(&rowsStep, "step", "n", 0, "rows per window (default from browse.default_step)")
	rowsCmd.Flags().IntVarP(&rowsPages, "pages", "p", 1, "number of windows to print")
	_ = rowsCmd.MarkFlagRequired("city")
	rootCmd.AddCommand(rowsCmd)
}

func runRows(cmd *cobra.Command, _ []string) error {
	city, err := domain.ParseCity(rowsCity)
	if err != nil {
		return err
	}

	step := rowsStep
	if step == 0 {
		step = currentSettings().DefaultStep
	}
	if step == 0 {
		step = fallbackStep
	}

	explorer, err := requireExplorer()
	if err != nil {
		return err
	}

	table, err := explorer.Load(cmd.Context(), city)
	if err != nil {
		return err
	}

	pager, err := explorer.Browse().Browse(table, rowsStart, step)
	if err != nil {
		return err
	}

	out := newReportWriter(cmd.OutOrStdout())
	for page := 0; page < rowsPages; page++ {
		window, err := pager.Next()
		if errors.Is(err, domain.ErrOutOfBounds) {
			cmd.Println("--Out of bounds--")
			return nil
		}
		if err != nil {
			return err
		}
		out.writeWindow(window, table.Schema())
	}
	return nil
}
