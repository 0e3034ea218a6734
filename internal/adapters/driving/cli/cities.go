package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the cities and where their data is read from",
	Args:  cobra.NoArgs,
	RunE:  runCities,
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}

func runCities(cmd *cobra.Command, _ []string) error {
	explorer, err := requireExplorer()
	if err != nil {
		return err
	}

	cmd.Println("Cities:")
	cmd.Println()
	for i, city := range domain.AllCities() {
		cmd.Printf("  %d. %-14s %-14s %s\n", i+1, city.Name(), city, explorer.Source(city))
	}
	return nil
}
