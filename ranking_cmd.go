package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/catchme/ranking"
)

var rankingLimit int

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Print the saved ranking",
	Long: `Print the finished runs, best score first and faster runs first on a tie.

Examples:
  catchme ranking
  catchme ranking --limit 5
  catchme ranking --ranking-db ~/.catchme/ranking.db`,
	Args: cobra.NoArgs,
	RunE: runRanking,
}

func init() {
	rankingCmd.Flags().IntVar(&rankingLimit, "limit", 10, "Rows to show (0 = all)")
}

func runRanking(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.All()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}
	ranking.Sort(records)
	fmt.Fprintln(out, ranking.Render(records, rankingLimit))
	return nil
}
