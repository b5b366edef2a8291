package main

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/milk9111/catchme/assets"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/levels"
	"github.com/milk9111/catchme/system"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [level...]",
	Short: "Build levels without a window and count what spawned",
	Long: `Load each level the way the game does and print how many entities of
each kind were built. Records the game would skip are logged as warnings.
With no arguments every bundled level is checked.

Examples:
  catchme levels
  catchme levels level_2 --assets ./assets`,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&opts.Assets, "assets", "assets", "Directory holding images/")
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = levels.Names()
	}
	tuning, err := system.LoadTuning()
	if err != nil {
		return err
	}
	loader := assets.NewLoaderWith(os.DirFS(opts.Assets), func(img image.Image) component.Frame { return img })

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Level", "Player", "Platforms", "Fruits", "Enemies", "Traps")
	for _, name := range names {
		w, err := system.NewWorld(name, system.Deps{Assets: loader, Tuning: tuning})
		if err != nil {
			return err
		}
		s := w.Scene
		player := "no"
		if s.Player != nil {
			player = "yes"
		}
		t.Row(w.Name, player,
			strconv.Itoa(len(s.Platforms)),
			strconv.Itoa(len(s.Collectibles)),
			strconv.Itoa(len(s.Enemies)),
			strconv.Itoa(len(s.Traps)))
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
