// catchme is a three level platformer: collect every fruit, dodge or stomp
// the enemies and keep away from the saws.
//
// Usage:
//
//	catchme                 - Play, starting at the main menu
//	catchme ranking         - Print the saved ranking
//	catchme levels          - Build the levels headless and count entities
//
// Flags:
//
//	--level <1..3>      - Level a new run starts at
//	--debug             - Start with collision boxes drawn
//	--assets <dir>      - Directory holding images/ and sounds/
//	--ranking <path>    - Ranking file (one JSON object per line)
//	--ranking-db <path> - SQLite ranking database, used instead of --ranking
//	--watch             - Reload the level when levels/ or prefabs/ change
//	--tps <rate>        - Ticks per second
//	--seed <value>      - Enemy respawn seed (0 = time based)
//	--mute              - No music or sound effects
//	--verbose           - Debug logging
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/catchme/assets"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/levels"
	"github.com/milk9111/catchme/prefabs"
	"github.com/milk9111/catchme/ranking"
	"github.com/milk9111/catchme/system"
)

// Options are the command line settings of one process.
type Options struct {
	Level     int
	Debug     bool
	Assets    string
	Ranking   string
	RankingDB string
	Watch     bool
	TPS       int
	Seed      uint64
	Mute      bool
	Verbose   bool
}

var opts Options

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catchme",
	Short: "Catch me if you can - a three level platformer",
	Long: `Catch me if you can: pick up every fruit in three levels while the
trunks chase you and the saws spin. Finish all three to enter the ranking.

Examples:
  catchme
  catchme --level 2 --debug
  catchme --assets ./assets --watch
  catchme ranking --limit 5`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runGame,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&opts.Level, "level", 1, "Level a new run starts at (1-3)")
	f.BoolVar(&opts.Debug, "debug", false, "Start with collision boxes drawn")
	f.StringVar(&opts.Assets, "assets", "assets", "Directory holding images/ and sounds/")
	f.BoolVar(&opts.Watch, "watch", false, "Reload the running level when levels/ or prefabs/ change")
	f.IntVar(&opts.TPS, "tps", common.FPS, "Ticks per second")
	f.Uint64Var(&opts.Seed, "seed", 0, "Enemy respawn seed (0 = random based on time)")
	f.BoolVar(&opts.Mute, "mute", false, "Disable music and sound effects")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.Ranking, "ranking", "ranking.json", "Ranking file, one JSON record per line")
	pf.StringVar(&opts.RankingDB, "ranking-db", "", "SQLite ranking database; replaces --ranking when set")
	pf.BoolVar(&opts.Verbose, "verbose", false, "Debug logging")

	rootCmd.AddCommand(rankingCmd)
}

// setup installs the process logger.
func setup(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "catchme",
	})
	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
	return nil
}

// openStore returns the SQLite store when --ranking-db is set and the
// file store otherwise.
func openStore() (ranking.Store, error) {
	if opts.RankingDB != "" {
		return ranking.OpenSQLite(opts.RankingDB)
	}
	return ranking.NewFileStore(opts.Ranking), nil
}

func runGame(cmd *cobra.Command, args []string) error {
	if n := len(levels.Names()); opts.Level < 1 || opts.Level > n {
		return fmt.Errorf("--level must be between 1 and %d, got %d", n, opts.Level)
	}
	if opts.TPS <= 0 {
		opts.TPS = common.FPS
	}

	tuning, err := system.LoadTuning()
	if err != nil {
		return err
	}
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	fsys := os.DirFS(opts.Assets)
	deps := system.Deps{
		Assets: assets.NewLoader(fsys),
		Tuning: tuning,
		Rand:   rand.New(rand.NewPCG(seed, seed>>1|1)),
	}

	var sound *soundBoard
	if !opts.Mute {
		sound = newSoundBoard(assets.NewAudio(fsys), tuning)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var watcher *prefabs.Watcher
	if opts.Watch {
		watcher, err = prefabs.NewWatcher("levels", "prefabs")
		if err != nil {
			log.Warn("hot reload disabled", "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	game, err := NewGame(opts, spec, deps, sound, store, watcher)
	if err != nil {
		return err
	}

	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(common.Width, common.Height)
	ebiten.SetWindowTitle(spec.Title)
	log.Debug("starting", "level", opts.Level, "tps", opts.TPS, "seed", seed, "assets", opts.Assets)

	return ebiten.RunGame(game)
}
