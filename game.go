package main

import (
	"errors"
	"image/color"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/obj"
	"github.com/milk9111/catchme/prefabs"
	"github.com/milk9111/catchme/ranking"
	"github.com/milk9111/catchme/system"
)

type screen int

const (
	screenMain screen = iota
	screenControls
	screenPlaying
	screenGameOver
	screenWinner
	screenPlayAgain
)

var screenKeys = map[screen]string{
	screenMain:      "main",
	screenControls:  "controls",
	screenGameOver:  "game_over",
	screenWinner:    "winner",
	screenPlayAgain: "play_again",
}

var backdrop = color.NRGBA{R: 0x1d, G: 0x2b, B: 0x53, A: 0xff}

// Game drives the screens of one process: menus, the three levels, pause,
// game over and the ranking prompt.
type Game struct {
	opts    Options
	spec    *prefabs.GameSpec
	deps    system.Deps
	clock   *common.Clock
	sound   *soundBoard
	store   ranking.Store
	watcher *prefabs.Watcher

	screen  screen
	paused  bool
	quit    bool
	draw    obj.DrawOptions
	world   *system.World
	session *session
	hud     *hud

	uis         map[screen]*ebitenui.UI
	pauseUI     *ebitenui.UI
	winner      *winnerUI
	backgrounds map[string]*ebiten.Image
}

// NewGame wires a game from its collaborators. sound and watcher may be nil.
func NewGame(opts Options, spec *prefabs.GameSpec, deps system.Deps, sound *soundBoard, store ranking.Store, watcher *prefabs.Watcher) (*Game, error) {
	if spec == nil || store == nil {
		return nil, errors.New("game needs a game spec and a ranking store")
	}
	g := &Game{
		opts:    opts,
		spec:    spec,
		deps:    deps,
		clock:   common.NewClock(opts.TPS),
		sound:   sound,
		store:   store,
		watcher: watcher,
		draw:    obj.DrawOptions{Debug: opts.Debug},
		session: newSession(opts.Level),
		hud:     newHUD(spec.HUD, deps.Assets),

		backgrounds: map[string]*ebiten.Image{},
	}
	world, err := system.NewWorld(g.session.LevelName(), deps)
	if err != nil {
		return nil, err
	}
	g.world = world

	g.uis = map[screen]*ebitenui.UI{
		screenMain:      NewMainMenuUI(g),
		screenControls:  NewControlsUI(g),
		screenGameOver:  NewGameOverUI(g),
		screenPlayAgain: NewPlayAgainUI(g),
	}
	g.pauseUI = NewPauseUI(g)
	g.winner = newWinnerUI(g)
	g.uis[screenWinner] = g.winner.ui

	g.enter(screenMain)
	return g, nil
}

// enter switches screens and starts the screen's music.
func (g *Game) enter(s screen) {
	g.screen = s
	g.paused = false
	if s == screenWinner {
		g.winner.open(g.session.Seconds(), g.session.Total())
	}
	g.sound.playMusic(g.spec.Screens[g.screenKey()])
}

func (g *Game) screenKey() string {
	if g.screen == screenPlaying {
		return g.session.screenKey()
	}
	return screenKeys[g.screen]
}

// startRun begins a new run at the configured start level.
func (g *Game) startRun() {
	g.session.reset(g.opts.Level)
	g.startLevel()
}

// startLevel builds the session's level from the current tuning.
func (g *Game) startLevel() {
	g.world.SetTuning(g.deps.Tuning)
	if err := g.world.Load(g.session.LevelName()); err != nil {
		log.Error("load level", "level", g.session.LevelName(), "err", err)
		g.enter(screenMain)
		return
	}
	log.Debug("level started", "level", g.world.Name)
	g.enter(screenPlaying)
}

// submitRanking saves the finished run under name. An unusable record is
// logged and dropped; the player still moves on.
func (g *Game) submitRanking(name string) {
	if g.screen != screenWinner {
		return
	}
	rec, err := ranking.NewRecord(name, g.session.Seconds(), g.session.Total())
	if err != nil {
		log.Warn("ranking record not saved", "err", err)
	} else if err := g.store.Add(rec); err != nil {
		log.Error("save ranking", "err", err)
	} else {
		log.Info("ranking saved", "user", rec.Username, "time", rec.GameTime, "score", rec.Score)
	}
	g.enter(screenPlayAgain)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if g.screen != screenPlaying {
		g.uis[g.screen].Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.draw.Debug = !g.draw.Debug
	}
	g.updateLevel()
	return nil
}

func (g *Game) updateLevel() {
	delta := g.clock.Tick()
	g.session.advance(delta)

	outcome := g.world.Update(delta, obj.PollInput())
	g.session.setScore(g.world.Score())
	g.sound.play(g.world.Cues())

	switch outcome {
	case system.OutcomeCleared:
		if g.session.next() {
			g.startLevel()
			return
		}
		g.enter(screenWinner)
	case system.OutcomeFailed:
		g.enter(screenGameOver)
	}
}

// pollWatcher reloads the running level when a level or prefab file changes
// on disk.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn("watch", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
		tuning, err := system.LoadTuning()
		if err != nil {
			log.Warn("prefab reload failed", "file", name, "err", err)
			return
		}
		g.deps.Tuning = tuning
		g.world.SetTuning(tuning)
		g.sound.loadEffects(tuning)
		log.Info("prefabs reloaded", "file", name)
	} else if name != g.session.LevelName() {
		return
	}
	if g.screen != screenPlaying {
		return
	}
	if err := g.world.Load(g.session.LevelName()); err != nil {
		log.Warn("level reload failed", "file", name, "err", err)
		return
	}
	g.session.setScore(0)
	log.Info("level reloaded", "level", g.world.Name, "changed", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen, g.screenKey())

	switch g.screen {
	case screenPlaying:
		g.world.Draw(screen, g.draw)
		g.hud.Draw(screen, g.session.Seconds(), g.world.Lives(), g.session.Total())
		if g.paused {
			g.drawBackground(screen, "pause")
			g.pauseUI.Draw(screen)
		}
	default:
		g.uis[g.screen].Draw(screen)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image, key string) {
	img, ok := g.backgrounds[key]
	if !ok {
		img = g.loadBackground(key)
		g.backgrounds[key] = img
	}
	switch {
	case img != nil:
		screen.DrawImage(img, nil)
	case key != "pause":
		screen.Fill(backdrop)
	}
}

// loadBackground returns nil when the screen has no usable background.
func (g *Game) loadBackground(key string) *ebiten.Image {
	p := g.spec.Screens[key].Background
	if p == "" {
		return nil
	}
	f, err := g.deps.Assets.Image(p, common.Width, common.Height)
	if err != nil {
		log.Warn("background unavailable", "screen", key, "path", p, "err", err)
		return nil
	}
	img, _ := f.(*ebiten.Image)
	return img
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.Width, common.Height
}
