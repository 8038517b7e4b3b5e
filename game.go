package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/levels"
	"github.com/milk9111/bombsim/logger"
	"github.com/milk9111/bombsim/player"
	"github.com/milk9111/bombsim/render"
	"github.com/milk9111/bombsim/section"
	"github.com/milk9111/bombsim/sim"
	"github.com/sirupsen/logrus"

	bombaudio "github.com/milk9111/bombsim/audio"
)

// errQuit ends the run loop without an error exit.
var errQuit = errors.New("quit")

type Options struct {
	Section string
	Stage   string
	Bomb    sim.BombType
	Volume  float64
	Watch   bool
}

type Game struct {
	frames int

	input    *Input
	player   *player.Player
	stage    *sim.Stage
	section  *section.Section
	renderer *render.Renderer
	mixer    *bombaudio.Mixer
	watcher  *levels.Watcher

	// route is the order sections are played in; current indexes it.
	route   []string
	current int

	paused bool
	quit   bool
	ui     *ebitenui.UI

	log *logrus.Entry
}

func NewGame(opts Options) (*Game, error) {
	r, err := render.New()
	if err != nil {
		return nil, err
	}

	route := levels.Names()
	slices.Sort(route)
	current := slices.Index(route, opts.Section)
	if current < 0 {
		// a path outside the embedded set plays alone
		route = []string{opts.Section}
		current = 0
	}

	g := &Game{
		input:    NewInput(),
		player:   player.New(opts.Bomb, player.DefaultLives),
		stage:    sim.NewStage(opts.Stage),
		renderer: r,
		mixer:    bombaudio.NewMixer(audio.NewContext(bombaudio.SampleRate), opts.Volume),
		route:    route,
		current:  current,
		log:      logger.Log.WithField("component", "game"),
	}
	g.ui = NewPauseUI(g)

	if opts.Watch {
		w, err := levels.NewWatcher(filepath.Join("levels", "sections"))
		if err != nil {
			g.log.WithError(err).Warn("hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	if err := g.load(0); err != nil {
		return nil, err
	}
	return g, nil
}

// load builds the current section with the bomb on entrance.
func (g *Game) load(entrance int) error {
	f, err := levels.LoadFile(g.route[g.current])
	if err != nil {
		return err
	}
	return g.start(f, entrance)
}

// start runs an already parsed section of the route.
func (g *Game) start(f *levels.File, entrance int) error {
	name := g.route[g.current]
	s, report, err := section.Load(f, section.Config{
		Stage:    g.stage,
		Player:   g.player,
		Input:    g.input,
		Audio:    g.mixer,
		Entrance: entrance,
		Seed:     time.Now().UnixNano(),
	})
	if report != nil {
		report.Log()
	}
	if err != nil {
		return fmt.Errorf("game: load %s: %w", name, err)
	}
	g.section = s
	g.log.WithFields(logrus.Fields{"section": name, "entrance": entrance}).Info("section loaded")
	return nil
}

// advance moves to the next section of the route.
func (g *Game) advance(entrance int) error {
	if g.current+1 >= len(g.route) {
		g.log.WithFields(logrus.Fields{"score": g.player.Score, "lives": g.player.Lives}).Info("stage cleared")
		return errQuit
	}
	g.current++
	return g.load(entrance)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	g.reloadChanged()
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.frames++
	g.input.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.player.SelectNext()
	}
	g.player.Update(g.section.Context())
	g.section.Update()

	if err := g.afterFrame(); err != nil {
		if errors.Is(err, errQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// afterFrame handles what a frame left behind: a lost life, a finished
// section or a warp to another section.
func (g *Game) afterFrame() error {
	if g.player.Restart() {
		if g.player.GameOver() {
			g.log.WithField("score", g.player.Score).Info("game over")
			return errQuit
		}
		g.player.Revive()
		return g.load(0)
	}
	if g.section.Finished() {
		g.player.Finish(g.stage)
		return g.advance(0)
	}
	if n, ok := g.section.Warped(); ok {
		// entrances past this section's own continue into the next one
		rest := n - len(g.section.File().Entrances)
		return g.advance(max(rest, 0))
	}
	return nil
}

// reloadChanged restarts the current section when its file is rewritten
// on disk. A change that does not parse keeps the running section.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case c, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			if c.Name != g.route[g.current] {
				continue
			}
			if c.Err != nil {
				g.log.WithError(c.Err).Warn("reload failed, keeping the running section")
				continue
			}
			if err := g.start(c.File, 0); err != nil {
				g.log.WithError(err).Warn("reload failed, keeping the running section")
			}
		default:
			return
		}
	}
}

// Restart reloads the current section from its first entrance.
func (g *Game) Restart() {
	if err := g.load(0); err != nil {
		g.log.WithError(err).Error("restart failed")
	}
	g.paused = false
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.mixer.StopSong()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.section, g.player)
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}
