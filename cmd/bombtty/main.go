// Command bombtty runs a section in the terminal. Each cell covers half a
// tile horizontally and a full tile vertically.
package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/levels"
	"github.com/milk9111/bombsim/logger"
	"github.com/milk9111/bombsim/player"
	"github.com/milk9111/bombsim/section"
	"github.com/milk9111/bombsim/sim"
)

const (
	cellW = common.TileSize / 2
	cellH = common.TileSize
	// holdFrames keeps a key down after its last event, since terminals
	// report no key releases.
	holdFrames = 8
)

var colors = []tcell.Color{
	tcell.ColorRed, tcell.ColorGreen, tcell.ColorYellow, tcell.ColorBlue,
	tcell.ColorFuchsia, tcell.ColorAqua, tcell.ColorOrange, tcell.ColorSilver,
}

// ttyInput turns key events into held keys.
type ttyInput struct {
	held    map[sim.Key]int
	pressed map[sim.Key]bool
}

func newInput() *ttyInput {
	return &ttyInput{held: map[sim.Key]int{}, pressed: map[sim.Key]bool{}}
}

func (in *ttyInput) Pressed(k sim.Key) bool { return in.pressed[k] }
func (in *ttyInput) Down(k sim.Key) bool    { return in.held[k] > 0 }

func (in *ttyInput) press(k sim.Key) {
	if in.held[k] == 0 {
		in.pressed[k] = true
	}
	in.held[k] = holdFrames
}

// tick ages held keys and clears this frame's presses.
func (in *ttyInput) tick() {
	clear(in.pressed)
	for k, n := range in.held {
		if n <= 1 {
			delete(in.held, k)
			continue
		}
		in.held[k] = n - 1
	}
}

func keyOf(ev *tcell.EventKey) (sim.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return sim.KeyLeft, true
	case tcell.KeyRight:
		return sim.KeyRight, true
	case tcell.KeyUp:
		return sim.KeyUp, true
	case tcell.KeyDown:
		return sim.KeyDown, true
	case tcell.KeyEnter:
		return sim.KeyConfirm, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'z':
			return sim.KeyJump, true
		case 'x':
			return sim.KeyItem, true
		}
	}
	return 0, false
}

type game struct {
	screen tcell.Screen
	file   *levels.File
	kind   sim.BombType
	p      *player.Player
	s      *section.Section
	input  *ttyInput
	stage  *sim.Stage
}

func (g *game) load() error {
	if g.p.Dead() {
		g.p.Revive()
	}
	s, report, err := section.Load(g.file, section.Config{Stage: g.stage, Player: g.p, Input: g.input, Seed: time.Now().UnixNano()})
	if err != nil {
		report.Log()
		return err
	}
	g.s = s
	return nil
}

func (g *game) step() error {
	ctx := g.s.Context()
	g.p.Update(ctx)
	g.s.Update()
	g.input.tick()
	if g.p.Restart() {
		if g.p.GameOver() {
			return errGameOver
		}
		return g.load()
	}
	if g.s.Finished() {
		g.p.Finish(g.stage)
		return errFinished
	}
	return nil
}

var (
	errGameOver = fmt.Errorf("game over")
	errFinished = fmt.Errorf("section finished")
)

func (g *game) draw() {
	g.screen.Clear()
	w, h := g.screen.Size()
	bomb := g.p.Avatar()
	c := bomb.Center()
	ox := c.X - float64(w*cellW)/2
	oy := c.Y - float64((h-1)*cellH)/2

	for row := 0; row < h-1; row++ {
		for col := 0; col < w; col++ {
			wx := ox + float64(col*cellW) + cellW/2
			wy := oy + float64(row*cellH) + cellH/2
			if wx < 0 || wy < 0 {
				continue
			}
			i, j := int(wx)/common.TileSize, int(wy)/common.TileSize
			t := g.file.TileAt(i, j)
			if t == levels.TileEmpty {
				continue
			}
			style := tcell.StyleDefault.Foreground(tcell.ColorOlive)
			if g.s.Dark() && g.s.Darkness(i, j) > 128 {
				style = style.Foreground(tcell.ColorGray)
			}
			g.screen.SetContent(col, row, rune(t), nil, style)
		}
	}

	cell := func(x, y float64) (int, int) {
		return int(math.Floor((x - ox) / cellW)), int(math.Floor((y - oy) / cellH))
	}
	put := func(a sim.Actor, ch rune, color tcell.Color) {
		r := a.Bounds()
		col, row := cell(r.X+r.W/2, r.Y+r.H/2)
		if col >= 0 && col < w && row >= 0 && row < h-1 {
			g.screen.SetContent(col, row, ch, nil, tcell.StyleDefault.Foreground(color).Bold(true))
		}
	}
	st := g.s.Context().Stage
	for _, list := range [][]sim.Actor{g.s.Elements(), g.s.Effects(), g.s.Interacting()} {
		for _, a := range list {
			name := "?"
			if v, ok := a.(sim.Viewable); ok {
				view := v.View(st)
				if view.Hidden {
					continue
				}
				name = view.Name
			}
			ch, color := glyph(name)
			put(a, ch, color)
		}
	}
	if !bomb.Health.Blinking() {
		put(bomb, '@', tcell.ColorWhite)
	}

	hud := fmt.Sprintf(" %s hp:%d lives:%d score:%d  arrows move, space jumps, x uses item, esc quits",
		bomb.Name(), bomb.HP(), g.p.Lives, g.p.Score+g.p.StageScore())
	for i, r := range hud {
		if i >= w {
			break
		}
		g.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	g.screen.Show()
}

// glyph is the first letter of a view name in a color stable per name.
func glyph(name string) (rune, tcell.Color) {
	if name == "" {
		return '?', tcell.ColorWhite
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return rune(name[0]), colors[h.Sum32()%uint32(len(colors))]
}

func (g *game) run() error {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if k, ok := keyOf(ev); ok {
					g.input.press(k)
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}
		case <-ticker.C:
			if err := g.step(); err != nil {
				return err
			}
			g.draw()
		}
	}
}

func main() {
	name := flag.String("section", "demo", "section name or path")
	kindName := flag.String("bomb", "blue", "bomb kind: blue, red, yellow, green or white")
	flag.Parse()

	// the terminal belongs to the game, so logs go to a file
	logFile, err := os.CreateTemp("", "bombtty-*.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "bombtty: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.InitTo(logFile)

	kind, ok := sim.ParseBombType(*kindName)
	if !ok || kind == sim.BombAny {
		fmt.Fprintf(os.Stderr, "bombtty: unknown bomb %q\n", *kindName)
		os.Exit(2)
	}
	f, err := levels.LoadFile(*name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bombtty: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bombtty: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "bombtty: %v\n", err)
		os.Exit(1)
	}

	g := &game{
		screen: screen,
		file:   f,
		kind:   kind,
		p:      player.New(kind, player.DefaultLives),
		input:  newInput(),
		stage:  sim.NewStage(f.Name),
	}
	if err := g.load(); err == nil {
		err = g.run()
	}
	screen.Fini()
	if err != nil {
		fmt.Println(err)
	}
}
