// Package render draws a running section with flat shapes: tiles, every
// viewable element, the bomb, darkness, dialogue panels and the HUD.
package render

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/physics"
	"github.com/milk9111/bombsim/player"
	"github.com/milk9111/bombsim/section"
	"github.com/milk9111/bombsim/sim"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	panelMargin  = 20
	panelPadding = 12
	panelHeight  = 110
	lineHeight   = 20
	// rampStep is the width of the columns a ramp is drawn with.
	rampStep = 4
)

var (
	background = color.RGBA{R: 0x1d, G: 0x22, B: 0x33, A: 0xff}
	solidColor = color.RGBA{R: 0x6b, G: 0x5a, B: 0x4a, A: 0xff}
	oneWayTint = color.RGBA{R: 0xa8, G: 0x92, B: 0x6d, A: 0xff}
	panelColor = color.RGBA{A: 0xd0}
	palette    = []color.NRGBA{
		{R: 0xe0, G: 0x4f, B: 0x5f, A: 0xff},
		{R: 0x5f, G: 0xb4, B: 0x4f, A: 0xff},
		{R: 0x4f, G: 0x8f, B: 0xe0, A: 0xff},
		{R: 0xe0, G: 0xc0, B: 0x4f, A: 0xff},
		{R: 0xb0, G: 0x5f, B: 0xe0, A: 0xff},
		{R: 0x4f, G: 0xd0, B: 0xc8, A: 0xff},
		{R: 0xe0, G: 0x8a, B: 0x4f, A: 0xff},
		{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff},
	}
)

// Renderer holds the faces used for dialogue and the HUD.
type Renderer struct {
	face  text.Face
	small text.Face
}

func New() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &Renderer{
		face:  &text.GoTextFace{Source: src, Size: 16},
		small: &text.GoTextFace{Source: src, Size: 12},
	}, nil
}

// Draw paints s as seen by its camera, with p's bomb and tallies.
func (r *Renderer) Draw(screen *ebiten.Image, s *section.Section, p *player.Player) {
	screen.Fill(background)
	cam := s.Camera()
	st := s.Context().Stage

	r.drawTiles(screen, s, cam)
	for _, a := range s.Elements() {
		r.drawActor(screen, a, st, cam)
	}
	for _, a := range s.Effects() {
		r.drawActor(screen, a, st, cam)
	}
	r.drawBomb(screen, p.Avatar(), st, cam)
	for _, a := range s.Interacting() {
		r.drawActor(screen, a, st, cam)
	}
	r.drawDarkness(screen, s, cam)
	r.drawPanels(screen, s)
	r.drawHUD(screen, p)
}

func (r *Renderer) drawTiles(screen *ebiten.Image, s *section.Section, cam common.Vector) {
	view := s.ViewRect()
	for _, o := range s.Blocks() {
		b := o.Bounds()
		if !b.Intersects(view) {
			continue
		}
		c := solidColor
		if o.Passable() {
			c = oneWayTint
		}
		fillRect(screen, b, cam, c)
	}
	for _, ramp := range s.Ramps() {
		if ramp.Bounds().Intersects(view) {
			drawRamp(screen, ramp, cam)
		}
	}
}

// drawRamp fills the area under the slope column by column.
func drawRamp(screen *ebiten.Image, ramp *physics.Ramp, cam common.Vector) {
	for x := ramp.X; x < ramp.X+ramp.W; x += rampStep {
		top := ramp.SurfaceY(x + rampStep/2)
		h := ramp.Y + ramp.H - top
		fillRect(screen, common.NewRect(x, top, rampStep, h), cam, solidColor)
	}
}

func (r *Renderer) drawActor(screen *ebiten.Image, a sim.Actor, st *sim.Stage, cam common.Vector) {
	if t, ok := a.(sim.Tracked); ok {
		drawTrack(screen, t.Track(), cam)
	}
	v, ok := a.(sim.Viewable)
	if !ok {
		fillRect(screen, a.Bounds(), cam, colorOf(sim.View{Name: "?"}))
		return
	}
	drawView(screen, v.View(st), cam)
	if d, ok := a.(sim.Decorated); ok {
		for _, dv := range d.Decorations(st) {
			drawView(screen, dv, cam)
		}
	}
}

func (r *Renderer) drawBomb(screen *ebiten.Image, b *player.Bomb, st *sim.Stage, cam common.Vector) {
	if at, radius, ok := b.Blast(); ok {
		vector.FillCircle(screen, float32(at.X-cam.X), float32(at.Y-cam.Y), float32(radius), color.RGBA{R: 0xff, G: 0x90, B: 0x20, A: 0x80}, true)
	}
	if b.Aura() > 0 {
		bounds := b.Bounds()
		grown := common.NewRect(bounds.X-4, bounds.Y-4, bounds.W+8, bounds.H+8)
		strokeRect(screen, grown, cam, colornames.Gold)
	}
	drawView(screen, b.View(st), cam)
	if b.Shielded() {
		strokeRect(screen, b.Bounds(), cam, colornames.Lightskyblue)
	}
}

func drawView(screen *ebiten.Image, v sim.View, cam common.Vector) {
	if v.Hidden {
		return
	}
	c := colorOf(v)
	fillRect(screen, v.Rect, cam, c)

	// a notch on the side the actor faces
	notchX := v.Rect.X
	if v.FlipX {
		notchX = v.Rect.Right() - 4
	}
	fillRect(screen, common.NewRect(notchX, v.Rect.Y+2, 4, 4), cam, color.NRGBA{A: c.A})
}

func drawTrack(screen *ebiten.Image, points []common.Vector, cam common.Vector) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(screen, float32(a.X-cam.X), float32(a.Y-cam.Y), float32(b.X-cam.X), float32(b.Y-cam.Y), 2, colornames.Lightgrey, true)
	}
}

func (r *Renderer) drawDarkness(screen *ebiten.Image, s *section.Section, cam common.Vector) {
	if !s.Dark() {
		return
	}
	view := s.ViewRect()
	i0, j0 := int(view.X)/common.TileSize, int(view.Y)/common.TileSize
	i1, j1 := int(view.Right())/common.TileSize, int(view.Bottom())/common.TileSize
	for j := j0; j <= j1; j++ {
		for i := i0; i <= i1; i++ {
			a := s.Darkness(i, j)
			if a <= 0 {
				continue
			}
			tile := common.NewRect(float64(i*common.TileSize), float64(j*common.TileSize), common.TileSize, common.TileSize)
			fillRect(screen, tile, cam, color.RGBA{A: uint8(min(a, 255))})
		}
	}
}

// drawPanels shows the first open dialogue panel at the bottom of the
// screen.
func (r *Renderer) drawPanels(screen *ebiten.Image, s *section.Section) {
	for _, a := range s.Elements() {
		p, ok := a.(sim.Paneled)
		if !ok {
			continue
		}
		msg, open := p.Panel()
		if !open {
			continue
		}
		box := common.NewRect(panelMargin, common.ScreenHeight-panelHeight-panelMargin, common.ScreenWidth-2*panelMargin, panelHeight)
		vector.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), panelColor, false)
		vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 2, colornames.White, false)
		for i, line := range Wrap(msg, r.face, box.W-2*panelPadding) {
			drawText(screen, line, r.face, box.X+panelPadding, box.Y+panelPadding+float64(i*lineHeight), colornames.White)
		}
		return
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, p *player.Player) {
	b := p.Avatar()
	hud := fmt.Sprintf("%s  hp %d  lives %d  score %d", b.Name(), b.HP(), p.Lives, p.Score+p.StageScore())
	if b.Cooldown() > 0 {
		hud += fmt.Sprintf("  ability %ds", (b.Cooldown()+59)/60)
	}
	drawText(screen, hud, r.small, 8, 6, colornames.White)

	if sw := p.Selected(); sw != nil {
		label := sw.Type
		if ic, ok := sw.Obj.(interface{ Icon() string }); ok {
			label = ic.Icon()
		}
		drawText(screen, fmt.Sprintf("item: %s (%d)", label, len(p.Items())), r.small, 8, 22, colornames.Lightgrey)
	}
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func fillRect(screen *ebiten.Image, r common.Rect, cam common.Vector, c color.Color) {
	vector.FillRect(screen, float32(r.X-cam.X), float32(r.Y-cam.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r common.Rect, cam common.Vector, c color.Color) {
	vector.StrokeRect(screen, float32(r.X-cam.X), float32(r.Y-cam.Y), float32(r.W), float32(r.H), 2, c, false)
}

// colorOf picks the fill of a view: its own color when tinted, otherwise a
// stable palette entry for its name.
func colorOf(v sim.View) color.NRGBA {
	var c color.NRGBA
	if v.Color != 0 && v.Color != 0xffffff {
		c = color.NRGBA{R: uint8(v.Color >> 16), G: uint8(v.Color >> 8), B: uint8(v.Color), A: 0xff}
	} else {
		h := fnv.New32a()
		h.Write([]byte(baseName(v.Name)))
		c = palette[h.Sum32()%uint32(len(palette))]
	}
	if v.Alpha != 0 {
		c.A = v.Alpha
	}
	return c
}

// baseName drops trailing digits so variants of a kind share a color.
func baseName(name string) string {
	return strings.TrimRight(name, "0123456789")
}

// Wrap splits s into lines no wider than width when drawn with face.
func Wrap(s string, face text.Face, width float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			next := word
			if line != "" {
				next = line + " " + word
			}
			if w, _ := text.Measure(next, face, lineHeight); w > width && line != "" {
				lines = append(lines, line)
				next = word
			}
			line = next
		}
		lines = append(lines, line)
	}
	return lines
}
