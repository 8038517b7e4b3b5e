package player

import (
	"slices"

	"github.com/milk9111/bombsim/item"
	"github.com/milk9111/bombsim/logger"
	"github.com/milk9111/bombsim/sim"
	"github.com/sirupsen/logrus"
)

// deathFrames is how long the dead bomb stays on screen before the
// section restarts.
const deathFrames = 120

const DefaultLives = 5

// Player is the record kept across sections. It implements sim.Player.
type Player struct {
	Lives int
	Score int

	bomb       *Bomb
	kind       sim.BombType
	stageScore int
	items      []*sim.Switch
	selected   int
	specs      map[string]bool

	deathTimer int
	restart    bool

	log *logrus.Entry
}

var _ sim.Player = (*Player)(nil)

func New(kind sim.BombType, lives int) *Player {
	return &Player{
		Lives: lives,
		bomb:  NewBomb(kind, 0, 0),
		kind:  kind,
		specs: map[string]bool{},
		log:   logger.Log.WithField("player", kind.String()),
	}
}

func (p *Player) Bomb() sim.Bomb { return p.bomb }

// Avatar returns the concrete bomb.
func (p *Player) Avatar() *Bomb { return p.bomb }

func (p *Player) Dead() bool          { return p.bomb.Dead() }
func (p *Player) StageScore() int     { return p.stageScore }
func (p *Player) AddStageScore(n int) { p.stageScore += n }

func (p *Player) HasSpec(stageID string) bool { return p.specs[stageID] }

// AddItem puts the item behind sw in the inventory.
func (p *Player) AddItem(sw *sim.Switch) {
	if sw == nil || slices.Contains(p.items, sw) {
		return
	}
	p.items = append(p.items, sw)
	p.log.WithFields(logrus.Fields{"item": sw.Type, "id": sw.ID}).Debug("item stored")
}

func (p *Player) Items() []*sim.Switch { return p.items }

// Selected returns the inventory slot used by the item key, or nil.
func (p *Player) Selected() *sim.Switch {
	if len(p.items) == 0 {
		return nil
	}
	return p.items[p.selected%len(p.items)]
}

func (p *Player) SelectNext() {
	if len(p.items) > 0 {
		p.selected = (p.selected + 1) % len(p.items)
	}
}

// UseItem uses the selected item and drops it from the inventory when it
// worked.
func (p *Player) UseItem(ctx *sim.Context) bool {
	sw := p.Selected()
	if sw == nil {
		return false
	}
	it, ok := sw.Obj.(item.Item)
	if !ok {
		p.log.WithField("item", sw.Type).Warn("stored item has no object")
		return false
	}
	if !it.Use(ctx, sw) {
		ctx.PlaySound("cantUse")
		return false
	}
	p.prune()
	return true
}

// prune keeps only switches still held: taken and not yet used.
func (p *Player) prune() {
	p.items = slices.DeleteFunc(p.items, func(sw *sim.Switch) bool {
		return sw.State != sim.Taken && sw.State != sim.TempTaken
	})
	if p.selected >= len(p.items) {
		p.selected = 0
	}
}

// Update steps the bomb and the item key, and counts down the death
// sequence once the bomb is dead.
func (p *Player) Update(ctx *sim.Context) {
	p.bomb.Update(ctx)
	if p.bomb.Dead() {
		p.deathTimer++
		if p.deathTimer == deathFrames {
			p.lose(ctx)
		}
		return
	}
	if ctx.Pressed(sim.KeyItem) {
		p.UseItem(ctx)
	}
}

// lose takes a life and rolls back everything gained since the last
// checkpoint.
func (p *Player) lose(ctx *sim.Context) {
	p.Lives--
	p.stageScore = 0
	ctx.Stage.Rollback()
	p.prune()
	p.restart = true
	p.log.WithField("lives", p.Lives).Info("bomb lost")
}

// Restart reports, once, that the section must be reloaded after a death.
func (p *Player) Restart() bool {
	r := p.restart
	p.restart = false
	return r
}

// GameOver reports whether no lives are left.
func (p *Player) GameOver() bool { return p.Lives < 0 }

// Revive replaces a dead bomb with a fresh one.
func (p *Player) Revive() {
	p.bomb = NewBomb(p.kind, 0, 0)
	p.deathTimer = 0
}

// Finish banks the stage tallies once a section is finished.
func (p *Player) Finish(st *sim.Stage) {
	p.Score += p.stageScore
	p.stageScore = 0
	p.Lives += st.LifeCount
	st.LifeCount = 0
	if st.SpecTaken {
		p.specs[st.ID] = true
	}
	p.log.WithFields(logrus.Fields{"score": p.Score, "lives": p.Lives}).Info("stage tallied")
}
