package levels

import (
	"fmt"
	"sort"

	"github.com/milk9111/bombsim/actor"
	"github.com/milk9111/bombsim/item"
	"github.com/milk9111/bombsim/sim"
)

// Builder creates the element at world position (x, y). sw is the element's
// switch when the kind is switched, nil otherwise. A nil actor with a nil
// error means the element must not be placed.
type Builder func(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (sim.Actor, error)

// Entry is a registered kind.
type Entry struct {
	Build Builder
	// Switched kinds persist their state in a stage switch.
	Switched bool
}

func enemy[E any, P interface {
	*E
	sim.Actor
}](f func(*sim.Context, float64, float64, actor.Args) (P, error)) Entry {
	return Entry{Build: func(ctx *sim.Context, x, y float64, args actor.Args, _ *sim.Switch) (sim.Actor, error) {
		a, err := f(ctx, x, y, args)
		if err != nil || a == nil {
			return nil, err
		}
		return a, nil
	}}
}

func placed[E any, P interface {
	*E
	sim.Actor
}](f func(*sim.Context, float64, float64, actor.Args, *sim.Switch) (P, error), switched bool) Entry {
	return Entry{Switched: switched, Build: func(ctx *sim.Context, x, y float64, args actor.Args, sw *sim.Switch) (sim.Actor, error) {
		a, err := f(ctx, x, y, args, sw)
		if err != nil || a == nil {
			return nil, err
		}
		return a, nil
	}}
}

var registry = map[string]Entry{
	// enemies
	actor.KindWheeliam.String():   enemy(actor.NewWheeliam),
	actor.KindSprinny.String():    enemy(actor.NewSprinny),
	actor.KindFureel.String():     enemy(actor.NewFureel),
	actor.KindYaw.String():        enemy(actor.NewYaw),
	actor.KindYawnster.String():   enemy(actor.NewYawnster),
	actor.KindEkips.String():      enemy(actor.NewEkips),
	actor.KindFaller.String():     enemy(actor.NewFaller),
	actor.KindTurner.String():     enemy(actor.NewTurner),
	actor.KindChamal.String():     enemy(actor.NewChamal),
	actor.KindElectong.String():   enemy(actor.NewElectong),
	actor.KindChrazer.String():    enemy(actor.NewChrazer),
	actor.KindRobort.String():     enemy(actor.NewRobort),
	actor.KindShep.String():       enemy(actor.NewShep),
	actor.KindFlep.String():       enemy(actor.NewFlep),
	actor.KindJellep.String():     enemy(actor.NewJellep),
	actor.KindSnep.String():       enemy(actor.NewSnep),
	actor.KindVamep.String():      enemy(actor.NewVamep),
	actor.KindArmep.String():      enemy(actor.NewArmep),
	actor.KindOwlep.String():      enemy(actor.NewOwlep),
	actor.KindZep.String():        enemy(actor.NewZep),
	actor.KindButterflep.String(): enemy(actor.NewButterflep),
	actor.KindSahiss.String():     enemy(actor.NewSahiss),
	actor.KindForsby.String():     enemy(actor.NewForsby),
	actor.KindMorsby.String():     enemy(actor.NewMorsby),
	actor.KindStilty.String():     enemy(actor.NewStilty),
	actor.KindMantul.String():     enemy(actor.NewMantul),
	actor.KindLambul.String():     enemy(actor.NewLambul),
	actor.KindIcel.String():       enemy(actor.NewIcel),
	actor.KindIgnel.String():      enemy(actor.NewIgnel),
	actor.KindWarclops.String():   enemy(actor.NewWarclops),
	actor.KindNecrul.String():     enemy(actor.NewNecrul),
	actor.KindUlor.String():       enemy(actor.NewUlor),
	actor.KindUmbrex.String():     enemy(actor.NewUmbrex),
	actor.KindQuartin.String():    enemy(actor.NewQuartin),
	actor.KindXylophob.String():   enemy(actor.NewXylophob),
	actor.KindBardin.String():     enemy(actor.NewBardin),
	actor.KindDynamike.String():   enemy(actor.NewDynamike),
	actor.KindHooman.String():     enemy(actor.NewHooman),
	actor.KindGargoil.String():    enemy(actor.NewGargoil),
	actor.KindZirkn.String():      enemy(actor.NewZirkn),
	actor.KindFrock.String():      enemy(actor.NewFrock),
	actor.KindPantan.String():     enemy(actor.NewPantan),
	actor.KindKraklet.String():    enemy(actor.NewKraklet),
	actor.KindPikey.String():      enemy(actor.NewPikey),
	actor.KindGars.String():       enemy(actor.NewGars),
	actor.KindZingz.String():      enemy(actor.NewZingz),
	actor.KindGlobb.String():      enemy(actor.NewGlobb),
	actor.KindBombark.String():    enemy(actor.NewBombark),
	actor.KindVamdark.String():    enemy(actor.NewVamdark),
	actor.KindLuminark.String():   enemy(actor.NewLuminark),
	actor.KindDrepz.String():      enemy(actor.NewDrepz),
	actor.KindBombinfant.String(): enemy(actor.NewBombinfant),
	actor.KindBombarcher.String(): enemy(actor.NewBombarcher),
	actor.KindBombnight.String():  enemy(actor.NewBombnight),
	actor.KindBombaladin.String(): enemy(actor.NewBombaladin),
	actor.KindBomblancer.String(): enemy(actor.NewBomblancer),
	actor.KindGaxlon.String():     enemy(actor.NewGaxlon),
	actor.KindScripted.String():   enemy(actor.NewScripted),

	// props
	actor.KindGunPowder.String():           enemy(actor.NewGunPowder),
	actor.KindWater.String():               enemy(actor.NewWater),
	actor.KindStalactite.String():          enemy(actor.NewStalactite),
	actor.KindStalactiteGenerator.String(): enemy(actor.NewStalactiteGenerator),
	actor.KindVortex.String():              enemy(actor.NewVortex),
	actor.KindMovingWall.String():          enemy(actor.NewMovingWall),
	actor.KindBox.String():                 enemy(actor.NewBox),
	actor.KindFixedSpikes.String():         enemy(actor.NewFixedSpikes),
	"Door":                                 placed(item.NewDoor, true),
	"Puzzle":                               placed(item.NewPuzzle, false),
	"Monep":                                placed(item.NewHelper("Monep"), true),
	"MountainBombie":                       placed(item.NewHelper("MountainBombie"), true),

	// items
	"FireRock":    placed(item.NewFireRock, false),
	"Life":        placed(item.NewLife, true),
	"Key":         placed(item.NewKey, true),
	"Attack1":     placed(item.NewAttack1, true),
	"Shield":      placed(item.NewShield, true),
	"Heart":       placed(item.NewHeart, false),
	"BoardItem":   placed(item.NewBoardItem, true),
	"Hammer":      placed(item.NewHammer, true),
	"Spring":      placed(item.NewSpring, true),
	"Attack2":     placed(item.NewAttack2, true),
	"Herb":        placed(item.NewHerb, true),
	"PuzzlePiece": placed(item.NewPuzzlePiece, true),
	"JillisStone": placed(item.NewJillisStone, true),
	"Attack3":     placed(item.NewAttack3, true),
	"Attack4":     placed(item.NewAttack4, true),
	"Hourglass":   placed(item.NewHourglass, false),
	"Attack5":     placed(item.NewAttack5, true),
	"Star":        placed(item.NewStar, true),
	"Spec":        placed(item.NewSpec, true),
}

// Lookup returns the entry registered for kind.
func Lookup(kind string) (Entry, bool) {
	e, ok := registry[kind]
	return e, ok
}

// Kinds lists every registered kind, sorted.
func Kinds() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Build creates an element of kind.
func Build(ctx *sim.Context, kind string, x, y float64, args actor.Args, sw *sim.Switch) (sim.Actor, error) {
	e, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("levels: build %s: %w", kind, ErrUnknownKind)
	}
	return e.Build(ctx, x, y, args, sw)
}
