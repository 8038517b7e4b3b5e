package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/logger"
	"github.com/milk9111/bombsim/sim"
)

func main() {
	sectionName := flag.String("section", "demo", "section name in levels/sections or a path to a section file")
	stageID := flag.String("stage", "1", "stage id the section's switches and spec belong to")
	bombName := flag.String("bomb", "blue", "bomb kind: blue, red, yellow, green or white")
	scale := flag.Float64("scale", 1, "window scale")
	volume := flag.Float64("volume", 0.5, "sound volume from 0 to 1")
	watch := flag.Bool("watch", false, "reload the section when its file changes")
	flag.Parse()
	logger.Init()

	kind, ok := sim.ParseBombType(*bombName)
	if !ok || kind == sim.BombAny {
		logger.Log.WithField("bomb", *bombName).Error("unknown bomb kind")
		os.Exit(2)
	}

	ebiten.SetWindowSize(int(common.ScreenWidth**scale), int(common.ScreenHeight**scale))
	ebiten.SetWindowTitle("bombsim")

	game, err := NewGame(Options{
		Section: *sectionName,
		Stage:   *stageID,
		Bomb:    kind,
		Volume:  *volume,
		Watch:   *watch,
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("start game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Error("game stopped")
	}
}
