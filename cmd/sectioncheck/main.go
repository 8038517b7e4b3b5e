// Command sectioncheck loads section files, reports every rejected element
// and optionally runs each section headless for a number of frames.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/bombsim/levels"
	"github.com/milk9111/bombsim/logger"
	"github.com/milk9111/bombsim/player"
	"github.com/milk9111/bombsim/section"
	"github.com/milk9111/bombsim/sim"
	"github.com/sirupsen/logrus"
)

func main() {
	all := flag.Bool("all", false, "check every embedded section")
	frames := flag.Int("frames", 0, "frames to simulate after a clean load")
	kinds := flag.Bool("kinds", false, "list registered element kinds and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: sectioncheck [-all] [-frames n] [section ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	logger.Init()

	if *kinds {
		for _, k := range levels.Kinds() {
			fmt.Println(k)
		}
		return
	}

	names := flag.Args()
	if *all {
		names = append(names, levels.Names()...)
	}
	if len(names) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := 0
	for _, name := range names {
		if err := check(name, *frames); err != nil {
			logger.Log.WithError(err).WithField("section", name).Error("check failed")
			failed++
		}
	}
	if failed > 0 {
		logger.Log.WithField("failed", failed).Error("some sections did not pass")
		os.Exit(1)
	}
}

func check(name string, frames int) error {
	f, err := levels.LoadFile(name)
	if err != nil {
		return err
	}
	p := player.New(sim.BombBlue, player.DefaultLives)
	s, report, err := section.Load(f, section.Config{Player: p})
	if report != nil {
		report.Log()
	}
	if err != nil {
		return err
	}
	for _, i := range f.Unreachable() {
		e := f.Elements[i]
		logger.Log.WithFields(logrus.Fields{"section": f.Name, "index": i, "kind": e.Kind, "at": e.At}).
			Warn("element is walled off from the first entrance")
	}

	for range frames {
		p.Update(s.Context())
		s.Update()
	}
	if frames > 0 {
		logger.Log.WithFields(logrus.Fields{
			"section":  f.Name,
			"frames":   frames,
			"elements": len(s.Elements()),
			"bomb":     p.Avatar().StateName(),
			"dead":     p.Dead(),
		}).Info("simulated")
	}
	return nil
}
