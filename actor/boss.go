package actor

import (
	"github.com/milk9111/bombsim/common"
	"github.com/milk9111/bombsim/sim"
)

// BossPhase is the outer state of a boss fight. Phases only move forward.
type BossPhase int

const (
	BossWaiting BossPhase = iota
	BossSpeaking
	BossActing
)

func (p BossPhase) String() string {
	switch p {
	case BossWaiting:
		return "waiting"
	case BossSpeaking:
		return "speaking"
	case BossActing:
		return "acting"
	}
	return "unknown"
}

const (
	speechTime      = 900
	deathSpeechTime = 600
)

// BossState is the fight framing every boss owns: activation, the opening
// speech, the fight itself and the closing speech.
type BossState struct {
	Phase       BossPhase
	ActivationX float64
	Speech      string
	DeathSpeech string
	SongID      string
	Timer       int
}

func (e *Enemy) attachBoss(songID string) *BossState {
	lines := bossLines[e.Kind]
	if songID == "" {
		songID = "boss"
	}
	e.Boss = &BossState{
		ActivationX: e.X + e.W/2 - common.ScreenWidth/2,
		Speech:      lines[0],
		DeathSpeech: lines[1],
		SongID:      songID,
	}
	return e.Boss
}

// Update advances the framing. fight runs the boss's own update and is only
// called while acting and not dying.
func (s *BossState) Update(ctx *sim.Context, e *Enemy, fight func()) {
	switch s.Phase {
	case BossWaiting:
		if ctx.Bomb().Body().X >= s.ActivationX {
			ctx.Section.SetFixedCamera(e.centerX(), e.centerY())
			s.Phase = BossSpeaking
		}
	case BossSpeaking:
		s.Timer++
		if s.Timer >= speechTime || ctx.Pressed(sim.KeyConfirm) {
			ctx.Section.UnsetFixedCamera()
			s.Phase = BossActing
			s.Timer = 0
			ctx.PlaySong(s.SongID)
		}
	default:
		if e.dying {
			s.Timer++
			if s.Timer >= deathSpeechTime || ctx.Pressed(sim.KeyConfirm) {
				ctx.Section.UnsetFixedCamera()
				ctx.Section.Finish()
				e.dead = true
			}
			return
		}
		if fight != nil {
			fight()
		}
		if e.dying {
			ctx.Section.SetFixedCamera(e.centerX(), e.centerY())
			s.Timer = 0
		}
	}
}

// panel returns the line to show while speaking or dying.
func (s *BossState) panel(e *Enemy) (string, bool) {
	if s.Phase == BossSpeaking {
		return s.Speech, true
	}
	if e.dying && !e.dead {
		return s.DeathSpeech, true
	}
	return "", false
}

func (s *BossState) StopTimeImmune() bool {
	return s.Phase == BossSpeaking
}

// Panel implements sim.Paneled for every boss.
func (e *Enemy) Panel() (string, bool) {
	if e.Boss == nil {
		return "", false
	}
	return e.Boss.panel(e)
}

// StopTimeImmune keeps a speaking boss running while time is stopped.
func (e *Enemy) StopTimeImmune() bool {
	return e.Boss != nil && e.Boss.StopTimeImmune()
}

var bossLines = map[Kind][2]string{
	KindChamal: {
		"So you made it through the forest. Let me show you what the forest made of me.",
		"The forest... will remember this.",
	},
	KindSahiss: {
		"Nobody crosses my sands and leaves with their fuse intact.",
		"The sand... slips away...",
	},
	KindUlor: {
		"The cold keeps everything still. You will be still too.",
		"It is... getting warm...",
	},
	KindZirkn: {
		"You are a long way from home, little bomb. This cave is mine.",
		"The cave... is yours...",
	},
	KindGlobb: {
		"Breathe deep. Nothing leaves the swamp.",
		"Blub... blub...",
	},
	KindDrepz: {
		"Every castle needs a guard. Every guard needs a target.",
		"I should have stayed at the gate.",
	},
	KindGaxlon: {
		"At last. I have waited a long time for someone worth fighting.",
		"Then it is over. Go home, little bomb.",
	},
	KindScripted: {
		"...",
		"...",
	},
}
