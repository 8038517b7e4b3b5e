package audio

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/bombsim/logger"
	"github.com/milk9111/bombsim/sim"
	"github.com/sirupsen/logrus"
)

// Mixer plays cues and songs by id. It implements sim.Audio.
type Mixer struct {
	ctx    *audio.Context
	volume float64

	mu     sync.Mutex
	cache  map[string][]byte
	song   *audio.Player
	songID string
	warned map[string]bool

	log *logrus.Entry
}

var _ sim.Audio = (*Mixer)(nil)

// NewMixer plays through ctx, which must run at SampleRate.
func NewMixer(ctx *audio.Context, volume float64) *Mixer {
	return &Mixer{
		ctx:    ctx,
		volume: volume,
		cache:  map[string][]byte{},
		warned: map[string]bool{},
		log:    logger.Log.WithField("component", "audio"),
	}
}

func (m *Mixer) pcm(key string, build func() []byte) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.cache[key]; ok {
		return b
	}
	b := build()
	m.cache[key] = b
	return b
}

func (m *Mixer) PlaySound(id string) {
	if m == nil || m.ctx == nil || m.volume <= 0 {
		return
	}
	b := m.pcm("sound:"+id, func() []byte {
		c, ok := CueFor(id)
		if !ok && !m.warned[id] {
			m.warned[id] = true
			m.log.WithField("sound", id).Debug("no cue, using fallback")
		}
		return PCM(c)
	})
	p := m.ctx.NewPlayerFromBytes(b)
	p.SetVolume(m.volume)
	p.Play()
}

// PlaySong loops the song with id, replacing the current one. Asking for
// the song already playing does nothing.
func (m *Mixer) PlaySong(id string) {
	if m == nil || m.ctx == nil {
		return
	}
	if id == m.songID && m.song != nil {
		return
	}
	m.StopSong()
	b := m.pcm("song:"+id, func() []byte { return PCM(Song(id)) })
	loop := audio.NewInfiniteLoop(bytes.NewReader(b), int64(len(b)))
	p, err := m.ctx.NewPlayer(loop)
	if err != nil {
		m.log.WithError(err).WithField("song", id).Warn("song not played")
		return
	}
	p.SetVolume(m.volume)
	p.Play()
	m.song, m.songID = p, id
	m.log.WithField("song", id).Debug("song started")
}

func (m *Mixer) StopSong() {
	if m.song == nil {
		return
	}
	if err := m.song.Close(); err != nil {
		m.log.WithError(err).Debug("close song")
	}
	m.song, m.songID = nil, ""
}

// Song returns the id of the song playing.
func (m *Mixer) Song() string { return m.songID }
