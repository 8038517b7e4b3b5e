// Package audio synthesizes the game's sound cues and songs and plays them
// through ebiten's audio context.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is shared by synthesis and playback.
const SampleRate = 44100

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release && e.release > 0 {
			vol = float64(left) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Note is one tone of a cue. A zero frequency is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

// Cue is a short sequence of notes played with one wave.
type Cue struct {
	Wave   Wave
	Notes  []Note
	Volume float64
}

func (c Cue) streamer(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(c.Notes))
	for _, n := range c.Notes {
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(rate.N(n.Dur)))
			continue
		}
		attack := min(5*time.Millisecond, n.Dur/4)
		release := n.Dur / 3
		parts = append(parts, newEnvelope(newOscillator(n.Freq, n.Dur, c.Wave, rate), n.Dur, attack, release, rate))
	}
	vol := c.Volume
	if vol == 0 {
		vol = 0.5
	}
	return withVolume(beep.Seq(parts...), vol)
}

// Duration is the total length of the cue.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range c.Notes {
		d += n.Dur
	}
	return d
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func notes(dur int, freqs ...float64) []Note {
	out := make([]Note, len(freqs))
	for i, f := range freqs {
		out[i] = Note{Freq: f, Dur: ms(dur)}
	}
	return out
}

// cues maps sound ids to their synthesized shape.
var cues = map[string]Cue{
	"jump":           {Wave: WaveSquare, Notes: []Note{{Freq: 330, Dur: ms(40)}, {Freq: 495, Dur: ms(60)}}, Volume: 0.25},
	"bounce":         {Wave: WaveSquare, Notes: notes(40, 392, 523), Volume: 0.25},
	"stomp":          {Wave: WaveSquare, Notes: notes(35, 262, 196, 131), Volume: 0.35},
	"hurt":           {Wave: WaveSaw, Notes: notes(80, 220, 165), Volume: 0.4},
	"shieldBreak":    {Wave: WaveNoise, Notes: notes(120, 1), Volume: 0.3},
	"die":            {Wave: WaveSquare, Notes: notes(120, 392, 330, 262, 196, 131), Volume: 0.4},
	"explode":        {Wave: WaveNoise, Notes: notes(350, 1), Volume: 0.6},
	"dash":           {Wave: WaveNoise, Notes: notes(90, 1), Volume: 0.25},
	"stopTime":       {Wave: WaveSine, Notes: notes(150, 880, 660, 440), Volume: 0.4},
	"cantUse":        {Wave: WaveSaw, Notes: notes(70, 110, 0, 110), Volume: 0.3},
	"getItem":        {Wave: WaveSine, Notes: notes(60, 784, 1047), Volume: 0.4},
	"getFire":        {Wave: WaveSine, Notes: notes(50, 1047, 1319), Volume: 0.35},
	"unlock":         {Wave: WaveSquare, Notes: notes(60, 523, 659, 784), Volume: 0.3},
	"door":           {Wave: WaveSaw, Notes: notes(120, 147, 131), Volume: 0.3},
	"helped":         {Wave: WaveSine, Notes: notes(100, 523, 659, 784, 1047), Volume: 0.4},
	"puzzlePiece":    {Wave: WaveSine, Notes: notes(70, 659, 880), Volume: 0.35},
	"puzzleComplete": {Wave: WaveSine, Notes: notes(110, 523, 659, 784, 1047, 1319), Volume: 0.4},
	"splash":         {Wave: WaveNoise, Notes: notes(200, 1), Volume: 0.3},
	"thunder":        {Wave: WaveNoise, Notes: notes(500, 1), Volume: 0.5},
	"vortex":         {Wave: WaveSine, Notes: notes(80, 220, 277, 330, 277, 220), Volume: 0.3},
	"wallMove":       {Wave: WaveSaw, Notes: notes(250, 65), Volume: 0.35},
	"xylo":           {Wave: WaveSine, Notes: notes(90, 1568), Volume: 0.35},
	"hit":            {Wave: WaveSquare, Notes: notes(50, 440, 330), Volume: 0.3},
}

// fallbackCue plays for ids with no entry.
var fallbackCue = Cue{Wave: WaveSine, Notes: notes(60, 660), Volume: 0.3}

// CueFor returns the cue registered for id and whether it was found.
func CueFor(id string) (Cue, bool) {
	c, ok := cues[id]
	if !ok {
		return fallbackCue, false
	}
	return c, true
}

// Song builds a looping melody for a song id. The same id always yields the
// same melody.
func Song(id string) Cue {
	scale := []float64{262, 294, 330, 392, 440, 523, 587, 659}
	rng := rand.New(rand.NewSource(seed(id)))
	out := make([]Note, 0, 32)
	for i := 0; i < 32; i++ {
		if i%8 == 7 {
			out = append(out, Note{Dur: ms(180)})
			continue
		}
		out = append(out, Note{Freq: scale[rng.Intn(len(scale))], Dur: ms(180)})
	}
	return Cue{Wave: WaveSquare, Notes: out, Volume: 0.15}
}

func seed(id string) int64 {
	var h int64 = 1469598103934665603
	for i := 0; i < len(id); i++ {
		h ^= int64(id[i])
		h *= 1099511628211
	}
	return h
}

// PCM renders c as 16-bit little-endian stereo samples at SampleRate, the
// format ebiten's audio context plays.
func PCM(c Cue) []byte {
	s := c.streamer(beep.SampleRate(SampleRate))
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := int16(math.Max(-1, math.Min(1, buf[i][ch])) * math.MaxInt16)
				out = append(out, byte(v), byte(uint16(v)>>8))
			}
		}
		if !ok {
			return out
		}
	}
}
