package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplesOf(c Cue) int {
	rate := beep.SampleRate(SampleRate)
	n := 0
	for _, note := range c.Notes {
		n += rate.N(note.Dur)
	}
	return n
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := newOscillator(440, 10*time.Millisecond, w, rate)
		buf := make([][2]float64, 100)
		n, ok := osc.Stream(buf)
		require.True(t, ok)
		require.Equal(t, 100, n)
		for _, s := range buf {
			assert.GreaterOrEqual(t, s[0], -1.0)
			assert.LessOrEqual(t, s[0], 1.0)
			assert.Equal(t, s[0], s[1])
		}
		assert.NoError(t, osc.Err())
	}
}

func TestOscillatorEnds(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	osc := newOscillator(440, 10*time.Millisecond, WaveSine, rate)
	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, rate.N(10*time.Millisecond), total)
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	d := 20 * time.Millisecond
	env := newEnvelope(newOscillator(0, d, WaveSquare, rate), d, 5*time.Millisecond, 5*time.Millisecond, rate)
	buf := make([][2]float64, rate.N(d))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Zero(t, buf[0][0], "attack starts silent")
	assert.Equal(t, 1.0, buf[n/2][0])
	assert.Less(t, buf[n-1][0], 0.01)
}

func TestPCMLength(t *testing.T) {
	for _, id := range []string{"jump", "explode", "cantUse", "puzzleComplete"} {
		t.Run(id, func(t *testing.T) {
			c, ok := CueFor(id)
			require.True(t, ok)
			assert.Len(t, PCM(c), 4*samplesOf(c))
		})
	}

	c, ok := CueFor("nothing")
	assert.False(t, ok)
	assert.Equal(t, fallbackCue.Duration(), c.Duration())
}

func TestSongIsStable(t *testing.T) {
	a, b := Song("forest"), Song("forest")
	assert.Equal(t, a, b)
	assert.NotEqual(t, Song("forest").Notes, Song("cave").Notes)
	assert.Equal(t, 32*180*time.Millisecond, a.Duration())
}
