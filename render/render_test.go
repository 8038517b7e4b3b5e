package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/bombsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestColorOf(t *testing.T) {
	tests := []struct {
		name string
		a, b sim.View
		same bool
	}{
		{name: "variants share a color", a: sim.View{Name: "Projectile1"}, b: sim.View{Name: "Projectile12"}, same: true},
		{name: "white is untinted", a: sim.View{Name: "Yaw", Color: 0xffffff}, b: sim.View{Name: "Yaw"}, same: true},
		{name: "tint wins", a: sim.View{Name: "Yaw", Color: sim.StopTintColor}, b: sim.View{Name: "Yaw"}, same: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, colorOf(tt.a), colorOf(tt.b))
			} else {
				assert.NotEqual(t, colorOf(tt.a), colorOf(tt.b))
			}
		})
	}

	c := colorOf(sim.View{Name: "GunPowder", Alpha: 0x80})
	assert.Equal(t, uint8(0x80), c.A)
	tint := colorOf(sim.View{Color: 0xff6666})
	assert.Equal(t, uint8(0xff), tint.R)
	assert.Equal(t, uint8(0x66), tint.B)
}

func TestWrap(t *testing.T) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	require.NoError(t, err)
	face := &text.GoTextFace{Source: src, Size: 16}

	msg := "You will never reach the top of the mountain while I stand here.\nLeave."
	lines := Wrap(msg, face, 200)

	require.Greater(t, len(lines), 2)
	assert.Equal(t, "Leave.", lines[len(lines)-1])
	for _, l := range lines {
		w, _ := text.Measure(l, face, lineHeight)
		assert.LessOrEqual(t, w, 200.0, l)
	}
	assert.Equal(t, strings.Fields(msg), strings.Fields(strings.Join(lines, " ")))
}
