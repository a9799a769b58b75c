package ui

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Sound is a short clip of 16-bit stereo PCM kept in memory.
type Sound struct {
	ctx *audio.Context
	pcm []byte
}

func (s *Sound) Play() {
	if s == nil || s.ctx == nil {
		return
	}
	s.ctx.NewPlayerFromBytes(s.pcm).Play()
}

// Sounds are the cues of the table.
type Sounds struct {
	Deal   *Sound
	PickUp *Sound
	Drop   *Sound
	Won    *Sound
}

func NewSounds() *Sounds {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Sounds{
		Deal:   &Sound{ctx: ctx, pcm: append(tone(392, 0.06, 0.2), tone(523, 0.1, 0.2)...)},
		PickUp: &Sound{ctx: ctx, pcm: tone(660, 0.05, 0.25)},
		Drop:   &Sound{ctx: ctx, pcm: tone(330, 0.08, 0.3)},
		Won: &Sound{ctx: ctx, pcm: append(append(
			tone(523, 0.12, 0.3), tone(659, 0.12, 0.3)...), tone(784, 0.25, 0.3)...)},
	}
}

// tone renders a sine wave that fades out over its duration.
func tone(freq, seconds, volume float64) []byte {
	n := int(seconds * sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * volume * fade * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
