package audio

import (
	"encoding/binary"
	"math"
)

// ToPCM16 converts float samples in [-1, 1] to 16-bit PCM. Samples are
// scaled by 32768 and clamped, so a full scale positive sample does not wrap.
func ToPCM16(samples []float32) Block {
	out := make(Block, len(samples)*2)
	for i, s := range samples {
		v := float64(s) * 32768
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
	}
	return out
}

// intsToPCM16 packs decoded 16-bit samples back into a block.
func intsToPCM16(samples []int) Block {
	out := make(Block, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(s)))
	}
	return out
}

// Samples unpacks a block, mostly useful to tests and level meters.
func (b Block) Samples() []int16 {
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}
	return out
}
