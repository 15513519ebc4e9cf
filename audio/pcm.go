package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// PCM16 drains a finite streamer into signed 16-bit little-endian
// interleaved stereo, the layout ebiten's audio players read.
func PCM16(s beep.Streamer) []byte {
	var out []byte
	samples := make([][2]float64, 512)
	for {
		n, ok := s.Stream(samples)
		for _, frame := range samples[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
