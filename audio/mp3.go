package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// decodeMP3 decodes an MP3 stream into mono float32 samples. go-mp3 emits
// interleaved signed 16-bit stereo at the source rate regardless of the
// source channel layout, so the rate is validated up front and every frame
// is downmixed. Frames are read strictly in stream order; an I/O error mid
// stream ends the loop and returns whatever was accumulated.
func decodeMP3(r io.Reader) ([]float32, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	if dec.SampleRate() != SampleRate {
		return nil, errSampleRate(dec.SampleRate())
	}

	var samples []float32

	// 4 bytes per stereo frame; read in whole frames so a chunk never
	// splits a sample.
	buf := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, buf)
		if n > 0 {
			frames := n / 4
			for i := 0; i < frames; i++ {
				left := int16(binary.LittleEndian.Uint16(buf[i*4:]))
				right := int16(binary.LittleEndian.Uint16(buf[i*4+2:]))
				samples = append(samples, (float32(left)+float32(right))/2/32768.0)
			}
		}
		if err != nil {
			// EOF is the normal end; anything else terminates the stream
			// early with the samples accumulated so far.
			break
		}
	}

	return samples, nil
}
