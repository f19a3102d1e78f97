package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// decodeWAV decodes a RIFF/WAVE stream into mono float32 samples. The
// header is validated against the engine preconditions before any PCM is
// read, then the data chunk is consumed sequentially in fixed-size buffers
// so samples accumulate in source order.
func decodeWAV(rs io.ReadSeeker) ([]float32, error) {
	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	if int(dec.SampleRate) != SampleRate {
		return nil, errSampleRate(int(dec.SampleRate))
	}
	channels := int(dec.NumChans)
	if channels > 2 {
		return nil, errChannelCount(channels)
	}
	if channels == 0 {
		return nil, fmt.Errorf("%w: no channels declared", ErrUnsupportedFormat)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	scale := float32(int(1) << (dec.BitDepth - 1))
	offset := 0
	if dec.BitDepth == 8 {
		// 8-bit WAVE is unsigned.
		offset = 128
	}

	var samples []float32
	buf := &goaudio.IntBuffer{Data: make([]int, 4096*channels)}
	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			chunk := make([]float32, n)
			for i := 0; i < n; i++ {
				chunk[i] = float32(buf.Data[i]-offset) / scale
			}
			if channels == 2 {
				chunk = downmix(chunk)
			}
			samples = append(samples, chunk...)
		}
		if err != nil {
			// An I/O error mid stream ends decoding early; the samples read
			// so far are still returned.
			break
		}
		if n == 0 {
			break
		}
	}

	return samples, nil
}
