// Package audio decodes audio containers into the raw sample stream the
// inference engine expects: mono float32 at 16 kHz.
package audio

import (
	"errors"
	"fmt"
	"os"
)

// SampleRate is the only sample rate the inference engine accepts.
const SampleRate = 16000

// convertHint names the external command that produces acceptable input.
const convertHint = "ffmpeg -i <input_audio_file> -ac 1 -ar 16000 -sample_fmt fltp <output_audio_file>"

var (
	// ErrUnsupportedFormat is returned when the file is not a container this
	// package can decode.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrSampleRate is returned when the source is not 16 kHz. The source
	// must be resampled externally.
	ErrSampleRate = errors.New("audio sample rate must be 16kHz")

	// ErrChannelCount is returned when the source has more than two
	// channels. The source must be remixed externally.
	ErrChannelCount = errors.New("more than 2 channels not supported")
)

// Decode reads the audio file at path and returns its samples as one
// contiguous mono float32 buffer in chronological order. Stereo sources are
// downmixed by averaging the two channels, matching the engine's
// stereo-to-mono rule. Sources that are not 16 kHz or carry more than two
// channels are rejected; the error names the conversion command to run.
func Decode(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	header := make([]byte, 12)
	n, err := f.Read(header)
	if err != nil {
		return nil, fmt.Errorf("failed to probe audio file: %w", err)
	}
	header = header[:n]

	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to rewind audio file: %w", err)
	}

	switch {
	case isWAV(header):
		return decodeWAV(f)
	case isMP3(header):
		return decodeMP3(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func isWAV(header []byte) bool {
	return len(header) >= 12 &&
		string(header[0:4]) == "RIFF" &&
		string(header[8:12]) == "WAVE"
}

func isMP3(header []byte) bool {
	if len(header) >= 3 && string(header[0:3]) == "ID3" {
		return true
	}
	// Bare MPEG frame sync: 11 set bits.
	return len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0
}

func errSampleRate(got int) error {
	return fmt.Errorf("%w: source is %d Hz, use %s to convert to mono,16KHz audio", ErrSampleRate, got, convertHint)
}

func errChannelCount(got int) error {
	return fmt.Errorf("%w: source has %d channels, use %s to convert to mono,16KHz audio", ErrChannelCount, got, convertHint)
}

// downmix folds interleaved stereo into mono by averaging each frame.
func downmix(interleaved []float32) []float32 {
	mono := make([]float32, len(interleaved)/2)
	for i := range mono {
		mono[i] = (interleaved[i*2] + interleaved[i*2+1]) / 2
	}
	return mono
}
