// Package transcribe turns audio files into timed text segments using a
// provisioned whisper model.
package transcribe

import (
	"fmt"

	"scribe/whisper"
)

// Decoder is the capability the pipeline needs from the audio layer: a file
// path in, a mono 16 kHz float32 buffer out.
type Decoder interface {
	Decode(path string) ([]float32, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(path string) ([]float32, error)

func (f DecoderFunc) Decode(path string) ([]float32, error) {
	return f(path)
}

// Engine is the capability the pipeline needs from the inference layer. Run
// performs one full-sequence pass over samples and returns the emitted
// segments in order. Implementations must allow concurrent Run calls.
type Engine interface {
	Run(samples []float32, params *Params) ([]Segment, error)
	Close() error
}

// whisperEngine runs inference through the whisper.cpp binding. The loaded
// model is shared; every Run allocates its own decoding state, so
// concurrent calls are safe.
type whisperEngine struct {
	model *whisper.Model
}

func newWhisperEngine(modelPath string) (*whisperEngine, error) {
	model, err := whisper.New(modelPath)
	if err != nil {
		return nil, err
	}
	return &whisperEngine{model: model}, nil
}

func (e *whisperEngine) Run(samples []float32, params *Params) ([]Segment, error) {
	state, err := e.model.NewState()
	if err != nil {
		return nil, err
	}
	defer state.Close()

	full, err := e.fullParams(params)
	if err != nil {
		return nil, err
	}

	if err := state.Full(full, samples); err != nil {
		return nil, err
	}

	n := state.NumSegments()
	segments := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		seg := state.Segment(i)
		segments = append(segments, Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return segments, nil
}

// fullParams maps Params onto engine parameters. A nil Params selects
// deterministic greedy decoding with a single best hypothesis.
func (e *whisperEngine) fullParams(params *Params) (whisper.WhisperParams, error) {
	if params == nil {
		full := e.model.DefaultParams(whisper.SAMPLING_GREEDY)
		full.SetBestOf(1)
		full.SetTemperature(0)
		return full, nil
	}

	strategy := whisper.SAMPLING_GREEDY
	if params.BeamSize > 1 {
		strategy = whisper.SAMPLING_BEAM_SEARCH
	}
	full := e.model.DefaultParams(strategy)
	switch {
	case params.BeamSize > 1:
		full.SetBeamSize(params.BeamSize)
	default:
		full.SetBestOf(1)
	}
	full.SetTemperature(params.Temperature)
	full.SetTranslate(params.Translate)
	if params.Threads > 0 {
		full.SetThreads(params.Threads)
	}
	if params.InitialPrompt != "" {
		full.SetInitialPrompt(params.InitialPrompt)
	}
	if err := e.model.SetParamsLanguage(&full, params.Language); err != nil {
		return whisper.WhisperParams{}, fmt.Errorf("failed to set language: %w", err)
	}
	return full, nil
}

func (e *whisperEngine) Close() error {
	return e.model.Close()
}
