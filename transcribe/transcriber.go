package transcribe

import (
	"errors"
	"fmt"
	"log"

	"scribe/audio"
	"scribe/models"
)

// ErrNoSamples is returned when the decoded audio is empty. An empty buffer
// is never handed to the engine.
var ErrNoSamples = errors.New("audio file decoded to zero samples")

// Params is the optional per-call run configuration. The zero value (or a
// nil *Params) selects deterministic greedy decoding with a single best
// hypothesis.
type Params struct {
	Language      string  // "en", "german", "auto"; empty means auto
	Translate     bool    // translate to English instead of transcribing
	Threads       int     // 0 keeps the engine default
	BeamSize      int     // >1 switches to beam search
	Temperature   float32 // 0 is deterministic
	InitialPrompt string
}

// Transcriber wraps one loaded inference context. The context is read-only
// after New, so a single Transcriber may serve concurrent Transcribe calls;
// each call runs on its own per-call engine state.
type Transcriber struct {
	engine  Engine
	decoder Decoder
}

// New loads the provisioned model into an inference context. Loading a
// malformed or incompatible model file fails here, not at call time.
func New(handle *models.Handle) (*Transcriber, error) {
	engine, err := newWhisperEngine(handle.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", handle.Path(), err)
	}
	log.Printf("Model loaded: %s (%s)", handle.Variant().ID, handle.Path())
	return &Transcriber{
		engine:  engine,
		decoder: DecoderFunc(audio.Decode),
	}, nil
}

// Transcribe decodes the audio file at path and runs one full-sequence
// inference pass over it. Decoding precondition failures (wrong sample
// rate, too many channels, unknown container) and engine failures surface
// unchanged; there is no retry and no partial result.
func (t *Transcriber) Transcribe(path string, params *Params) (*Result, error) {
	samples, err := t.decoder.Decode(path)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSamples, path)
	}

	segments, err := t.engine.Run(samples, params)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	return newResult(segments), nil
}

// Close releases the inference context. The Transcriber must not be used
// afterwards.
func (t *Transcriber) Close() error {
	return t.engine.Close()
}
