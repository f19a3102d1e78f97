package whisper

import (
	"fmt"
	"os"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Model is a loaded whisper model. It is read-only after New returns and may
// be shared by any number of concurrent States.
type Model struct {
	ctx  *WhisperContext
	path string
}

// State holds the decoding state for a single inference run. States are not
// safe for concurrent use; allocate one per run via Model.NewState.
type State struct {
	model *Model
	state *WhisperState
}

// Segment is one span of recognized speech read back from a State.
type Segment struct {
	Num   int
	Start int64 // milliseconds
	End   int64 // milliseconds
	Text  string
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New loads a ggml model from path.
func New(path string) (*Model, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnableToLoadModel, path)
	}
	ctx := Whisper_init(path)
	if ctx == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnableToLoadModel, path)
	}
	return &Model{ctx: ctx, path: path}, nil
}

// Close releases all memory held by the model. The model must not be used
// afterwards, and no States created from it may still be live.
func (model *Model) Close() error {
	if model.ctx == nil {
		return ErrInternalAppError
	}
	model.ctx.Whisper_free()
	model.ctx = nil
	return nil
}

// NewState allocates fresh decoding state against the model.
func (model *Model) NewState() (*State, error) {
	if model.ctx == nil {
		return nil, ErrInternalAppError
	}
	state := model.ctx.Whisper_init_state()
	if state == nil {
		return nil, fmt.Errorf("%w: failed to create state", ErrInternalAppError)
	}
	return &State{model: model, state: state}, nil
}

// Close releases the decoding state.
func (s *State) Close() {
	if s.state != nil {
		s.state.Whisper_free_state()
		s.state = nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Path returns the model file the model was loaded from.
func (model *Model) Path() string {
	return model.path
}

// IsMultilingual returns true if the model supports languages other than
// English.
func (model *Model) IsMultilingual() bool {
	return model.ctx != nil && model.ctx.Whisper_is_multilingual() != 0
}

// DefaultParams returns the engine defaults for the given sampling strategy.
func (model *Model) DefaultParams(strategy SamplingStrategy) WhisperParams {
	params := Whisper_full_default_params(strategy)
	params.SetPrintProgress(false)
	params.SetPrintRealtime(false)
	return params
}

// SetParamsLanguage resolves lang ("en", "german", "auto") against the model
// vocabulary and stores it in params.
func (model *Model) SetParamsLanguage(params *WhisperParams, lang string) error {
	if model.ctx == nil {
		return ErrInternalAppError
	}
	lang = strings.TrimSpace(lang)
	if lang == "" || lang == "auto" {
		return params.SetLanguage(-1)
	}
	id := model.ctx.Whisper_lang_id(lang)
	if id == -1 {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	return params.SetLanguage(id)
}

// Full runs the entire model over samples with this state. The samples must
// be mono float32 at SampleRate.
func (s *State) Full(params WhisperParams, samples []float32) error {
	if s.state == nil || s.model.ctx == nil {
		return ErrInternalAppError
	}
	if len(samples) == 0 {
		return fmt.Errorf("%w: empty sample buffer", ErrProcessingFailed)
	}
	return s.model.ctx.Whisper_full_with_state(s.state, params, samples)
}

// NumSegments returns the number of segments generated by the last Full run.
func (s *State) NumSegments() int {
	if s.state == nil {
		return 0
	}
	return s.state.Whisper_full_n_segments_from_state()
}

// Segment reads back the n'th segment of the last Full run. Timestamps are
// converted from engine ticks (10 ms) to milliseconds.
func (s *State) Segment(n int) Segment {
	return Segment{
		Num:   n,
		Start: s.state.Whisper_full_get_segment_t0_from_state(n) * 10,
		End:   s.state.Whisper_full_get_segment_t1_from_state(n) * 10,
		Text:  strings.TrimSpace(s.state.Whisper_full_get_segment_text_from_state(n)),
	}
}
