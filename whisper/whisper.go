package whisper

import (
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// CGO

/*
#cgo LDFLAGS: -lwhisper -lm -lstdc++
#cgo linux LDFLAGS: -fopenmp
#cgo darwin LDFLAGS: -framework Accelerate -framework Metal -framework MetalKit -framework Foundation
#include <stdlib.h>
#include "whisper.h"
*/
import "C"

///////////////////////////////////////////////////////////////////////////////
// TYPES

type (
	WhisperContext   C.struct_whisper_context
	WhisperState     C.struct_whisper_state
	SamplingStrategy C.enum_whisper_sampling_strategy
	WhisperParams    C.struct_whisper_full_params
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SAMPLING_GREEDY      SamplingStrategy = C.WHISPER_SAMPLING_GREEDY
	SAMPLING_BEAM_SEARCH SamplingStrategy = C.WHISPER_SAMPLING_BEAM_SEARCH
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Allocates all memory needed for the model and loads the model from the
// given file. Returns NULL on failure.
func Whisper_init(path string) *WhisperContext {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))
	params := C.whisper_context_default_params()
	ctx := C.whisper_init_from_file_with_params(cPath, params)
	if ctx == nil {
		return nil
	}
	return (*WhisperContext)(ctx)
}

// Frees all memory allocated by the model.
func (ctx *WhisperContext) Whisper_free() {
	C.whisper_free((*C.struct_whisper_context)(ctx))
}

// Allocates decoding state for one inference run against the model.
// Each concurrent caller must hold its own state. Returns NULL on failure.
func (ctx *WhisperContext) Whisper_init_state() *WhisperState {
	state := C.whisper_init_state((*C.struct_whisper_context)(ctx))
	if state == nil {
		return nil
	}
	return (*WhisperState)(state)
}

// Frees all memory allocated by the state.
func (state *WhisperState) Whisper_free_state() {
	C.whisper_free_state((*C.struct_whisper_state)(state))
}

// Return the id of the specified language, returns -1 if not found
// Examples:
//
//	"de" -> 2
//	"german" -> 2
func (ctx *WhisperContext) Whisper_lang_id(lang string) int {
	cLang := C.CString(lang)
	defer C.free(unsafe.Pointer(cLang))
	return int(C.whisper_lang_id(cLang))
}

func (ctx *WhisperContext) Whisper_is_multilingual() int {
	return int(C.whisper_is_multilingual((*C.struct_whisper_context)(ctx)))
}

// Print system information
func Whisper_print_system_info() string {
	return C.GoString(C.whisper_print_system_info())
}

// Return default parameters for a strategy
func Whisper_full_default_params(strategy SamplingStrategy) WhisperParams {
	return WhisperParams(C.whisper_full_default_params(C.enum_whisper_sampling_strategy(strategy)))
}

// Run the entire model against the given state:
// PCM -> log mel spectrogram -> encoder -> decoder -> text.
// Uses the specified decoding strategy to obtain the text. The model context
// is not mutated, so concurrent runs with separate states are allowed.
func (ctx *WhisperContext) Whisper_full_with_state(state *WhisperState, params WhisperParams, samples []float32) error {
	if C.whisper_full_with_state((*C.struct_whisper_context)(ctx), (*C.struct_whisper_state)(state), (C.struct_whisper_full_params)(params), (*C.float)(&samples[0]), C.int(len(samples))) == 0 {
		return nil
	}
	return ErrProcessingFailed
}

// Number of generated text segments in the state.
// A segment can be a few words, a sentence, or even a paragraph.
func (state *WhisperState) Whisper_full_n_segments_from_state() int {
	return int(C.whisper_full_n_segments_from_state((*C.struct_whisper_state)(state)))
}

// Get the start time of the specified segment, in engine ticks (10 ms).
func (state *WhisperState) Whisper_full_get_segment_t0_from_state(segment int) int64 {
	return int64(C.whisper_full_get_segment_t0_from_state((*C.struct_whisper_state)(state), C.int(segment)))
}

// Get the end time of the specified segment, in engine ticks (10 ms).
func (state *WhisperState) Whisper_full_get_segment_t1_from_state(segment int) int64 {
	return int64(C.whisper_full_get_segment_t1_from_state((*C.struct_whisper_state)(state), C.int(segment)))
}

// Get the text of the specified segment.
func (state *WhisperState) Whisper_full_get_segment_text_from_state(segment int) string {
	return C.GoString(C.whisper_full_get_segment_text_from_state((*C.struct_whisper_state)(state), C.int(segment)))
}

///////////////////////////////////////////////////////////////////////////////
// PARAMS METHODS

func (p *WhisperParams) SetTranslate(v bool) {
	p.translate = toBool(v)
}

func (p *WhisperParams) SetNoContext(v bool) {
	p.no_context = toBool(v)
}

func (p *WhisperParams) SetPrintProgress(v bool) {
	p.print_progress = toBool(v)
}

func (p *WhisperParams) SetPrintRealtime(v bool) {
	p.print_realtime = toBool(v)
}

// Set language id, or -1 for auto-detection
func (p *WhisperParams) SetLanguage(lang int) error {
	if lang == -1 {
		p.language = nil
		return nil
	}
	str := C.whisper_lang_str(C.int(lang))
	if str == nil {
		return ErrInvalidLanguage
	}
	p.language = str
	return nil
}

// Threads available
func (p *WhisperParams) Threads() int {
	return int(p.n_threads)
}

// Set number of threads to use
func (p *WhisperParams) SetThreads(threads int) {
	p.n_threads = C.int(threads)
}

// Set number of decoders to keep with the greedy strategy
func (p *WhisperParams) SetBestOf(n int) {
	p.greedy.best_of = C.int(n)
}

func (p *WhisperParams) SetBeamSize(n int) {
	p.beam_search.beam_size = C.int(n)
}

func (p *WhisperParams) SetTemperature(t float32) {
	p.temperature = C.float(t)
}

// Sets the fallback temperature incrementation
// Pass -1.0 to disable this feature
func (p *WhisperParams) SetTemperatureFallback(t float32) {
	p.temperature_inc = C.float(t)
}

// Set initial prompt
func (p *WhisperParams) SetInitialPrompt(prompt string) {
	p.initial_prompt = C.CString(prompt)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func toBool(v bool) C.bool {
	if v {
		return C.bool(true)
	}
	return C.bool(false)
}
