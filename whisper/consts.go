package whisper

import (
	"errors"
)

///////////////////////////////////////////////////////////////////////////////
// CGO

/*
#include "whisper.h"
*/
import "C"

///////////////////////////////////////////////////////////////////////////////
// ERRORS

var (
	ErrUnableToLoadModel = errors.New("unable to load model")
	ErrInternalAppError  = errors.New("internal application error")
	ErrProcessingFailed  = errors.New("processing failed")
	ErrInvalidLanguage   = errors.New("invalid language")
)

///////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// SampleRate is the sample rate of the audio data.
const SampleRate = C.WHISPER_SAMPLE_RATE

// ChunkSize is the chunk size processed by the model, in seconds.
const ChunkSize = C.WHISPER_CHUNK_SIZE
