package transcribe

import (
	"errors"
	"fmt"
	"testing"
)

// fakeEngine records what it was asked to run and replies with canned
// segments.
type fakeEngine struct {
	segments []Segment
	err      error

	calls      int
	gotSamples []float32
	gotParams  *Params
}

func (e *fakeEngine) Run(samples []float32, params *Params) ([]Segment, error) {
	e.calls++
	e.gotSamples = samples
	e.gotParams = params
	return e.segments, e.err
}

func (e *fakeEngine) Close() error { return nil }

func fixedDecoder(samples []float32, err error) Decoder {
	return DecoderFunc(func(path string) ([]float32, error) {
		return samples, err
	})
}

func TestTranscribeOrderedSegments(t *testing.T) {
	want := []Segment{
		{Start: 0, End: 2400, Text: "By what he has said and done,"},
		{Start: 2400, End: 5100, Text: "a man judges himself"},
		{Start: 5100, End: 7000, Text: "by what he is willing to do."},
	}
	engine := &fakeEngine{segments: want}
	tr := &Transcriber{
		engine:  engine,
		decoder: fixedDecoder([]float32{0.1, 0.2, 0.3}, nil),
	}

	result, err := tr.Transcribe("speech.wav", nil)
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	segments := result.Segments()
	if len(segments) != len(want) {
		t.Fatalf("got %d segments, want %d", len(segments), len(want))
	}
	var prev int64
	for i, seg := range segments {
		if seg != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, seg, want[i])
		}
		if seg.Start < prev || seg.End < seg.Start {
			t.Errorf("segment %d timestamps not monotonic: %+v", i, seg)
		}
		prev = seg.End
	}

	wantText := "By what he has said and done, a man judges himself by what he is willing to do."
	if got := result.Text(); got != wantText {
		t.Errorf("Text() = %q, want %q", got, wantText)
	}
}

func TestTranscribePassesSamplesThrough(t *testing.T) {
	samples := []float32{0.5, -0.25, 0.125, 0}
	engine := &fakeEngine{segments: []Segment{{Text: "ok"}}}
	tr := &Transcriber{engine: engine, decoder: fixedDecoder(samples, nil)}

	if _, err := tr.Transcribe("in.wav", nil); err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	if len(engine.gotSamples) != len(samples) {
		t.Fatalf("engine got %d samples, want %d", len(engine.gotSamples), len(samples))
	}
	for i := range samples {
		if engine.gotSamples[i] != samples[i] {
			t.Fatalf("sample %d reordered or changed: got %v want %v", i, engine.gotSamples[i], samples[i])
		}
	}
	if engine.gotParams != nil {
		t.Errorf("nil params must reach the engine as nil, got %+v", engine.gotParams)
	}
}

func TestTranscribeParamsForwarded(t *testing.T) {
	engine := &fakeEngine{segments: []Segment{{Text: "ok"}}}
	tr := &Transcriber{engine: engine, decoder: fixedDecoder([]float32{1}, nil)}

	params := &Params{Language: "en", Translate: true, BeamSize: 5}
	if _, err := tr.Transcribe("in.wav", params); err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if engine.gotParams != params {
		t.Errorf("engine got params %+v, want the caller's %+v", engine.gotParams, params)
	}
}

func TestTranscribeDecoderErrorSkipsEngine(t *testing.T) {
	decodeErr := errors.New("audio sample rate must be 16kHz")
	engine := &fakeEngine{}
	tr := &Transcriber{engine: engine, decoder: fixedDecoder(nil, decodeErr)}

	_, err := tr.Transcribe("in.wav", nil)
	if !errors.Is(err, decodeErr) {
		t.Fatalf("got %v, want the decoder error", err)
	}
	if engine.calls != 0 {
		t.Errorf("engine must never run on a failed decode, ran %d times", engine.calls)
	}
}

func TestTranscribeEmptyBufferSkipsEngine(t *testing.T) {
	engine := &fakeEngine{}
	tr := &Transcriber{engine: engine, decoder: fixedDecoder([]float32{}, nil)}

	_, err := tr.Transcribe("silence.wav", nil)
	if !errors.Is(err, ErrNoSamples) {
		t.Fatalf("got %v, want ErrNoSamples", err)
	}
	if engine.calls != 0 {
		t.Errorf("engine must never run on an empty buffer, ran %d times", engine.calls)
	}
}

func TestTranscribeEngineErrorIsFatal(t *testing.T) {
	engineErr := fmt.Errorf("failed to run the model")
	engine := &fakeEngine{err: engineErr}
	tr := &Transcriber{engine: engine, decoder: fixedDecoder([]float32{1, 2}, nil)}

	result, err := tr.Transcribe("in.wav", nil)
	if result != nil {
		t.Fatalf("no partial result allowed, got %+v", result)
	}
	if !errors.Is(err, engineErr) {
		t.Fatalf("engine error must surface unchanged, got %v", err)
	}
}

func TestResultTextSkipsEmptySegments(t *testing.T) {
	r := newResult([]Segment{
		{Text: "hello"},
		{Text: ""},
		{Text: "world"},
	})
	if got := r.Text(); got != "hello world" {
		t.Errorf("Text() = %q, want %q", got, "hello world")
	}
}
