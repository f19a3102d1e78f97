package transcribe

import "strings"

// Segment is one contiguous span of recognized speech. Start and End are
// milliseconds from the beginning of the audio and are non-decreasing
// across a result's segment sequence.
type Segment struct {
	Start int64
	End   int64
	Text  string
}

// Result is the ordered segment sequence of one transcription run.
// Insertion order is chronological order. It is not mutated after
// construction.
type Result struct {
	segments []Segment
}

func newResult(segments []Segment) *Result {
	return &Result{segments: segments}
}

// Segments returns the segments in emission order.
func (r *Result) Segments() []Segment {
	return r.segments
}

// Text returns the text of all segments joined with single spaces.
func (r *Result) Text() string {
	texts := make([]string, 0, len(r.segments))
	for _, seg := range r.segments {
		if seg.Text != "" {
			texts = append(texts, seg.Text)
		}
	}
	return strings.Join(texts, " ")
}
