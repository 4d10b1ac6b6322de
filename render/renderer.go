package render

import (
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Renderer receives frames from the pipeline. Implementations must not
// retain or mutate a frame's slices beyond what they own.
//
// Render must be safe for concurrent use when the renderer is shared by a
// codec used from several goroutines.
type Renderer interface {
	Render(frame Frame)
}

// Nop discards every frame.
type Nop struct{}

var _ Renderer = Nop{}

// Render implements Renderer.
func (Nop) Render(Frame) {}

// Func adapts a plain function to Renderer.
type Func func(frame Frame)

var _ Renderer = Func(nil)

// Render implements Renderer.
func (f Func) Render(frame Frame) {
	f(frame)
}

// Recorder keeps every frame in memory.
type Recorder struct {
	mu     sync.Mutex
	frames []Frame
}

var _ Renderer = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Render implements Renderer.
func (r *Recorder) Render(frame Frame) {
	r.mu.Lock()
	r.frames = append(r.frames, frame)
	r.mu.Unlock()
}

// Frames returns a snapshot of the recorded frames.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Frame(nil), r.frames...)
}

// Titles returns the titles of the recorded frames in order.
func (r *Recorder) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	titles := make([]string, len(r.frames))
	for i, f := range r.frames {
		titles[i] = f.Title
	}

	return titles
}

// Reset drops all recorded frames.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.frames = nil
	r.mu.Unlock()
}

// YAMLWriter streams frames to w as a sequence of YAML documents.
//
// Render has no error return, so the first write failure is kept and every
// later frame is dropped. Check Err after the pipeline has run.
type YAMLWriter struct {
	mu  sync.Mutex
	enc *yaml.Encoder
	err error
}

var _ Renderer = (*YAMLWriter)(nil)

// NewYAMLWriter creates a YAMLWriter writing to w.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	return &YAMLWriter{enc: enc}
}

// Render implements Renderer.
func (y *YAMLWriter) Render(frame Frame) {
	y.mu.Lock()
	defer y.mu.Unlock()

	if y.err != nil {
		return
	}

	y.err = y.enc.Encode(frame)
}

// Close flushes the encoder and returns the first error seen.
func (y *YAMLWriter) Close() error {
	y.mu.Lock()
	defer y.mu.Unlock()

	if err := y.enc.Close(); err != nil && y.err == nil {
		y.err = err
	}

	return y.err
}

// Err returns the first error seen while writing.
func (y *YAMLWriter) Err() error {
	y.mu.Lock()
	defer y.mu.Unlock()

	return y.err
}
