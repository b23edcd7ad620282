// Package trace captures the observable output of a running engine: a
// Recorder listener that samples every frame, exporters for the captured
// run, and a logging listener.
package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/vector"
)

// Sample is one frame of interpolated output.
type Sample struct {
	Frame    int       `json:"frame"`
	Position []float64 `json:"position"`
	Velocity []float64 `json:"velocity"`
}

// Recorder is an engine listener that keeps every frame's position and
// velocity, plus the lifecycle events it saw.
type Recorder struct {
	samples []Sample
	starts  int
	settles int
	stops   int
}

var _ engine.Listener = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnStart() { r.starts++ }

func (r *Recorder) OnUpdate(x, v *vector.Vector) {
	r.samples = append(r.samples, Sample{
		Frame:    len(r.samples),
		Position: x.Values(),
		Velocity: v.Values(),
	})
}

func (r *Recorder) OnSettle() { r.settles++ }

func (r *Recorder) OnStop() { r.stops++ }

// Samples returns the recorded frames in order.
func (r *Recorder) Samples() []Sample {
	return r.samples
}

// Settled reports whether the run reached a settled state.
func (r *Recorder) Settled() bool {
	return r.settles > 0
}

// Stopped reports whether the run ended, by settling or an explicit stop.
func (r *Recorder) Stopped() bool {
	return r.stops > 0
}

// Component extracts one position component across all samples, which is the
// shape plotting wants.
func (r *Recorder) Component(i int) []float64 {
	out := make([]float64, len(r.samples))
	for j, s := range r.samples {
		if i < len(s.Position) {
			out[j] = s.Position[i]
		}
	}
	return out
}

// WriteCSV writes the samples as one row per frame with position and
// velocity columns sized from the first sample.
func (r *Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	dim := 0
	if len(r.samples) > 0 {
		dim = len(r.samples[0].Position)
	}

	header := []string{"frame"}
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, 1+2*dim)
	for _, s := range r.samples {
		row = row[:0]
		row = append(row, strconv.Itoa(s.Frame))
		for _, x := range s.Position {
			row = append(row, strconv.FormatFloat(x, 'g', -1, 64))
		}
		for _, v := range s.Velocity {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
