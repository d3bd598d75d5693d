package eventlog

import (
	"bufio"
	"encoding/json"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/samdwyer/robotics/internal/event"
	"github.com/samdwyer/robotics/internal/world"
)

// Record is one logged event.
type Record struct {
	Run  string         `json:"run"`
	Seq  int            `json:"seq"`
	Time time.Time      `json:"time"`
	Kind event.Kind     `json:"kind"`
	Text string         `json:"text"`
	Data map[string]any `json:"data,omitempty"`
}

// Recorder is an event.Handler that logs every event it receives.
// The first write error is kept and later events are dropped.
type Recorder struct {
	w   *Writer
	run string
	seq int
	err error
}

// NewRecorder logs the events of run into dir, one file prefix per run.
func NewRecorder(dir, run string) *Recorder {
	return &Recorder{w: NewWriter(dir, run), run: run}
}

// HandleEvent implements event.Handler.
func (r *Recorder) HandleEvent(e event.Event) {
	if r.err != nil {
		return
	}
	r.seq++
	r.err = r.w.Write(Record{
		Run:  r.run,
		Seq:  r.seq,
		Time: r.w.now().UTC(),
		Kind: e.Kind(),
		Text: e.String(),
		Data: payload(e),
	})
}

// Count returns how many events were recorded.
func (r *Recorder) Count() int { return r.seq }

// Err returns the first write error.
func (r *Recorder) Err() error { return r.err }

// Paths returns the files written so far.
func (r *Recorder) Paths() []string { return r.w.Paths() }

// Close flushes the log and returns the first error seen.
func (r *Recorder) Close() error {
	if err := r.w.Close(); r.err == nil {
		r.err = err
	}
	return r.err
}

func payload(e event.Event) map[string]any {
	switch e := e.(type) {
	case event.TimeChanged:
		return clock(e.Environment)
	case event.DayChanged:
		return clock(e.Environment)
	case event.EnergyRecharged:
		return map[string]any{"amount": e.Amount}
	case event.EnergyConsumed:
		return map[string]any{"amount": e.Amount}
	case event.Moved:
		return map[string]any{"at": e.Coordinate, "tile": e.Tile}
	case event.TileContentUpdated:
		return map[string]any{"at": e.Coordinate, "tile": e.Tile}
	case event.AddedToBackpack:
		return map[string]any{"content": e.Content, "amount": e.Amount}
	case event.RemovedFromBackpack:
		return map[string]any{"content": e.Content, "amount": e.Amount}
	default:
		return nil
	}
}

func clock(env *world.EnvironmentalConditions) map[string]any {
	if env == nil {
		return nil
	}
	return map[string]any{
		"time":    env.TimeString(),
		"weather": env.Weather().String(),
		"daytime": env.DayTime().String(),
	}
}

// ReadFile decodes every record of one log file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Record
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var rec Record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, sc.Err()
}
