// Package diag collects diagnostics for slider updates that were skipped
// (pointer off the track, missing coordinates, rejected external values).
// Hosts read them from a channel instead of having them printed over the UI.
package diag

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/llehouerou/rangeslider/internal/errmsg"
)

// DefaultBuffer is the channel capacity used by NewRecorder when size <= 0.
const DefaultBuffer = 100

// Event is one recorded diagnostic.
type Event struct {
	Source string // slider name
	Op     errmsg.Op
	Err    error
	Time   time.Time
}

// String renders the event for a status line.
func (e Event) String() string {
	msg := errmsg.FormatWith(e.Op, e.Source, e.Err)
	if hint := errmsg.Hint(e.Err); hint != "" {
		msg += " (" + hint + ")"
	}
	return msg
}

// Recorder buffers events on a channel. Recording never blocks: when the
// buffer is full the event is counted and dropped.
type Recorder struct {
	events  chan Event
	logger  *slog.Logger
	now     func() time.Time
	dropped atomic.Int64

	mu     sync.RWMutex
	closed bool
}

// NewRecorder creates a recorder. A nil logger discards log output.
func NewRecorder(size int, logger *slog.Logger) *Recorder {
	if size <= 0 {
		size = DefaultBuffer
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{
		events: make(chan Event, size),
		logger: logger,
		now:    time.Now,
	}
}

// Record stores a diagnostic. Nil errors are ignored.
func (r *Recorder) Record(source string, op errmsg.Op, err error) {
	if r == nil || err == nil {
		return
	}
	ev := Event{Source: source, Op: op, Err: err, Time: r.now()}
	r.logger.Debug("slider update skipped",
		"source", source,
		"op", string(op),
		"err", err,
	)

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}
	select {
	case r.events <- ev:
	default:
		// Channel full, drop event to avoid blocking the event loop
		r.dropped.Add(1)
	}
}

// Events returns the channel events are delivered on. It is closed by Close.
func (r *Recorder) Events() <-chan Event {
	return r.events
}

// Drain returns every buffered event without blocking.
func (r *Recorder) Drain() []Event {
	var out []Event
	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Dropped returns how many events were discarded because the buffer was full.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Close stops recording and closes the events channel.
func (r *Recorder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	close(r.events)
}
