// internal/progress/writer.go
//
// Writer applies store writes in the background, in submission order, with
// retries. Writes are best effort: a write that still fails after retrying is
// logged and dropped. Values not yet applied are served to readers from an
// overlay so a read right after a write sees the new value.

package progress

import (
	"context"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordy/internal/store"
)

const (
	writeAttempts = 3
	writeDelay    = 50 * time.Millisecond
	writeTimeout  = 5 * time.Second
)

type write struct {
	key, value string
	seq        uint64
	flushed    chan struct{} // set for flush markers only
}

// queued is the latest value queued for a key and its sequence number.
type queued struct {
	value string
	seq   uint64
}

// Writer serializes writes to one KV.
type Writer struct {
	kv    store.KV
	queue chan write
	done  chan struct{}

	sendMu sync.RWMutex // held for reading while sending, for writing to close
	closed bool

	mu      sync.Mutex
	seq     uint64
	pending map[string]queued // key -> latest queued write
}

// NewWriter starts a Writer over kv. Close must be called to stop it.
func NewWriter(kv store.KV) *Writer {
	w := &Writer{
		kv:      kv,
		queue:   make(chan write, 256),
		done:    make(chan struct{}),
		pending: make(map[string]queued),
	}
	go w.run()
	return w
}

// Set queues key=value and returns immediately.
func (w *Writer) Set(key, value string) {
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	if w.closed {
		log.Warn().Str("key", key).Msg("progress write after close dropped")
		return
	}
	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.pending[key] = queued{value: value, seq: seq}
	w.mu.Unlock()
	w.queue <- write{key: key, value: value, seq: seq}
}

// Get returns the latest value for key, queued or stored.
func (w *Writer) Get(ctx context.Context, key string) (string, error) {
	w.mu.Lock()
	q, ok := w.pending[key]
	w.mu.Unlock()
	if ok {
		return q.value, nil
	}
	return w.kv.Get(ctx, key)
}

// Flush blocks until every write queued before the call has been attempted.
func (w *Writer) Flush() {
	ch := make(chan struct{})
	w.sendMu.RLock()
	if w.closed {
		w.sendMu.RUnlock()
		return
	}
	w.queue <- write{flushed: ch}
	w.sendMu.RUnlock()
	<-ch
}

// Close drains queued writes and stops the worker.
func (w *Writer) Close() {
	w.sendMu.Lock()
	if w.closed {
		w.sendMu.Unlock()
		return
	}
	w.closed = true
	close(w.queue)
	w.sendMu.Unlock()
	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)
	for wr := range w.queue {
		if wr.flushed != nil {
			close(wr.flushed)
			continue
		}
		w.apply(wr)
	}
}

func (w *Writer) apply(wr write) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := retry.Do(
		func() error { return w.kv.Set(ctx, wr.key, wr.value) },
		retry.Context(ctx),
		retry.Attempts(writeAttempts),
		retry.Delay(writeDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		log.Warn().Err(err).Str("key", wr.key).Msg("progress write failed")
	}

	w.mu.Lock()
	if q, ok := w.pending[wr.key]; ok && q.seq == wr.seq {
		delete(w.pending, wr.key)
	}
	w.mu.Unlock()
}
