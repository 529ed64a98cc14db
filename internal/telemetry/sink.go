package telemetry

// #region imports
import (
	"sync"
	"time"
)

// #endregion

// #region sink

// Sink is the process-wide fan-out channel for observability events.
// Emit never blocks the caller: each subscriber has a bounded buffer and
// the oldest buffered event is dropped when a subscriber falls behind.
// Events from a single run are delivered to every subscriber in emission
// order; events across runs interleave without cross-run guarantees.
type Sink struct {
	mu      sync.Mutex
	config  SinkConfig
	subs    map[int]chan Event
	nextSub int
	ring    []Event
	seq     uint64
	dropped uint64
	closed  bool
}

// NewSink creates a sink. Created once at process start.
func NewSink(config SinkConfig) *Sink {
	if config.RingSize <= 0 {
		config.RingSize = DefaultSinkConfig().RingSize
	}
	if config.SubscriberBuffer <= 0 {
		config.SubscriberBuffer = DefaultSinkConfig().SubscriberBuffer
	}
	return &Sink{
		config: config,
		subs:   make(map[int]chan Event),
	}
}

// #endregion sink

// #region emit

// Emit publishes an event to all current subscribers and the ring buffer.
// Safe for concurrent use; never blocks on slow subscribers.
func (s *Sink) Emit(name, runID string, payload map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.seq++
	ev := Event{
		Seq:     s.seq,
		Name:    name,
		RunID:   runID,
		Payload: payload,
		At:      time.Now().UTC(),
	}

	s.ring = append(s.ring, ev)
	if len(s.ring) > s.config.RingSize {
		s.ring = s.ring[len(s.ring)-s.config.RingSize:]
	}

	for _, ch := range s.subs {
		s.send(ch, ev)
	}
}

// send delivers without blocking; on a full buffer the oldest event is
// evicted so the subscriber sees the freshest window.
func (s *Sink) send(ch chan Event, ev Event) {
	select {
	case ch <- ev:
		return
	default:
	}
	select {
	case <-ch:
		s.dropped++
	default:
	}
	select {
	case ch <- ev:
	default:
		s.dropped++
	}
}

// #endregion emit

// #region subscribe

// Subscribe attaches a new observer. The returned channel receives the
// ring-buffer backlog followed by live events; cancel detaches and closes it.
func (s *Sink) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := s.config.SubscriberBuffer
	if buf < s.config.RingSize {
		buf = s.config.RingSize
	}
	ch := make(chan Event, buf)

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	for _, ev := range s.ring {
		s.send(ch, ev)
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// #endregion subscribe

// #region stats

// Stats reports counters for health endpoints.
type Stats struct {
	Subscribers int
	Emitted     uint64
	Dropped     uint64
}

// Stats returns a snapshot of sink counters.
func (s *Sink) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Subscribers: len(s.subs),
		Emitted:     s.seq,
		Dropped:     s.dropped,
	}
}

// #endregion stats

// #region close

// Close detaches all subscribers. Further emits are discarded.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// #endregion close
