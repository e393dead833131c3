package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// DefaultRingSize is the number of recent events retained per channel for
// replay to late subscribers.
const DefaultRingSize = 256

// subscriberBufferSlack is extra capacity on top of the ring size so a
// subscription can always absorb a full replay plus some live events.
const subscriberBufferSlack = 64

// Broadcaster receives every published event for WebSocket fan-out.
// Implemented by ConnectionManager.
type Broadcaster interface {
	Broadcast(channel string, event []byte)
}

// Hub is the in-process event bus. Publishers assign each event a
// monotonically increasing per-channel sequence number, retain the tail in a
// ring buffer, and fan out to direct subscribers and the broadcaster.
//
// A subscriber that stops draining its channel is evicted rather than allowed
// to stall publishers: its event channel is closed and it must resubscribe
// (replaying from its last seen seq) if it wants to continue.
type Hub struct {
	mu       sync.Mutex
	streams  map[string]*stream
	ringSize int
	nextSub  int

	// Broadcaster for WebSocket delivery (set after construction).
	broadcaster   Broadcaster
	broadcasterMu sync.RWMutex
}

type ringEntry struct {
	seq  int64
	data []byte
}

type stream struct {
	seq         int64
	ring        []ringEntry
	subscribers map[int]*Subscription
}

// Subscription is a direct (non-WebSocket) attachment to a channel.
type Subscription struct {
	id      int
	channel string
	ch      chan []byte
	closed  bool
}

// Events returns the subscription's delivery channel. It is closed when the
// subscription is cancelled or evicted.
func (s *Subscription) Events() <-chan []byte {
	return s.ch
}

// NewHub creates a Hub with the given ring size per channel. Sizes below one
// fall back to DefaultRingSize.
func NewHub(ringSize int) *Hub {
	if ringSize < 1 {
		ringSize = DefaultRingSize
	}
	return &Hub{
		streams:  make(map[string]*stream),
		ringSize: ringSize,
	}
}

// SetBroadcaster sets the WebSocket broadcaster. Called once during startup
// after both Hub and ConnectionManager are created.
func (h *Hub) SetBroadcaster(b Broadcaster) {
	h.broadcasterMu.Lock()
	defer h.broadcasterMu.Unlock()
	h.broadcaster = b
}

// Publish assigns the next sequence number on the channel, injects it into
// the payload as "seq", stores the event in the ring, and delivers it to all
// subscribers and the broadcaster. Returns the assigned sequence number.
func (h *Hub) Publish(channel string, payload any) (int64, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	// Round-trip through a map to inject the sequence number without
	// requiring every payload type to carry a seq field.
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0, fmt.Errorf("event payload must be a JSON object: %w", err)
	}

	h.mu.Lock()
	st := h.streams[channel]
	if st == nil {
		st = &stream{subscribers: make(map[int]*Subscription)}
		h.streams[channel] = st
	}

	st.seq++
	seq := st.seq
	body["seq"] = seq

	data, err := json.Marshal(body)
	if err != nil {
		h.mu.Unlock()
		return 0, fmt.Errorf("failed to marshal event: %w", err)
	}

	st.ring = append(st.ring, ringEntry{seq: seq, data: data})
	if len(st.ring) > h.ringSize {
		st.ring = st.ring[len(st.ring)-h.ringSize:]
	}

	// Non-blocking fan-out. A full subscriber buffer means the consumer
	// stopped draining; evict it so publishers never stall.
	for id, sub := range st.subscribers {
		select {
		case sub.ch <- data:
		default:
			slog.Warn("Evicting slow event subscriber", "channel", channel, "subscriber_id", id)
			delete(st.subscribers, id)
			sub.closed = true
			close(sub.ch)
		}
	}
	h.mu.Unlock()

	h.broadcasterMu.RLock()
	b := h.broadcaster
	h.broadcasterMu.RUnlock()
	if b != nil {
		b.Broadcast(channel, data)
	}

	return seq, nil
}

// Subscribe attaches to a channel, first replaying retained events with
// seq > sinceSeq, then delivering live events. The subscription buffer is
// sized so the replay always fits.
func (h *Hub) Subscribe(channel string, sinceSeq int64) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := h.streams[channel]
	if st == nil {
		st = &stream{subscribers: make(map[int]*Subscription)}
		h.streams[channel] = st
	}

	h.nextSub++
	sub := &Subscription{
		id:      h.nextSub,
		channel: channel,
		ch:      make(chan []byte, h.ringSize+subscriberBufferSlack),
	}

	for _, entry := range st.ring {
		if entry.seq > sinceSeq {
			sub.ch <- entry.data
		}
	}

	st.subscribers[sub.id] = sub
	return sub
}

// Unsubscribe detaches a subscription and closes its channel. Safe to call
// after the subscription was evicted.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	st := h.streams[sub.channel]
	if st != nil {
		delete(st.subscribers, sub.id)
	}
	if !sub.closed {
		sub.closed = true
		close(sub.ch)
	}
}

// Replay returns up to limit retained events with seq > sinceSeq, in order.
// Implements the catchup source for ConnectionManager.
func (h *Hub) Replay(channel string, sinceSeq int64, limit int) [][]byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := h.streams[channel]
	if st == nil {
		return nil
	}

	var out [][]byte
	for _, entry := range st.ring {
		if entry.seq <= sinceSeq {
			continue
		}
		out = append(out, entry.data)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Seq returns the last assigned sequence number on a channel, zero if the
// channel has never been published to.
func (h *Hub) Seq(channel string) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if st := h.streams[channel]; st != nil {
		return st.seq
	}
	return 0
}

// DropChannel releases a channel's ring buffer and closes any remaining
// subscriptions. Called after a task reaches a terminal state and its grace
// window for late readers has passed; the persisted output_stream remains
// the durable record.
func (h *Hub) DropChannel(channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := h.streams[channel]
	if st == nil {
		return
	}
	for _, sub := range st.subscribers {
		if !sub.closed {
			sub.closed = true
			close(sub.ch)
		}
	}
	delete(h.streams, channel)
}
