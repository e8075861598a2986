// Package live pushes session snapshots to websocket subscribers.
package live

import (
	"encoding/json"
	"sync"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
)

// sendBuffer is the number of frames queued per subscriber before it is
// considered too slow and dropped.
const sendBuffer = 16

// Subscriber receives encoded frames for one session code.
type Subscriber struct {
	code string
	send chan []byte
}

// Frames returns the channel frames are delivered on. It is closed when the
// subscriber is removed from the hub.
func (s *Subscriber) Frames() <-chan []byte { return s.send }

// Hub fans out snapshots to subscribers keyed by session code.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscriber]struct{})}
}

// Subscribe registers a new subscriber for code.
func (h *Hub) Subscribe(code string) *Subscriber {
	s := &Subscriber{code: code, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[code]
	if !ok {
		set = make(map[*Subscriber]struct{})
		h.subs[code] = set
	}
	set[s] = struct{}{}
	return s
}

// Unsubscribe removes s and closes its channel. Calling it twice is a no-op.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(s)
}

func (h *Hub) removeLocked(s *Subscriber) {
	set, ok := h.subs[s.code]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	close(s.send)
	if len(set) == 0 {
		delete(h.subs, s.code)
	}
}

// Publish encodes v once and queues it for every subscriber of code.
// Subscribers whose buffer is full are dropped.
func (h *Hub) Publish(code string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs[code] {
		select {
		case s.send <- b:
		default:
			h.removeLocked(s)
			logging.Warn("dropping slow stream subscriber", logging.Fields{constants.LogFieldSessionCode: code})
		}
	}
	return nil
}

// Count reports the number of subscribers for code.
func (h *Hub) Count(code string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[code])
}
