// Package notify is the shared notification container backing transient,
// dismissible toasts. State is explicit and scoped: callers publish, receive
// an identifier they own, and dismiss by that identifier.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification.
type Level string

// Notification levels.
const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is one transient message.
type Notification struct {
	ID      string
	Level   Level
	Message string
	Time    time.Time
}

// Event is delivered to subscribers on every change.
type Event struct {
	Added     *Notification
	Dismissed string
}

// Center holds active notifications and fans out change events.
// Safe for concurrent use.
type Center struct {
	mu     sync.Mutex
	active []Notification
	subs   map[int]chan Event
	nextID int
	now    func() time.Time
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{
		subs: make(map[int]chan Event),
		now:  time.Now,
	}
}

// Publish adds a notification and returns its caller-owned identifier.
func (c *Center) Publish(level Level, message string) string {
	n := Notification{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
	}
	c.mu.Lock()
	n.Time = c.now()
	c.active = append(c.active, n)
	c.broadcastLocked(Event{Added: &n})
	c.mu.Unlock()
	return n.ID
}

// Success publishes a success notification.
func (c *Center) Success(message string) string {
	return c.Publish(LevelSuccess, message)
}

// Error publishes an error notification.
func (c *Center) Error(message string) string {
	return c.Publish(LevelError, message)
}

// Dismiss removes a notification by identifier. Unknown identifiers are
// ignored; dismissal is idempotent.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.active {
		if n.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			c.broadcastLocked(Event{Dismissed: id})
			return
		}
	}
}

// Active returns a copy of the current notifications, oldest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	active := make([]Notification, len(c.active))
	copy(active, c.active)
	return active
}

// Subscribe registers for change events. The returned cancel function must
// be called to release the subscription.
func (c *Center) Subscribe() (<-chan Event, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	ch := make(chan Event, 16)
	c.subs[id] = ch
	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// broadcastLocked delivers an event to all subscribers without blocking; a
// subscriber that falls behind misses events rather than stalling publishes.
func (c *Center) broadcastLocked(ev Event) {
	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
