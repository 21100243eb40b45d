package effects

import (
	"log/slog"
	"sync"
	"time"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
)

const defaultSubscriberBuffer = 32

// Broadcaster turns effects into Events for stream subscribers. A slow
// subscriber loses events instead of stalling the session.
type Broadcaster struct {
	logger *slog.Logger
	now    func() time.Time
	buffer int

	mu          sync.Mutex
	nextID      int
	subscribers map[int]chan Event
}

// NewBroadcaster creates a broadcaster with no subscribers
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}

	return &Broadcaster{
		logger:      logger,
		now:         time.Now,
		buffer:      defaultSubscriberBuffer,
		subscribers: make(map[int]chan Event),
	}
}

// Subscribe returns an event channel and a cancel func that closes it
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.buffer)
	b.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(b.subscribers, id)
			close(ch)
		})
	}

	return ch, cancel
}

// Subscribers returns the number of active subscribers
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subscribers)
}

// Publish delivers event to every subscriber without blocking
func (b *Broadcaster) Publish(event Event) {
	if event.At.IsZero() {
		event.At = b.now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Warn("Dropping event for slow subscriber",
				slog.Int("subscriber", id),
				slog.String("type", string(event.Type)),
			)
		}
	}
}

func (b *Broadcaster) OnArrivalSound(targetName string) {
	b.Publish(Event{Type: EventArrivalSound, Target: targetName})
}

func (b *Broadcaster) OnArrivalVibration(targetName string) {
	b.Publish(Event{Type: EventArrivalVibration, Target: targetName})
}

func (b *Broadcaster) OnArrivalDialog(targetName string) {
	b.Publish(Event{Type: EventArrivalDialog, Target: targetName})
}

func (b *Broadcaster) OnDirectionInstruction(instruction entity.Instruction) {
	b.Publish(Event{Type: EventDirection, Instruction: &instruction})
}

func (b *Broadcaster) OnReroute(newTargetName string) {
	b.Publish(Event{Type: EventReroute, Target: newTargetName})
}

var _ service.EffectPorts = (*Broadcaster)(nil)
