package overlay

import (
	"context"
	"sync"

	"github.com/ytget/soundboard/internal/model"
)

// subscriberBuffer is the number of messages a slow subscriber may lag behind
const subscriberBuffer = 64

// Kind identifies a cross-surface message
type Kind string

// Message kinds
const (
	KindReactionsUpdated Kind = "reactions-updated"
	KindSettingsUpdated  Kind = "settings-updated"
	KindPreviewSettings  Kind = "preview-settings"
	KindToggleOverlay    Kind = "toggle-overlay"
)

// Message is a one-way push between surfaces
type Message struct {
	Kind      Kind
	Reactions []model.Reaction
	Settings  model.Settings
}

type subscriber struct {
	ctx context.Context
	ch  chan Message
}

// Bus fans messages out to every subscriber
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscriber
}

// NewBus creates a bus without subscribers
func NewBus() *Bus {
	return &Bus{subs: make(map[int]*subscriber)}
}

// Subscribe returns a channel of messages published after the call. The
// channel is closed when ctx is done.
func (b *Bus) Subscribe(ctx context.Context) <-chan Message {
	sub := &subscriber{ctx: ctx, ch: make(chan Message, subscriberBuffer)}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		close(sub.ch)
		b.mu.Unlock()
	}()
	return sub.ch
}

// Publish delivers msg to every subscriber. Preview messages are dropped for
// a subscriber whose buffer is full; other messages wait for room.
func (b *Bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if msg.Kind == KindPreviewSettings {
			select {
			case sub.ch <- msg:
			default:
			}
			continue
		}
		select {
		case sub.ch <- msg:
		case <-sub.ctx.Done():
		}
	}
}

// Subscribers returns the number of live subscriptions
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
