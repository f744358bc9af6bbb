package audio

import "sync"

// Queue is an unbounded FIFO of events. Push never blocks, so sounds can
// report from any goroutine while a single consumer drains C in order.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []Event
	closed bool
	done   chan struct{}
	out    chan Event
	once   sync.Once
}

// NewQueue creates a queue and starts its delivery goroutine
func NewQueue() *Queue {
	q := &Queue{
		done: make(chan struct{}),
		out:  make(chan Event),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.pump()
	return q
}

// Push appends an event. Events pushed after Close are dropped.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, ev)
	q.cond.Signal()
}

// C returns the delivery channel. It is closed after Close.
func (q *Queue) C() <-chan Event {
	return q.out
}

// Close stops delivery and drops pending events
func (q *Queue) Close() {
	q.once.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.items = nil
		q.cond.Broadcast()
		q.mu.Unlock()
		close(q.done)
	})
}

func (q *Queue) pump() {
	defer close(q.out)
	for {
		q.mu.Lock()
		for len(q.items) == 0 && !q.closed {
			q.cond.Wait()
		}
		if q.closed {
			q.mu.Unlock()
			return
		}
		ev := q.items[0]
		q.items[0] = Event{}
		q.items = q.items[1:]
		q.mu.Unlock()

		select {
		case q.out <- ev:
		case <-q.done:
			return
		}
	}
}
