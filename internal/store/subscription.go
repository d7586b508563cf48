package store

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// Subscription delivers the full, current value of a collection every time
// it changes. The first value is the snapshot at subscription time.
//
// Delivery stops when Unsubscribe is called or the context passed at
// creation is cancelled; the Updates channel is closed afterwards.
type Subscription[T any] struct {
	updates chan T
	cancel  context.CancelFunc
	done    chan struct{}
}

// Updates returns the receive side of the subscription.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Unsubscribe detaches the listener and waits for it to exit. It is safe to
// call more than once.
func (s *Subscription[T]) Unsubscribe() {
	s.cancel()
	<-s.done
}

// subscribe starts a listener that reloads the collection with load when the
// trigger fires or, if poll > 0, on every tick. Reloads equal to the last
// delivered value are skipped.
func subscribe[T any](ctx context.Context, log *logger.Logger, load func(context.Context) (T, error), trigger <-chan struct{}, poll time.Duration, release func()) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription[T]{
		updates: make(chan T),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		defer close(sub.updates)
		if release != nil {
			defer release()
		}

		var (
			last      T
			delivered bool
		)
		emit := func() bool {
			value, err := load(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return false
				}
				log.Err(err).Str("func", "subscribe").Msg("error reloading subscribed collection")
				return true
			}
			if delivered && reflect.DeepEqual(value, last) {
				return true
			}

			select {
			case sub.updates <- value:
				last, delivered = value, true
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}

		var tick <-chan time.Time
		if poll > 0 {
			ticker := time.NewTicker(poll)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-trigger:
			case <-tick:
			}
			if !emit() {
				return
			}
		}
	}()

	return sub
}

// changeFeed fans out "something changed" signals to listeners. Signals
// coalesce: a listener that has not consumed the previous one gets no
// second signal. The zero value is ready to use.
type changeFeed struct {
	mu        sync.Mutex
	listeners map[chan struct{}]struct{}
}

func (f *changeFeed) listen() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	f.mu.Lock()
	if f.listeners == nil {
		f.listeners = make(map[chan struct{}]struct{})
	}
	f.listeners[ch] = struct{}{}
	f.mu.Unlock()

	return ch, func() {
		f.mu.Lock()
		delete(f.listeners, ch)
		f.mu.Unlock()
	}
}

func (f *changeFeed) notify() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
