package memo

// Observer receives memoizer events. Implementations must be safe for
// concurrent use when the Memoizer is called from multiple goroutines.
type Observer interface {
	On(eventData EventData)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(EventData)

// On calls f.
func (f ObserverFunc) On(eventData EventData) {
	f(eventData)
}

// Event represents a memoizer event type.
type Event int

const (
	// EventHit is emitted when a call finds a cached value.
	EventHit Event = iota
	// EventMiss is emitted when a call invokes the computation.
	EventMiss
	// EventDedup is emitted when a concurrent caller shares an in-flight
	// result instead of triggering a new computation.
	EventDedup
	// EventKeyError is emitted when the key function fails.
	EventKeyError
	// EventComputeError is emitted when the computation fails.
	EventComputeError
)

func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventDedup:
		return "dedup"
	case EventKeyError:
		return "key error"
	case EventComputeError:
		return "compute error"
	default:
		return "unknown"
	}
}

// EventData carries the details of a memoizer event. Key is empty for
// EventKeyError and Err is set only for the error events.
type EventData struct {
	Event    Event
	Memoizer string
	Key      string
	Err      error
}

type multiObserver []Observer

func (m multiObserver) On(eventData EventData) {
	for _, o := range m {
		o.On(eventData)
	}
}
