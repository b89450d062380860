package memo

import "go.uber.org/zap"

// Option configures a Memoizer created by New, NewKeyed or NewWithStore.
type Option func(*settings)

// SyncMode selects how a Memoizer guards the check-compute-insert sequence
// against concurrent callers.
type SyncMode int

const (
	// SyncCoalesce lets at most one computation per key run at a time.
	// Concurrent callers for the same key wait and share its result. A
	// computation may call its own Memoizer for other keys, never its own.
	SyncCoalesce SyncMode = iota
	// SyncMutex serializes every call on one mutex. The computation must
	// not call back into the same Memoizer.
	SyncMutex
	// SyncNone adds no coordination. Concurrent misses on the same key may
	// each run the computation; the store's own safety is up to the caller.
	SyncNone
)

func (m SyncMode) String() string {
	switch m {
	case SyncCoalesce:
		return "coalesce"
	case SyncMutex:
		return "mutex"
	case SyncNone:
		return "none"
	default:
		return "unknown"
	}
}

type settings struct {
	name      string
	mode      SyncMode
	observers []Observer
}

func (s settings) buildObserver() Observer {
	switch len(s.observers) {
	case 0:
		return nil
	case 1:
		return s.observers[0]
	default:
		return multiObserver(s.observers)
	}
}

// WithName labels the Memoizer in emitted events and log entries.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithSync selects the concurrency mode. The default is SyncCoalesce.
func WithSync(mode SyncMode) Option {
	return func(s *settings) {
		s.mode = mode
	}
}

// WithObserver attaches an Observer that receives hit, miss, dedup and
// error events for the lifetime of the Memoizer. It may be given more than
// once.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithLogger attaches an observer that writes events to logger.
func WithLogger(logger *zap.Logger) Option {
	return WithObserver(NewZapObserver(logger))
}
