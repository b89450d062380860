package memo

import "go.uber.org/zap"

type zapObserver struct {
	logger *zap.Logger
}

// NewZapObserver returns an Observer that logs hits, misses and dedups at
// debug level and failures at warn level. A nil logger discards everything.
func NewZapObserver(logger *zap.Logger) Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return zapObserver{logger: logger}
}

func (o zapObserver) On(eventData EventData) {
	msg := "memo " + eventData.Event.String()

	switch eventData.Event {
	case EventKeyError:
		o.logger.Warn(msg,
			zap.String("memoizer", eventData.Memoizer),
			zap.Error(eventData.Err),
		)
	case EventComputeError:
		o.logger.Warn(msg,
			zap.String("memoizer", eventData.Memoizer),
			zap.String("key", eventData.Key),
			zap.Error(eventData.Err),
		)
	default:
		if ce := o.logger.Check(zap.DebugLevel, msg); ce != nil {
			ce.Write(
				zap.String("memoizer", eventData.Memoizer),
				zap.String("key", eventData.Key),
			)
		}
	}
}
