package likes

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Source names what changed.
type Source string

const (
	SourceTable   Source = "table"
	SourceCounter Source = "counter"
)

// Notification is a re-render signal.
// UserID is zero for SourceCounter.
type Notification struct {
	ID     uuid.UUID
	Source Source
	UserID int64
	Likes  int
	Span   timespan.TimeSpan
}

const epsilon = time.Millisecond

func newNotification(source Source, userID int64, likes int) Notification {
	now := time.Now()
	return Notification{
		ID:     uuid.New(),
		Source: source,
		UserID: userID,
		Likes:  likes,
		Span:   timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon)),
	}
}

// Notifier receives re-render notifications synchronously.
type Notifier interface {
	Rerender(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Rerender(n Notification) { f(n) }

type zapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier returns a Notifier that only logs "rerender".
func NewZapNotifier(logger *zap.Logger) Notifier {
	return zapNotifier{logger: logger}
}

func (z zapNotifier) Rerender(n Notification) {
	z.logger.Info("rerender",
		zap.Stringer("notification_id", n.ID),
		zap.String("source", string(n.Source)),
		zap.Int64("user_id", n.UserID),
		zap.Int("likes", n.Likes),
		zap.Time("at", n.Span.Start()),
	)
}

type notifiers []Notifier

// Notifiers fans a notification out to each notifier in order.
func Notifiers(ns ...Notifier) Notifier {
	return notifiers(ns)
}

func (ns notifiers) Rerender(n Notification) {
	for _, notifier := range ns {
		notifier.Rerender(n)
	}
}
