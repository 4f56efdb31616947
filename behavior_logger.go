package knobs

import (
	"context"
	"log/slog"
)

// EventLogger logs every event its element receives, broadcasts included.
type EventLogger struct {
	BaseBehavior

	Logger *slog.Logger
	Level  slog.Level
}

// NewEventLogger creates an EventLogger writing at debug level.
func NewEventLogger(logger *slog.Logger) *EventLogger {
	return &EventLogger{Logger: logger, Level: slog.LevelDebug}
}

func (l *EventLogger) On(ev Event, _ *Elements, _ *EventQueue) {
	if l.Logger == nil {
		return
	}
	l.Logger.LogAttrs(context.Background(), l.Level, "event", eventAttr(ev))
}
